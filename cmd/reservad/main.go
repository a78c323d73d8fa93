package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/MarkoPoloResearchLab/reservation/internal/console"
	"github.com/MarkoPoloResearchLab/reservation/internal/oplog"
	"github.com/MarkoPoloResearchLab/reservation/internal/store/gormstore"
	"github.com/MarkoPoloResearchLab/reservation/pkg/hotel"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	flagDatabaseURL      = "database-url"
	flagListenAddr       = "listen-addr"
	flagAllowedOrigins   = "allowed-origins"
	flagTokenSigningKey  = "token-signing-key"
	flagTokenIssuer      = "token-issuer"
	flagAdminEmail       = "admin-email"
	flagAdminPassword    = "admin-password"
	flagSeedDemoRooms    = "seed-demo-rooms"
	configKeyDatabaseURL = "database_url"
	configKeyListenAddr  = "listen_addr"
	configKeyOrigins     = "allowed_origins"
	configKeySigningKey  = "token_signing_key"
	configKeyIssuer      = "token_issuer"
	configKeyAdminEmail  = "admin_email"
	configKeyAdminPass   = "admin_password"
	configKeySeedRooms   = "seed_demo_rooms"
	defaultDatabaseURL   = "sqlite:///tmp/reservation.db"
	defaultListenAddr    = ":9090"
)

type runtimeConfig struct {
	DatabaseURL     string
	ListenAddr      string
	AllowedOrigins  string
	TokenSigningKey string
	TokenIssuer     string
	AdminEmail      string
	AdminPassword   string
	SeedDemoRooms   bool
}

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "reservad: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := &runtimeConfig{}
	cmd := &cobra.Command{
		Use:           "reservad",
		Short:         "Hotel reservation HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg)
		},
	}

	cmd.Flags().String(flagDatabaseURL, defaultDatabaseURL, "database connection string (postgres://, mysql:// or sqlite path)")
	cmd.Flags().String(flagListenAddr, defaultListenAddr, "HTTP listen address")
	cmd.Flags().String(flagAllowedOrigins, "", "comma-delimited CORS origins")
	cmd.Flags().String(flagTokenSigningKey, "", "JWT signing key")
	cmd.Flags().String(flagTokenIssuer, "", "JWT issuer")
	cmd.Flags().String(flagAdminEmail, "", "admin account email to seed")
	cmd.Flags().String(flagAdminPassword, "", "admin account password to seed")
	cmd.Flags().Bool(flagSeedDemoRooms, false, "seed a demo room inventory into an empty database")

	return cmd
}

func loadConfig(cmd *cobra.Command, cfg *runtimeConfig) error {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	envBindings := map[string]string{
		configKeyDatabaseURL: "DATABASE_URL",
		configKeyListenAddr:  "LISTEN_ADDR",
		configKeyOrigins:     "ALLOWED_ORIGINS",
		configKeySigningKey:  "TOKEN_SIGNING_KEY",
		configKeyIssuer:      "TOKEN_ISSUER",
		configKeyAdminEmail:  "ADMIN_EMAIL",
		configKeyAdminPass:   "ADMIN_PASSWORD",
		configKeySeedRooms:   "SEED_DEMO_ROOMS",
	}
	for configKey, envName := range envBindings {
		if err := viper.BindEnv(configKey, envName); err != nil {
			return err
		}
	}

	flagBindings := map[string]string{
		configKeyDatabaseURL: flagDatabaseURL,
		configKeyListenAddr:  flagListenAddr,
		configKeyOrigins:     flagAllowedOrigins,
		configKeySigningKey:  flagTokenSigningKey,
		configKeyIssuer:      flagTokenIssuer,
		configKeyAdminEmail:  flagAdminEmail,
		configKeyAdminPass:   flagAdminPassword,
		configKeySeedRooms:   flagSeedDemoRooms,
	}
	for configKey, flagName := range flagBindings {
		if err := viper.BindPFlag(configKey, cmd.Flags().Lookup(flagName)); err != nil {
			return err
		}
	}

	cfg.DatabaseURL = viper.GetString(configKeyDatabaseURL)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = defaultDatabaseURL
	}
	cfg.ListenAddr = viper.GetString(configKeyListenAddr)
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	cfg.AllowedOrigins = viper.GetString(configKeyOrigins)
	cfg.TokenSigningKey = viper.GetString(configKeySigningKey)
	cfg.TokenIssuer = viper.GetString(configKeyIssuer)
	cfg.AdminEmail = viper.GetString(configKeyAdminEmail)
	cfg.AdminPassword = viper.GetString(configKeyAdminPass)
	cfg.SeedDemoRooms = viper.GetBool(configKeySeedRooms)

	if cfg.TokenSigningKey == "" {
		return fmt.Errorf("token signing key is required")
	}
	return nil
}

func runServer(ctx context.Context, cfg *runtimeConfig) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("logger init: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	gormDB, cleanup, err := openDatabase(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database open: %w", err)
	}
	defer func() { _ = cleanup() }()

	if err := gormDB.AutoMigrate(gormstore.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	store := gormstore.New(gormDB)
	clock := func() time.Time { return time.Now().UTC() }
	service, err := hotel.NewService(store, clock, uuid.NewString,
		hotel.WithOperationLogger(oplog.NewZapLogger(logger)))
	if err != nil {
		return fmt.Errorf("reservation service init: %w", err)
	}

	if err := seedAdminAccount(ctx, store, cfg, logger); err != nil {
		return err
	}
	if cfg.SeedDemoRooms {
		if err := seedDemoRooms(ctx, service, store, logger); err != nil {
			return err
		}
	}

	consoleConfig := console.Config{
		ListenAddr:      cfg.ListenAddr,
		AllowedOrigins:  console.ParseAllowedOrigins(cfg.AllowedOrigins),
		TokenSigningKey: cfg.TokenSigningKey,
		TokenIssuer:     cfg.TokenIssuer,
	}
	if err := consoleConfig.Validate(); err != nil {
		return fmt.Errorf("console config: %w", err)
	}
	return console.Run(ctx, consoleConfig, service)
}

func openDatabase(ctx context.Context, dsn string) (*gorm.DB, func() error, error) {
	var (
		db  *gorm.DB
		err error
	)
	gormConfig := &gorm.Config{}
	switch {
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	case strings.HasPrefix(dsn, "mysql://"):
		db, err = gorm.Open(mysql.Open(strings.TrimPrefix(dsn, "mysql://")), gormConfig)
	default:
		sqlitePath, pathErr := resolveSQLitePath(dsn)
		if pathErr != nil {
			return nil, nil, pathErr
		}
		db, err = gorm.Open(sqlite.Open(sqlitePath), gormConfig)
	}
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error { return sqlDB.Close() }
	return db.WithContext(ctx), cleanup, nil
}

func resolveSQLitePath(dsn string) (string, error) {
	path := dsn
	if strings.HasPrefix(dsn, "sqlite://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("parse sqlite url: %w", err)
		}
		path = u.Path
		if path == "" {
			path = u.Host
		}
		if path == "" || path == "/" {
			path = "reservation.db"
		}
	}
	return normalizeSQLitePath(path)
}

func normalizeSQLitePath(path string) (string, error) {
	if path == ":memory:" {
		return path, nil
	}
	if strings.HasPrefix(path, "/") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", err
		}
		return path, nil
	}
	abs := filepath.Join(".", path)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}
	return abs, nil
}

// seedAdminAccount creates the configured admin sign-in if it does not exist.
func seedAdminAccount(ctx context.Context, store *gormstore.Store, cfg *runtimeConfig, logger *zap.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}
	email, err := hotel.NewEmailAddress(cfg.AdminEmail)
	if err != nil {
		return fmt.Errorf("admin email: %w", err)
	}
	if _, err := store.GetAccountByEmail(ctx, email); err == nil {
		return nil
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("admin password hash: %w", err)
	}
	accountID, err := hotel.NewAccountID(uuid.NewString())
	if err != nil {
		return err
	}
	passwordHash, err := hotel.NewPasswordHash(string(digest))
	if err != nil {
		return err
	}
	account, err := hotel.NewAccount(accountID, email, passwordHash, hotel.AccountRoleAdmin)
	if err != nil {
		return err
	}
	if err := store.InsertAccount(ctx, account); err != nil {
		return fmt.Errorf("seed admin account: %w", err)
	}
	logger.Info("admin account seeded", zap.String("email", email.String()))
	return nil
}

// seedDemoRooms fills an empty inventory with a small demo set.
func seedDemoRooms(ctx context.Context, service *hotel.Service, store *gormstore.Store, logger *zap.Logger) error {
	existing, err := store.CountRooms(ctx)
	if err != nil {
		return fmt.Errorf("seed demo rooms: %w", err)
	}
	if existing > 0 {
		return nil
	}
	demoRooms := []struct {
		number     string
		roomType   hotel.RoomType
		priceCents int64
		status     hotel.RoomStatus
	}{
		{number: "101", roomType: hotel.RoomTypeSingle, priceCents: 10000, status: hotel.RoomStatusAvailable},
		{number: "102", roomType: hotel.RoomTypeDouble, priceCents: 15000, status: hotel.RoomStatusAvailable},
		{number: "201", roomType: hotel.RoomTypeSuite, priceCents: 30000, status: hotel.RoomStatusAvailable},
		{number: "305", roomType: hotel.RoomTypeDeluxe, priceCents: 25000, status: hotel.RoomStatusMaintenance},
	}
	for _, demo := range demoRooms {
		number, err := hotel.NewRoomNumber(demo.number)
		if err != nil {
			return err
		}
		price, err := hotel.NewPriceCents(demo.priceCents)
		if err != nil {
			return err
		}
		if _, err := service.AddRoom(ctx, number, demo.roomType, price, demo.status); err != nil {
			return fmt.Errorf("seed room %s: %w", demo.number, err)
		}
	}
	logger.Info("demo rooms seeded", zap.Int("count", len(demoRooms)))
	return nil
}
