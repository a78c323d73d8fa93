package console

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/reservation/pkg/hotel"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
	claimsContextKey    = "auth_claims"
)

var errInvalidToken = errors.New("invalid session token")

// sessionClaims carries the signed-in identity through a request.
type sessionClaims struct {
	Role       string `json:"role"`
	CustomerID string `json:"customer_id,omitempty"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}

type tokenManager struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
	now        func() time.Time
}

func newTokenManager(cfg Config) *tokenManager {
	return &tokenManager{
		signingKey: []byte(cfg.TokenSigningKey),
		issuer:     cfg.TokenIssuer,
		ttl:        cfg.TokenTTL,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (manager *tokenManager) issue(account hotel.Account, customerID string) (string, error) {
	issuedAt := manager.now()
	claims := &sessionClaims{
		Role:       account.Role().String(),
		CustomerID: customerID,
		Email:      account.Email().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID().String(),
			Issuer:    manager.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(manager.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(manager.signingKey)
}

func (manager *tokenManager) parse(raw string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", errInvalidToken, token.Header["alg"])
		}
		return manager.signingKey, nil
	}, jwt.WithIssuer(manager.issuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidToken, err)
	}
	if !token.Valid {
		return nil, errInvalidToken
	}
	return claims, nil
}

func hashPassword(plain string) (hotel.PasswordHash, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return hotel.PasswordHash{}, err
	}
	return hotel.NewPasswordHash(string(digest))
}

func verifyPassword(hash hotel.PasswordHash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash.String()), []byte(plain)) == nil
}

// requireAuth validates the bearer token and stores the claims on the request.
func requireAuth(manager *tokenManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader(authorizationHeader)
		if !strings.HasPrefix(header, bearerPrefix) {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse("unauthorized", "missing bearer token"))
			return
		}
		claims, err := manager.parse(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse("unauthorized", "invalid session token"))
			return
		}
		ctx.Set(claimsContextKey, claims)
		ctx.Next()
	}
}

// requireRole rejects requests whose session lacks the given role.
func requireRole(role hotel.AccountRole) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims := getClaims(ctx)
		if claims == nil || claims.Role != role.String() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, errorResponse("forbidden", "insufficient role"))
			return
		}
		ctx.Next()
	}
}

func getClaims(ctx *gin.Context) *sessionClaims {
	claimsValue, ok := ctx.Get(claimsContextKey)
	if !ok {
		return nil
	}
	claims, _ := claimsValue.(*sessionClaims)
	return claims
}
