package gormstore

import (
	"context"
	"errors"
	"time"

	"github.com/MarkoPoloResearchLab/reservation/pkg/hotel"
	gosqlite "github.com/glebarez/go-sqlite"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	constraintAccountEmail  = "uniq_accounts_email"
	constraintCustomerEmail = "uniq_customers_email"
	constraintRoomNumber    = "uniq_rooms_number"
	defaultMetadataJSON     = "{}"
	pgUniqueViolationCode   = "23505"
	sqliteConstraintCode    = 19
	mysqlDuplicateEntryCode = 1062
	errorOperationStore     = "store"
	errorSubjectAccount     = "account"
	errorSubjectBooking     = "booking"
	errorSubjectCustomer    = "customer"
	errorSubjectPayment     = "payment"
	errorSubjectRoom        = "room"
	errorSubjectStats       = "stats"
	errorCodeCount          = "count"
	errorCodeDelete         = "delete"
	errorCodeDuplicate      = "duplicate"
	errorCodeGet            = "get"
	errorCodeInsert         = "insert"
	errorCodeInvalid        = "invalid"
	errorCodeList           = "list"
	errorCodeSumPayments    = "sum_payments"
	errorCodeUpdateStatus   = "update_status"
)

// Store implements hotel.Store using GORM.
type Store struct {
	db *gorm.DB
}

// New returns a Store backed by gorm.DB.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WithTx executes fn within a transaction.
func (store *Store) WithTx(ctx context.Context, fn func(ctx context.Context, txStore hotel.Store) error) error {
	return store.db.WithContext(ctx).Transaction(func(transaction *gorm.DB) error {
		return fn(ctx, &Store{db: transaction})
	})
}

func (store *Store) InsertAccount(ctx context.Context, account hotel.Account) error {
	model := Account{
		AccountID:    account.ID().String(),
		Email:        account.Email().String(),
		PasswordHash: account.PasswordHash().String(),
		Role:         account.Role().String(),
	}
	err := store.db.WithContext(ctx).Create(&model).Error
	if isUniqueViolation(err, constraintAccountEmail) {
		return wrapStoreError(errorSubjectAccount, errorCodeDuplicate, hotel.ErrEmailExists)
	}
	if err != nil {
		return wrapStoreError(errorSubjectAccount, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) GetAccountByEmail(ctx context.Context, email hotel.EmailAddress) (hotel.Account, error) {
	var model Account
	err := store.db.WithContext(ctx).Where("email = ?", email.String()).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hotel.Account{}, wrapStoreError(errorSubjectAccount, errorCodeGet, hotel.ErrUnknownAccount)
		}
		return hotel.Account{}, wrapStoreError(errorSubjectAccount, errorCodeGet, err)
	}
	account, err := mapAccount(model)
	if err != nil {
		return hotel.Account{}, wrapStoreError(errorSubjectAccount, errorCodeInvalid, err)
	}
	return account, nil
}

func (store *Store) InsertCustomer(ctx context.Context, customer hotel.Customer) error {
	model := Customer{
		CustomerID: customer.ID().String(),
		AccountID:  customer.AccountID().String(),
		FullName:   customer.FullName().String(),
		Email:      customer.Email().String(),
		Phone:      customer.Phone(),
	}
	err := store.db.WithContext(ctx).Create(&model).Error
	if isUniqueViolation(err, constraintCustomerEmail) {
		return wrapStoreError(errorSubjectCustomer, errorCodeDuplicate, hotel.ErrEmailExists)
	}
	if err != nil {
		return wrapStoreError(errorSubjectCustomer, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) GetCustomer(ctx context.Context, customerID hotel.CustomerID) (hotel.Customer, error) {
	var model Customer
	err := store.db.WithContext(ctx).Where("customer_id = ?", customerID.String()).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hotel.Customer{}, wrapStoreError(errorSubjectCustomer, errorCodeGet, hotel.ErrUnknownCustomer)
		}
		return hotel.Customer{}, wrapStoreError(errorSubjectCustomer, errorCodeGet, err)
	}
	customer, err := mapCustomer(model)
	if err != nil {
		return hotel.Customer{}, wrapStoreError(errorSubjectCustomer, errorCodeInvalid, err)
	}
	return customer, nil
}

func (store *Store) GetCustomerByAccount(ctx context.Context, accountID hotel.AccountID) (hotel.Customer, error) {
	var model Customer
	err := store.db.WithContext(ctx).Where("account_id = ?", accountID.String()).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hotel.Customer{}, wrapStoreError(errorSubjectCustomer, errorCodeGet, hotel.ErrUnknownCustomer)
		}
		return hotel.Customer{}, wrapStoreError(errorSubjectCustomer, errorCodeGet, err)
	}
	customer, err := mapCustomer(model)
	if err != nil {
		return hotel.Customer{}, wrapStoreError(errorSubjectCustomer, errorCodeInvalid, err)
	}
	return customer, nil
}

func (store *Store) ListCustomers(ctx context.Context) ([]hotel.Customer, error) {
	var rows []Customer
	err := store.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error
	if err != nil {
		return nil, wrapStoreError(errorSubjectCustomer, errorCodeList, err)
	}
	customers := make([]hotel.Customer, 0, len(rows))
	for _, row := range rows {
		customer, err := mapCustomer(row)
		if err != nil {
			return nil, wrapStoreError(errorSubjectCustomer, errorCodeInvalid, err)
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

func (store *Store) InsertRoom(ctx context.Context, room hotel.Room) error {
	model := Room{
		RoomID:     room.ID().String(),
		Number:     room.Number().String(),
		Type:       room.Type().String(),
		PriceCents: room.PricePerNight().Int64(),
		Status:     room.Status().String(),
	}
	err := store.db.WithContext(ctx).Create(&model).Error
	if isUniqueViolation(err, constraintRoomNumber) {
		return wrapStoreError(errorSubjectRoom, errorCodeDuplicate, hotel.ErrRoomNumberExists)
	}
	if err != nil {
		return wrapStoreError(errorSubjectRoom, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) GetRoom(ctx context.Context, roomID hotel.RoomID) (hotel.Room, error) {
	var model Room
	err := store.db.WithContext(ctx).Where("room_id = ?", roomID.String()).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hotel.Room{}, wrapStoreError(errorSubjectRoom, errorCodeGet, hotel.ErrUnknownRoom)
		}
		return hotel.Room{}, wrapStoreError(errorSubjectRoom, errorCodeGet, err)
	}
	room, err := mapRoom(model)
	if err != nil {
		return hotel.Room{}, wrapStoreError(errorSubjectRoom, errorCodeInvalid, err)
	}
	return room, nil
}

func (store *Store) ListRooms(ctx context.Context) ([]hotel.Room, error) {
	var rows []Room
	err := store.db.WithContext(ctx).Order("number ASC").Find(&rows).Error
	if err != nil {
		return nil, wrapStoreError(errorSubjectRoom, errorCodeList, err)
	}
	rooms := make([]hotel.Room, 0, len(rows))
	for _, row := range rows {
		room, err := mapRoom(row)
		if err != nil {
			return nil, wrapStoreError(errorSubjectRoom, errorCodeInvalid, err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (store *Store) UpdateRoomStatus(ctx context.Context, roomID hotel.RoomID, status hotel.RoomStatus) error {
	result := store.db.WithContext(ctx).
		Model(&Room{}).
		Where("room_id = ?", roomID.String()).
		Update("status", status.String())
	if result.Error != nil {
		return wrapStoreError(errorSubjectRoom, errorCodeUpdateStatus, result.Error)
	}
	if result.RowsAffected == 0 {
		return wrapStoreError(errorSubjectRoom, errorCodeUpdateStatus, hotel.ErrUnknownRoom)
	}
	return nil
}

func (store *Store) DeleteRoom(ctx context.Context, roomID hotel.RoomID) error {
	result := store.db.WithContext(ctx).Where("room_id = ?", roomID.String()).Delete(&Room{})
	if result.Error != nil {
		return wrapStoreError(errorSubjectRoom, errorCodeDelete, result.Error)
	}
	if result.RowsAffected == 0 {
		return wrapStoreError(errorSubjectRoom, errorCodeDelete, hotel.ErrUnknownRoom)
	}
	return nil
}

func (store *Store) InsertBooking(ctx context.Context, booking hotel.Booking) error {
	model := Booking{
		BookingID:  booking.ID().String(),
		CustomerID: booking.CustomerID().String(),
		RoomID:     booking.RoomID().String(),
		CheckIn:    booking.Stay().CheckIn(),
		CheckOut:   booking.Stay().CheckOut(),
		TotalCents: booking.TotalAmount().Int64(),
		Status:     booking.Status().String(),
		CreatedAt:  booking.CreatedAt(),
	}
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now().UTC()
	}
	if err := store.db.WithContext(ctx).Create(&model).Error; err != nil {
		return wrapStoreError(errorSubjectBooking, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) GetBooking(ctx context.Context, bookingID hotel.BookingID) (hotel.Booking, error) {
	var model Booking
	err := store.db.WithContext(ctx).Where("booking_id = ?", bookingID.String()).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hotel.Booking{}, wrapStoreError(errorSubjectBooking, errorCodeGet, hotel.ErrUnknownBooking)
		}
		return hotel.Booking{}, wrapStoreError(errorSubjectBooking, errorCodeGet, err)
	}
	booking, err := mapBooking(model)
	if err != nil {
		return hotel.Booking{}, wrapStoreError(errorSubjectBooking, errorCodeInvalid, err)
	}
	return booking, nil
}

func (store *Store) ListBookings(ctx context.Context) ([]hotel.Booking, error) {
	var rows []Booking
	err := store.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, wrapStoreError(errorSubjectBooking, errorCodeList, err)
	}
	return mapBookings(rows)
}

func (store *Store) ListBookingsByCustomer(ctx context.Context, customerID hotel.CustomerID) ([]hotel.Booking, error) {
	var rows []Booking
	err := store.db.WithContext(ctx).
		Where("customer_id = ?", customerID.String()).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, wrapStoreError(errorSubjectBooking, errorCodeList, err)
	}
	return mapBookings(rows)
}

func (store *Store) ListRoomBookings(ctx context.Context, roomID hotel.RoomID, statuses ...hotel.BookingStatus) ([]hotel.Booking, error) {
	query := store.db.WithContext(ctx).Where("room_id = ?", roomID.String())
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statusStrings(statuses))
	}
	var rows []Booking
	if err := query.Order("check_in ASC").Find(&rows).Error; err != nil {
		return nil, wrapStoreError(errorSubjectBooking, errorCodeList, err)
	}
	return mapBookings(rows)
}

func (store *Store) UpdateBookingStatus(ctx context.Context, bookingID hotel.BookingID, from, to hotel.BookingStatus) error {
	result := store.db.WithContext(ctx).
		Model(&Booking{}).
		Where("booking_id = ? AND status = ?", bookingID.String(), from.String()).
		Update("status", to.String())
	if result.Error != nil {
		return wrapStoreError(errorSubjectBooking, errorCodeUpdateStatus, result.Error)
	}
	if result.RowsAffected == 0 {
		return wrapStoreError(errorSubjectBooking, errorCodeUpdateStatus, hotel.ErrBookingClosed)
	}
	return nil
}

func (store *Store) InsertPayment(ctx context.Context, payment hotel.Payment) error {
	model := Payment{
		PaymentID:   payment.ID().String(),
		BookingID:   payment.BookingID().String(),
		AmountCents: payment.Amount().Int64(),
		PaidAt:      payment.PaidAt(),
		Method:      payment.Method().String(),
		Metadata:    datatypesJSON(payment.Metadata().String()),
	}
	if err := store.db.WithContext(ctx).Create(&model).Error; err != nil {
		return wrapStoreError(errorSubjectPayment, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) ListPayments(ctx context.Context) ([]hotel.Payment, error) {
	var rows []Payment
	err := store.db.WithContext(ctx).Order("paid_at DESC").Find(&rows).Error
	if err != nil {
		return nil, wrapStoreError(errorSubjectPayment, errorCodeList, err)
	}
	payments := make([]hotel.Payment, 0, len(rows))
	for _, row := range rows {
		payment, err := mapPayment(row)
		if err != nil {
			return nil, wrapStoreError(errorSubjectPayment, errorCodeInvalid, err)
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

func (store *Store) CountRooms(ctx context.Context) (int64, error) {
	var count int64
	if err := store.db.WithContext(ctx).Model(&Room{}).Count(&count).Error; err != nil {
		return 0, wrapStoreError(errorSubjectStats, errorCodeCount, err)
	}
	return count, nil
}

func (store *Store) CountRoomsByStatus(ctx context.Context, status hotel.RoomStatus) (int64, error) {
	var count int64
	err := store.db.WithContext(ctx).
		Model(&Room{}).
		Where("status = ?", status.String()).
		Count(&count).Error
	if err != nil {
		return 0, wrapStoreError(errorSubjectStats, errorCodeCount, err)
	}
	return count, nil
}

func (store *Store) CountBookingsByStatus(ctx context.Context, statuses ...hotel.BookingStatus) (int64, error) {
	query := store.db.WithContext(ctx).Model(&Booking{})
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statusStrings(statuses))
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, wrapStoreError(errorSubjectStats, errorCodeCount, err)
	}
	return count, nil
}

func (store *Store) SumPaymentAmounts(ctx context.Context) (hotel.AmountCents, error) {
	var sum sqlSum
	err := store.db.WithContext(ctx).
		Model(&Payment{}).
		Select("coalesce(sum(amount_cents),0) as total").
		Scan(&sum).Error
	if err != nil {
		return 0, wrapStoreError(errorSubjectStats, errorCodeSumPayments, err)
	}
	total, err := hotel.NewAmountCents(sum.Total)
	if err != nil {
		return 0, wrapStoreError(errorSubjectStats, errorCodeInvalid, err)
	}
	return total, nil
}

func wrapStoreError(subject string, code string, err error) error {
	return hotel.WrapError(errorOperationStore, subject, code, err)
}

type sqlSum struct {
	Total int64
}

func statusStrings(statuses []hotel.BookingStatus) []string {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, status.String())
	}
	return values
}

func mapAccount(row Account) (hotel.Account, error) {
	accountID, err := hotel.NewAccountID(row.AccountID)
	if err != nil {
		return hotel.Account{}, err
	}
	email, err := hotel.NewEmailAddress(row.Email)
	if err != nil {
		return hotel.Account{}, err
	}
	passwordHash, err := hotel.NewPasswordHash(row.PasswordHash)
	if err != nil {
		return hotel.Account{}, err
	}
	role, err := hotel.ParseAccountRole(row.Role)
	if err != nil {
		return hotel.Account{}, err
	}
	return hotel.NewAccount(accountID, email, passwordHash, role)
}

func mapCustomer(row Customer) (hotel.Customer, error) {
	customerID, err := hotel.NewCustomerID(row.CustomerID)
	if err != nil {
		return hotel.Customer{}, err
	}
	accountID, err := hotel.NewAccountID(row.AccountID)
	if err != nil {
		return hotel.Customer{}, err
	}
	fullName, err := hotel.NewFullName(row.FullName)
	if err != nil {
		return hotel.Customer{}, err
	}
	email, err := hotel.NewEmailAddress(row.Email)
	if err != nil {
		return hotel.Customer{}, err
	}
	return hotel.NewCustomer(customerID, accountID, fullName, email, row.Phone)
}

func mapRoom(row Room) (hotel.Room, error) {
	roomID, err := hotel.NewRoomID(row.RoomID)
	if err != nil {
		return hotel.Room{}, err
	}
	number, err := hotel.NewRoomNumber(row.Number)
	if err != nil {
		return hotel.Room{}, err
	}
	roomType, err := hotel.ParseRoomType(row.Type)
	if err != nil {
		return hotel.Room{}, err
	}
	price, err := hotel.NewPriceCents(row.PriceCents)
	if err != nil {
		return hotel.Room{}, err
	}
	status, err := hotel.ParseRoomStatus(row.Status)
	if err != nil {
		return hotel.Room{}, err
	}
	return hotel.NewRoom(roomID, number, roomType, price, status)
}

func mapBooking(row Booking) (hotel.Booking, error) {
	bookingID, err := hotel.NewBookingID(row.BookingID)
	if err != nil {
		return hotel.Booking{}, err
	}
	customerID, err := hotel.NewCustomerID(row.CustomerID)
	if err != nil {
		return hotel.Booking{}, err
	}
	roomID, err := hotel.NewRoomID(row.RoomID)
	if err != nil {
		return hotel.Booking{}, err
	}
	stay, err := hotel.NewStayRange(row.CheckIn, row.CheckOut)
	if err != nil {
		return hotel.Booking{}, err
	}
	totalAmount, err := hotel.NewPositiveAmountCents(row.TotalCents)
	if err != nil {
		return hotel.Booking{}, err
	}
	status, err := hotel.ParseBookingStatus(row.Status)
	if err != nil {
		return hotel.Booking{}, err
	}
	return hotel.NewBooking(bookingID, customerID, roomID, stay, totalAmount, status, row.CreatedAt)
}

func mapBookings(rows []Booking) ([]hotel.Booking, error) {
	bookings := make([]hotel.Booking, 0, len(rows))
	for _, row := range rows {
		booking, err := mapBooking(row)
		if err != nil {
			return nil, wrapStoreError(errorSubjectBooking, errorCodeInvalid, err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func mapPayment(row Payment) (hotel.Payment, error) {
	paymentID, err := hotel.NewPaymentID(row.PaymentID)
	if err != nil {
		return hotel.Payment{}, err
	}
	bookingID, err := hotel.NewBookingID(row.BookingID)
	if err != nil {
		return hotel.Payment{}, err
	}
	amount, err := hotel.NewPositiveAmountCents(row.AmountCents)
	if err != nil {
		return hotel.Payment{}, err
	}
	method, err := hotel.ParsePaymentMethod(row.Method)
	if err != nil {
		return hotel.Payment{}, err
	}
	metadata, err := hotel.NewMetadataJSON(string(row.Metadata))
	if err != nil {
		return hotel.Payment{}, err
	}
	return hotel.NewPayment(paymentID, bookingID, amount, row.PaidAt, method, metadata)
}

func datatypesJSON(raw string) datatypes.JSON {
	if raw == "" {
		return datatypes.JSON([]byte(defaultMetadataJSON))
	}
	return datatypes.JSON([]byte(raw))
}

func isUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode && pgErr.ConstraintName == constraintName
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntryCode
	}
	var sqliteErr *gosqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()&0xFF == sqliteConstraintCode
	}
	return false
}
