package pgstore

import (
	"context"
	"errors"
	"time"

	"github.com/MarkoPoloResearchLab/reservation/pkg/hotel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	constraintAccountEmail  = "uniq_accounts_email"
	constraintCustomerEmail = "uniq_customers_email"
	constraintRoomNumber    = "uniq_rooms_number"
	pgUniqueViolationCode   = "23505"
	errorOperationStore     = "store"
	errorSubjectAccount     = "account"
	errorSubjectBooking     = "booking"
	errorSubjectCustomer    = "customer"
	errorSubjectPayment     = "payment"
	errorSubjectRoom        = "room"
	errorSubjectStats       = "stats"
	errorSubjectTransaction = "transaction"
	errorCodeBegin          = "begin"
	errorCodeCommit         = "commit"
	errorCodeCount          = "count"
	errorCodeDelete         = "delete"
	errorCodeDuplicate      = "duplicate"
	errorCodeGet            = "get"
	errorCodeInsert         = "insert"
	errorCodeInvalid        = "invalid"
	errorCodeList           = "list"
	errorCodeSumPayments    = "sum_payments"
	errorCodeUpdateStatus   = "update_status"

	sqlInsertAccount = `
		insert into accounts(account_id, email, password_hash, role, created_at)
		values($1, $2, $3, $4, now())
	`

	sqlSelectAccountByEmail = `
		select account_id::text, email, password_hash, role
		from accounts
		where email = $1
	`

	sqlInsertCustomer = `
		insert into customers(customer_id, account_id, full_name, email, phone, created_at)
		values($1, $2, $3, $4, $5, now())
	`

	sqlSelectCustomer = `
		select customer_id::text, account_id::text, full_name, email, coalesce(phone,'')
		from customers
		where customer_id = $1
	`

	sqlSelectCustomerByAccount = `
		select customer_id::text, account_id::text, full_name, email, coalesce(phone,'')
		from customers
		where account_id = $1
	`

	sqlListCustomers = `
		select customer_id::text, account_id::text, full_name, email, coalesce(phone,'')
		from customers
		order by created_at asc
	`

	sqlInsertRoom = `
		insert into rooms(room_id, number, type, price_cents, status, created_at, updated_at)
		values($1, $2, $3, $4, $5, now(), now())
	`

	sqlSelectRoom = `
		select room_id::text, number, type, price_cents, status
		from rooms
		where room_id = $1
	`

	sqlListRooms = `
		select room_id::text, number, type, price_cents, status
		from rooms
		order by number asc
	`

	sqlUpdateRoomStatus = `
		update rooms
		set status = $2, updated_at = now()
		where room_id = $1
	`

	sqlDeleteRoom = `
		delete from rooms where room_id = $1
	`

	sqlInsertBooking = `
		insert into bookings(booking_id, customer_id, room_id, check_in, check_out, total_cents, status, created_at, updated_at)
		values($1, $2, $3, $4, $5, $6, $7, $8, now())
	`

	sqlSelectBooking = `
		select booking_id::text, customer_id::text, room_id::text, check_in, check_out, total_cents, status, created_at
		from bookings
		where booking_id = $1
	`

	sqlListBookings = `
		select booking_id::text, customer_id::text, room_id::text, check_in, check_out, total_cents, status, created_at
		from bookings
		order by created_at desc
	`

	sqlListBookingsByCustomer = `
		select booking_id::text, customer_id::text, room_id::text, check_in, check_out, total_cents, status, created_at
		from bookings
		where customer_id = $1
		order by created_at desc
	`

	sqlListRoomBookings = `
		select booking_id::text, customer_id::text, room_id::text, check_in, check_out, total_cents, status, created_at
		from bookings
		where room_id = $1
		order by check_in asc
	`

	sqlListRoomBookingsByStatus = `
		select booking_id::text, customer_id::text, room_id::text, check_in, check_out, total_cents, status, created_at
		from bookings
		where room_id = $1 and status = any($2)
		order by check_in asc
	`

	sqlUpdateBookingStatus = `
		update bookings
		set status = $3, updated_at = now()
		where booking_id = $1 and status = $2
	`

	sqlInsertPayment = `
		insert into payments(payment_id, booking_id, amount_cents, paid_at, method, metadata, created_at)
		values($1, $2, $3, $4, $5, coalesce(nullif($6,''),'{}')::jsonb, now())
	`

	sqlListPayments = `
		select payment_id::text, booking_id::text, amount_cents, paid_at, method, coalesce(metadata::text,'{}')
		from payments
		order by paid_at desc
	`

	sqlCountRooms = `
		select count(*) from rooms
	`

	sqlCountRoomsByStatus = `
		select count(*) from rooms where status = $1
	`

	sqlCountBookingsByStatus = `
		select count(*) from bookings where status = any($1)
	`

	sqlSumPayments = `
		select coalesce(sum(amount_cents),0) from payments
	`
)

// querier is the subset of pgx operations shared by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements hotel.Store using a pgx connection pool. A Store created
// inside WithTx runs on the open transaction instead of the pool.
type Store struct {
	pool *pgxpool.Pool
	db   querier
}

// New returns a Store backed by a pgx pool (autocommit).
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, db: pool}
}

func (store *Store) WithTx(ctx context.Context, fn func(ctx context.Context, txStore hotel.Store) error) error {
	if store.pool == nil {
		return fn(ctx, store)
	}
	tx, err := store.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return wrapStoreError(errorSubjectTransaction, errorCodeBegin, err)
	}
	if err := fn(ctx, &Store{db: tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return wrapStoreError(errorSubjectTransaction, errorCodeCommit, err)
	}
	return nil
}

func (store *Store) InsertAccount(ctx context.Context, account hotel.Account) error {
	_, err := store.db.Exec(ctx, sqlInsertAccount,
		account.ID().String(),
		account.Email().String(),
		account.PasswordHash().String(),
		account.Role().String(),
	)
	if isUniqueViolation(err, constraintAccountEmail) {
		return wrapStoreError(errorSubjectAccount, errorCodeDuplicate, hotel.ErrEmailExists)
	}
	if err != nil {
		return wrapStoreError(errorSubjectAccount, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) GetAccountByEmail(ctx context.Context, email hotel.EmailAddress) (hotel.Account, error) {
	var (
		accountIDValue string
		emailValue     string
		hashValue      string
		roleValue      string
	)
	err := store.db.QueryRow(ctx, sqlSelectAccountByEmail, email.String()).Scan(
		&accountIDValue,
		&emailValue,
		&hashValue,
		&roleValue,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return hotel.Account{}, wrapStoreError(errorSubjectAccount, errorCodeGet, hotel.ErrUnknownAccount)
		}
		return hotel.Account{}, wrapStoreError(errorSubjectAccount, errorCodeGet, err)
	}
	account, err := assembleAccount(accountIDValue, emailValue, hashValue, roleValue)
	if err != nil {
		return hotel.Account{}, wrapStoreError(errorSubjectAccount, errorCodeInvalid, err)
	}
	return account, nil
}

func (store *Store) InsertCustomer(ctx context.Context, customer hotel.Customer) error {
	_, err := store.db.Exec(ctx, sqlInsertCustomer,
		customer.ID().String(),
		customer.AccountID().String(),
		customer.FullName().String(),
		customer.Email().String(),
		customer.Phone(),
	)
	if isUniqueViolation(err, constraintCustomerEmail) {
		return wrapStoreError(errorSubjectCustomer, errorCodeDuplicate, hotel.ErrEmailExists)
	}
	if err != nil {
		return wrapStoreError(errorSubjectCustomer, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) GetCustomer(ctx context.Context, customerID hotel.CustomerID) (hotel.Customer, error) {
	return store.queryCustomer(ctx, sqlSelectCustomer, customerID.String())
}

func (store *Store) GetCustomerByAccount(ctx context.Context, accountID hotel.AccountID) (hotel.Customer, error) {
	return store.queryCustomer(ctx, sqlSelectCustomerByAccount, accountID.String())
}

func (store *Store) queryCustomer(ctx context.Context, query string, key string) (hotel.Customer, error) {
	var (
		customerIDValue string
		accountIDValue  string
		fullNameValue   string
		emailValue      string
		phoneValue      string
	)
	err := store.db.QueryRow(ctx, query, key).Scan(
		&customerIDValue,
		&accountIDValue,
		&fullNameValue,
		&emailValue,
		&phoneValue,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return hotel.Customer{}, wrapStoreError(errorSubjectCustomer, errorCodeGet, hotel.ErrUnknownCustomer)
		}
		return hotel.Customer{}, wrapStoreError(errorSubjectCustomer, errorCodeGet, err)
	}
	customer, err := assembleCustomer(customerIDValue, accountIDValue, fullNameValue, emailValue, phoneValue)
	if err != nil {
		return hotel.Customer{}, wrapStoreError(errorSubjectCustomer, errorCodeInvalid, err)
	}
	return customer, nil
}

func (store *Store) ListCustomers(ctx context.Context) ([]hotel.Customer, error) {
	rows, err := store.db.Query(ctx, sqlListCustomers)
	if err != nil {
		return nil, wrapStoreError(errorSubjectCustomer, errorCodeList, err)
	}
	defer rows.Close()
	customers := make([]hotel.Customer, 0, 16)
	for rows.Next() {
		var (
			customerIDValue string
			accountIDValue  string
			fullNameValue   string
			emailValue      string
			phoneValue      string
		)
		if err := rows.Scan(&customerIDValue, &accountIDValue, &fullNameValue, &emailValue, &phoneValue); err != nil {
			return nil, wrapStoreError(errorSubjectCustomer, errorCodeList, err)
		}
		customer, err := assembleCustomer(customerIDValue, accountIDValue, fullNameValue, emailValue, phoneValue)
		if err != nil {
			return nil, wrapStoreError(errorSubjectCustomer, errorCodeInvalid, err)
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError(errorSubjectCustomer, errorCodeList, err)
	}
	return customers, nil
}

func (store *Store) InsertRoom(ctx context.Context, room hotel.Room) error {
	_, err := store.db.Exec(ctx, sqlInsertRoom,
		room.ID().String(),
		room.Number().String(),
		room.Type().String(),
		room.PricePerNight().Int64(),
		room.Status().String(),
	)
	if isUniqueViolation(err, constraintRoomNumber) {
		return wrapStoreError(errorSubjectRoom, errorCodeDuplicate, hotel.ErrRoomNumberExists)
	}
	if err != nil {
		return wrapStoreError(errorSubjectRoom, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) GetRoom(ctx context.Context, roomID hotel.RoomID) (hotel.Room, error) {
	var (
		roomIDValue string
		numberValue string
		typeValue   string
		priceValue  int64
		statusValue string
	)
	err := store.db.QueryRow(ctx, sqlSelectRoom, roomID.String()).Scan(
		&roomIDValue,
		&numberValue,
		&typeValue,
		&priceValue,
		&statusValue,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return hotel.Room{}, wrapStoreError(errorSubjectRoom, errorCodeGet, hotel.ErrUnknownRoom)
		}
		return hotel.Room{}, wrapStoreError(errorSubjectRoom, errorCodeGet, err)
	}
	room, err := assembleRoom(roomIDValue, numberValue, typeValue, priceValue, statusValue)
	if err != nil {
		return hotel.Room{}, wrapStoreError(errorSubjectRoom, errorCodeInvalid, err)
	}
	return room, nil
}

func (store *Store) ListRooms(ctx context.Context) ([]hotel.Room, error) {
	rows, err := store.db.Query(ctx, sqlListRooms)
	if err != nil {
		return nil, wrapStoreError(errorSubjectRoom, errorCodeList, err)
	}
	defer rows.Close()
	rooms := make([]hotel.Room, 0, 32)
	for rows.Next() {
		var (
			roomIDValue string
			numberValue string
			typeValue   string
			priceValue  int64
			statusValue string
		)
		if err := rows.Scan(&roomIDValue, &numberValue, &typeValue, &priceValue, &statusValue); err != nil {
			return nil, wrapStoreError(errorSubjectRoom, errorCodeList, err)
		}
		room, err := assembleRoom(roomIDValue, numberValue, typeValue, priceValue, statusValue)
		if err != nil {
			return nil, wrapStoreError(errorSubjectRoom, errorCodeInvalid, err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError(errorSubjectRoom, errorCodeList, err)
	}
	return rooms, nil
}

func (store *Store) UpdateRoomStatus(ctx context.Context, roomID hotel.RoomID, status hotel.RoomStatus) error {
	tag, err := store.db.Exec(ctx, sqlUpdateRoomStatus, roomID.String(), status.String())
	if err != nil {
		return wrapStoreError(errorSubjectRoom, errorCodeUpdateStatus, err)
	}
	if tag.RowsAffected() == 0 {
		return wrapStoreError(errorSubjectRoom, errorCodeUpdateStatus, hotel.ErrUnknownRoom)
	}
	return nil
}

func (store *Store) DeleteRoom(ctx context.Context, roomID hotel.RoomID) error {
	tag, err := store.db.Exec(ctx, sqlDeleteRoom, roomID.String())
	if err != nil {
		return wrapStoreError(errorSubjectRoom, errorCodeDelete, err)
	}
	if tag.RowsAffected() == 0 {
		return wrapStoreError(errorSubjectRoom, errorCodeDelete, hotel.ErrUnknownRoom)
	}
	return nil
}

func (store *Store) InsertBooking(ctx context.Context, booking hotel.Booking) error {
	createdAt := booking.CreatedAt()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := store.db.Exec(ctx, sqlInsertBooking,
		booking.ID().String(),
		booking.CustomerID().String(),
		booking.RoomID().String(),
		booking.Stay().CheckIn(),
		booking.Stay().CheckOut(),
		booking.TotalAmount().Int64(),
		booking.Status().String(),
		createdAt,
	)
	if err != nil {
		return wrapStoreError(errorSubjectBooking, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) GetBooking(ctx context.Context, bookingID hotel.BookingID) (hotel.Booking, error) {
	rows, err := store.db.Query(ctx, sqlSelectBooking, bookingID.String())
	if err != nil {
		return hotel.Booking{}, wrapStoreError(errorSubjectBooking, errorCodeGet, err)
	}
	defer rows.Close()
	bookings, err := scanBookings(rows)
	if err != nil {
		return hotel.Booking{}, wrapStoreError(errorSubjectBooking, errorCodeInvalid, err)
	}
	if len(bookings) == 0 {
		return hotel.Booking{}, wrapStoreError(errorSubjectBooking, errorCodeGet, hotel.ErrUnknownBooking)
	}
	return bookings[0], nil
}

func (store *Store) ListBookings(ctx context.Context) ([]hotel.Booking, error) {
	return store.queryBookings(ctx, sqlListBookings)
}

func (store *Store) ListBookingsByCustomer(ctx context.Context, customerID hotel.CustomerID) ([]hotel.Booking, error) {
	return store.queryBookings(ctx, sqlListBookingsByCustomer, customerID.String())
}

func (store *Store) ListRoomBookings(ctx context.Context, roomID hotel.RoomID, statuses ...hotel.BookingStatus) ([]hotel.Booking, error) {
	if len(statuses) == 0 {
		return store.queryBookings(ctx, sqlListRoomBookings, roomID.String())
	}
	return store.queryBookings(ctx, sqlListRoomBookingsByStatus, roomID.String(), statusStrings(statuses))
}

func (store *Store) queryBookings(ctx context.Context, query string, args ...any) ([]hotel.Booking, error) {
	rows, err := store.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapStoreError(errorSubjectBooking, errorCodeList, err)
	}
	defer rows.Close()
	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, wrapStoreError(errorSubjectBooking, errorCodeInvalid, err)
	}
	return bookings, nil
}

func (store *Store) UpdateBookingStatus(ctx context.Context, bookingID hotel.BookingID, from, to hotel.BookingStatus) error {
	tag, err := store.db.Exec(ctx, sqlUpdateBookingStatus, bookingID.String(), from.String(), to.String())
	if err != nil {
		return wrapStoreError(errorSubjectBooking, errorCodeUpdateStatus, err)
	}
	if tag.RowsAffected() == 0 {
		return wrapStoreError(errorSubjectBooking, errorCodeUpdateStatus, hotel.ErrBookingClosed)
	}
	return nil
}

func (store *Store) InsertPayment(ctx context.Context, payment hotel.Payment) error {
	_, err := store.db.Exec(ctx, sqlInsertPayment,
		payment.ID().String(),
		payment.BookingID().String(),
		payment.Amount().Int64(),
		payment.PaidAt(),
		payment.Method().String(),
		payment.Metadata().String(),
	)
	if err != nil {
		return wrapStoreError(errorSubjectPayment, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) ListPayments(ctx context.Context) ([]hotel.Payment, error) {
	rows, err := store.db.Query(ctx, sqlListPayments)
	if err != nil {
		return nil, wrapStoreError(errorSubjectPayment, errorCodeList, err)
	}
	defer rows.Close()
	payments := make([]hotel.Payment, 0, 32)
	for rows.Next() {
		var (
			paymentIDValue string
			bookingIDValue string
			amountValue    int64
			paidAtValue    time.Time
			methodValue    string
			metadataValue  string
		)
		if err := rows.Scan(&paymentIDValue, &bookingIDValue, &amountValue, &paidAtValue, &methodValue, &metadataValue); err != nil {
			return nil, wrapStoreError(errorSubjectPayment, errorCodeList, err)
		}
		payment, err := assemblePayment(paymentIDValue, bookingIDValue, amountValue, paidAtValue, methodValue, metadataValue)
		if err != nil {
			return nil, wrapStoreError(errorSubjectPayment, errorCodeInvalid, err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError(errorSubjectPayment, errorCodeList, err)
	}
	return payments, nil
}

func (store *Store) CountRooms(ctx context.Context) (int64, error) {
	return store.queryCount(ctx, sqlCountRooms)
}

func (store *Store) CountRoomsByStatus(ctx context.Context, status hotel.RoomStatus) (int64, error) {
	return store.queryCount(ctx, sqlCountRoomsByStatus, status.String())
}

func (store *Store) CountBookingsByStatus(ctx context.Context, statuses ...hotel.BookingStatus) (int64, error) {
	return store.queryCount(ctx, sqlCountBookingsByStatus, statusStrings(statuses))
}

func (store *Store) queryCount(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64
	if err := store.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, wrapStoreError(errorSubjectStats, errorCodeCount, err)
	}
	return count, nil
}

func (store *Store) SumPaymentAmounts(ctx context.Context) (hotel.AmountCents, error) {
	var sum int64
	if err := store.db.QueryRow(ctx, sqlSumPayments).Scan(&sum); err != nil {
		return 0, wrapStoreError(errorSubjectStats, errorCodeSumPayments, err)
	}
	total, err := hotel.NewAmountCents(sum)
	if err != nil {
		return 0, wrapStoreError(errorSubjectStats, errorCodeInvalid, err)
	}
	return total, nil
}

func scanBookings(rows pgx.Rows) ([]hotel.Booking, error) {
	bookings := make([]hotel.Booking, 0, 32)
	for rows.Next() {
		var (
			bookingIDValue  string
			customerIDValue string
			roomIDValue     string
			checkInValue    time.Time
			checkOutValue   time.Time
			totalValue      int64
			statusValue     string
			createdAtValue  time.Time
		)
		if err := rows.Scan(
			&bookingIDValue,
			&customerIDValue,
			&roomIDValue,
			&checkInValue,
			&checkOutValue,
			&totalValue,
			&statusValue,
			&createdAtValue,
		); err != nil {
			return nil, err
		}
		bookingID, err := hotel.NewBookingID(bookingIDValue)
		if err != nil {
			return nil, err
		}
		customerID, err := hotel.NewCustomerID(customerIDValue)
		if err != nil {
			return nil, err
		}
		roomID, err := hotel.NewRoomID(roomIDValue)
		if err != nil {
			return nil, err
		}
		stay, err := hotel.NewStayRange(checkInValue, checkOutValue)
		if err != nil {
			return nil, err
		}
		totalAmount, err := hotel.NewPositiveAmountCents(totalValue)
		if err != nil {
			return nil, err
		}
		status, err := hotel.ParseBookingStatus(statusValue)
		if err != nil {
			return nil, err
		}
		booking, err := hotel.NewBooking(bookingID, customerID, roomID, stay, totalAmount, status, createdAtValue)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

func assembleAccount(accountIDValue, emailValue, hashValue, roleValue string) (hotel.Account, error) {
	accountID, err := hotel.NewAccountID(accountIDValue)
	if err != nil {
		return hotel.Account{}, err
	}
	email, err := hotel.NewEmailAddress(emailValue)
	if err != nil {
		return hotel.Account{}, err
	}
	passwordHash, err := hotel.NewPasswordHash(hashValue)
	if err != nil {
		return hotel.Account{}, err
	}
	role, err := hotel.ParseAccountRole(roleValue)
	if err != nil {
		return hotel.Account{}, err
	}
	return hotel.NewAccount(accountID, email, passwordHash, role)
}

func assembleCustomer(customerIDValue, accountIDValue, fullNameValue, emailValue, phoneValue string) (hotel.Customer, error) {
	customerID, err := hotel.NewCustomerID(customerIDValue)
	if err != nil {
		return hotel.Customer{}, err
	}
	accountID, err := hotel.NewAccountID(accountIDValue)
	if err != nil {
		return hotel.Customer{}, err
	}
	fullName, err := hotel.NewFullName(fullNameValue)
	if err != nil {
		return hotel.Customer{}, err
	}
	email, err := hotel.NewEmailAddress(emailValue)
	if err != nil {
		return hotel.Customer{}, err
	}
	return hotel.NewCustomer(customerID, accountID, fullName, email, phoneValue)
}

func assembleRoom(roomIDValue, numberValue, typeValue string, priceValue int64, statusValue string) (hotel.Room, error) {
	roomID, err := hotel.NewRoomID(roomIDValue)
	if err != nil {
		return hotel.Room{}, err
	}
	number, err := hotel.NewRoomNumber(numberValue)
	if err != nil {
		return hotel.Room{}, err
	}
	roomType, err := hotel.ParseRoomType(typeValue)
	if err != nil {
		return hotel.Room{}, err
	}
	price, err := hotel.NewPriceCents(priceValue)
	if err != nil {
		return hotel.Room{}, err
	}
	status, err := hotel.ParseRoomStatus(statusValue)
	if err != nil {
		return hotel.Room{}, err
	}
	return hotel.NewRoom(roomID, number, roomType, price, status)
}

func assemblePayment(paymentIDValue, bookingIDValue string, amountValue int64, paidAtValue time.Time, methodValue, metadataValue string) (hotel.Payment, error) {
	paymentID, err := hotel.NewPaymentID(paymentIDValue)
	if err != nil {
		return hotel.Payment{}, err
	}
	bookingID, err := hotel.NewBookingID(bookingIDValue)
	if err != nil {
		return hotel.Payment{}, err
	}
	amount, err := hotel.NewPositiveAmountCents(amountValue)
	if err != nil {
		return hotel.Payment{}, err
	}
	method, err := hotel.ParsePaymentMethod(methodValue)
	if err != nil {
		return hotel.Payment{}, err
	}
	metadata, err := hotel.NewMetadataJSON(metadataValue)
	if err != nil {
		return hotel.Payment{}, err
	}
	return hotel.NewPayment(paymentID, bookingID, amount, paidAtValue, method, metadata)
}

func statusStrings(statuses []hotel.BookingStatus) []string {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, status.String())
	}
	return values
}

func wrapStoreError(subject string, code string, err error) error {
	return hotel.WrapError(errorOperationStore, subject, code, err)
}

func isUniqueViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode && pgErr.ConstraintName == constraintName
	}
	return false
}
