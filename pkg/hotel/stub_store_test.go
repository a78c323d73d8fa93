package hotel

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// stubStore is an in-memory Store used across the service tests. WithTx
// snapshots the whole state and restores it when the closure fails, so
// all-or-nothing assertions exercise real rollback behavior.
type stubStore struct {
	accounts  []Account
	customers []Customer
	rooms     []Room
	bookings  []Booking
	payments  []Payment
}

func newStubStore() *stubStore {
	return &stubStore{}
}

func (store *stubStore) clone() stubStore {
	return stubStore{
		accounts:  append([]Account(nil), store.accounts...),
		customers: append([]Customer(nil), store.customers...),
		rooms:     append([]Room(nil), store.rooms...),
		bookings:  append([]Booking(nil), store.bookings...),
		payments:  append([]Payment(nil), store.payments...),
	}
}

func (store *stubStore) WithTx(ctx context.Context, fn func(ctx context.Context, txStore Store) error) error {
	snapshot := store.clone()
	if err := fn(ctx, store); err != nil {
		*store = snapshot
		return err
	}
	return nil
}

func (store *stubStore) InsertAccount(_ context.Context, account Account) error {
	for _, existing := range store.accounts {
		if existing.Email() == account.Email() {
			return ErrEmailExists
		}
	}
	store.accounts = append(store.accounts, account)
	return nil
}

func (store *stubStore) GetAccountByEmail(_ context.Context, email EmailAddress) (Account, error) {
	for _, account := range store.accounts {
		if account.Email() == email {
			return account, nil
		}
	}
	return Account{}, ErrUnknownAccount
}

func (store *stubStore) InsertCustomer(_ context.Context, customer Customer) error {
	store.customers = append(store.customers, customer)
	return nil
}

func (store *stubStore) GetCustomer(_ context.Context, customerID CustomerID) (Customer, error) {
	for _, customer := range store.customers {
		if customer.ID() == customerID {
			return customer, nil
		}
	}
	return Customer{}, ErrUnknownCustomer
}

func (store *stubStore) GetCustomerByAccount(_ context.Context, accountID AccountID) (Customer, error) {
	for _, customer := range store.customers {
		if customer.AccountID() == accountID {
			return customer, nil
		}
	}
	return Customer{}, ErrUnknownCustomer
}

func (store *stubStore) ListCustomers(_ context.Context) ([]Customer, error) {
	return append([]Customer(nil), store.customers...), nil
}

func (store *stubStore) InsertRoom(_ context.Context, room Room) error {
	for _, existing := range store.rooms {
		if existing.Number() == room.Number() {
			return ErrRoomNumberExists
		}
	}
	store.rooms = append(store.rooms, room)
	return nil
}

func (store *stubStore) GetRoom(_ context.Context, roomID RoomID) (Room, error) {
	for _, room := range store.rooms {
		if room.ID() == roomID {
			return room, nil
		}
	}
	return Room{}, ErrUnknownRoom
}

func (store *stubStore) ListRooms(_ context.Context) ([]Room, error) {
	return append([]Room(nil), store.rooms...), nil
}

func (store *stubStore) UpdateRoomStatus(_ context.Context, roomID RoomID, status RoomStatus) error {
	for index, room := range store.rooms {
		if room.ID() == roomID {
			store.rooms[index] = room.WithStatus(status)
			return nil
		}
	}
	return ErrUnknownRoom
}

func (store *stubStore) DeleteRoom(_ context.Context, roomID RoomID) error {
	for index, room := range store.rooms {
		if room.ID() == roomID {
			store.rooms = append(store.rooms[:index], store.rooms[index+1:]...)
			return nil
		}
	}
	return ErrUnknownRoom
}

func (store *stubStore) InsertBooking(_ context.Context, booking Booking) error {
	store.bookings = append(store.bookings, booking)
	return nil
}

func (store *stubStore) GetBooking(_ context.Context, bookingID BookingID) (Booking, error) {
	for _, booking := range store.bookings {
		if booking.ID() == bookingID {
			return booking, nil
		}
	}
	return Booking{}, ErrUnknownBooking
}

func (store *stubStore) ListBookings(_ context.Context) ([]Booking, error) {
	return append([]Booking(nil), store.bookings...), nil
}

func (store *stubStore) ListBookingsByCustomer(_ context.Context, customerID CustomerID) ([]Booking, error) {
	filtered := make([]Booking, 0, len(store.bookings))
	for _, booking := range store.bookings {
		if booking.CustomerID() == customerID {
			filtered = append(filtered, booking)
		}
	}
	return filtered, nil
}

func (store *stubStore) ListRoomBookings(_ context.Context, roomID RoomID, statuses ...BookingStatus) ([]Booking, error) {
	allowed := make(map[BookingStatus]struct{}, len(statuses))
	for _, status := range statuses {
		allowed[status] = struct{}{}
	}
	filtered := make([]Booking, 0, len(store.bookings))
	for _, booking := range store.bookings {
		if booking.RoomID() != roomID {
			continue
		}
		if len(allowed) > 0 {
			if _, ok := allowed[booking.Status()]; !ok {
				continue
			}
		}
		filtered = append(filtered, booking)
	}
	return filtered, nil
}

func (store *stubStore) UpdateBookingStatus(_ context.Context, bookingID BookingID, from, to BookingStatus) error {
	for index, booking := range store.bookings {
		if booking.ID() == bookingID && booking.Status() == from {
			store.bookings[index] = booking.WithStatus(to)
			return nil
		}
	}
	return ErrBookingClosed
}

func (store *stubStore) InsertPayment(_ context.Context, payment Payment) error {
	store.payments = append(store.payments, payment)
	return nil
}

func (store *stubStore) ListPayments(_ context.Context) ([]Payment, error) {
	return append([]Payment(nil), store.payments...), nil
}

func (store *stubStore) CountRooms(_ context.Context) (int64, error) {
	return int64(len(store.rooms)), nil
}

func (store *stubStore) CountRoomsByStatus(_ context.Context, status RoomStatus) (int64, error) {
	var count int64
	for _, room := range store.rooms {
		if room.Status() == status {
			count++
		}
	}
	return count, nil
}

func (store *stubStore) CountBookingsByStatus(_ context.Context, statuses ...BookingStatus) (int64, error) {
	allowed := make(map[BookingStatus]struct{}, len(statuses))
	for _, status := range statuses {
		allowed[status] = struct{}{}
	}
	var count int64
	for _, booking := range store.bookings {
		if _, ok := allowed[booking.Status()]; ok {
			count++
		}
	}
	return count, nil
}

func (store *stubStore) SumPaymentAmounts(_ context.Context) (AmountCents, error) {
	var sum int64
	for _, payment := range store.payments {
		sum += payment.Amount().Int64()
	}
	return AmountCents(sum), nil
}

func (store *stubStore) mustRoom(test *testing.T, roomID RoomID) Room {
	test.Helper()
	room, err := store.GetRoom(context.Background(), roomID)
	if err != nil {
		test.Fatalf("room %s: %v", roomID, err)
	}
	return room
}

func (store *stubStore) mustBooking(test *testing.T, bookingID BookingID) Booking {
	test.Helper()
	booking, err := store.GetBooking(context.Background(), bookingID)
	if err != nil {
		test.Fatalf("booking %s: %v", bookingID, err)
	}
	return booking
}

// failingStore returns the configured error from every operation.
type failingStore struct {
	err error
}

func newFailingStore(err error) *failingStore {
	return &failingStore{err: err}
}

func (store *failingStore) WithTx(ctx context.Context, fn func(ctx context.Context, txStore Store) error) error {
	return store.err
}

func (store *failingStore) InsertAccount(context.Context, Account) error { return store.err }
func (store *failingStore) GetAccountByEmail(context.Context, EmailAddress) (Account, error) {
	return Account{}, store.err
}
func (store *failingStore) InsertCustomer(context.Context, Customer) error { return store.err }
func (store *failingStore) GetCustomer(context.Context, CustomerID) (Customer, error) {
	return Customer{}, store.err
}
func (store *failingStore) GetCustomerByAccount(context.Context, AccountID) (Customer, error) {
	return Customer{}, store.err
}
func (store *failingStore) ListCustomers(context.Context) ([]Customer, error) {
	return nil, store.err
}
func (store *failingStore) InsertRoom(context.Context, Room) error { return store.err }
func (store *failingStore) GetRoom(context.Context, RoomID) (Room, error) {
	return Room{}, store.err
}
func (store *failingStore) ListRooms(context.Context) ([]Room, error) { return nil, store.err }
func (store *failingStore) UpdateRoomStatus(context.Context, RoomID, RoomStatus) error {
	return store.err
}
func (store *failingStore) DeleteRoom(context.Context, RoomID) error { return store.err }
func (store *failingStore) InsertBooking(context.Context, Booking) error {
	return store.err
}
func (store *failingStore) GetBooking(context.Context, BookingID) (Booking, error) {
	return Booking{}, store.err
}
func (store *failingStore) ListBookings(context.Context) ([]Booking, error) {
	return nil, store.err
}
func (store *failingStore) ListBookingsByCustomer(context.Context, CustomerID) ([]Booking, error) {
	return nil, store.err
}
func (store *failingStore) ListRoomBookings(context.Context, RoomID, ...BookingStatus) ([]Booking, error) {
	return nil, store.err
}
func (store *failingStore) UpdateBookingStatus(context.Context, BookingID, BookingStatus, BookingStatus) error {
	return store.err
}
func (store *failingStore) InsertPayment(context.Context, Payment) error { return store.err }
func (store *failingStore) ListPayments(context.Context) ([]Payment, error) {
	return nil, store.err
}
func (store *failingStore) CountRooms(context.Context) (int64, error) { return 0, store.err }
func (store *failingStore) CountRoomsByStatus(context.Context, RoomStatus) (int64, error) {
	return 0, store.err
}
func (store *failingStore) CountBookingsByStatus(context.Context, ...BookingStatus) (int64, error) {
	return 0, store.err
}
func (store *failingStore) SumPaymentAmounts(context.Context) (AmountCents, error) {
	return 0, store.err
}

// sequentialIDs returns a deterministic id generator for assertions.
func sequentialIDs(prefix string) func() string {
	var counter int
	return func() string {
		counter++
		return fmt.Sprintf("%s-%d", prefix, counter)
	}
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func mustNewService(test *testing.T, store Store, now func() time.Time, options ...ServiceOption) *Service {
	test.Helper()
	service, err := NewService(store, now, sequentialIDs("id"), options...)
	if err != nil {
		test.Fatalf("service init failed: %v", err)
	}
	return service
}

func mustRoomNumber(test *testing.T, raw string) RoomNumber {
	test.Helper()
	number, err := NewRoomNumber(raw)
	if err != nil {
		test.Fatalf("room number %q: %v", raw, err)
	}
	return number
}

func mustRoomID(test *testing.T, raw string) RoomID {
	test.Helper()
	roomID, err := NewRoomID(raw)
	if err != nil {
		test.Fatalf("room id %q: %v", raw, err)
	}
	return roomID
}

func mustCustomerID(test *testing.T, raw string) CustomerID {
	test.Helper()
	customerID, err := NewCustomerID(raw)
	if err != nil {
		test.Fatalf("customer id %q: %v", raw, err)
	}
	return customerID
}

func mustBookingID(test *testing.T, raw string) BookingID {
	test.Helper()
	bookingID, err := NewBookingID(raw)
	if err != nil {
		test.Fatalf("booking id %q: %v", raw, err)
	}
	return bookingID
}

func mustPrice(test *testing.T, raw int64) PriceCents {
	test.Helper()
	price, err := NewPriceCents(raw)
	if err != nil {
		test.Fatalf("price %d: %v", raw, err)
	}
	return price
}

func mustPositiveAmount(test *testing.T, raw int64) PositiveAmountCents {
	test.Helper()
	amount, err := NewPositiveAmountCents(raw)
	if err != nil {
		test.Fatalf("amount %d: %v", raw, err)
	}
	return amount
}

func mustStay(test *testing.T, checkIn time.Time, checkOut time.Time) StayRange {
	test.Helper()
	stay, err := NewStayRange(checkIn, checkOut)
	if err != nil {
		test.Fatalf("stay %s..%s: %v", checkIn, checkOut, err)
	}
	return stay
}

func mustEmail(test *testing.T, raw string) EmailAddress {
	test.Helper()
	email, err := NewEmailAddress(raw)
	if err != nil {
		test.Fatalf("email %q: %v", raw, err)
	}
	return email
}

func mustFullName(test *testing.T, raw string) FullName {
	test.Helper()
	name, err := NewFullName(raw)
	if err != nil {
		test.Fatalf("full name %q: %v", raw, err)
	}
	return name
}

func mustPasswordHash(test *testing.T, raw string) PasswordHash {
	test.Helper()
	hash, err := NewPasswordHash(raw)
	if err != nil {
		test.Fatalf("password hash: %v", err)
	}
	return hash
}

func mustMetadata(test *testing.T, raw string) MetadataJSON {
	test.Helper()
	metadata, err := NewMetadataJSON(raw)
	if err != nil {
		test.Fatalf("metadata %q: %v", raw, err)
	}
	return metadata
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedRoom(test *testing.T, store *stubStore, rawID string, rawNumber string, status RoomStatus) Room {
	test.Helper()
	room, err := NewRoom(mustRoomID(test, rawID), mustRoomNumber(test, rawNumber), RoomTypeSingle, mustPrice(test, 10000), status)
	if err != nil {
		test.Fatalf("room %s: %v", rawID, err)
	}
	if err := store.InsertRoom(context.Background(), room); err != nil {
		test.Fatalf("insert room %s: %v", rawID, err)
	}
	return room
}

func seedCustomer(test *testing.T, store *stubStore, rawID string, rawEmail string) Customer {
	test.Helper()
	accountID, err := NewAccountID("acct-" + rawID)
	if err != nil {
		test.Fatalf("account id: %v", err)
	}
	customer, err := NewCustomer(mustCustomerID(test, rawID), accountID, mustFullName(test, "Guest "+rawID), mustEmail(test, rawEmail), "555-0100")
	if err != nil {
		test.Fatalf("customer %s: %v", rawID, err)
	}
	if err := store.InsertCustomer(context.Background(), customer); err != nil {
		test.Fatalf("insert customer %s: %v", rawID, err)
	}
	return customer
}

func seedBooking(test *testing.T, store *stubStore, rawID string, customer Customer, room Room, stay StayRange, status BookingStatus) Booking {
	test.Helper()
	booking, err := NewBooking(mustBookingID(test, rawID), customer.ID(), room.ID(), stay, mustPositiveAmount(test, 30000), status, stay.CheckIn())
	if err != nil {
		test.Fatalf("booking %s: %v", rawID, err)
	}
	if err := store.InsertBooking(context.Background(), booking); err != nil {
		test.Fatalf("insert booking %s: %v", rawID, err)
	}
	return booking
}
