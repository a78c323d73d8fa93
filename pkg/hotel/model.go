package hotel

import (
	"context"
	"fmt"
	"time"
)

// Room is a stored inventory record.
type Room struct {
	id            RoomID
	number        RoomNumber
	roomType      RoomType
	pricePerNight PriceCents
	status        RoomStatus
}

// NewRoom validates and assembles a room record.
func NewRoom(id RoomID, number RoomNumber, roomType RoomType, pricePerNight PriceCents, status RoomStatus) (Room, error) {
	if id == (RoomID{}) {
		return Room{}, fmt.Errorf("%w: empty value", ErrInvalidRoomID)
	}
	if number == (RoomNumber{}) {
		return Room{}, fmt.Errorf("%w: empty value", ErrInvalidRoomNumber)
	}
	if _, err := ParseRoomType(roomType.String()); err != nil {
		return Room{}, err
	}
	if pricePerNight <= 0 {
		return Room{}, fmt.Errorf("%w: must be greater than zero", ErrInvalidPriceCents)
	}
	if _, err := ParseRoomStatus(status.String()); err != nil {
		return Room{}, err
	}
	return Room{id: id, number: number, roomType: roomType, pricePerNight: pricePerNight, status: status}, nil
}

// ID returns the room identifier.
func (room Room) ID() RoomID {
	return room.id
}

// Number returns the displayed room number.
func (room Room) Number() RoomNumber {
	return room.number
}

// Type returns the room category.
func (room Room) Type() RoomType {
	return room.roomType
}

// PricePerNight returns the nightly rate.
func (room Room) PricePerNight() PriceCents {
	return room.pricePerNight
}

// Status returns the availability status.
func (room Room) Status() RoomStatus {
	return room.status
}

// WithStatus returns a copy of the room carrying the given status.
func (room Room) WithStatus(status RoomStatus) Room {
	room.status = status
	return room
}

// Customer is a stored guest profile linked to a sign-in account.
type Customer struct {
	id        CustomerID
	accountID AccountID
	fullName  FullName
	email     EmailAddress
	phone     string
}

// NewCustomer validates and assembles a customer profile.
func NewCustomer(id CustomerID, accountID AccountID, fullName FullName, email EmailAddress, phone string) (Customer, error) {
	if id == (CustomerID{}) {
		return Customer{}, fmt.Errorf("%w: empty value", ErrInvalidCustomerID)
	}
	if accountID == (AccountID{}) {
		return Customer{}, fmt.Errorf("%w: empty value", ErrInvalidAccountID)
	}
	if fullName == (FullName{}) {
		return Customer{}, fmt.Errorf("%w: empty value", ErrInvalidFullName)
	}
	if email == (EmailAddress{}) {
		return Customer{}, fmt.Errorf("%w: empty value", ErrInvalidEmailAddress)
	}
	return Customer{id: id, accountID: accountID, fullName: fullName, email: email, phone: phone}, nil
}

// ID returns the customer identifier.
func (customer Customer) ID() CustomerID {
	return customer.id
}

// AccountID returns the linked sign-in account.
func (customer Customer) AccountID() AccountID {
	return customer.accountID
}

// FullName returns the display name.
func (customer Customer) FullName() FullName {
	return customer.fullName
}

// Email returns the contact address.
func (customer Customer) Email() EmailAddress {
	return customer.email
}

// Phone returns the contact phone, possibly empty.
func (customer Customer) Phone() string {
	return customer.phone
}

// Booking is a stored reservation of one room for one stay.
type Booking struct {
	id          BookingID
	customerID  CustomerID
	roomID      RoomID
	stay        StayRange
	totalAmount PositiveAmountCents
	status      BookingStatus
	createdAt   time.Time
}

// NewBooking validates and assembles a booking record.
func NewBooking(id BookingID, customerID CustomerID, roomID RoomID, stay StayRange, totalAmount PositiveAmountCents, status BookingStatus, createdAt time.Time) (Booking, error) {
	if id == (BookingID{}) {
		return Booking{}, fmt.Errorf("%w: empty value", ErrInvalidBookingID)
	}
	if customerID == (CustomerID{}) {
		return Booking{}, fmt.Errorf("%w: empty value", ErrInvalidCustomerID)
	}
	if roomID == (RoomID{}) {
		return Booking{}, fmt.Errorf("%w: empty value", ErrInvalidRoomID)
	}
	if stay == (StayRange{}) {
		return Booking{}, fmt.Errorf("%w: missing stay", ErrInvalidStayRange)
	}
	if totalAmount <= 0 {
		return Booking{}, fmt.Errorf("%w: must be greater than zero", ErrInvalidAmountCents)
	}
	if _, err := ParseBookingStatus(status.String()); err != nil {
		return Booking{}, err
	}
	return Booking{
		id:          id,
		customerID:  customerID,
		roomID:      roomID,
		stay:        stay,
		totalAmount: totalAmount,
		status:      status,
		createdAt:   createdAt.UTC(),
	}, nil
}

// ID returns the booking identifier.
func (booking Booking) ID() BookingID {
	return booking.id
}

// CustomerID returns the booked customer.
func (booking Booking) CustomerID() CustomerID {
	return booking.customerID
}

// RoomID returns the booked room.
func (booking Booking) RoomID() RoomID {
	return booking.roomID
}

// Stay returns the half-open stay interval.
func (booking Booking) Stay() StayRange {
	return booking.stay
}

// TotalAmount returns the total charge in cents.
func (booking Booking) TotalAmount() PositiveAmountCents {
	return booking.totalAmount
}

// Status returns the lifecycle status.
func (booking Booking) Status() BookingStatus {
	return booking.status
}

// CreatedAt returns the creation instant in UTC.
func (booking Booking) CreatedAt() time.Time {
	return booking.createdAt
}

// WithStatus returns a copy of the booking carrying the given status.
func (booking Booking) WithStatus(status BookingStatus) Booking {
	booking.status = status
	return booking
}

// Payment is an append-only payment record against a booking.
type Payment struct {
	id        PaymentID
	bookingID BookingID
	amount    PositiveAmountCents
	paidAt    time.Time
	method    PaymentMethod
	metadata  MetadataJSON
}

// NewPayment validates and assembles a payment record.
func NewPayment(id PaymentID, bookingID BookingID, amount PositiveAmountCents, paidAt time.Time, method PaymentMethod, metadata MetadataJSON) (Payment, error) {
	if id == (PaymentID{}) {
		return Payment{}, fmt.Errorf("%w: empty value", ErrInvalidPaymentID)
	}
	if bookingID == (BookingID{}) {
		return Payment{}, fmt.Errorf("%w: empty value", ErrInvalidBookingID)
	}
	if amount <= 0 {
		return Payment{}, fmt.Errorf("%w: must be greater than zero", ErrInvalidAmountCents)
	}
	if paidAt.IsZero() {
		return Payment{}, fmt.Errorf("%w: missing payment date", ErrInvalidPaymentDate)
	}
	if _, err := ParsePaymentMethod(method.String()); err != nil {
		return Payment{}, err
	}
	if metadata == (MetadataJSON{}) {
		normalized, err := NewMetadataJSON("")
		if err != nil {
			return Payment{}, err
		}
		metadata = normalized
	}
	return Payment{id: id, bookingID: bookingID, amount: amount, paidAt: paidAt.UTC(), method: method, metadata: metadata}, nil
}

// ID returns the payment identifier.
func (payment Payment) ID() PaymentID {
	return payment.id
}

// BookingID returns the paid booking.
func (payment Payment) BookingID() BookingID {
	return payment.bookingID
}

// Amount returns the paid amount in cents.
func (payment Payment) Amount() PositiveAmountCents {
	return payment.amount
}

// PaidAt returns the payment instant in UTC.
func (payment Payment) PaidAt() time.Time {
	return payment.paidAt
}

// Method returns the payment instrument.
func (payment Payment) Method() PaymentMethod {
	return payment.method
}

// Metadata returns the attached metadata JSON.
func (payment Payment) Metadata() MetadataJSON {
	return payment.metadata
}

// Account is a stored sign-in identity.
type Account struct {
	id           AccountID
	email        EmailAddress
	passwordHash PasswordHash
	role         AccountRole
}

// NewAccount validates and assembles an account record.
func NewAccount(id AccountID, email EmailAddress, passwordHash PasswordHash, role AccountRole) (Account, error) {
	if id == (AccountID{}) {
		return Account{}, fmt.Errorf("%w: empty value", ErrInvalidAccountID)
	}
	if email == (EmailAddress{}) {
		return Account{}, fmt.Errorf("%w: empty value", ErrInvalidEmailAddress)
	}
	if passwordHash == (PasswordHash{}) {
		return Account{}, fmt.Errorf("%w: empty value", ErrInvalidPasswordHash)
	}
	if _, err := ParseAccountRole(role.String()); err != nil {
		return Account{}, err
	}
	return Account{id: id, email: email, passwordHash: passwordHash, role: role}, nil
}

// ID returns the account identifier.
func (account Account) ID() AccountID {
	return account.id
}

// Email returns the sign-in address.
func (account Account) Email() EmailAddress {
	return account.email
}

// PasswordHash returns the stored digest.
func (account Account) PasswordHash() PasswordHash {
	return account.passwordHash
}

// Role returns the account role.
func (account Account) Role() AccountRole {
	return account.role
}

// BookingView is a booking enriched with read-time snapshots of its
// referenced room and customer. Either snapshot is nil when the referenced
// record no longer exists; referential integrity is not revalidated after
// booking creation.
type BookingView struct {
	Booking  Booking
	Room     *Room
	Customer *Customer
}

// DashboardStats is the aggregate view recomputed from store state per call.
type DashboardStats struct {
	TotalRooms        int64
	AvailableRooms    int64
	ActiveBookings    int64
	TotalRevenueCents AmountCents
}

// Store is the persistence contract used by Service.
type Store interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, txStore Store) error) error

	InsertAccount(ctx context.Context, account Account) error
	GetAccountByEmail(ctx context.Context, email EmailAddress) (Account, error)

	InsertCustomer(ctx context.Context, customer Customer) error
	GetCustomer(ctx context.Context, customerID CustomerID) (Customer, error)
	GetCustomerByAccount(ctx context.Context, accountID AccountID) (Customer, error)
	ListCustomers(ctx context.Context) ([]Customer, error)

	InsertRoom(ctx context.Context, room Room) error
	GetRoom(ctx context.Context, roomID RoomID) (Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
	UpdateRoomStatus(ctx context.Context, roomID RoomID, status RoomStatus) error
	DeleteRoom(ctx context.Context, roomID RoomID) error

	InsertBooking(ctx context.Context, booking Booking) error
	GetBooking(ctx context.Context, bookingID BookingID) (Booking, error)
	ListBookings(ctx context.Context) ([]Booking, error)
	ListBookingsByCustomer(ctx context.Context, customerID CustomerID) ([]Booking, error)
	ListRoomBookings(ctx context.Context, roomID RoomID, statuses ...BookingStatus) ([]Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID BookingID, from, to BookingStatus) error

	InsertPayment(ctx context.Context, payment Payment) error
	ListPayments(ctx context.Context) ([]Payment, error)

	CountRooms(ctx context.Context) (int64, error)
	CountRoomsByStatus(ctx context.Context, status RoomStatus) (int64, error)
	CountBookingsByStatus(ctx context.Context, statuses ...BookingStatus) (int64, error)
	SumPaymentAmounts(ctx context.Context) (AmountCents, error)
}
