package hotel

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// RoomID identifies a room.
type RoomID struct {
	value string
}

// CustomerID identifies a customer profile.
type CustomerID struct {
	value string
}

// BookingID identifies a booking.
type BookingID struct {
	value string
}

// PaymentID identifies a payment record.
type PaymentID struct {
	value string
}

// AccountID identifies a sign-in account.
type AccountID struct {
	value string
}

// RoomNumber is the displayed room number, unique across the inventory.
type RoomNumber struct {
	value string
}

// EmailAddress is a normalized (lowercased) account email.
type EmailAddress struct {
	value string
}

// FullName is a customer's display name.
type FullName struct {
	value string
}

// PasswordHash holds a bcrypt digest, never a plaintext password.
type PasswordHash struct {
	value string
}

// MetadataJSON stores arbitrary request metadata.
type MetadataJSON struct {
	value string
}

// NewRoomID validates and normalizes a room id.
func NewRoomID(raw string) (RoomID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return RoomID{}, fmt.Errorf("%w: empty value", ErrInvalidRoomID)
	}
	return RoomID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id RoomID) String() string {
	return id.value
}

// NewCustomerID validates and normalizes a customer id.
func NewCustomerID(raw string) (CustomerID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CustomerID{}, fmt.Errorf("%w: empty value", ErrInvalidCustomerID)
	}
	return CustomerID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id CustomerID) String() string {
	return id.value
}

// NewBookingID validates and normalizes a booking id.
func NewBookingID(raw string) (BookingID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return BookingID{}, fmt.Errorf("%w: empty value", ErrInvalidBookingID)
	}
	return BookingID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id BookingID) String() string {
	return id.value
}

// NewPaymentID validates and normalizes a payment id.
func NewPaymentID(raw string) (PaymentID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return PaymentID{}, fmt.Errorf("%w: empty value", ErrInvalidPaymentID)
	}
	return PaymentID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id PaymentID) String() string {
	return id.value
}

// NewAccountID validates and normalizes an account id.
func NewAccountID(raw string) (AccountID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return AccountID{}, fmt.Errorf("%w: empty value", ErrInvalidAccountID)
	}
	return AccountID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id AccountID) String() string {
	return id.value
}

// NewRoomNumber validates and normalizes a room number.
func NewRoomNumber(raw string) (RoomNumber, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return RoomNumber{}, fmt.Errorf("%w: empty value", ErrInvalidRoomNumber)
	}
	return RoomNumber{value: trimmed}, nil
}

// String returns the normalized room number.
func (number RoomNumber) String() string {
	return number.value
}

// NewEmailAddress validates and normalizes an email address.
func NewEmailAddress(raw string) (EmailAddress, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return EmailAddress{}, fmt.Errorf("%w: empty value", ErrInvalidEmailAddress)
	}
	atIndex := strings.Index(normalized, "@")
	if atIndex <= 0 || atIndex == len(normalized)-1 {
		return EmailAddress{}, fmt.Errorf("%w: missing local part or domain", ErrInvalidEmailAddress)
	}
	return EmailAddress{value: normalized}, nil
}

// String returns the normalized address.
func (email EmailAddress) String() string {
	return email.value
}

// NewFullName validates and normalizes a full name.
func NewFullName(raw string) (FullName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return FullName{}, fmt.Errorf("%w: empty value", ErrInvalidFullName)
	}
	return FullName{value: trimmed}, nil
}

// String returns the normalized name.
func (name FullName) String() string {
	return name.value
}

// NewPasswordHash validates a password digest.
func NewPasswordHash(raw string) (PasswordHash, error) {
	if strings.TrimSpace(raw) == "" {
		return PasswordHash{}, fmt.Errorf("%w: empty value", ErrInvalidPasswordHash)
	}
	return PasswordHash{value: raw}, nil
}

// String returns the stored digest.
func (hash PasswordHash) String() string {
	return hash.value
}

// NewMetadataJSON validates metadata string (defaulting to "{}" for empty inputs).
func NewMetadataJSON(raw string) (MetadataJSON, error) {
	normalized := strings.TrimSpace(raw)
	if normalized == "" {
		normalized = "{}"
	}
	if !json.Valid([]byte(normalized)) {
		return MetadataJSON{}, fmt.Errorf("%w: must be valid json", ErrInvalidMetadataJSON)
	}
	return MetadataJSON{value: normalized}, nil
}

// String returns the normalized JSON blob.
func (metadata MetadataJSON) String() string {
	return metadata.value
}

// AmountCents is a non-negative integer currency in cents.
type AmountCents int64

// NewAmountCents validates an amount and ensures it is not negative.
func NewAmountCents(raw int64) (AmountCents, error) {
	if raw < 0 {
		return 0, fmt.Errorf("%w: must not be negative", ErrInvalidAmountCents)
	}
	return AmountCents(raw), nil
}

// Int64 returns the raw cents value.
func (amount AmountCents) Int64() int64 {
	return int64(amount)
}

// PositiveAmountCents is a strictly positive integer currency in cents.
type PositiveAmountCents int64

// NewPositiveAmountCents validates an amount and ensures it is strictly positive.
func NewPositiveAmountCents(raw int64) (PositiveAmountCents, error) {
	if raw <= 0 {
		return 0, fmt.Errorf("%w: must be greater than zero", ErrInvalidAmountCents)
	}
	return PositiveAmountCents(raw), nil
}

// Int64 returns the raw cents value.
func (amount PositiveAmountCents) Int64() int64 {
	return int64(amount)
}

// ToAmountCents widens to the non-negative representation.
func (amount PositiveAmountCents) ToAmountCents() AmountCents {
	return AmountCents(amount)
}

// PriceCents is a strictly positive nightly rate in cents.
type PriceCents int64

// NewPriceCents validates a nightly rate and ensures it is strictly positive.
func NewPriceCents(raw int64) (PriceCents, error) {
	if raw <= 0 {
		return 0, fmt.Errorf("%w: must be greater than zero", ErrInvalidPriceCents)
	}
	return PriceCents(raw), nil
}

// Int64 returns the raw cents value.
func (price PriceCents) Int64() int64 {
	return int64(price)
}

// RoomType enumerates room categories.
type RoomType string

const (
	RoomTypeSingle RoomType = "Single"
	RoomTypeDouble RoomType = "Double"
	RoomTypeSuite  RoomType = "Suite"
	RoomTypeDeluxe RoomType = "Deluxe"
)

// ParseRoomType validates a raw room type value.
func ParseRoomType(raw string) (RoomType, error) {
	switch RoomType(raw) {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDeluxe:
		return RoomType(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRoomType, raw)
}

// String returns the enum value.
func (roomType RoomType) String() string {
	return string(roomType)
}

// RoomStatus enumerates room availability states.
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// ParseRoomStatus validates a raw room status value.
func ParseRoomStatus(raw string) (RoomStatus, error) {
	switch RoomStatus(raw) {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance:
		return RoomStatus(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRoomStatus, raw)
}

// String returns the enum value.
func (status RoomStatus) String() string {
	return string(status)
}

// BookingStatus defines the booking lifecycle.
type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// ParseBookingStatus validates a raw booking status value.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	switch BookingStatus(raw) {
	case BookingStatusConfirmed, BookingStatusCheckedIn, BookingStatusCheckedOut, BookingStatusCancelled:
		return BookingStatus(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidBookingStatus, raw)
}

// String returns the enum value.
func (status BookingStatus) String() string {
	return string(status)
}

// PaymentMethod enumerates accepted payment instruments.
type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// ParsePaymentMethod validates a raw payment method value.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	switch PaymentMethod(raw) {
	case PaymentMethodCard, PaymentMethodCash, PaymentMethodTransfer:
		return PaymentMethod(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, raw)
}

// String returns the enum value.
func (method PaymentMethod) String() string {
	return string(method)
}

// AccountRole scopes what the facade lets an account see.
type AccountRole string

const (
	AccountRoleAdmin    AccountRole = "admin"
	AccountRoleCustomer AccountRole = "customer"
)

// ParseAccountRole validates a raw role value.
func ParseAccountRole(raw string) (AccountRole, error) {
	switch AccountRole(raw) {
	case AccountRoleAdmin, AccountRoleCustomer:
		return AccountRole(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAccountRole, raw)
}

// String returns the enum value.
func (role AccountRole) String() string {
	return string(role)
}

// StayRange is a half-open [check-in, check-out) interval in UTC.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStayRange validates a stay and requires check-out strictly after check-in.
func NewStayRange(checkIn time.Time, checkOut time.Time) (StayRange, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return StayRange{}, fmt.Errorf("%w: missing check-in or check-out", ErrInvalidStayRange)
	}
	normalizedIn := checkIn.UTC()
	normalizedOut := checkOut.UTC()
	if !normalizedOut.After(normalizedIn) {
		return StayRange{}, fmt.Errorf("%w: check-out must be after check-in", ErrInvalidStayRange)
	}
	return StayRange{checkIn: normalizedIn, checkOut: normalizedOut}, nil
}

// CheckIn returns the inclusive start of the stay.
func (stay StayRange) CheckIn() time.Time {
	return stay.checkIn
}

// CheckOut returns the exclusive end of the stay.
func (stay StayRange) CheckOut() time.Time {
	return stay.checkOut
}

// Overlaps reports whether two half-open stays intersect.
// [a,b) overlaps [c,d) iff a < d and b > c; back-to-back stays do not overlap.
func (stay StayRange) Overlaps(other StayRange) bool {
	return stay.checkIn.Before(other.checkOut) && stay.checkOut.After(other.checkIn)
}

// Contains reports whether an instant falls inside the half-open stay.
func (stay StayRange) Contains(at time.Time) bool {
	instant := at.UTC()
	return !instant.Before(stay.checkIn) && instant.Before(stay.checkOut)
}
