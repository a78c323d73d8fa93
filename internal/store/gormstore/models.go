package gormstore

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Account represents the accounts table.
type Account struct {
	AccountID    string    `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"not null;index:uniq_accounts_email,unique"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (Account) TableName() string { return "accounts" }

func (account *Account) BeforeCreate(tx *gorm.DB) error {
	if account.AccountID == "" {
		account.AccountID = uuid.NewString()
	}
	return nil
}

// Customer mirrors the customers table.
type Customer struct {
	CustomerID string    `gorm:"type:uuid;primaryKey"`
	AccountID  string    `gorm:"type:uuid;not null;index:idx_customers_account"`
	FullName   string    `gorm:"not null"`
	Email      string    `gorm:"not null;index:uniq_customers_email,unique"`
	Phone      string    `gorm:""`
	CreatedAt  time.Time `gorm:"not null"`
}

func (Customer) TableName() string { return "customers" }

func (customer *Customer) BeforeCreate(tx *gorm.DB) error {
	if customer.CustomerID == "" {
		customer.CustomerID = uuid.NewString()
	}
	return nil
}

// Room mirrors the rooms table.
type Room struct {
	RoomID     string    `gorm:"type:uuid;primaryKey"`
	Number     string    `gorm:"not null;index:uniq_rooms_number,unique"`
	Type       string    `gorm:"not null"`
	PriceCents int64     `gorm:"not null"`
	Status     string    `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (Room) TableName() string { return "rooms" }

func (room *Room) BeforeCreate(tx *gorm.DB) error {
	if room.RoomID == "" {
		room.RoomID = uuid.NewString()
	}
	return nil
}

// Booking mirrors the bookings table. CheckIn and CheckOut bound a
// half-open stay interval.
type Booking struct {
	BookingID  string    `gorm:"type:uuid;primaryKey"`
	CustomerID string    `gorm:"type:uuid;not null;index:idx_bookings_customer"`
	RoomID     string    `gorm:"type:uuid;not null;index:idx_bookings_room_status,priority:1"`
	CheckIn    time.Time `gorm:"not null"`
	CheckOut   time.Time `gorm:"not null"`
	TotalCents int64     `gorm:"not null"`
	Status     string    `gorm:"not null;index:idx_bookings_room_status,priority:2"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (Booking) TableName() string { return "bookings" }

func (booking *Booking) BeforeCreate(tx *gorm.DB) error {
	if booking.BookingID == "" {
		booking.BookingID = uuid.NewString()
	}
	return nil
}

// Payment mirrors the payments table. Rows are append-only.
type Payment struct {
	PaymentID   string         `gorm:"type:uuid;primaryKey"`
	BookingID   string         `gorm:"type:uuid;not null;index:idx_payments_booking"`
	AmountCents int64          `gorm:"not null"`
	PaidAt      time.Time      `gorm:"not null"`
	Method      string         `gorm:"not null"`
	Metadata    datatypes.JSON `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"not null"`
}

func (Payment) TableName() string { return "payments" }

func (payment *Payment) BeforeCreate(tx *gorm.DB) error {
	if payment.PaymentID == "" {
		payment.PaymentID = uuid.NewString()
	}
	return nil
}

// Models lists every table for AutoMigrate.
func Models() []any {
	return []any{&Account{}, &Customer{}, &Room{}, &Booking{}, &Payment{}}
}
