package hotel

import (
	"errors"
	"fmt"
)

// Domain-level error values returned by the reservation service.
var (
	ErrRoomUnavailable       = errors.New("room unavailable for requested dates")
	ErrRoomNumberExists      = errors.New("room number already exists")
	ErrRoomHasActiveBookings = errors.New("room has active bookings")
	ErrEmailExists           = errors.New("email already registered")
	ErrBookingClosed         = errors.New("booking closed")
	ErrUnknownRoom           = errors.New("unknown room")
	ErrUnknownCustomer       = errors.New("missing customer profile")
	ErrUnknownBooking        = errors.New("unknown booking")
	ErrUnknownAccount        = errors.New("unknown account")
	ErrInvalidRoomID         = errors.New("invalid room id")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrInvalidBookingID      = errors.New("invalid booking id")
	ErrInvalidPaymentID      = errors.New("invalid payment id")
	ErrInvalidAccountID      = errors.New("invalid account id")
	ErrInvalidRoomNumber     = errors.New("invalid room number")
	ErrInvalidRoomType       = errors.New("invalid room type")
	ErrInvalidRoomStatus     = errors.New("invalid room status")
	ErrInvalidBookingStatus  = errors.New("invalid booking status")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidAccountRole    = errors.New("invalid account role")
	ErrInvalidEmailAddress   = errors.New("invalid email address")
	ErrInvalidFullName       = errors.New("invalid full name")
	ErrInvalidPasswordHash   = errors.New("invalid password hash")
	ErrInvalidPriceCents     = errors.New("invalid price cents")
	ErrInvalidAmountCents    = errors.New("invalid amount cents")
	ErrInvalidStayRange      = errors.New("invalid stay range")
	ErrInvalidPaymentDate    = errors.New("invalid payment date")
	ErrInvalidMetadataJSON   = errors.New("invalid metadata json")
	ErrInvalidServiceConfig  = errors.New("invalid service config")
)

// OperationError wraps a failure with a stable operation code.
type OperationError struct {
	operation string
	subject   string
	code      string
	err       error
}

// Error returns the formatted error message.
func (operationError OperationError) Error() string {
	return fmt.Sprintf("%s.%s.%s: %v", operationError.operation, operationError.subject, operationError.code, operationError.err)
}

// Unwrap returns the underlying error.
func (operationError OperationError) Unwrap() error {
	return operationError.err
}

// Operation returns the operation segment.
func (operationError OperationError) Operation() string {
	return operationError.operation
}

// Subject returns the subject segment.
func (operationError OperationError) Subject() string {
	return operationError.subject
}

// Code returns the stable error code segment.
func (operationError OperationError) Code() string {
	return operationError.code
}

// WrapError wraps an error with operation, subject, and code metadata.
func WrapError(operation string, subject string, code string, err error) error {
	if err == nil {
		return nil
	}
	return OperationError{
		operation: operation,
		subject:   subject,
		code:      code,
		err:       err,
	}
}
