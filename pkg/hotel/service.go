package hotel

import (
	"context"
	"fmt"
	"time"
)

// Service contains the reservation domain logic over a Store.
type Service struct {
	store  Store
	nowFn  func() time.Time
	newID  func() string
	logger OperationLogger
}

// NewService wires a Service.
func NewService(store Store, now func() time.Time, newID func() string, options ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store dependency is nil", ErrInvalidServiceConfig)
	}
	if now == nil {
		return nil, fmt.Errorf("%w: clock dependency is nil", ErrInvalidServiceConfig)
	}
	if newID == nil {
		return nil, fmt.Errorf("%w: id generator dependency is nil", ErrInvalidServiceConfig)
	}
	service := &Service{store: store, nowFn: now, newID: newID}
	for _, option := range options {
		if option != nil {
			option(service)
		}
	}
	return service, nil
}

// AddRoom creates a room with a generated id. Room numbers are unique across
// the inventory; a duplicate fails with ErrRoomNumberExists.
func (service *Service) AddRoom(ctx context.Context, number RoomNumber, roomType RoomType, pricePerNight PriceCents, status RoomStatus) (Room, error) {
	var created Room
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		roomID, err := NewRoomID(service.newID())
		if err != nil {
			return err
		}
		room, err := NewRoom(roomID, number, roomType, pricePerNight, status)
		if err != nil {
			return err
		}
		if err := transactionStore.InsertRoom(ctx, room); err != nil {
			return err
		}
		created = room
		return nil
	})
	service.logOperation(ctx, OperationLog{
		Operation: operationAddRoom,
		RoomID:    created.ID(),
		Error:     operationError,
	})
	return created, operationError
}

// DeleteRoom removes a room. Deletion is blocked while confirmed or
// checked-in bookings still reference the room.
func (service *Service) DeleteRoom(ctx context.Context, roomID RoomID) error {
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		if _, err := transactionStore.GetRoom(ctx, roomID); err != nil {
			return err
		}
		active, err := transactionStore.ListRoomBookings(ctx, roomID, BookingStatusConfirmed, BookingStatusCheckedIn)
		if err != nil {
			return err
		}
		if len(active) > 0 {
			return ErrRoomHasActiveBookings
		}
		return transactionStore.DeleteRoom(ctx, roomID)
	})
	service.logOperation(ctx, OperationLog{
		Operation: operationDeleteRoom,
		RoomID:    roomID,
		Error:     operationError,
	})
	return operationError
}

// SetRoomStatus overwrites a room's status unconditionally. Used by the
// admin maintenance toggle; booking operations derive occupancy themselves.
func (service *Service) SetRoomStatus(ctx context.Context, roomID RoomID, status RoomStatus) error {
	operationError := service.store.UpdateRoomStatus(ctx, roomID, status)
	service.logOperation(ctx, OperationLog{
		Operation: operationSetRoomStatus,
		RoomID:    roomID,
		Error:     operationError,
	})
	return operationError
}

// CreateBooking reserves a room for a stay. The overlap test runs against
// every non-cancelled booking of the room inside one transaction, so the
// operation either fully creates the booking and marks the room occupied, or
// leaves the store untouched.
func (service *Service) CreateBooking(ctx context.Context, customerID CustomerID, roomID RoomID, stay StayRange, totalAmount PositiveAmountCents) (Booking, error) {
	var created Booking
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		if _, err := transactionStore.GetCustomer(ctx, customerID); err != nil {
			return err
		}
		if _, err := transactionStore.GetRoom(ctx, roomID); err != nil {
			return err
		}
		existing, err := transactionStore.ListRoomBookings(ctx, roomID,
			BookingStatusConfirmed, BookingStatusCheckedIn, BookingStatusCheckedOut)
		if err != nil {
			return err
		}
		for _, other := range existing {
			if stay.Overlaps(other.Stay()) {
				return ErrRoomUnavailable
			}
		}
		bookingID, err := NewBookingID(service.newID())
		if err != nil {
			return err
		}
		booking, err := NewBooking(bookingID, customerID, roomID, stay, totalAmount, BookingStatusConfirmed, service.nowFn())
		if err != nil {
			return err
		}
		if err := transactionStore.InsertBooking(ctx, booking); err != nil {
			return err
		}
		if err := transactionStore.UpdateRoomStatus(ctx, roomID, RoomStatusOccupied); err != nil {
			return err
		}
		created = booking
		return nil
	})
	service.logOperation(ctx, OperationLog{
		Operation:  operationCreateBooking,
		RoomID:     roomID,
		CustomerID: customerID,
		BookingID:  created.ID(),
		Amount:     totalAmount.ToAmountCents(),
		Error:      operationError,
	})
	return created, operationError
}

// CancelBooking moves a booking to cancelled and re-derives the room's
// status: the room is released only when no remaining confirmed or
// checked-in booking covers the current date.
func (service *Service) CancelBooking(ctx context.Context, bookingID BookingID) error {
	var roomID RoomID
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		booking, err := transactionStore.GetBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		if booking.Status() == BookingStatusCancelled || booking.Status() == BookingStatusCheckedOut {
			return ErrBookingClosed
		}
		roomID = booking.RoomID()
		if err := transactionStore.UpdateBookingStatus(ctx, bookingID, booking.Status(), BookingStatusCancelled); err != nil {
			return err
		}
		return service.releaseRoomIfIdle(ctx, transactionStore, booking.RoomID())
	})
	service.logOperation(ctx, OperationLog{
		Operation: operationCancelBooking,
		RoomID:    roomID,
		BookingID: bookingID,
		Error:     operationError,
	})
	return operationError
}

// CheckInBooking moves a confirmed booking to checked_in.
func (service *Service) CheckInBooking(ctx context.Context, bookingID BookingID) error {
	var roomID RoomID
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		booking, err := transactionStore.GetBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		if booking.Status() != BookingStatusConfirmed {
			return ErrBookingClosed
		}
		roomID = booking.RoomID()
		if err := transactionStore.UpdateBookingStatus(ctx, bookingID, BookingStatusConfirmed, BookingStatusCheckedIn); err != nil {
			return err
		}
		return transactionStore.UpdateRoomStatus(ctx, booking.RoomID(), RoomStatusOccupied)
	})
	service.logOperation(ctx, OperationLog{
		Operation: operationCheckIn,
		RoomID:    roomID,
		BookingID: bookingID,
		Error:     operationError,
	})
	return operationError
}

// CheckOutBooking moves a checked-in booking to checked_out and re-derives
// the room's status the same way cancellation does.
func (service *Service) CheckOutBooking(ctx context.Context, bookingID BookingID) error {
	var roomID RoomID
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		booking, err := transactionStore.GetBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		if booking.Status() != BookingStatusCheckedIn {
			return ErrBookingClosed
		}
		roomID = booking.RoomID()
		if err := transactionStore.UpdateBookingStatus(ctx, bookingID, BookingStatusCheckedIn, BookingStatusCheckedOut); err != nil {
			return err
		}
		return service.releaseRoomIfIdle(ctx, transactionStore, booking.RoomID())
	})
	service.logOperation(ctx, OperationLog{
		Operation: operationCheckOut,
		RoomID:    roomID,
		BookingID: bookingID,
		Error:     operationError,
	})
	return operationError
}

// releaseRoomIfIdle sets an occupied room back to available unless another
// active booking covers the current date. Rooms under maintenance are left
// alone; that status is set manually and only cleared manually.
func (service *Service) releaseRoomIfIdle(ctx context.Context, transactionStore Store, roomID RoomID) error {
	room, err := transactionStore.GetRoom(ctx, roomID)
	if err != nil {
		return err
	}
	if room.Status() != RoomStatusOccupied {
		return nil
	}
	active, err := transactionStore.ListRoomBookings(ctx, roomID, BookingStatusConfirmed, BookingStatusCheckedIn)
	if err != nil {
		return err
	}
	today := service.nowFn()
	for _, booking := range active {
		if booking.Stay().Contains(today) {
			return nil
		}
	}
	return transactionStore.UpdateRoomStatus(ctx, roomID, RoomStatusAvailable)
}

func (service *Service) logOperation(ctx context.Context, entry OperationLog) {
	if service.logger == nil {
		return
	}
	if entry.Status == "" {
		if entry.Error != nil {
			entry.Status = operationStatusError
		} else {
			entry.Status = operationStatusOK
		}
	}
	service.logger.LogOperation(ctx, entry)
}
