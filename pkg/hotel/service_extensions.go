package hotel

import (
	"context"
	"errors"
)

// AddPayment appends a payment record for an existing booking. Payments are
// never mutated or deleted, and no sum-to-total invariant is enforced.
func (service *Service) AddPayment(ctx context.Context, bookingID BookingID, amount PositiveAmountCents, method PaymentMethod, metadata MetadataJSON) (Payment, error) {
	var created Payment
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		if _, err := transactionStore.GetBooking(ctx, bookingID); err != nil {
			return err
		}
		paymentID, err := NewPaymentID(service.newID())
		if err != nil {
			return err
		}
		payment, err := NewPayment(paymentID, bookingID, amount, service.nowFn(), method, metadata)
		if err != nil {
			return err
		}
		if err := transactionStore.InsertPayment(ctx, payment); err != nil {
			return err
		}
		created = payment
		return nil
	})
	service.logOperation(ctx, OperationLog{
		Operation: operationAddPayment,
		BookingID: bookingID,
		Amount:    amount.ToAmountCents(),
		Error:     operationError,
	})
	return created, operationError
}

// SignUp creates a customer-role account and its customer profile in one
// transaction. A duplicate email fails with ErrEmailExists and creates
// neither record.
func (service *Service) SignUp(ctx context.Context, email EmailAddress, passwordHash PasswordHash, fullName FullName, phone string) (Account, Customer, error) {
	var (
		createdAccount  Account
		createdCustomer Customer
	)
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		accountID, err := NewAccountID(service.newID())
		if err != nil {
			return err
		}
		account, err := NewAccount(accountID, email, passwordHash, AccountRoleCustomer)
		if err != nil {
			return err
		}
		if err := transactionStore.InsertAccount(ctx, account); err != nil {
			return err
		}
		customerID, err := NewCustomerID(service.newID())
		if err != nil {
			return err
		}
		customer, err := NewCustomer(customerID, accountID, fullName, email, phone)
		if err != nil {
			return err
		}
		if err := transactionStore.InsertCustomer(ctx, customer); err != nil {
			return err
		}
		createdAccount = account
		createdCustomer = customer
		return nil
	})
	service.logOperation(ctx, OperationLog{
		Operation:  operationSignUp,
		CustomerID: createdCustomer.ID(),
		Error:      operationError,
	})
	return createdAccount, createdCustomer, operationError
}

// AccountByEmail resolves a sign-in account.
func (service *Service) AccountByEmail(ctx context.Context, email EmailAddress) (Account, error) {
	return service.store.GetAccountByEmail(ctx, email)
}

// CustomerByAccount resolves the customer profile linked to an account.
func (service *Service) CustomerByAccount(ctx context.Context, accountID AccountID) (Customer, error) {
	return service.store.GetCustomerByAccount(ctx, accountID)
}

// ListRooms returns the full room inventory.
func (service *Service) ListRooms(ctx context.Context) ([]Room, error) {
	return service.store.ListRooms(ctx)
}

// ListCustomers returns every customer profile.
func (service *Service) ListCustomers(ctx context.Context) ([]Customer, error) {
	return service.store.ListCustomers(ctx)
}

// ListPayments returns every payment record.
func (service *Service) ListPayments(ctx context.Context) ([]Payment, error) {
	return service.store.ListPayments(ctx)
}

// ListBookings returns bookings enriched with read-time room and customer
// snapshots, optionally filtered to one customer. Snapshots are computed per
// call; a missing referenced record leaves the snapshot nil.
func (service *Service) ListBookings(ctx context.Context, customerID *CustomerID) ([]BookingView, error) {
	var (
		bookings []Booking
		err      error
	)
	if customerID != nil {
		bookings, err = service.store.ListBookingsByCustomer(ctx, *customerID)
	} else {
		bookings, err = service.store.ListBookings(ctx)
	}
	if err != nil {
		return nil, err
	}

	roomsByID := make(map[RoomID]*Room)
	customersByID := make(map[CustomerID]*Customer)
	views := make([]BookingView, 0, len(bookings))
	for _, booking := range bookings {
		roomSnapshot, cached := roomsByID[booking.RoomID()]
		if !cached {
			roomSnapshot, err = service.lookupRoom(ctx, booking.RoomID())
			if err != nil {
				return nil, err
			}
			roomsByID[booking.RoomID()] = roomSnapshot
		}
		customerSnapshot, cached := customersByID[booking.CustomerID()]
		if !cached {
			customerSnapshot, err = service.lookupCustomer(ctx, booking.CustomerID())
			if err != nil {
				return nil, err
			}
			customersByID[booking.CustomerID()] = customerSnapshot
		}
		views = append(views, BookingView{
			Booking:  booking,
			Room:     roomSnapshot,
			Customer: customerSnapshot,
		})
	}
	return views, nil
}

// ComputeDashboardStats aggregates current store state. Nothing is cached;
// every call recomputes from the live counts and payment sum.
func (service *Service) ComputeDashboardStats(ctx context.Context) (DashboardStats, error) {
	totalRooms, err := service.store.CountRooms(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	availableRooms, err := service.store.CountRoomsByStatus(ctx, RoomStatusAvailable)
	if err != nil {
		return DashboardStats{}, err
	}
	activeBookings, err := service.store.CountBookingsByStatus(ctx, BookingStatusConfirmed, BookingStatusCheckedIn)
	if err != nil {
		return DashboardStats{}, err
	}
	totalRevenue, err := service.store.SumPaymentAmounts(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	return DashboardStats{
		TotalRooms:        totalRooms,
		AvailableRooms:    availableRooms,
		ActiveBookings:    activeBookings,
		TotalRevenueCents: totalRevenue,
	}, nil
}

func (service *Service) lookupRoom(ctx context.Context, roomID RoomID) (*Room, error) {
	room, err := service.store.GetRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, ErrUnknownRoom) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (service *Service) lookupCustomer(ctx context.Context, customerID CustomerID) (*Customer, error) {
	customer, err := service.store.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrUnknownCustomer) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}
