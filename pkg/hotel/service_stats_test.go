package hotel

import (
	"context"
	"testing"
	"time"
)

func TestDashboardStatsAggregates(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	available := seedRoom(test, store, "room-1", "101", RoomStatusAvailable)
	occupied := seedRoom(test, store, "room-2", "102", RoomStatusOccupied)
	seedRoom(test, store, "room-3", "201", RoomStatusMaintenance)
	customer := seedCustomer(test, store, "cust-1", "guest@example.com")
	confirmed := seedBooking(test, store, "booking-1", customer, occupied,
		mustStay(test, date(2024, time.June, 10), date(2024, time.June, 12)), BookingStatusConfirmed)
	seedBooking(test, store, "booking-2", customer, available,
		mustStay(test, date(2024, time.May, 1), date(2024, time.May, 3)), BookingStatusCancelled)
	service := mustNewService(test, store, fixedClock(date(2024, time.June, 1)))

	if _, err := service.AddPayment(context.Background(), confirmed.ID(), mustPositiveAmount(test, 10000), PaymentMethodCard, MetadataJSON{}); err != nil {
		test.Fatalf("add payment: %v", err)
	}
	if _, err := service.AddPayment(context.Background(), confirmed.ID(), mustPositiveAmount(test, 2500), PaymentMethodCash, MetadataJSON{}); err != nil {
		test.Fatalf("add payment: %v", err)
	}

	stats, err := service.ComputeDashboardStats(context.Background())
	if err != nil {
		test.Fatalf("dashboard stats: %v", err)
	}
	if stats.TotalRooms != 3 {
		test.Fatalf("expected 3 rooms, got %d", stats.TotalRooms)
	}
	if stats.AvailableRooms != 1 {
		test.Fatalf("expected 1 available room, got %d", stats.AvailableRooms)
	}
	if stats.ActiveBookings != 1 {
		test.Fatalf("expected 1 active booking, got %d", stats.ActiveBookings)
	}
	if stats.TotalRevenueCents != 12500 {
		test.Fatalf("expected revenue 12500, got %d", stats.TotalRevenueCents)
	}
}

func TestDashboardRevenueZeroWithoutPayments(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	service := mustNewService(test, store, fixedClock(date(2024, time.June, 1)))

	stats, err := service.ComputeDashboardStats(context.Background())
	if err != nil {
		test.Fatalf("dashboard stats: %v", err)
	}
	if stats.TotalRevenueCents != 0 {
		test.Fatalf("expected zero revenue, got %d", stats.TotalRevenueCents)
	}
}

func TestListBookingsJoinsRoomAndCustomer(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	room := seedRoom(test, store, "room-1", "101", RoomStatusOccupied)
	first := seedCustomer(test, store, "cust-1", "first@example.com")
	second := seedCustomer(test, store, "cust-2", "second@example.com")
	seedBooking(test, store, "booking-1", first, room,
		mustStay(test, date(2024, time.June, 1), date(2024, time.June, 3)), BookingStatusConfirmed)
	seedBooking(test, store, "booking-2", second, room,
		mustStay(test, date(2024, time.June, 3), date(2024, time.June, 5)), BookingStatusConfirmed)
	service := mustNewService(test, store, fixedClock(date(2024, time.June, 1)))

	views, err := service.ListBookings(context.Background(), nil)
	if err != nil {
		test.Fatalf("list bookings: %v", err)
	}
	if len(views) != 2 {
		test.Fatalf("expected 2 bookings, got %d", len(views))
	}
	for _, view := range views {
		if view.Room == nil || view.Room.ID() != room.ID() {
			test.Fatalf("expected room snapshot for %s", view.Booking.ID())
		}
		if view.Customer == nil {
			test.Fatalf("expected customer snapshot for %s", view.Booking.ID())
		}
	}

	firstID := first.ID()
	filtered, err := service.ListBookings(context.Background(), &firstID)
	if err != nil {
		test.Fatalf("list bookings filtered: %v", err)
	}
	if len(filtered) != 1 {
		test.Fatalf("expected 1 booking for %s, got %d", firstID, len(filtered))
	}
	if filtered[0].Customer.ID() != firstID {
		test.Fatalf("expected booking for %s, got %s", firstID, filtered[0].Customer.ID())
	}
}

func TestListBookingsToleratesDeletedRoom(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	room := seedRoom(test, store, "room-1", "101", RoomStatusAvailable)
	customer := seedCustomer(test, store, "cust-1", "guest@example.com")
	booking := seedBooking(test, store, "booking-1", customer, room,
		mustStay(test, date(2024, time.June, 1), date(2024, time.June, 3)), BookingStatusCancelled)
	service := mustNewService(test, store, fixedClock(date(2024, time.June, 10)))

	if err := service.DeleteRoom(context.Background(), room.ID()); err != nil {
		test.Fatalf("delete room: %v", err)
	}
	views, err := service.ListBookings(context.Background(), nil)
	if err != nil {
		test.Fatalf("list bookings: %v", err)
	}
	if len(views) != 1 || views[0].Booking.ID() != booking.ID() {
		test.Fatalf("expected surviving booking view, got %d views", len(views))
	}
	if views[0].Room != nil {
		test.Fatalf("expected nil room snapshot for deleted room")
	}
	if views[0].Customer == nil {
		test.Fatalf("expected customer snapshot to survive")
	}
}

func TestListPaymentsReturnsAppendOnlyRecords(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	room := seedRoom(test, store, "room-1", "101", RoomStatusOccupied)
	customer := seedCustomer(test, store, "cust-1", "guest@example.com")
	booking := seedBooking(test, store, "booking-1", customer, room,
		mustStay(test, date(2024, time.June, 1), date(2024, time.June, 3)), BookingStatusConfirmed)
	paidAt := date(2024, time.June, 2)
	service := mustNewService(test, store, fixedClock(paidAt))

	payment, err := service.AddPayment(context.Background(), booking.ID(), mustPositiveAmount(test, 5000), PaymentMethodTransfer, mustMetadata(test, `{"note":"deposit"}`))
	if err != nil {
		test.Fatalf("add payment: %v", err)
	}
	if payment.PaidAt() != paidAt {
		test.Fatalf("expected payment date %s, got %s", paidAt, payment.PaidAt())
	}
	payments, err := service.ListPayments(context.Background())
	if err != nil {
		test.Fatalf("list payments: %v", err)
	}
	if len(payments) != 1 || payments[0].ID() != payment.ID() {
		test.Fatalf("expected single payment record, got %d", len(payments))
	}
	if payments[0].Metadata().String() != `{"note":"deposit"}` {
		test.Fatalf("unexpected metadata: %s", payments[0].Metadata())
	}
}
