package hotel

import (
	"testing"
	"time"
)

func TestStayRangeOverlapSemantics(test *testing.T) {
	test.Parallel()

	base := mustStay(test, date(2024, time.January, 1), date(2024, time.January, 3))

	testCases := []struct {
		name     string
		other    StayRange
		overlaps bool
	}{
		{name: "identical", other: mustStay(test, date(2024, time.January, 1), date(2024, time.January, 3)), overlaps: true},
		{name: "straddles end", other: mustStay(test, date(2024, time.January, 2), date(2024, time.January, 4)), overlaps: true},
		{name: "straddles start", other: mustStay(test, date(2023, time.December, 30), date(2024, time.January, 2)), overlaps: true},
		{name: "contained", other: mustStay(test, date(2024, time.January, 1), date(2024, time.January, 2)), overlaps: true},
		{name: "surrounding", other: mustStay(test, date(2023, time.December, 1), date(2024, time.February, 1)), overlaps: true},
		{name: "back to back after", other: mustStay(test, date(2024, time.January, 3), date(2024, time.January, 5)), overlaps: false},
		{name: "back to back before", other: mustStay(test, date(2023, time.December, 30), date(2024, time.January, 1)), overlaps: false},
		{name: "disjoint", other: mustStay(test, date(2024, time.February, 1), date(2024, time.February, 3)), overlaps: false},
	}

	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			if got := base.Overlaps(testCase.other); got != testCase.overlaps {
				test.Fatalf("expected overlap=%v, got %v", testCase.overlaps, got)
			}
			if got := testCase.other.Overlaps(base); got != testCase.overlaps {
				test.Fatalf("expected symmetric overlap=%v, got %v", testCase.overlaps, got)
			}
		})
	}
}

func TestStayRangeContains(test *testing.T) {
	test.Parallel()
	stay := mustStay(test, date(2024, time.June, 1), date(2024, time.June, 10))

	if !stay.Contains(date(2024, time.June, 1)) {
		test.Fatalf("check-in day should be inside the stay")
	}
	if !stay.Contains(date(2024, time.June, 5)) {
		test.Fatalf("mid-stay day should be inside the stay")
	}
	if stay.Contains(date(2024, time.June, 10)) {
		test.Fatalf("check-out day is exclusive")
	}
	if stay.Contains(date(2024, time.May, 31)) {
		test.Fatalf("day before check-in is outside the stay")
	}
}

func TestRoomWithStatusKeepsOtherFields(test *testing.T) {
	test.Parallel()
	room, err := NewRoom(mustRoomID(test, "room-1"), mustRoomNumber(test, "101"), RoomTypeSingle, mustPrice(test, 10000), RoomStatusAvailable)
	if err != nil {
		test.Fatalf("room: %v", err)
	}
	updated := room.WithStatus(RoomStatusOccupied)
	if updated.Status() != RoomStatusOccupied {
		test.Fatalf("expected occupied, got %s", updated.Status())
	}
	if updated.Number() != room.Number() || updated.PricePerNight() != room.PricePerNight() {
		test.Fatalf("unexpected field change: %+v", updated)
	}
	if room.Status() != RoomStatusAvailable {
		test.Fatalf("original room mutated: %s", room.Status())
	}
}

func TestNewBookingValidation(test *testing.T) {
	test.Parallel()
	stay := mustStay(test, date(2024, time.June, 1), date(2024, time.June, 3))
	created := date(2024, time.May, 1)

	if _, err := NewBooking(BookingID{}, mustCustomerID(test, "cust-1"), mustRoomID(test, "room-1"), stay, mustPositiveAmount(test, 100), BookingStatusConfirmed, created); err == nil {
		test.Fatalf("expected error for empty booking id")
	}
	if _, err := NewBooking(mustBookingID(test, "booking-1"), mustCustomerID(test, "cust-1"), mustRoomID(test, "room-1"), StayRange{}, mustPositiveAmount(test, 100), BookingStatusConfirmed, created); err == nil {
		test.Fatalf("expected error for missing stay")
	}
	if _, err := NewBooking(mustBookingID(test, "booking-1"), mustCustomerID(test, "cust-1"), mustRoomID(test, "room-1"), stay, mustPositiveAmount(test, 100), BookingStatus("pending"), created); err == nil {
		test.Fatalf("expected error for invalid status")
	}
	booking, err := NewBooking(mustBookingID(test, "booking-1"), mustCustomerID(test, "cust-1"), mustRoomID(test, "room-1"), stay, mustPositiveAmount(test, 100), BookingStatusConfirmed, created)
	if err != nil {
		test.Fatalf("booking: %v", err)
	}
	if booking.Stay() != stay || booking.CreatedAt() != created {
		test.Fatalf("unexpected booking fields: %+v", booking)
	}
}
