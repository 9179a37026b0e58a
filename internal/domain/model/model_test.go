package model

import "testing"

func TestBookingStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   BookingStatus
		value string
	}{
		{"pending", BookingStatusPending, "pending"},
		{"confirmed", BookingStatusConfirmed, "confirmed"},
		{"hairdresser_coming", BookingStatusHairdresserComing, "hairdresser_coming"},
		{"in_progress", BookingStatusInProgress, "in_progress"},
		{"completed", BookingStatusCompleted, "completed"},
		{"cancelled", BookingStatusCancelled, "cancelled"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
			if !ValidBookingStatus(tc.got) {
				t.Fatalf("expected %s to be a valid status", tc.got)
			}
		})
	}

	if ValidBookingStatus("refunded") {
		t.Fatal("expected unknown status to be invalid")
	}
}

func TestCanTransitionBooking(t *testing.T) {
	cases := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to confirmed", BookingStatusPending, BookingStatusConfirmed, true},
		{"confirmed to coming", BookingStatusConfirmed, BookingStatusHairdresserComing, true},
		{"confirmed to in progress", BookingStatusConfirmed, BookingStatusInProgress, true},
		{"coming to completed", BookingStatusHairdresserComing, BookingStatusCompleted, true},
		{"in progress to completed", BookingStatusInProgress, BookingStatusCompleted, true},
		{"pending to cancelled", BookingStatusPending, BookingStatusCancelled, true},
		{"in progress to cancelled", BookingStatusInProgress, BookingStatusCancelled, true},
		{"same status is idempotent", BookingStatusConfirmed, BookingStatusConfirmed, true},
		{"confirmed to completed skips service", BookingStatusConfirmed, BookingStatusCompleted, false},
		{"completed is absorbing", BookingStatusCompleted, BookingStatusPending, false},
		{"cancelled is absorbing", BookingStatusCancelled, BookingStatusConfirmed, false},
		{"no going back", BookingStatusInProgress, BookingStatusConfirmed, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransitionBooking(tc.from, tc.to); got != tc.allowed {
				t.Fatalf("transition %s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
			}
		})
	}
}

func TestIsTerminalBookingStatus(t *testing.T) {
	if !IsTerminalBookingStatus(BookingStatusCompleted) || !IsTerminalBookingStatus(BookingStatusCancelled) {
		t.Fatal("completed and cancelled must be terminal")
	}
	if IsTerminalBookingStatus(BookingStatusPending) {
		t.Fatal("pending must not be terminal")
	}
}

func TestCanTransitionOrder(t *testing.T) {
	cases := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"preparing to shipped", OrderStatusPreparing, OrderStatusShipped, true},
		{"shipped to out for delivery", OrderStatusShipped, OrderStatusOutForDelivery, true},
		{"out for delivery to delivered", OrderStatusOutForDelivery, OrderStatusDelivered, true},
		{"preparing skips to delivered", OrderStatusPreparing, OrderStatusDelivered, true},
		{"preparing to cancelled", OrderStatusPreparing, OrderStatusCancelled, true},
		{"out for delivery to cancelled", OrderStatusOutForDelivery, OrderStatusCancelled, true},
		{"delivered is absorbing", OrderStatusDelivered, OrderStatusPreparing, false},
		{"cancelled is absorbing", OrderStatusCancelled, OrderStatusShipped, false},
		{"no going back", OrderStatusShipped, OrderStatusPreparing, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransitionOrder(tc.from, tc.to); got != tc.allowed {
				t.Fatalf("transition %s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
			}
		})
	}
}

func TestNextDeliveryStatus(t *testing.T) {
	cases := []struct {
		from OrderStatus
		next OrderStatus
		ok   bool
	}{
		{OrderStatusPreparing, OrderStatusShipped, true},
		{OrderStatusShipped, OrderStatusOutForDelivery, true},
		{OrderStatusOutForDelivery, OrderStatusDelivered, true},
		{OrderStatusDelivered, "", false},
		{OrderStatusCancelled, "", false},
	}

	for _, tc := range cases {
		next, ok := NextDeliveryStatus(tc.from)
		if ok != tc.ok || next != tc.next {
			t.Fatalf("next of %s: expected (%s, %v), got (%s, %v)", tc.from, tc.next, tc.ok, next, ok)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range AssignableRoles {
		if !ValidRole(role) {
			t.Fatalf("expected %s to be assignable", role)
		}
	}
	if ValidRole(RoleNone) {
		t.Fatal("none must not be assignable")
	}
	if ValidRole("admin") {
		t.Fatal("unknown role must not be assignable")
	}
}
