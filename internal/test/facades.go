package test

import (
	"context"
	"sync"

	"github.com/coiffly/coiffly/internal/domain/model"
)

// AuthFacadeStub implements the handler-facing auth surface with canned results.
type AuthFacadeStub struct {
	Token       string
	RegisterErr error
	LoginErr    error
	RoleErr     error
	Role        model.Role
	Assigned    []model.Role
}

// Register returns the configured token or error.
func (s *AuthFacadeStub) Register(ctx context.Context, login, password, name string) (string, error) {
	if s.RegisterErr != nil {
		return "", s.RegisterErr
	}
	return s.Token, nil
}

// Authenticate returns the configured token or error.
func (s *AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.LoginErr != nil {
		return "", s.LoginErr
	}
	return s.Token, nil
}

// AssignRole records the assigned role.
func (s *AuthFacadeStub) AssignRole(ctx context.Context, userID int64, role model.Role) error {
	if s.RoleErr != nil {
		return s.RoleErr
	}
	s.Assigned = append(s.Assigned, role)
	return nil
}

// RoleOf returns the configured role.
func (s *AuthFacadeStub) RoleOf(ctx context.Context, userID int64) (model.Role, error) {
	if s.RoleErr != nil {
		return model.RoleNone, s.RoleErr
	}
	return s.Role, nil
}

// BookingFacadeStub implements the handler-facing booking surface.
type BookingFacadeStub struct {
	StageErr   error
	ConfirmErr error
	StatusErr  error
	Confirmed  *model.Booking
	Draft      *model.BookingDraft
	Items      []model.Booking

	Staged    []model.BookingDraft
	Statuses  []BookingStatusCall
	Cancelled []string
	Rated     []string
	Cleared   int
}

// StageBooking records the staged draft.
func (s *BookingFacadeStub) StageBooking(ctx context.Context, draft model.BookingDraft) error {
	if s.StageErr != nil {
		return s.StageErr
	}
	s.Staged = append(s.Staged, draft)
	return nil
}

// BookingDraft returns the configured draft.
func (s *BookingFacadeStub) BookingDraft(ctx context.Context) (*model.BookingDraft, bool) {
	return s.Draft, s.Draft != nil
}

// ClearBookingDraft counts invocations.
func (s *BookingFacadeStub) ClearBookingDraft(ctx context.Context) { s.Cleared++ }

// ConfirmBooking returns the configured booking, reporting no-op when unset.
func (s *BookingFacadeStub) ConfirmBooking(ctx context.Context) (*model.Booking, bool, error) {
	if s.ConfirmErr != nil {
		return nil, false, s.ConfirmErr
	}
	return s.Confirmed, s.Confirmed != nil, nil
}

// SetBookingStatus records the update.
func (s *BookingFacadeStub) SetBookingStatus(ctx context.Context, id string, status model.BookingStatus) error {
	if s.StatusErr != nil {
		return s.StatusErr
	}
	s.Statuses = append(s.Statuses, BookingStatusCall{ID: id, Status: status})
	return nil
}

// CancelBooking records the cancellation.
func (s *BookingFacadeStub) CancelBooking(ctx context.Context, id string) error {
	if s.StatusErr != nil {
		return s.StatusErr
	}
	s.Cancelled = append(s.Cancelled, id)
	return nil
}

// RateBooking records the rating.
func (s *BookingFacadeStub) RateBooking(ctx context.Context, id string) error {
	if s.StatusErr != nil {
		return s.StatusErr
	}
	s.Rated = append(s.Rated, id)
	return nil
}

// Bookings returns configured bookings.
func (s *BookingFacadeStub) Bookings(ctx context.Context) []model.Booking { return s.Items }

// ActiveBookings returns configured bookings.
func (s *BookingFacadeStub) ActiveBookings(ctx context.Context) []model.Booking { return s.Items }

// UpcomingBookings returns configured bookings.
func (s *BookingFacadeStub) UpcomingBookings(ctx context.Context) []model.Booking { return s.Items }

// PastBookings returns configured bookings.
func (s *BookingFacadeStub) PastBookings(ctx context.Context) []model.Booking { return s.Items }

// OrderFacadeStub implements the handler-facing order surface.
type OrderFacadeStub struct {
	PlaceErr  error
	StatusErr error
	Placed    *model.Order
	Items     []model.Order

	PlacedWith []model.DeliveryMethod
	Statuses   []OrderStatusCall
	Cancelled  []string
}

// PlaceOrder returns the configured order or error.
func (s *OrderFacadeStub) PlaceOrder(ctx context.Context, products []model.OrderProduct, method model.DeliveryMethod, address string) (*model.Order, error) {
	if s.PlaceErr != nil {
		return nil, s.PlaceErr
	}
	s.PlacedWith = append(s.PlacedWith, method)
	if s.Placed != nil {
		return s.Placed, nil
	}
	order := model.Order{ID: "stub", Products: products, Delivery: method, Address: address, Status: model.OrderStatusPreparing}
	return &order, nil
}

// UpdateOrderStatus records the update.
func (s *OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	if s.StatusErr != nil {
		return s.StatusErr
	}
	s.Statuses = append(s.Statuses, OrderStatusCall{ID: id, Status: status})
	return nil
}

// CancelOrder records the cancellation.
func (s *OrderFacadeStub) CancelOrder(ctx context.Context, id string) error {
	if s.StatusErr != nil {
		return s.StatusErr
	}
	s.Cancelled = append(s.Cancelled, id)
	return nil
}

// Orders returns configured orders.
func (s *OrderFacadeStub) Orders(ctx context.Context) []model.Order { return s.Items }

// ActiveOrders returns configured orders.
func (s *OrderFacadeStub) ActiveOrders(ctx context.Context) []model.Order { return s.Items }

// PastOrders returns configured orders.
func (s *OrderFacadeStub) PastOrders(ctx context.Context) []model.Order { return s.Items }

// SalonFacadeStub aggregates the per-area stubs behind the full facade surface.
type SalonFacadeStub struct {
	AuthFacadeStub
	BookingFacadeStub
	OrderFacadeStub
	TokenParserStub
}

// WorkerFacadeStub feeds in-transit orders to the delivery tracker under a mutex.
type WorkerFacadeStub struct {
	mu       sync.Mutex
	InFlight []model.Order
	Err      error
	updates  []OrderStatusCall
}

// OrdersInTransit returns the configured in-flight orders once.
func (s *WorkerFacadeStub) OrdersInTransit(ctx context.Context, limit int) []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := s.InFlight
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	out := make([]model.Order, len(orders))
	copy(out, orders)
	s.InFlight = nil
	return out
}

// UpdateOrderStatus records advancing updates.
func (s *WorkerFacadeStub) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.updates = append(s.updates, OrderStatusCall{ID: id, Status: status})
	return nil
}

// Updates returns a snapshot of recorded status updates.
func (s *WorkerFacadeStub) Updates() []OrderStatusCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]OrderStatusCall, len(s.updates))
	copy(out, s.updates)
	return out
}
