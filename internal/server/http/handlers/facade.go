package handlers

import (
	"context"

	"github.com/coiffly/coiffly/internal/domain/model"
)

// AuthFacade describes profile capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password, name string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	AssignRole(ctx context.Context, userID int64, role model.Role) error
	RoleOf(ctx context.Context, userID int64) (model.Role, error)
}

// BookingFacade encapsulates reservation operations exposed via HTTP.
type BookingFacade interface {
	StageBooking(ctx context.Context, draft model.BookingDraft) error
	BookingDraft(ctx context.Context) (*model.BookingDraft, bool)
	ClearBookingDraft(ctx context.Context)
	ConfirmBooking(ctx context.Context) (*model.Booking, bool, error)
	SetBookingStatus(ctx context.Context, id string, status model.BookingStatus) error
	CancelBooking(ctx context.Context, id string) error
	RateBooking(ctx context.Context, id string) error
	Bookings(ctx context.Context) []model.Booking
	ActiveBookings(ctx context.Context) []model.Booking
	UpcomingBookings(ctx context.Context) []model.Booking
	PastBookings(ctx context.Context) []model.Booking
}

// OrderFacade encapsulates product order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, products []model.OrderProduct, method model.DeliveryMethod, address string) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error
	CancelOrder(ctx context.Context, id string) error
	Orders(ctx context.Context) []model.Order
	ActiveOrders(ctx context.Context) []model.Order
	PastOrders(ctx context.Context) []model.Order
}

// SalonFacade aggregates the full set of operations used across handlers
// and middleware.
type SalonFacade interface {
	AuthFacade
	BookingFacade
	OrderFacade
	ParseToken(token string) (int64, error)
}
