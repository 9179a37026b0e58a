package app

import (
	"context"

	"github.com/coiffly/coiffly/internal/domain/model"
	"github.com/coiffly/coiffly/internal/usecase"
)

// SalonFacade aggregates the marketplace use cases behind one surface for
// the HTTP layer and the delivery worker.
type SalonFacade struct {
	auth     *usecase.AuthUseCase
	bookings *usecase.BookingUseCase
	orders   *usecase.OrderUseCase
}

func NewSalonFacade(auth *usecase.AuthUseCase, bookings *usecase.BookingUseCase, orders *usecase.OrderUseCase) *SalonFacade {
	return &SalonFacade{auth: auth, bookings: bookings, orders: orders}
}

func (f *SalonFacade) Register(ctx context.Context, login, password, name string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password, name)
	return token, err
}

func (f *SalonFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *SalonFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *SalonFacade) AssignRole(ctx context.Context, userID int64, role model.Role) error {
	return f.auth.AssignRole(ctx, userID, role)
}

func (f *SalonFacade) RoleOf(ctx context.Context, userID int64) (model.Role, error) {
	profile, err := f.auth.GetByID(ctx, userID)
	if err != nil {
		return model.RoleNone, err
	}
	return profile.Role, nil
}

func (f *SalonFacade) StageBooking(ctx context.Context, draft model.BookingDraft) error {
	return f.bookings.Stage(ctx, draft)
}

func (f *SalonFacade) BookingDraft(ctx context.Context) (*model.BookingDraft, bool) {
	return f.bookings.Draft(ctx)
}

func (f *SalonFacade) ClearBookingDraft(ctx context.Context) {
	f.bookings.ClearDraft(ctx)
}

func (f *SalonFacade) ConfirmBooking(ctx context.Context) (*model.Booking, bool, error) {
	return f.bookings.Confirm(ctx)
}

func (f *SalonFacade) SetBookingStatus(ctx context.Context, id string, status model.BookingStatus) error {
	return f.bookings.SetStatus(ctx, id, status)
}

func (f *SalonFacade) CancelBooking(ctx context.Context, id string) error {
	return f.bookings.Cancel(ctx, id)
}

func (f *SalonFacade) RateBooking(ctx context.Context, id string) error {
	return f.bookings.Rate(ctx, id)
}

func (f *SalonFacade) Bookings(ctx context.Context) []model.Booking {
	return f.bookings.List(ctx)
}

func (f *SalonFacade) ActiveBookings(ctx context.Context) []model.Booking {
	return f.bookings.Active(ctx)
}

func (f *SalonFacade) UpcomingBookings(ctx context.Context) []model.Booking {
	return f.bookings.Upcoming(ctx)
}

func (f *SalonFacade) PastBookings(ctx context.Context) []model.Booking {
	return f.bookings.Past(ctx)
}

func (f *SalonFacade) PlaceOrder(ctx context.Context, products []model.OrderProduct, method model.DeliveryMethod, address string) (*model.Order, error) {
	return f.orders.Place(ctx, products, method, address)
}

func (f *SalonFacade) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	return f.orders.UpdateStatus(ctx, id, status)
}

func (f *SalonFacade) CancelOrder(ctx context.Context, id string) error {
	return f.orders.Cancel(ctx, id)
}

func (f *SalonFacade) Orders(ctx context.Context) []model.Order {
	return f.orders.List(ctx)
}

func (f *SalonFacade) ActiveOrders(ctx context.Context) []model.Order {
	return f.orders.Active(ctx)
}

func (f *SalonFacade) PastOrders(ctx context.Context) []model.Order {
	return f.orders.Past(ctx)
}

// OrdersInTransit feeds the delivery simulator with a bounded batch.
func (f *SalonFacade) OrdersInTransit(ctx context.Context, limit int) []model.Order {
	return f.orders.ActiveBatch(ctx, limit)
}
