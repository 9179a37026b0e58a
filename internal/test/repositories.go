package test

import (
	"context"

	domainErrors "github.com/coiffly/coiffly/internal/domain/errors"
	"github.com/coiffly/coiffly/internal/domain/model"
)

// ProfileRepositoryStub stores profiles in-memory for tests.
type ProfileRepositoryStub struct {
	Profiles map[string]*model.Profile
	ByID     map[int64]*model.Profile
	Next     int64
	Err      error
}

// NewProfileRepositoryStub constructs stub repository with initialized maps.
func NewProfileRepositoryStub() *ProfileRepositoryStub {
	return &ProfileRepositoryStub{
		Profiles: make(map[string]*model.Profile),
		ByID:     make(map[int64]*model.Profile),
		Next:     1,
	}
}

// Create registers profile unless already exists or stub has explicit error.
func (s *ProfileRepositoryStub) Create(ctx context.Context, login, passwordHash, name string) (*model.Profile, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Profiles == nil {
		s.Profiles = make(map[string]*model.Profile)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Profile)
	}
	if _, exists := s.Profiles[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	profile := &model.Profile{ID: s.Next, Login: login, PasswordHash: passwordHash, Name: name, Role: model.RoleNone}
	s.Next++
	s.Profiles[login] = profile
	s.ByID[profile.ID] = profile
	return profile, nil
}

// GetByLogin fetches profile by login or returns not found.
func (s *ProfileRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.Profile, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if profile, ok := s.Profiles[login]; ok {
		return profile, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches profile by identifier or returns not found.
func (s *ProfileRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Profile, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if profile, ok := s.ByID[id]; ok {
		return profile, nil
	}
	return nil, domainErrors.ErrNotFound
}

// SetRole records the role on the stored profile.
func (s *ProfileRepositoryStub) SetRole(ctx context.Context, id int64, role model.Role) error {
	if s.Err != nil {
		return s.Err
	}
	profile, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	profile.Role = role
	return nil
}

// BookingStoreStub allows tests to customize booking store behaviour.
type BookingStoreStub struct {
	StageFn   func(context.Context, model.BookingDraft)
	ConfirmFn func(context.Context) (*model.Booking, bool, error)
	StatusFn  func(context.Context, string, model.BookingStatus) error
	RatedFn   func(context.Context, string) error

	Staged   []model.BookingDraft
	Current  *model.BookingDraft
	Bookings []model.Booking
	Statuses []BookingStatusCall
	Cleared  int
}

// BookingStatusCall stores information about SetStatus invocations.
type BookingStatusCall struct {
	ID     string
	Status model.BookingStatus
}

// StageDraft tracks staged drafts.
func (s *BookingStoreStub) StageDraft(ctx context.Context, draft model.BookingDraft) {
	s.Staged = append(s.Staged, draft)
	s.Current = &draft
	if s.StageFn != nil {
		s.StageFn(ctx, draft)
	}
}

// Draft returns the most recently staged draft.
func (s *BookingStoreStub) Draft(ctx context.Context) (*model.BookingDraft, bool) {
	if s.Current == nil {
		return nil, false
	}
	draft := *s.Current
	return &draft, true
}

// ClearDraft counts invocations and drops the staged draft.
func (s *BookingStoreStub) ClearDraft(ctx context.Context) {
	s.Cleared++
	s.Current = nil
}

// ConfirmDraft delegates to override or promotes the staged draft.
func (s *BookingStoreStub) ConfirmDraft(ctx context.Context) (*model.Booking, bool, error) {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx)
	}
	if s.Current == nil {
		return nil, false, nil
	}
	booking := model.Booking{BookingDraft: *s.Current, ID: "stub", Status: model.BookingStatusConfirmed}
	s.Bookings = append([]model.Booking{booking}, s.Bookings...)
	s.Current = nil
	return &booking, true, nil
}

// SetStatus records status updates.
func (s *BookingStoreStub) SetStatus(ctx context.Context, id string, status model.BookingStatus) error {
	if s.StatusFn != nil {
		return s.StatusFn(ctx, id, status)
	}
	s.Statuses = append(s.Statuses, BookingStatusCall{ID: id, Status: status})
	return nil
}

// Cancel records a cancellation as a status update.
func (s *BookingStoreStub) Cancel(ctx context.Context, id string) error {
	return s.SetStatus(ctx, id, model.BookingStatusCancelled)
}

// MarkRated delegates to override when provided.
func (s *BookingStoreStub) MarkRated(ctx context.Context, id string) error {
	if s.RatedFn != nil {
		return s.RatedFn(ctx, id)
	}
	return nil
}

// Active returns configured bookings.
func (s *BookingStoreStub) Active(ctx context.Context) []model.Booking { return s.Bookings }

// Upcoming returns configured bookings.
func (s *BookingStoreStub) Upcoming(ctx context.Context) []model.Booking { return s.Bookings }

// Past returns configured bookings.
func (s *BookingStoreStub) Past(ctx context.Context) []model.Booking { return s.Bookings }

// List returns configured bookings.
func (s *BookingStoreStub) List(ctx context.Context) []model.Booking { return s.Bookings }

// OrderStoreStub allows tests to customize order store behaviour.
type OrderStoreStub struct {
	AddFn    func(context.Context, model.Order) *model.Order
	StatusFn func(context.Context, string, model.OrderStatus) error

	Added    []model.Order
	Orders   []model.Order
	Statuses []OrderStatusCall
}

// OrderStatusCall stores information about UpdateStatus invocations.
type OrderStatusCall struct {
	ID     string
	Status model.OrderStatus
}

// Add tracks placed orders and returns them with a stub identity.
func (s *OrderStoreStub) Add(ctx context.Context, order model.Order) *model.Order {
	if s.AddFn != nil {
		return s.AddFn(ctx, order)
	}
	order.ID = "stub"
	order.Status = model.OrderStatusPreparing
	s.Added = append(s.Added, order)
	s.Orders = append([]model.Order{order}, s.Orders...)
	result := order
	return &result
}

// UpdateStatus records status updates.
func (s *OrderStoreStub) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	if s.StatusFn != nil {
		return s.StatusFn(ctx, id, status)
	}
	s.Statuses = append(s.Statuses, OrderStatusCall{ID: id, Status: status})
	return nil
}

// Cancel records a cancellation as a status update.
func (s *OrderStoreStub) Cancel(ctx context.Context, id string) error {
	return s.UpdateStatus(ctx, id, model.OrderStatusCancelled)
}

// Active returns configured orders.
func (s *OrderStoreStub) Active(ctx context.Context) []model.Order { return s.Orders }

// ActiveBatch returns at most limit configured orders.
func (s *OrderStoreStub) ActiveBatch(ctx context.Context, limit int) []model.Order {
	if limit > 0 && len(s.Orders) > limit {
		return s.Orders[:limit]
	}
	return s.Orders
}

// Past returns configured orders.
func (s *OrderStoreStub) Past(ctx context.Context) []model.Order { return s.Orders }

// List returns configured orders.
func (s *OrderStoreStub) List(ctx context.Context) []model.Order { return s.Orders }
