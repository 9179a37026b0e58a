package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/coiffly/coiffly/internal/domain/errors"
	"github.com/coiffly/coiffly/internal/domain/model"
)

// BookingStore keeps the draft in progress and the list of confirmed
// bookings. The mutex is the concurrency boundary once the store is shared
// with the HTTP surface; every operation is atomic under it.
type BookingStore struct {
	mu       sync.Mutex
	draft    *model.BookingDraft
	bookings []model.Booking

	now   func() time.Time
	newID func() string
}

// NewBookingStore constructs an empty booking store.
func NewBookingStore() *BookingStore {
	return &BookingStore{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// StageDraft replaces any existing draft unconditionally. A previously
// staged draft that was never confirmed is discarded.
func (s *BookingStore) StageDraft(ctx context.Context, draft model.BookingDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = &draft
}

// Draft returns a copy of the staged draft, if any.
func (s *BookingStore) Draft(ctx context.Context) (*model.BookingDraft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return nil, false
	}
	draft := *s.draft
	return &draft, true
}

// ClearDraft removes the staged draft without creating a booking. Idempotent.
func (s *BookingStore) ClearDraft(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
}

// ConfirmDraft promotes the staged draft to a confirmed booking: it gets a
// fresh identity, status confirmed and both timestamps set to now, and is
// prepended to the list. The draft is cleared under the same lock, so no
// state exists where a stale draft and the new booking coexist. With no
// draft staged the call is inert and reports false.
func (s *BookingStore) ConfirmDraft(ctx context.Context) (*model.Booking, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return nil, false, nil
	}

	now := s.now()
	booking := model.Booking{
		BookingDraft: *s.draft,
		ID:           s.newID(),
		Status:       model.BookingStatusConfirmed,
		Rated:        false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.bookings = append([]model.Booking{booking}, s.bookings...)
	s.draft = nil

	result := booking
	return &result, true, nil
}

// SetStatus overwrites the status of the matching booking and refreshes
// UpdatedAt. Unknown ids leave state unchanged; moves the transition table
// forbids fail with ErrInvalidTransition.
func (s *BookingStore) SetStatus(ctx context.Context, id string, status model.BookingStatus) error {
	if !model.ValidBookingStatus(status) {
		return fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		if !model.CanTransitionBooking(s.bookings[i].Status, status) {
			return fmt.Errorf("%w: %s -> %s", domainErrors.ErrInvalidTransition, s.bookings[i].Status, status)
		}
		s.bookings[i].Status = status
		s.bookings[i].UpdatedAt = s.now()
		return nil
	}

	return nil
}

// Cancel moves the booking to cancelled.
func (s *BookingStore) Cancel(ctx context.Context, id string) error {
	return s.SetStatus(ctx, id, model.BookingStatusCancelled)
}

// MarkRated records client feedback on the matching booking. Unknown ids
// leave state unchanged.
func (s *BookingStore) MarkRated(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		s.bookings[i].Rated = true
		s.bookings[i].UpdatedAt = s.now()
		return nil
	}

	return nil
}

// Active returns bookings currently underway, in store order. These are few
// and time-sensitive, so no extra sort is applied.
func (s *BookingStore) Active(ctx context.Context) []model.Booking {
	return s.filter(func(b model.Booking) bool {
		return b.Status == model.BookingStatusHairdresserComing || b.Status == model.BookingStatusInProgress
	})
}

// Upcoming returns pending and confirmed bookings, soonest first. Equal
// dates tie-break on the time string, which sorts correctly for zero-padded
// 24h times.
func (s *BookingStore) Upcoming(ctx context.Context) []model.Booking {
	upcoming := s.filter(func(b model.Booking) bool {
		return b.Status == model.BookingStatusPending || b.Status == model.BookingStatusConfirmed
	})
	sort.SliceStable(upcoming, func(i, j int) bool {
		if !upcoming[i].Date.Equal(upcoming[j].Date) {
			return upcoming[i].Date.Before(upcoming[j].Date)
		}
		return upcoming[i].Time < upcoming[j].Time
	})
	return upcoming
}

// Past returns completed and cancelled bookings, most recent first.
func (s *BookingStore) Past(ctx context.Context) []model.Booking {
	past := s.filter(func(b model.Booking) bool {
		return b.Status == model.BookingStatusCompleted || b.Status == model.BookingStatusCancelled
	})
	sort.SliceStable(past, func(i, j int) bool {
		if !past[i].Date.Equal(past[j].Date) {
			return past[i].Date.After(past[j].Date)
		}
		return past[i].Time > past[j].Time
	})
	return past
}

// List returns every booking, most recently confirmed first.
func (s *BookingStore) List(ctx context.Context) []model.Booking {
	return s.filter(func(model.Booking) bool { return true })
}

// filter copies matching bookings so callers never observe store mutations.
func (s *BookingStore) filter(keep func(model.Booking) bool) []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if keep(b) {
			result = append(result, b)
		}
	}
	return result
}
