package repository

import (
	"context"

	"github.com/coiffly/coiffly/internal/domain/model"
)

// BookingStore is the single source of truth for the draft in progress and
// the list of confirmed bookings.
type BookingStore interface {
	// StageDraft replaces any existing draft unconditionally.
	StageDraft(ctx context.Context, draft model.BookingDraft)
	// Draft returns the staged draft, if any.
	Draft(ctx context.Context) (*model.BookingDraft, bool)
	// ClearDraft removes the staged draft. Idempotent.
	ClearDraft(ctx context.Context)
	// ConfirmDraft promotes the draft to a confirmed booking. With no draft
	// staged it is inert and reports false.
	ConfirmDraft(ctx context.Context) (*model.Booking, bool, error)
	// SetStatus overwrites the status of an existing booking. Unknown ids
	// are ignored; illegal transitions fail with ErrInvalidTransition.
	SetStatus(ctx context.Context, id string, status model.BookingStatus) error
	// Cancel moves the booking to cancelled.
	Cancel(ctx context.Context, id string) error
	// MarkRated records that the client left feedback. Unknown ids are ignored.
	MarkRated(ctx context.Context, id string) error
	// Active returns bookings currently underway, in store order.
	Active(ctx context.Context) []model.Booking
	// Upcoming returns pending and confirmed bookings, soonest first.
	Upcoming(ctx context.Context) []model.Booking
	// Past returns completed and cancelled bookings, most recent first.
	Past(ctx context.Context) []model.Booking
	// List returns every booking, most recently confirmed first.
	List(ctx context.Context) []model.Booking
}
