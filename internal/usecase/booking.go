package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/coiffly/coiffly/internal/domain/errors"
	"github.com/coiffly/coiffly/internal/domain/model"
	"github.com/coiffly/coiffly/internal/domain/repository"
)

// BookingUseCase encapsulates the reservation lifecycle logic on top of the
// booking store.
type BookingUseCase struct {
	bookings repository.BookingStore
	homeFee  float64
}

// NewBookingUseCase constructs BookingUseCase. homeFee is the surcharge
// applied to at-home services.
func NewBookingUseCase(bookings repository.BookingStore, homeFee float64) *BookingUseCase {
	return &BookingUseCase{bookings: bookings, homeFee: homeFee}
}

// Stage validates the draft, prices it and stages it, replacing any draft
// staged before. For at-home services the fee is folded into the service
// price, so the staged draft already carries the final total.
func (u *BookingUseCase) Stage(ctx context.Context, draft model.BookingDraft) error {
	if draft.Inspiration.Title == "" || draft.Coiffeur.ID == "" || draft.Date.IsZero() || draft.Time == "" {
		return domainErrors.ErrIncompleteBooking
	}

	switch draft.Location {
	case model.LocationSalon:
		draft.Address = ""
		draft.ServiceFee = 0
	case model.LocationDomicile:
		if strings.TrimSpace(draft.Address) == "" {
			return domainErrors.ErrIncompleteBooking
		}
		if draft.ServiceFee < 0 {
			return domainErrors.ErrIncompleteBooking
		}
		if draft.ServiceFee == 0 {
			draft.ServiceFee = u.homeFee
		}
		draft.Inspiration.Price += draft.ServiceFee
	default:
		return domainErrors.ErrIncompleteBooking
	}

	if draft.DateDisplay == "" {
		draft.DateDisplay = draft.Date.Format(model.DateFormat)
	}

	u.bookings.StageDraft(ctx, draft)
	return nil
}

// Draft returns the staged draft, if any.
func (u *BookingUseCase) Draft(ctx context.Context) (*model.BookingDraft, bool) {
	return u.bookings.Draft(ctx)
}

// ClearDraft abandons the staged draft.
func (u *BookingUseCase) ClearDraft(ctx context.Context) {
	u.bookings.ClearDraft(ctx)
}

// Confirm promotes the staged draft into a confirmed booking. Reports false
// when nothing is staged.
func (u *BookingUseCase) Confirm(ctx context.Context) (*model.Booking, bool, error) {
	return u.bookings.ConfirmDraft(ctx)
}

// SetStatus moves a booking through its lifecycle.
func (u *BookingUseCase) SetStatus(ctx context.Context, id string, status model.BookingStatus) error {
	return u.bookings.SetStatus(ctx, id, status)
}

// Cancel moves a booking to cancelled.
func (u *BookingUseCase) Cancel(ctx context.Context, id string) error {
	return u.bookings.Cancel(ctx, id)
}

// Rate records that the client left feedback for a finished booking.
func (u *BookingUseCase) Rate(ctx context.Context, id string) error {
	return u.bookings.MarkRated(ctx, id)
}

// Active returns bookings currently underway.
func (u *BookingUseCase) Active(ctx context.Context) []model.Booking {
	return u.bookings.Active(ctx)
}

// Upcoming returns pending and confirmed bookings, soonest first.
func (u *BookingUseCase) Upcoming(ctx context.Context) []model.Booking {
	return u.bookings.Upcoming(ctx)
}

// Past returns finished bookings, most recent first.
func (u *BookingUseCase) Past(ctx context.Context) []model.Booking {
	return u.bookings.Past(ctx)
}

// List returns every booking.
func (u *BookingUseCase) List(ctx context.Context) []model.Booking {
	return u.bookings.List(ctx)
}
