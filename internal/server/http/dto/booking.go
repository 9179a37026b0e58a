package dto

import (
	"time"

	"github.com/coiffly/coiffly/internal/domain/model"
)

// InspirationPayload describes the hairstyle a booking is made for.
type InspirationPayload struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Image string  `json:"image,omitempty"`
	Price float64 `json:"price"`
}

// CoiffeurPayload identifies the professional the booking is made with.
type CoiffeurPayload struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// BookingDraftRequest carries the reservation details from checkout.
type BookingDraftRequest struct {
	Inspiration InspirationPayload `json:"inspiration"`
	Coiffeur    CoiffeurPayload    `json:"coiffeur"`
	Date        string             `json:"date"`
	Time        string             `json:"time"`
	Location    string             `json:"location"`
	Address     string             `json:"address,omitempty"`
	ServiceFee  float64            `json:"service_fee,omitempty"`
}

// BookingStatusRequest moves a booking along its lifecycle.
type BookingStatusRequest struct {
	Status string `json:"status"`
}

// BookingDraftResponse mirrors the staged draft back to the client.
type BookingDraftResponse struct {
	Inspiration InspirationPayload `json:"inspiration"`
	Coiffeur    CoiffeurPayload    `json:"coiffeur"`
	Date        string             `json:"date"`
	DateDisplay string             `json:"date_display"`
	Time        string             `json:"time"`
	Location    string             `json:"location"`
	Address     string             `json:"address,omitempty"`
	ServiceFee  float64            `json:"service_fee,omitempty"`
}

// BookingResponse represents a confirmed booking.
type BookingResponse struct {
	ID          string             `json:"id"`
	Inspiration InspirationPayload `json:"inspiration"`
	Coiffeur    CoiffeurPayload    `json:"coiffeur"`
	Date        string             `json:"date"`
	DateDisplay string             `json:"date_display"`
	Time        string             `json:"time"`
	Location    string             `json:"location"`
	Address     string             `json:"address,omitempty"`
	ServiceFee  float64            `json:"service_fee,omitempty"`
	Status      string             `json:"status"`
	Rated       bool               `json:"rated"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// FromBookingDraft converts the domain draft into its transport form.
func FromBookingDraft(draft model.BookingDraft) BookingDraftResponse {
	return BookingDraftResponse{
		Inspiration: InspirationPayload(draft.Inspiration),
		Coiffeur:    CoiffeurPayload(draft.Coiffeur),
		Date:        draft.Date.Format(model.DateFormat),
		DateDisplay: draft.DateDisplay,
		Time:        draft.Time,
		Location:    string(draft.Location),
		Address:     draft.Address,
		ServiceFee:  draft.ServiceFee,
	}
}

// FromBooking converts the domain booking into its transport form.
func FromBooking(booking model.Booking) BookingResponse {
	return BookingResponse{
		ID:          booking.ID,
		Inspiration: InspirationPayload(booking.Inspiration),
		Coiffeur:    CoiffeurPayload(booking.Coiffeur),
		Date:        booking.Date.Format(model.DateFormat),
		DateDisplay: booking.DateDisplay,
		Time:        booking.Time,
		Location:    string(booking.Location),
		Address:     booking.Address,
		ServiceFee:  booking.ServiceFee,
		Status:      string(booking.Status),
		Rated:       booking.Rated,
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}
}
