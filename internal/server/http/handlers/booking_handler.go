package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/coiffly/coiffly/internal/domain/errors"
	"github.com/coiffly/coiffly/internal/domain/model"
	"github.com/coiffly/coiffly/internal/server/http/dto"
)

// BookingHandler manages the reservation lifecycle endpoints.
type BookingHandler struct {
	facade BookingFacade
}

// NewBookingHandler constructs BookingHandler.
func NewBookingHandler(facade BookingFacade) *BookingHandler {
	return &BookingHandler{facade: facade}
}

// StageDraft handles POST /api/bookings/draft.
func (h *BookingHandler) StageDraft(c *gin.Context) {
	var req dto.BookingDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	date, err := time.Parse(model.DateFormat, req.Date)
	if err != nil {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	draft := model.BookingDraft{
		Inspiration: model.Inspiration(req.Inspiration),
		Coiffeur:    model.Coiffeur(req.Coiffeur),
		Date:        date,
		Time:        req.Time,
		Location:    model.Location(req.Location),
		Address:     req.Address,
		ServiceFee:  req.ServiceFee,
	}

	if err := h.facade.StageBooking(c.Request.Context(), draft); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrIncompleteBooking):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

// Draft handles GET /api/bookings/draft.
func (h *BookingHandler) Draft(c *gin.Context) {
	draft, ok := h.facade.BookingDraft(c.Request.Context())
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.FromBookingDraft(*draft))
}

// ClearDraft handles DELETE /api/bookings/draft.
func (h *BookingHandler) ClearDraft(c *gin.Context) {
	h.facade.ClearBookingDraft(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// Confirm handles POST /api/bookings/confirm.
func (h *BookingHandler) Confirm(c *gin.Context) {
	booking, ok, err := h.facade.ConfirmBooking(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusCreated, dto.FromBooking(*booking))
}

// SetStatus handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) SetStatus(c *gin.Context) {
	var req dto.BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	status := model.BookingStatus(req.Status)
	if !model.ValidBookingStatus(status) {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	if err := h.facade.SetBookingStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		bookingLifecycleStatus(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Cancel handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.facade.CancelBooking(c.Request.Context(), c.Param("id")); err != nil {
		bookingLifecycleStatus(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Rate handles POST /api/bookings/:id/rating.
func (h *BookingHandler) Rate(c *gin.Context) {
	if err := h.facade.RateBooking(c.Request.Context(), c.Param("id")); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

// List handles GET /api/bookings.
func (h *BookingHandler) List(c *gin.Context) {
	respondBookings(c, h.facade.Bookings(c.Request.Context()))
}

// Active handles GET /api/bookings/active.
func (h *BookingHandler) Active(c *gin.Context) {
	respondBookings(c, h.facade.ActiveBookings(c.Request.Context()))
}

// Upcoming handles GET /api/bookings/upcoming.
func (h *BookingHandler) Upcoming(c *gin.Context) {
	respondBookings(c, h.facade.UpcomingBookings(c.Request.Context()))
}

// Past handles GET /api/bookings/past.
func (h *BookingHandler) Past(c *gin.Context) {
	respondBookings(c, h.facade.PastBookings(c.Request.Context()))
}

func respondBookings(c *gin.Context, bookings []model.Booking) {
	if len(bookings) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	response := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		response = append(response, dto.FromBooking(b))
	}
	c.JSON(http.StatusOK, response)
}

func bookingLifecycleStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrInvalidStatus):
		c.Status(http.StatusUnprocessableEntity)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
