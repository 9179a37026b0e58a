package model

import "time"

// BookingStatus describes the reservation lifecycle.
type BookingStatus string

const (
	BookingStatusPending           BookingStatus = "pending"
	BookingStatusConfirmed         BookingStatus = "confirmed"
	BookingStatusHairdresserComing BookingStatus = "hairdresser_coming"
	BookingStatusInProgress        BookingStatus = "in_progress"
	BookingStatusCompleted         BookingStatus = "completed"
	BookingStatusCancelled         BookingStatus = "cancelled"
)

// Location tells where the service takes place.
type Location string

const (
	LocationSalon    Location = "salon"
	LocationDomicile Location = "domicile"
)

// Time format constants used across drafts and views.
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// bookingTransitions lists the legal moves out of each status.
// Terminal statuses have no entries.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:           {BookingStatusConfirmed, BookingStatusHairdresserComing, BookingStatusInProgress, BookingStatusCancelled},
	BookingStatusConfirmed:         {BookingStatusHairdresserComing, BookingStatusInProgress, BookingStatusCancelled},
	BookingStatusHairdresserComing: {BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusInProgress:        {BookingStatusCompleted, BookingStatusCancelled},
}

// CanTransitionBooking reports whether a booking may move from one status
// to another. Writing the same status again is allowed.
func CanTransitionBooking(from, to BookingStatus) bool {
	if from == to {
		return true
	}
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalBookingStatus reports whether no further transitions exist.
func IsTerminalBookingStatus(s BookingStatus) bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// ValidBookingStatus reports whether the value belongs to the enum.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusHairdresserComing,
		BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Inspiration references the service the client picked from the catalog.
type Inspiration struct {
	ID    string
	Title string
	Image string
	Price float64
}

// Coiffeur references the hairdresser performing the service.
type Coiffeur struct {
	ID     string
	Name   string
	Avatar string
}

// BookingDraft is an unconfirmed reservation under construction.
// It has no identity and no status until confirmed.
type BookingDraft struct {
	Inspiration Inspiration
	Coiffeur    Coiffeur
	Date        time.Time // calendar day, zero clock
	DateDisplay string
	Time        string // HH:MM, 24h
	Location    Location
	Address     string
	ServiceFee  float64
}

// Booking is a confirmed reservation. Core service fields are frozen at
// confirmation time; only Status, Rated and UpdatedAt mutate afterwards.
type Booking struct {
	BookingDraft

	ID        string
	Status    BookingStatus
	Rated     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
