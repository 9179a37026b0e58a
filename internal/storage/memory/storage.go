package memory

import (
	"log/slog"

	"github.com/coiffly/coiffly/internal/domain/repository"
)

// Storage acts as store facade backed by process memory. State lives for
// the lifetime of the application and is lost on restart.
type Storage struct {
	logger   *slog.Logger
	bookings *BookingStore
	orders   *OrderStore
	profiles *ProfileRepository
}

// New creates storage with empty stores.
func New(logger *slog.Logger) *Storage {
	logger.Debug("in-memory storage initialized")
	return &Storage{
		logger:   logger,
		bookings: NewBookingStore(),
		orders:   NewOrderStore(),
		profiles: NewProfileRepository(),
	}
}

// Factory methods for domain stores.
func (s *Storage) Bookings() repository.BookingStore {
	return s.bookings
}

func (s *Storage) Orders() repository.OrderStore {
	return s.orders
}

func (s *Storage) Profiles() repository.ProfileRepository {
	return s.profiles
}

var _ repository.Factory = (*Storage)(nil)
