package memory

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/coiffly/coiffly/internal/domain/repository"
)

// Module wires in-memory storage and store adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.ProfileRepository { return s.Profiles() },
		func(s *Storage) repository.BookingStore { return s.Bookings() },
		func(s *Storage) repository.OrderStore { return s.Orders() },
	),
)

type storageParams struct {
	fx.In

	Logger *slog.Logger
}

func newStorage(p storageParams) *Storage {
	return New(p.Logger)
}
