package usecase

import (
	"go.uber.org/fx"

	"github.com/coiffly/coiffly/internal/config"
	"github.com/coiffly/coiffly/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	newBookingUseCase,
	newOrderUseCase,
)

type bookingParams struct {
	fx.In

	Bookings repository.BookingStore
	Config   *config.Config
}

func newBookingUseCase(p bookingParams) *BookingUseCase {
	return NewBookingUseCase(p.Bookings, p.Config.HomeServiceFee)
}

type orderParams struct {
	fx.In

	Orders repository.OrderStore
	Config *config.Config
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, DeliveryPricing{
		Relay: p.Config.DeliveryRelayPrice,
		Home:  p.Config.DeliveryHomePrice,
	})
}
