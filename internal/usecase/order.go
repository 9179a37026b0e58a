package usecase

import (
	"context"

	domainErrors "github.com/coiffly/coiffly/internal/domain/errors"
	"github.com/coiffly/coiffly/internal/domain/model"
	"github.com/coiffly/coiffly/internal/domain/repository"
)

// DeliveryPricing maps delivery methods to their price.
type DeliveryPricing struct {
	Relay float64
	Home  float64
}

// PriceFor returns the delivery price for the method.
func (p DeliveryPricing) PriceFor(method model.DeliveryMethod) float64 {
	if method == model.DeliveryHome {
		return p.Home
	}
	return p.Relay
}

// OrderUseCase encapsulates order placement and delivery lifecycle logic.
type OrderUseCase struct {
	orders  repository.OrderStore
	pricing DeliveryPricing
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderStore, pricing DeliveryPricing) *OrderUseCase {
	return &OrderUseCase{orders: orders, pricing: pricing}
}

// Place validates the cart, computes totals and creates the order
// immediately. Orders have no staging step.
func (u *OrderUseCase) Place(ctx context.Context, products []model.OrderProduct, method model.DeliveryMethod, address string) (*model.Order, error) {
	if len(products) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}
	if method != model.DeliveryRelay && method != model.DeliveryHome {
		return nil, domainErrors.ErrInvalidDelivery
	}

	subtotal := 0.0
	for _, p := range products {
		if p.Quantity < 1 {
			return nil, domainErrors.ErrInvalidQuantity
		}
		subtotal += p.Price * float64(p.Quantity)
	}

	deliveryPrice := u.pricing.PriceFor(method)
	order := model.Order{
		Products:      products,
		Delivery:      method,
		Address:       address,
		Subtotal:      subtotal,
		DeliveryPrice: deliveryPrice,
		Total:         subtotal + deliveryPrice,
	}

	return u.orders.Add(ctx, order), nil
}

// UpdateStatus moves an order through the delivery lifecycle.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	return u.orders.UpdateStatus(ctx, id, status)
}

// Cancel moves an order to cancelled.
func (u *OrderUseCase) Cancel(ctx context.Context, id string) error {
	return u.orders.Cancel(ctx, id)
}

// Active returns orders still moving through delivery.
func (u *OrderUseCase) Active(ctx context.Context) []model.Order {
	return u.orders.Active(ctx)
}

// ActiveBatch returns at most limit in-transit orders.
func (u *OrderUseCase) ActiveBatch(ctx context.Context, limit int) []model.Order {
	return u.orders.ActiveBatch(ctx, limit)
}

// Past returns delivered and cancelled orders.
func (u *OrderUseCase) Past(ctx context.Context) []model.Order {
	return u.orders.Past(ctx)
}

// List returns every order.
func (u *OrderUseCase) List(ctx context.Context) []model.Order {
	return u.orders.List(ctx)
}
