package repository

import (
	"context"

	"github.com/coiffly/coiffly/internal/domain/model"
)

// OrderStore holds the list of product orders. Orders are added directly,
// without a staging step.
type OrderStore interface {
	// Add assigns identity, status and timestamps, then prepends the order.
	Add(ctx context.Context, order model.Order) *model.Order
	// UpdateStatus overwrites the status of an existing order. Unknown ids
	// are ignored; illegal transitions fail with ErrInvalidTransition.
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error
	// Cancel moves the order to cancelled.
	Cancel(ctx context.Context, id string) error
	// Active returns orders still moving through delivery, in store order.
	Active(ctx context.Context) []model.Order
	// ActiveBatch returns at most limit in-transit orders.
	ActiveBatch(ctx context.Context, limit int) []model.Order
	// Past returns delivered and cancelled orders, in store order.
	Past(ctx context.Context) []model.Order
	// List returns every order, most recently placed first.
	List(ctx context.Context) []model.Order
}
