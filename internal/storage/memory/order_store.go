package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/coiffly/coiffly/internal/domain/errors"
	"github.com/coiffly/coiffly/internal/domain/model"
)

// OrderStore keeps product orders. Unlike bookings there is no staging
// step: orders are created the moment they are placed.
type OrderStore struct {
	mu     sync.Mutex
	orders []model.Order

	now   func() time.Time
	newID func() string
}

// NewOrderStore constructs an empty order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Add assigns identity, the preparing status and timestamps, then prepends
// the order so the most recent one comes first.
func (s *OrderStore) Add(ctx context.Context, order model.Order) *model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	order.ID = s.newID()
	order.Status = model.OrderStatusPreparing
	order.CreatedAt = now
	order.UpdatedAt = now

	s.orders = append([]model.Order{order}, s.orders...)

	result := order
	return &result
}

// UpdateStatus overwrites the status of the matching order and refreshes
// UpdatedAt. Unknown ids leave state unchanged; moves the delivery chain
// forbids fail with ErrInvalidTransition.
func (s *OrderStore) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	if !model.ValidOrderStatus(status) {
		return fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if !model.CanTransitionOrder(s.orders[i].Status, status) {
			return fmt.Errorf("%w: %s -> %s", domainErrors.ErrInvalidTransition, s.orders[i].Status, status)
		}
		s.orders[i].Status = status
		s.orders[i].UpdatedAt = s.now()
		return nil
	}

	return nil
}

// Cancel moves the order to cancelled.
func (s *OrderStore) Cancel(ctx context.Context, id string) error {
	return s.UpdateStatus(ctx, id, model.OrderStatusCancelled)
}

// Active returns orders still moving through delivery, in store order.
func (s *OrderStore) Active(ctx context.Context) []model.Order {
	return s.filter(func(o model.Order) bool {
		return !model.IsTerminalOrderStatus(o.Status)
	})
}

// ActiveBatch returns at most limit in-transit orders.
func (s *OrderStore) ActiveBatch(ctx context.Context, limit int) []model.Order {
	active := s.Active(ctx)
	if limit > 0 && len(active) > limit {
		active = active[:limit]
	}
	return active
}

// Past returns delivered and cancelled orders, in store order.
func (s *OrderStore) Past(ctx context.Context) []model.Order {
	return s.filter(func(o model.Order) bool {
		return model.IsTerminalOrderStatus(o.Status)
	})
}

// List returns every order, most recently placed first.
func (s *OrderStore) List(ctx context.Context) []model.Order {
	return s.filter(func(model.Order) bool { return true })
}

func (s *OrderStore) filter(keep func(model.Order) bool) []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if keep(o) {
			result = append(result, o)
		}
	}
	return result
}
