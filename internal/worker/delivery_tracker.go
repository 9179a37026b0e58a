package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/coiffly/coiffly/internal/domain/model"
)

// SalonFacade exposes the subset of application functionality required by the worker.
type SalonFacade interface {
	OrdersInTransit(ctx context.Context, limit int) []model.Order
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error
}

// DeliveryTracker simulates the carrier: it periodically picks in-transit
// orders and advances each one step along the delivery chain. The real app
// has no server-side carrier feed, so progression is driven by this clock.
type DeliveryTracker struct {
	facade       SalonFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDeliveryTracker constructs the delivery simulation worker pool.
func NewDeliveryTracker(facade SalonFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *DeliveryTracker {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &DeliveryTracker{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (t *DeliveryTracker) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel

	for i := 0; i < t.workers; i++ {
		t.wg.Add(1)
		go t.worker(runCtx)
	}

	t.wg.Add(1)
	go t.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (t *DeliveryTracker) Stop() {
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.mu.Unlock()

	t.wg.Wait()
}

func (t *DeliveryTracker) dispatch(ctx context.Context) {
	defer t.wg.Done()
	defer close(t.jobs)
	ticker := time.NewTicker(t.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.fetchAndDispatch(ctx)
		}
	}
}

func (t *DeliveryTracker) fetchAndDispatch(ctx context.Context) {
	for _, order := range t.facade.OrdersInTransit(ctx, t.batchSize) {
		select {
		case <-ctx.Done():
			return
		case t.jobs <- order:
		}
	}
}

func (t *DeliveryTracker) worker(ctx context.Context) {
	defer t.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-t.jobs:
			if !ok {
				return
			}
			t.advance(ctx, order)
		}
	}
}

// advance moves the order exactly one step. Orders that reached a terminal
// status between dispatch and handling fall out on the transition check.
func (t *DeliveryTracker) advance(ctx context.Context, order model.Order) {
	next, ok := model.NextDeliveryStatus(order.Status)
	if !ok {
		return
	}

	if err := t.facade.UpdateOrderStatus(ctx, order.ID, next); err != nil {
		t.logger.Warn("advance delivery failed",
			slog.String("order", order.ID),
			slog.String("status", string(next)),
			slog.String("error", err.Error()),
		)
		return
	}

	t.logger.Info("delivery advanced",
		slog.String("order", order.ID),
		slog.String("status", string(next)),
	)
}
