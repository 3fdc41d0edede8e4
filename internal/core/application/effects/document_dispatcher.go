package effects

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/ports"
	"repairshop/internal/pkg/logger"
)

// DocumentDispatcher renders the printable document of an order in the
// background. Orders whose render failed are remembered until a retry
// succeeds.
type DocumentDispatcher struct {
	source   ports.OrderDocumentSource
	renderer ports.DocumentRenderer
	queue    Submitter
	clock    kernel.Clock
	logger   logger.Logger

	mu      sync.Mutex
	pending map[int64]struct{}
}

func NewDocumentDispatcher(
	source ports.OrderDocumentSource,
	renderer ports.DocumentRenderer,
	queue Submitter,
	clock kernel.Clock,
	log logger.Logger,
) *DocumentDispatcher {
	return &DocumentDispatcher{
		source:   source,
		renderer: renderer,
		queue:    queue,
		clock:    clock,
		logger:   log.With(logger.String("component", "document_dispatcher")),
		pending:  make(map[int64]struct{}),
	}
}

// Publish queues a render. When the queue is full the order is kept for the
// retry job instead.
func (d *DocumentDispatcher) Publish(orderID int64) {
	err := d.queue.Submit(fmt.Sprintf("document order %d", orderID), func(ctx context.Context) error {
		return d.render(ctx, orderID)
	})
	if err != nil {
		d.logger.Warn("document render deferred", logger.Int64("order_id", orderID), logger.Error(err))
		d.markPending(orderID)
	}
}

// Render loads and renders one order now and returns where it was written.
func (d *DocumentDispatcher) Render(ctx context.Context, orderID int64) (string, error) {
	doc, err := d.source.LoadOrderDocument(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("load document of order %d: %w", orderID, err)
	}
	doc.GeneratedAt = d.clock.Now()

	path, err := d.renderer.Render(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("render document of order %d: %w", orderID, err)
	}
	return path, nil
}

func (d *DocumentDispatcher) render(ctx context.Context, orderID int64) error {
	path, err := d.Render(ctx, orderID)
	if err != nil {
		d.markPending(orderID)
		return err
	}
	d.clearPending(orderID)
	d.logger.Debug("document rendered", logger.Int64("order_id", orderID), logger.String("path", path))
	return nil
}

// RetryPending renders every order whose previous render failed, in order
// number order. It returns how many succeeded and the joined failures.
func (d *DocumentDispatcher) RetryPending(ctx context.Context) (int, error) {
	var (
		done   int
		failed error
	)
	for _, id := range d.Pending() {
		if err := ctx.Err(); err != nil {
			return done, errors.Join(failed, err)
		}
		if err := d.render(ctx, id); err != nil {
			failed = errors.Join(failed, err)
			continue
		}
		done++
	}
	return done, failed
}

// Pending lists the orders waiting for a retry.
func (d *DocumentDispatcher) Pending() []int64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	ids := make([]int64, 0, len(d.pending))
	for id := range d.pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (d *DocumentDispatcher) markPending(orderID int64) {
	d.mu.Lock()
	d.pending[orderID] = struct{}{}
	d.mu.Unlock()
}

func (d *DocumentDispatcher) clearPending(orderID int64) {
	d.mu.Lock()
	delete(d.pending, orderID)
	d.mu.Unlock()
}
