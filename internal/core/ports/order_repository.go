package ports

import (
	"context"

	"repairshop/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates.
type OrderRepository interface {
	// Add inserts a new order and assigns its number.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the full row. Concurrent updates are last-write-wins.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns ObjectNotFoundError for an unknown number.
	Get(ctx context.Context, id int64) (*order.Order, error)
}
