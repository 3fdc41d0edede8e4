package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HistoryEntryResponse struct {
	ID        uuid.UUID
	OrderID   int64
	Actor     string
	Action    string
	Note      string
	CreatedAt time.Time
}

type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError when the order does not exist. An order
// without recorded entries yields an empty slice.
func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]HistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := orderExists(ctx, h.db, query.OrderID()); err != nil {
		return nil, err
	}

	var entries []HistoryEntryResponse
	err := h.db.WithContext(ctx).
		Raw(`SELECT id, order_id, actor, action, note, created_at
			FROM order_history
			WHERE order_id = ?
			ORDER BY created_at, id`, query.OrderID()).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []HistoryEntryResponse{}
	}
	return entries, nil
}
