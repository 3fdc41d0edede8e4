package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `SELECT ` + orderColumns + orderFrom
	args := make([]any, 0, 2)
	if query.Status() != "" {
		sql += ` WHERE o.status = ?`
		args = append(args, query.Status())
	}
	sql += ` ORDER BY o.id DESC`
	if query.Limit() > 0 {
		sql += ` LIMIT ?`
		args = append(args, query.Limit())
	}

	var rows []orderRow
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	for _, r := range rows {
		orders = append(orders, r.response())
	}
	return orders, nil
}
