package ports

import (
	"context"

	"repairshop/internal/core/domain/model/history"
)

// HistoryRepository appends audit entries. Entries are never changed.
type HistoryRepository interface {
	Append(ctx context.Context, entry *history.Entry) error
}
