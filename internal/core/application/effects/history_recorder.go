package effects

import (
	"context"
	"fmt"

	"repairshop/internal/core/domain/model/history"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/ports"
	"repairshop/internal/pkg/logger"
)

// HistoryRecorder appends order history entries in the background. The entry
// is stamped when Record is called, not when the worker gets to it.
type HistoryRecorder struct {
	repo   ports.HistoryRepository
	queue  Submitter
	clock  kernel.Clock
	logger logger.Logger
}

func NewHistoryRecorder(repo ports.HistoryRepository, queue Submitter, clock kernel.Clock, log logger.Logger) *HistoryRecorder {
	return &HistoryRecorder{
		repo:   repo,
		queue:  queue,
		clock:  clock,
		logger: log.With(logger.String("component", "history_recorder")),
	}
}

func (r *HistoryRecorder) Record(orderID int64, actor string, action history.Action, note string) {
	entry, err := history.NewEntry(orderID, actor, action, note, r.clock.Now())
	if err != nil {
		r.logger.Error("invalid history entry",
			logger.Int64("order_id", orderID), logger.String("action", string(action)), logger.Error(err))
		return
	}

	name := fmt.Sprintf("history %s order %d", action, orderID)
	err = r.queue.Submit(name, func(ctx context.Context) error {
		return r.repo.Append(ctx, entry)
	})
	if err != nil {
		r.logger.Warn("history entry dropped",
			logger.Int64("order_id", orderID), logger.String("action", string(action)), logger.Error(err))
	}
}
