package commands

import (
	"context"
	"fmt"
	"time"

	"repairshop/internal/core/domain/model/history"
	"repairshop/internal/core/domain/model/order"
)

// TransitionOrderCommandHandler applies finish, pickup, reopen, suspend and
// duplicate. A rejected action leaves the order as stored.
//
// Example:
//
//	cmd, _ := NewTransitionOrderCommand("taller", 42, ActionPickup, "")
//	_, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // the order is not finished yet
//	}
type TransitionOrderCommandHandler struct {
	uowFactory UoWFactory
	deps       OrderCollaborators
}

func NewTransitionOrderCommandHandler(uowFactory UoWFactory, deps OrderCollaborators) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		deps:       deps,
	}
}

// Handle returns the number of the order the action left the caller on: the
// copy for duplicate, the same order otherwise.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, command TransitionOrderCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	aggregate, err := orders.Get(ctx, command.OrderID())
	if err != nil {
		return 0, err
	}
	now := h.deps.Clock.Now()

	if command.Action() == ActionDuplicate {
		duplicate, err := aggregate.Duplicate(now)
		if err != nil {
			return 0, err
		}
		if err = orders.Add(ctx, duplicate); err != nil {
			return 0, err
		}
		h.deps.afterCommit(uow, aggregate.ID(), command.Actor(), history.Duplicated,
			fmt.Sprintf("Copiada en la orden %d", duplicate.ID()))
		h.deps.afterCommit(uow, duplicate.ID(), command.Actor(), history.Created,
			fmt.Sprintf("Copia de la orden %d", aggregate.ID()))
		if err = uow.Commit(ctx); err != nil {
			return 0, err
		}
		return duplicate.ID(), nil
	}

	action, err := apply(aggregate, command, now)
	if err != nil {
		return 0, err
	}
	if err = orders.Update(ctx, aggregate); err != nil {
		return 0, err
	}

	h.deps.afterCommit(uow, aggregate.ID(), command.Actor(), action, command.Note())

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}

func apply(aggregate *order.Order, command TransitionOrderCommand, now time.Time) (history.Action, error) {
	switch command.Action() {
	case ActionFinish:
		return history.Finished, aggregate.Finish(now)
	case ActionPickup:
		return history.PickedUp, aggregate.MarkPickedUp(now)
	case ActionReopen:
		return history.Reopened, aggregate.Reopen(command.Note(), now)
	case ActionSuspend:
		return history.Suspended, aggregate.Suspend(command.Note(), now)
	default:
		return "", command.Action().Validate()
	}
}
