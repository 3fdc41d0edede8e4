package commands_test

import (
	"errors"
	"testing"
	"time"

	"repairshop/internal/core/application/usecases/commands"
	"repairshop/internal/core/domain/model/history"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransitionOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should finish, pick up and then refuse a second pickup", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		current := existingOrder(t, order.Snapshot{ID: 42})
		handler := commands.NewTransitionOrderCommandHandler(f.factory, f.deps())

		run := func(action commands.Action) error {
			cmd, err := commands.NewTransitionOrderCommand("taller", 42, action, "")
			require.NoError(t, err)
			_, err = handler.Handle(ctx, cmd)
			return err
		}

		f.expectTx(t)
		f.uow.Orders.On("Get", ctx, int64(42)).Return(current, nil).Once()
		f.uow.Orders.On("Update", ctx, current).Return(nil).Once()
		require.NoError(t, run(commands.ActionFinish))
		assert.Equal(t, order.StatusDone, current.Status())
		assert.True(t, current.Exit().Equal(kernel.StampAt(handlerNow)))

		f.clock.Advance(3 * time.Hour)
		f.expectTx(t)
		f.uow.Orders.On("Get", ctx, int64(42)).Return(current, nil).Once()
		f.uow.Orders.On("Update", ctx, current).Return(nil).Once()
		require.NoError(t, run(commands.ActionPickup))
		assert.Equal(t, order.StatusPickedUp, current.Status())
		assert.True(t, current.Pickup().Equal(kernel.StampAt(handlerNow.Add(3*time.Hour))))

		before := current.Snapshot()
		f.expectAbortedTx(t)
		f.uow.Orders.On("Get", ctx, int64(42)).Return(current, nil).Once()
		err := run(commands.ActionPickup)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, before, current.Snapshot())

		f.auditor.On("Record", int64(42), "taller", history.Finished, "").Return().Once()
		f.auditor.On("Record", int64(42), "taller", history.PickedUp, "").Return().Once()
		f.documents.On("Publish", int64(42)).Return().Twice()
		f.uow.RunHooks(ctx)
		f.assertExpectations(t)
	})

	t.Run("should refuse a pickup of an order in progress without touching it", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		current := existingOrder(t, order.Snapshot{ID: 42})
		before := current.Snapshot()

		f.expectAbortedTx(t)
		f.uow.Orders.On("Get", ctx, int64(42)).Return(current, nil).Once()

		cmd, err := commands.NewTransitionOrderCommand("", 42, commands.ActionPickup, "")
		require.NoError(t, err)
		_, err = commands.NewTransitionOrderCommandHandler(f.factory, f.deps()).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, before, current.Snapshot())
		f.uow.Orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		assert.Empty(t, f.uow.AfterHooks)
	})

	t.Run("should reopen a picked up order with its note", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		current := existingOrder(t, order.Snapshot{ID: 42, Status: order.StatusPickedUp})

		f.expectTx(t)
		f.uow.Orders.On("Get", ctx, int64(42)).Return(current, nil).Once()
		f.uow.Orders.On("Update", ctx, current).Return(nil).Once()
		f.auditor.On("Record", int64(42), "", history.Reopened, "Vuelve con el mismo ruido").Return().Once()
		f.documents.On("Publish", int64(42)).Return().Once()

		cmd, err := commands.NewTransitionOrderCommand("", 42, commands.ActionReopen, " Vuelve con el mismo ruido ")
		require.NoError(t, err)
		id, err := commands.NewTransitionOrderCommandHandler(f.factory, f.deps()).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
		assert.Equal(t, order.StatusRepairing, current.Status())
		f.uow.RunHooks(ctx)
		f.assertExpectations(t)
	})

	t.Run("should suspend with a motive", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		current := existingOrder(t, order.Snapshot{ID: 42})

		f.expectTx(t)
		f.uow.Orders.On("Get", ctx, int64(42)).Return(current, nil).Once()
		f.uow.Orders.On("Update", ctx, current).Return(nil).Once()

		cmd, err := commands.NewTransitionOrderCommand("", 42, commands.ActionSuspend, "esperando repuesto")
		require.NoError(t, err)
		_, err = commands.NewTransitionOrderCommandHandler(f.factory, f.deps()).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.StatusSuspended, current.Status())
		assert.Equal(t, "Esperando repuesto", current.SuspendReason())
	})

	t.Run("should duplicate into a fresh order and return its number", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		exit, err := kernel.ParseStamp("2024-01-01", "10:00")
		require.NoError(t, err)
		source := existingOrder(t, order.Snapshot{
			ID: 7, Status: order.StatusDone, Exit: exit, Fault: "No enciende", ContactName: "Juan Perez",
		})

		f.expectTx(t)
		f.uow.Orders.On("Get", ctx, int64(7)).Return(source, nil).Once()
		f.uow.Orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			s := o.Snapshot()
			return s.ID == 0 && s.Status.Equal(order.StatusRepairing) &&
				s.Exit.IsZero() && s.Return.IsZero() && s.Pickup.IsZero() &&
				s.Intake.Equal(kernel.StampAt(handlerNow)) &&
				s.Fault == "No enciende" && s.ContactName == "Juan Perez"
		})).Run(assignOnAdd[*order.Order](43)).Return(nil).Once()
		f.auditor.On("Record", int64(7), "", history.Duplicated, "Copiada en la orden 43").Return().Once()
		f.auditor.On("Record", int64(43), "", history.Created, "Copia de la orden 7").Return().Once()
		f.documents.On("Publish", int64(7)).Return().Once()
		f.documents.On("Publish", int64(43)).Return().Once()

		cmd, err := commands.NewTransitionOrderCommand("", 7, commands.ActionDuplicate, "")
		require.NoError(t, err)
		id, err := commands.NewTransitionOrderCommandHandler(f.factory, f.deps()).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, int64(43), id)
		assert.Equal(t, order.StatusDone, source.Status())
		f.uow.Orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		f.uow.RunHooks(ctx)
		f.assertExpectations(t)
	})

	t.Run("should return the update error", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		current := existingOrder(t, order.Snapshot{ID: 42})

		f.expectAbortedTx(t)
		f.uow.Orders.On("Get", ctx, int64(42)).Return(current, nil).Once()
		f.uow.Orders.On("Update", ctx, current).Return(errors.New("connection reset")).Once()

		cmd, err := commands.NewTransitionOrderCommand("", 42, commands.ActionFinish, "")
		require.NoError(t, err)
		_, err = commands.NewTransitionOrderCommandHandler(f.factory, f.deps()).Handle(ctx, cmd)

		require.EqualError(t, err, "connection reset")
	})
}
