package commands_test

import (
	"errors"
	"testing"

	"repairshop/internal/core/application/usecases/commands"
	"repairshop/internal/core/domain/model/catalog"
	"repairshop/internal/core/domain/model/client"
	"repairshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveClientCommandHandler_Handle(t *testing.T) {
	t.Run("should return the same id twice without a second insert", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		handler := commands.NewResolveClientCommandHandler(f.factory, f.resolver)
		cmd, err := commands.NewResolveClientCommand("Juan Perez", "1122334455")
		require.NoError(t, err)

		var stored *client.Client
		f.expectTx(t)
		f.uow.Clients.On("FindByIdentity", ctx, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("client", "Juan Perez|1122334455")).Once()
		f.uow.Clients.On("Add", ctx, mock.AnythingOfType("*client.Client")).Run(func(args mock.Arguments) {
			stored = args.Get(1).(*client.Client)
			_ = stored.AssignID(15)
		}).Return(nil).Once()

		first, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)

		f.expectTx(t)
		f.uow.Clients.On("FindByIdentity", ctx, mock.Anything).Return(stored, nil).Once()

		second, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)

		assert.Equal(t, int64(15), first)
		assert.Equal(t, first, second)
		f.uow.Clients.AssertNumberOfCalls(t, "Add", 1)
		f.uow.AssertExpectations(t)
	})

	t.Run("should return zero for a blank name", func(t *testing.T) {
		f := newFixture()
		f.expectTx(t)
		cmd, err := commands.NewResolveClientCommand(" ", "1122334455")
		require.NoError(t, err)

		id, err := commands.NewResolveClientCommandHandler(f.factory, f.resolver).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Zero(t, id)
		f.uow.AssertRepositories(t)
	})
}

func TestResolveEquipmentCommandHandler_Handle(t *testing.T) {
	t.Run("should fall back to the description when the serial is unknown", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		monitor := existingEquipment(t, 6, "Monitor lg", "")

		f.expectTx(t)
		f.uow.Equipment.On("FindBySerial", ctx, "AB12").
			Return(nil, errs.NewObjectNotFoundError("serial", "AB12")).Once()
		f.uow.Equipment.On("FindByDescription", ctx, "Monitor lg").Return(monitor, nil).Once()

		cmd, err := commands.NewResolveEquipmentCommand("monitor   lg", "ab 12")
		require.NoError(t, err)
		id, err := commands.NewResolveEquipmentCommandHandler(f.factory, f.resolver).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, int64(6), id)
		f.uow.AssertRepositories(t)
	})

	t.Run("should not commit when the lookup fails", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		f.expectAbortedTx(t)
		f.uow.Equipment.On("FindBySerial", ctx, "AB12").Return(nil, errors.New("timeout")).Once()

		cmd, err := commands.NewResolveEquipmentCommand("", "AB12")
		require.NoError(t, err)
		_, err = commands.NewResolveEquipmentCommandHandler(f.factory, f.resolver).Handle(ctx, cmd)

		require.EqualError(t, err, "timeout")
		f.uow.AssertExpectations(t)
	})
}

func TestResolveCatalogEntryCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	f.expectTx(t)
	f.uow.Catalog.On("FindByIdentity", ctx, mock.Anything).
		Return(nil, errs.NewObjectNotFoundError("catalog", "cargador")).Once()
	f.uow.Catalog.On("Add", ctx, mock.MatchedBy(func(e *catalog.Entry) bool {
		return e.Kind() == catalog.Accessory && e.Name() == "Cargador"
	})).Run(assignOnAdd[*catalog.Entry](4)).Return(nil).Once()

	cmd, err := commands.NewResolveCatalogEntryCommand(catalog.Accessory, "cargador")
	require.NoError(t, err)
	id, err := commands.NewResolveCatalogEntryCommandHandler(f.factory, f.resolver).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
	f.uow.AssertRepositories(t)
}

func TestLinkOwnershipCommandHandler_Handle(t *testing.T) {
	t.Run("should link inside one transaction", func(t *testing.T) {
		f := newFixture()
		ana := existingClient(t, 2, "Ana", "")
		monitor := existingEquipment(t, 4, "Monitor", "")
		f.expectTx(t)
		f.expectLink(t, monitor, ana)

		cmd, err := commands.NewLinkOwnershipCommand(4, 2, "")
		require.NoError(t, err)

		require.NoError(t, commands.NewLinkOwnershipCommandHandler(f.factory, f.linker).Handle(t.Context(), cmd))
		f.uow.AssertExpectations(t)
		f.uow.AssertRepositories(t)
	})

	t.Run("should roll back when the client is unknown", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		f.expectAbortedTx(t)
		f.uow.Equipment.On("Lock", ctx, int64(4)).Return(existingEquipment(t, 4, "Monitor", ""), nil).Once()
		f.uow.Clients.On("Get", ctx, int64(2)).Return(nil, errs.NewObjectNotFoundError("clientId", int64(2))).Once()

		cmd, err := commands.NewLinkOwnershipCommand(4, 2, "")
		require.NoError(t, err)

		err = commands.NewLinkOwnershipCommandHandler(f.factory, f.linker).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		f.uow.Ownership.AssertNotCalled(t, "DeactivateAll", mock.Anything, mock.Anything)
		f.uow.AssertExpectations(t)
	})
}
