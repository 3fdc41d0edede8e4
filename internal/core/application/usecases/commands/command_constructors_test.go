package commands_test

import (
	"testing"

	"repairshop/internal/core/application/usecases/commands"
	"repairshop/internal/core/domain/model/catalog"
	"repairshop/internal/core/domain/model/client"
	"repairshop/internal/core/domain/model/equipment"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should accept raw identity fields", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("mostrador", commands.CreateOrderInput{
			ClientName:           "Juan",
			EquipmentDescription: "Monitor",
		})
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "mostrador", cmd.Actor())
		assert.Equal(t, "Juan", cmd.Input().ClientName)
	})

	t.Run("should require a client and an equipment", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", commands.CreateOrderInput{ClientName: "  "})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		var required *errs.ValueIsRequiredError
		require.ErrorAs(t, err, &required)
	})

	t.Run("should reject negative references", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", commands.CreateOrderInput{ClientID: -1, EquipmentID: 2})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject an unknown status label", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", commands.CreateOrderInput{
			ClientID: 1, EquipmentID: 2, Status: "PERDIDA",
		})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should report a zero value command", func(t *testing.T) {
		require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestNewUpdateOrderCommand(t *testing.T) {
	t.Run("should require an order number", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand("", 0, commands.UpdateOrderInput{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should treat a blank status as no status change", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderCommand("", 3, commands.UpdateOrderInput{Status: ptr(" ")})
		require.NoError(t, err)
		assert.Equal(t, int64(3), cmd.OrderID())
	})

	t.Run("should reject an unknown status label", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand("", 3, commands.UpdateOrderInput{Status: ptr("PERDIDA")})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewTransitionOrderCommand(t *testing.T) {
	t.Run("should require a note to reopen", func(t *testing.T) {
		_, err := commands.NewTransitionOrderCommand("", 3, commands.ActionReopen, "   ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require a motive to suspend", func(t *testing.T) {
		_, err := commands.NewTransitionOrderCommand("", 3, commands.ActionSuspend, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unknown actions", func(t *testing.T) {
		_, err := commands.NewTransitionOrderCommand("", 3, commands.Action("cancel"), "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should keep the trimmed note", func(t *testing.T) {
		cmd, err := commands.NewTransitionOrderCommand("", 3, commands.ActionReopen, " garantía ")
		require.NoError(t, err)
		assert.Equal(t, "garantía", cmd.Note())
		assert.Equal(t, commands.ActionReopen, cmd.Action())
	})
}

func TestNewLinkOwnershipCommand(t *testing.T) {
	t.Run("should require both references", func(t *testing.T) {
		_, err := commands.NewLinkOwnershipCommand(0, 0, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should keep the role", func(t *testing.T) {
		cmd, err := commands.NewLinkOwnershipCommand(4, 2, "usuario")
		require.NoError(t, err)
		assert.Equal(t, int64(4), cmd.EquipmentID())
		assert.Equal(t, int64(2), cmd.ClientID())
		assert.Equal(t, "usuario", cmd.Role())
	})
}

func TestNewResolveCatalogEntryCommand(t *testing.T) {
	_, err := commands.NewResolveCatalogEntryCommand(catalog.Kind("brand"), "HP")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cmd, err := commands.NewResolveCatalogEntryCommand(catalog.Accessory, "")
	require.NoError(t, err)
	assert.Equal(t, catalog.Accessory, cmd.Kind())
}

func TestNewClientCommands(t *testing.T) {
	_, err := commands.NewCreateClientCommand(client.Details{Name: " "})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewUpdateClientCommand(0, client.Details{Name: "Ana"})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewEquipmentCommands(t *testing.T) {
	_, err := commands.NewCreateEquipmentCommand(equipment.Details{Brand: "HP"}, 3, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateEquipmentCommand(equipment.Details{Serial: "X1"}, 0, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewUpdateEquipmentCommand(5, equipment.Details{Serial: "X1"}, ptr(int64(0)))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewUpdateEquipmentCommand(5, equipment.Details{Serial: "X1"}, nil)
	require.NoError(t, err)
	assert.Nil(t, cmd.ClientID())
}

func TestNewCreateCatalogEntryCommand(t *testing.T) {
	price, err := kernel.MoneyFromCents(15000)
	require.NoError(t, err)

	_, err = commands.NewCreateCatalogEntryCommand(catalog.Fault, "No enciende", "", &price)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCreateCatalogEntryCommand(catalog.SparePart, "  ", "", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewCreateCatalogEntryCommand(catalog.SparePart, "fusor  hp", "Fusor 1020", &price)
	require.NoError(t, err)
	assert.Equal(t, "Fusor hp", cmd.Identity().Name())
	assert.Equal(t, int64(15000), cmd.Cost().Cents())
}
