package commands

import (
	"errors"
	"strings"

	"repairshop/internal/core/domain/model/equipment"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrUpdateEquipmentCommandIsNotConstructed = errors.New(
	"UpdateEquipmentCommand must be created via NewUpdateEquipmentCommand constructor",
)

// UpdateEquipmentCommand replaces the details of an equipment and, when
// ClientID is set, hands it over to that client.
type UpdateEquipmentCommand struct { //nolint:recvcheck //using for validation
	equipmentID int64
	details     equipment.Details
	clientID    *int64

	guard guard.ConstructorGuard
}

func NewUpdateEquipmentCommand(equipmentID int64, details equipment.Details, clientID *int64) (UpdateEquipmentCommand, error) {
	var identityErr, clientErr error
	if strings.TrimSpace(details.Serial) == "" && strings.TrimSpace(details.Description) == "" {
		identityErr = errs.NewValueIsRequiredError("description")
	}
	if clientID != nil {
		clientErr = requireRef("clientId", *clientID)
	}
	if err := errors.Join(requireRef("equipmentId", equipmentID), identityErr, clientErr); err != nil {
		return UpdateEquipmentCommand{}, err
	}
	return UpdateEquipmentCommand{
		equipmentID: equipmentID,
		details:     details,
		clientID:    clientID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateEquipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEquipmentCommandIsNotConstructed)
}

func (c UpdateEquipmentCommand) EquipmentID() int64 { return c.equipmentID }

func (c UpdateEquipmentCommand) Details() equipment.Details { return c.details }

// ClientID is the new owner, or nil to keep the current one.
func (c UpdateEquipmentCommand) ClientID() *int64 { return c.clientID }
