package commands

import (
	"errors"
	"strings"

	"repairshop/internal/core/domain/model/equipment"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrCreateEquipmentCommandIsNotConstructed = errors.New(
	"CreateEquipmentCommand must be created via NewCreateEquipmentCommand constructor",
)

// CreateEquipmentCommand registers an equipment owned by an existing client.
type CreateEquipmentCommand struct { //nolint:recvcheck //using for validation
	details  equipment.Details
	clientID int64
	role     string

	guard guard.ConstructorGuard
}

func NewCreateEquipmentCommand(details equipment.Details, clientID int64, role string) (CreateEquipmentCommand, error) {
	var identityErr error
	if strings.TrimSpace(details.Serial) == "" && strings.TrimSpace(details.Description) == "" {
		identityErr = errs.NewValueIsRequiredError("description")
	}
	if err := errors.Join(identityErr, requireRef("clientId", clientID)); err != nil {
		return CreateEquipmentCommand{}, err
	}
	return CreateEquipmentCommand{
		details:  details,
		clientID: clientID,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateEquipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateEquipmentCommandIsNotConstructed)
}

func (c CreateEquipmentCommand) Details() equipment.Details { return c.details }

func (c CreateEquipmentCommand) ClientID() int64 { return c.clientID }

func (c CreateEquipmentCommand) Role() string { return c.role }
