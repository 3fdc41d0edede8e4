package commands

import (
	"errors"
	"fmt"

	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrLinkOwnershipCommandIsNotConstructed = errors.New(
	"LinkOwnershipCommand must be created via NewLinkOwnershipCommand constructor",
)

// LinkOwnershipCommand makes a client the active owner of an equipment.
// An empty role means the default owner role.
type LinkOwnershipCommand struct { //nolint:recvcheck //using for validation
	equipmentID int64
	clientID    int64
	role        string

	guard guard.ConstructorGuard
}

func NewLinkOwnershipCommand(equipmentID, clientID int64, role string) (LinkOwnershipCommand, error) {
	command := LinkOwnershipCommand{
		role:  role,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEquipmentID(equipmentID),
		command.setClientID(clientID),
	); err != nil {
		return LinkOwnershipCommand{}, err
	}

	return command, nil
}

func (c LinkOwnershipCommand) Validate() error {
	return c.guard.Validate(ErrLinkOwnershipCommandIsNotConstructed)
}

func (c LinkOwnershipCommand) EquipmentID() int64 { return c.equipmentID }

func (c LinkOwnershipCommand) ClientID() int64 { return c.clientID }

func (c LinkOwnershipCommand) Role() string { return c.role }

func (c *LinkOwnershipCommand) setEquipmentID(id int64) error {
	if err := requireRef("equipmentId", id); err != nil {
		return err
	}
	c.equipmentID = id
	return nil
}

func (c *LinkOwnershipCommand) setClientID(id int64) error {
	if err := requireRef("clientId", id); err != nil {
		return err
	}
	c.clientID = id
	return nil
}

func requireRef(param string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredErrorWithCause(param, fmt.Errorf("%d is not a valid reference", id))
	}
	return nil
}
