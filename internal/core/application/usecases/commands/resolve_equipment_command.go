package commands

import (
	"errors"

	"repairshop/internal/pkg/guard"
)

var ErrResolveEquipmentCommandIsNotConstructed = errors.New(
	"ResolveEquipmentCommand must be created via NewResolveEquipmentCommand constructor",
)

// ResolveEquipmentCommand asks for the id of the equipment known by serial,
// or by description when it has no serial.
type ResolveEquipmentCommand struct { //nolint:recvcheck //using for validation
	description string
	serial      string

	guard guard.ConstructorGuard
}

func NewResolveEquipmentCommand(description, serial string) (ResolveEquipmentCommand, error) {
	return ResolveEquipmentCommand{
		description: description,
		serial:      serial,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ResolveEquipmentCommand) Validate() error {
	return c.guard.Validate(ErrResolveEquipmentCommandIsNotConstructed)
}

func (c ResolveEquipmentCommand) Description() string { return c.description }

func (c ResolveEquipmentCommand) Serial() string { return c.serial }
