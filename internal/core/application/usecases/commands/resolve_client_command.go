package commands

import (
	"errors"

	"repairshop/internal/pkg/guard"
)

var ErrResolveClientCommandIsNotConstructed = errors.New(
	"ResolveClientCommand must be created via NewResolveClientCommand constructor",
)

// ResolveClientCommand asks for the id of the client known by name and phone,
// creating the client the first time the pair is seen. A blank name carries no
// identity and resolves to no client.
type ResolveClientCommand struct { //nolint:recvcheck //using for validation
	name  string
	phone string

	guard guard.ConstructorGuard
}

func NewResolveClientCommand(name, phone string) (ResolveClientCommand, error) {
	return ResolveClientCommand{
		name:  name,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ResolveClientCommand) Validate() error {
	return c.guard.Validate(ErrResolveClientCommandIsNotConstructed)
}

func (c ResolveClientCommand) Name() string { return c.name }

func (c ResolveClientCommand) Phone() string { return c.phone }
