package commands

import (
	"errors"
	"strings"

	"repairshop/internal/core/domain/model/client"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand registers a client with its full contact details.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	details client.Details

	guard guard.ConstructorGuard
}

func NewCreateClientCommand(details client.Details) (CreateClientCommand, error) {
	if strings.TrimSpace(details.Name) == "" {
		return CreateClientCommand{}, errs.NewValueIsRequiredError("name")
	}
	return CreateClientCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

func (c CreateClientCommand) Details() client.Details { return c.details }
