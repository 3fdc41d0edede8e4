package commands

import (
	"errors"
	"strings"

	"repairshop/internal/core/domain/model/client"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrUpdateClientCommandIsNotConstructed = errors.New(
	"UpdateClientCommand must be created via NewUpdateClientCommand constructor",
)

// UpdateClientCommand replaces the details of a client.
type UpdateClientCommand struct { //nolint:recvcheck //using for validation
	clientID int64
	details  client.Details

	guard guard.ConstructorGuard
}

func NewUpdateClientCommand(clientID int64, details client.Details) (UpdateClientCommand, error) {
	var nameErr error
	if strings.TrimSpace(details.Name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(requireRef("clientId", clientID), nameErr); err != nil {
		return UpdateClientCommand{}, err
	}
	return UpdateClientCommand{
		clientID: clientID,
		details:  details,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateClientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientCommandIsNotConstructed)
}

func (c UpdateClientCommand) ClientID() int64 { return c.clientID }

func (c UpdateClientCommand) Details() client.Details { return c.details }
