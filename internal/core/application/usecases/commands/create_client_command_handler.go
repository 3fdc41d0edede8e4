package commands

import (
	"context"

	"repairshop/internal/core/domain/model/client"
	"repairshop/internal/core/domain/model/kernel"
)

// CreateClientCommandHandler inserts a client. A client with the same name
// and phone already on file is reported as DuplicateEntityError.
type CreateClientCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewCreateClientCommandHandler(uowFactory UoWFactory, clock kernel.Clock) CreateClientCommandHandler {
	return CreateClientCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreateClientCommandHandler) Handle(ctx context.Context, command CreateClientCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	c, err := client.NewClient(command.Details(), h.clock.Now())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ClientRepository().Add(ctx, c); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return c.ID(), nil
}
