package commands

import (
	"context"

	"repairshop/internal/core/domain/services"
)

// UpdateClientCommandHandler edits a client. When the edit changes the name
// or phone, the cached resolution of the old identity is dropped after commit.
type UpdateClientCommandHandler struct {
	uowFactory UoWFactory
	resolver   *services.EntityResolver
}

func NewUpdateClientCommandHandler(uowFactory UoWFactory, resolver *services.EntityResolver) UpdateClientCommandHandler {
	return UpdateClientCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

func (h UpdateClientCommandHandler) Handle(ctx context.Context, command UpdateClientCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ClientRepository()
	c, err := repo.Get(ctx, command.ClientID())
	if err != nil {
		return err
	}

	previous := c.Identity()
	if err = c.Edit(command.Details()); err != nil {
		return err
	}
	if err = repo.Update(ctx, c); err != nil {
		return err
	}
	if !previous.Equal(c.Identity()) {
		h.resolver.Forget(uow, services.ClientCacheKey(previous))
	}

	return uow.Commit(ctx)
}
