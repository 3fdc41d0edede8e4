package commands

import (
	"context"

	"repairshop/internal/core/domain/services"
)

// ResolveClientCommandHandler runs client resolution in its own transaction.
// It returns 0 when the command carries no identity.
type ResolveClientCommandHandler struct {
	uowFactory UoWFactory
	resolver   *services.EntityResolver
}

func NewResolveClientCommandHandler(uowFactory UoWFactory, resolver *services.EntityResolver) ResolveClientCommandHandler {
	return ResolveClientCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

func (h ResolveClientCommandHandler) Handle(ctx context.Context, command ResolveClientCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id, err := h.resolver.ResolveClient(ctx, uow, command.Name(), command.Phone())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
