package commands

import (
	"context"

	"repairshop/internal/core/domain/services"
)

type ResolveCatalogEntryCommandHandler struct {
	uowFactory UoWFactory
	resolver   *services.EntityResolver
}

func NewResolveCatalogEntryCommandHandler(uowFactory UoWFactory, resolver *services.EntityResolver) ResolveCatalogEntryCommandHandler {
	return ResolveCatalogEntryCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

func (h ResolveCatalogEntryCommandHandler) Handle(ctx context.Context, command ResolveCatalogEntryCommand) (int64, error) {
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

	id, err := h.resolver.ResolveCatalogEntry(ctx, uow, command.Kind(), command.Text())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
