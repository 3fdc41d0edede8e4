package commands

import (
	"context"

	"repairshop/internal/core/domain/model/catalog"
)

// CreateCatalogEntryCommandHandler inserts a catalog entry. Unlike resolution,
// an entry already on file is reported as DuplicateEntityError.
type CreateCatalogEntryCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateCatalogEntryCommandHandler(uowFactory UoWFactory) CreateCatalogEntryCommandHandler {
	return CreateCatalogEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateCatalogEntryCommandHandler) Handle(ctx context.Context, command CreateCatalogEntryCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	entry, err := catalog.NewEntry(command.Identity(), command.Description(), command.Cost())
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

	if err = uow.CatalogRepository().Add(ctx, entry); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return entry.ID(), nil
}
