package commands

import (
	"context"

	"repairshop/internal/core/domain/services"
)

// LinkOwnershipCommandHandler relinks an equipment in one transaction, so a
// failure never leaves the equipment without its previous owner.
type LinkOwnershipCommandHandler struct {
	uowFactory UoWFactory
	linker     *services.OwnershipLinker
}

func NewLinkOwnershipCommandHandler(uowFactory UoWFactory, linker *services.OwnershipLinker) LinkOwnershipCommandHandler {
	return LinkOwnershipCommandHandler{
		uowFactory: uowFactory,
		linker:     linker,
	}
}

func (h LinkOwnershipCommandHandler) Handle(ctx context.Context, command LinkOwnershipCommand) error {
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

	if err := h.linker.Link(ctx, uow, command.EquipmentID(), command.ClientID(), command.Role()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
