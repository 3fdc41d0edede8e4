package commands

import (
	"context"

	"repairshop/internal/core/domain/model/equipment"
	"repairshop/internal/core/domain/services"
)

type UpdateEquipmentCommandHandler struct {
	uowFactory UoWFactory
	resolver   *services.EntityResolver
	linker     *services.OwnershipLinker
}

func NewUpdateEquipmentCommandHandler(
	uowFactory UoWFactory, resolver *services.EntityResolver, linker *services.OwnershipLinker,
) UpdateEquipmentCommandHandler {
	return UpdateEquipmentCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		linker:     linker,
	}
}

// Handle edits the equipment, drops the cached resolution of its previous
// identity when that changed, and relinks the owner when one is given.
func (h UpdateEquipmentCommandHandler) Handle(ctx context.Context, command UpdateEquipmentCommand) error {
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

	repo := uow.EquipmentRepository()
	e, err := repo.Get(ctx, command.EquipmentID())
	if err != nil {
		return err
	}

	previous := e.Identity()
	if err = e.Edit(command.Details()); err != nil {
		return err
	}
	if err = repo.Update(ctx, e); err != nil {
		return err
	}
	if previous.Key() != e.Identity().Key() {
		h.resolver.Forget(uow, services.EquipmentCacheKey(previous))
	}

	if owner := command.ClientID(); owner != nil {
		if err = h.linker.Link(ctx, uow, e.ID(), *owner, equipment.DefaultRole); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
