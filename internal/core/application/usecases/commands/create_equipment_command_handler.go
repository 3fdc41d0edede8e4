package commands

import (
	"context"

	"repairshop/internal/core/domain/model/equipment"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/services"
)

// CreateEquipmentCommandHandler inserts an equipment and links its owner in
// the same transaction. A serial already on file is a DuplicateEntityError.
type CreateEquipmentCommandHandler struct {
	uowFactory UoWFactory
	linker     *services.OwnershipLinker
	clock      kernel.Clock
}

func NewCreateEquipmentCommandHandler(
	uowFactory UoWFactory, linker *services.OwnershipLinker, clock kernel.Clock,
) CreateEquipmentCommandHandler {
	return CreateEquipmentCommandHandler{
		uowFactory: uowFactory,
		linker:     linker,
		clock:      clock,
	}
}

func (h CreateEquipmentCommandHandler) Handle(ctx context.Context, command CreateEquipmentCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	e, err := equipment.NewEquipment(command.Details(), h.clock.Now())
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

	if err = uow.EquipmentRepository().Add(ctx, e); err != nil {
		return 0, err
	}
	if err = h.linker.Link(ctx, uow, e.ID(), command.ClientID(), command.Role()); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return e.ID(), nil
}
