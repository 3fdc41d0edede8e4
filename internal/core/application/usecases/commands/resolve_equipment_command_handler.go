package commands

import (
	"context"

	"repairshop/internal/core/domain/services"
)

type ResolveEquipmentCommandHandler struct {
	uowFactory UoWFactory
	resolver   *services.EntityResolver
}

func NewResolveEquipmentCommandHandler(uowFactory UoWFactory, resolver *services.EntityResolver) ResolveEquipmentCommandHandler {
	return ResolveEquipmentCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

// Handle returns 0 when neither a serial nor a description is given.
func (h ResolveEquipmentCommandHandler) Handle(ctx context.Context, command ResolveEquipmentCommand) (int64, error) {
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

	id, err := h.resolver.ResolveEquipment(ctx, uow, command.Description(), command.Serial())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
