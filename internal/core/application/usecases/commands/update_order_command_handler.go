package commands

import (
	"context"
	"strings"

	"repairshop/internal/core/domain/model/catalog"
	"repairshop/internal/core/domain/model/equipment"
	"repairshop/internal/core/domain/model/history"
	"repairshop/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler edits an order in one transaction. The equipment
// of an order never changes: an edit whose equipment fields resolve to another
// equipment is rejected. Client edits re-resolve the client and relink the
// equipment to it. The full row is written back, so concurrent edits are last
// write wins.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	deps       OrderCollaborators
}

func NewUpdateOrderCommandHandler(uowFactory UoWFactory, deps OrderCollaborators) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		deps:       deps,
	}
}

func (h UpdateOrderCommandHandler) Handle(ctx context.Context, command UpdateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	in := command.Input()

	patch := order.Patch{
		ContactName:   in.ClientName,
		ContactPhone:  in.ClientPhone,
		EquipmentText: in.EquipmentDescription,
		SerialText:    in.EquipmentSerial,
		Fault:         in.Fault,
		Notes:         in.Notes,
		Accessories:   in.Accessories,
		Repair:        in.Repair,
		SpareParts:    in.SpareParts,
		Amount:        in.Amount,
		Intake:        in.Intake,
		Exit:          in.Exit,
		Return:        in.Return,
		Pickup:        in.Pickup,
	}
	if in.Status != nil && strings.TrimSpace(*in.Status) != "" {
		status, err := h.deps.status(*in.Status)
		if err != nil {
			return err
		}
		patch.Status = &status
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	aggregate, err := orders.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}
	current := aggregate.Snapshot()

	if in.touchesEquipment() {
		id, err := h.equipmentID(ctx, uow, in, current)
		if err != nil {
			return err
		}
		patch.EquipmentID = &id
	}

	if in.touchesClient() {
		name := valueOr(in.ClientName, current.ContactName)
		phone := valueOr(in.ClientPhone, current.ContactPhone)
		owner, err := h.deps.resolveClient(ctx, uow, 0, name, phone)
		if err != nil {
			return err
		}
		id := owner.ID()
		patch.ClientID = &id
	}

	texts := make(map[catalog.Kind]string)
	for kind, text := range map[catalog.Kind]*string{
		catalog.Fault:     in.Fault,
		catalog.Accessory: in.Accessories,
		catalog.SparePart: in.SpareParts,
		catalog.Repair:    in.Repair,
	} {
		if text != nil {
			texts[kind] = *text
		}
	}
	if err = h.deps.resolveCatalog(ctx, uow, texts); err != nil {
		return err
	}

	if err = aggregate.Edit(patch, h.deps.Clock.Now()); err != nil {
		return err
	}
	if err = orders.Update(ctx, aggregate); err != nil {
		return err
	}

	if patch.ClientID != nil {
		err = h.deps.Linker.Link(ctx, uow, aggregate.EquipmentID(), aggregate.ClientID(), equipment.DefaultRole)
		if err != nil {
			return err
		}
	}

	h.deps.afterCommit(uow, aggregate.ID(), command.Actor(), history.Updated, "")

	return uow.Commit(ctx)
}

// equipmentID works out which equipment the edit points at. Identity fields
// left out of the edit keep the values stored on the order.
func (h UpdateOrderCommandHandler) equipmentID(
	ctx context.Context, uow UoW, in UpdateOrderInput, current order.Snapshot,
) (int64, error) {
	if in.EquipmentID != nil {
		return *in.EquipmentID, nil
	}
	description := valueOr(in.EquipmentDescription, current.EquipmentText)
	serial := valueOr(in.EquipmentSerial, current.SerialText)
	id, err := h.deps.Resolver.ResolveEquipment(ctx, uow, description, serial)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return current.EquipmentID, nil
	}
	return id, nil
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
