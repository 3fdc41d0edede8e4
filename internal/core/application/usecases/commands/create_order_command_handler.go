package commands

import (
	"context"
	"strings"

	"repairshop/internal/core/domain/model/catalog"
	"repairshop/internal/core/domain/model/equipment"
	"repairshop/internal/core/domain/model/history"
	"repairshop/internal/core/domain/model/order"
)

// CreateOrderCommandHandler opens an order in one transaction: it resolves
// the client, the equipment and the catalog texts, inserts the order and makes
// the client the active owner of the equipment. History and the printable
// document follow after commit.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	deps       OrderCollaborators
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, deps OrderCollaborators) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		deps:       deps,
	}
}

// Handle returns the number of the new order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}
	in := command.Input()

	status, err := h.deps.status(in.Status)
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

	owner, err := h.deps.resolveClient(ctx, uow, in.ClientID, in.ClientName, in.ClientPhone)
	if err != nil {
		return 0, err
	}
	item, err := h.deps.resolveEquipment(ctx, uow, in.EquipmentID, in.EquipmentDescription, in.EquipmentSerial)
	if err != nil {
		return 0, err
	}
	if err = h.deps.resolveCatalog(ctx, uow, map[catalog.Kind]string{
		catalog.Fault:     in.Fault,
		catalog.Accessory: in.Accessories,
		catalog.SparePart: in.SpareParts,
		catalog.Repair:    in.Repair,
	}); err != nil {
		return 0, err
	}

	draft := order.Draft{
		ClientID:      owner.ID(),
		EquipmentID:   item.ID(),
		ContactName:   firstNonBlank(in.ClientName, owner.Name()),
		ContactPhone:  firstNonBlank(in.ClientPhone, owner.Details().Phone),
		EquipmentText: firstNonBlank(in.EquipmentDescription, equipmentText(item)),
		SerialText:    firstNonBlank(in.EquipmentSerial, item.Details().Serial),
		Fault:         in.Fault,
		Notes:         in.Notes,
		Accessories:   in.Accessories,
		Repair:        in.Repair,
		SpareParts:    in.SpareParts,
		Amount:        in.Amount,
		Status:        status,
		Intake:        in.Intake,
		Exit:          in.Exit,
		Return:        in.Return,
		Pickup:        in.Pickup,
	}
	aggregate, err := order.NewOrder(draft, h.deps.Clock.Now())
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}
	if err = h.deps.Linker.Link(ctx, uow, item.ID(), owner.ID(), equipment.DefaultRole); err != nil {
		return 0, err
	}

	h.deps.afterCommit(uow, aggregate.ID(), command.Actor(), history.Created, "")

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// equipmentText is the free text snapshot of an equipment: its description,
// or its type, brand and model when it has none.
func equipmentText(e *equipment.Equipment) string {
	d := e.Details()
	if d.Description != "" {
		return d.Description
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{d.Type, d.Brand, d.Model} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
