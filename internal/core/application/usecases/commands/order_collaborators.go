package commands

import (
	"context"

	"repairshop/internal/core/domain/model/catalog"
	"repairshop/internal/core/domain/model/client"
	"repairshop/internal/core/domain/model/equipment"
	"repairshop/internal/core/domain/model/history"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/core/domain/services"
	"repairshop/internal/pkg/errs"
)

// OrderCollaborators are the services shared by the order handlers.
type OrderCollaborators struct {
	Resolver  *services.EntityResolver
	Linker    *services.OwnershipLinker
	Clock     kernel.Clock
	Statuses  *order.StatusCatalog
	Auditor   Auditor
	Documents DocumentPublisher
}

func (c OrderCollaborators) status(label string) (order.Status, error) {
	if label == "" {
		return order.StatusRepairing, nil
	}
	if c.Statuses == nil {
		return order.ParseStatus(label)
	}
	return c.Statuses.Resolve(label)
}

// resolveClient returns the client named by id, or resolves the identity
// fields when no id is given.
func (c OrderCollaborators) resolveClient(ctx context.Context, uow UoW, id int64, name, phone string) (*client.Client, error) {
	if id == 0 {
		var err error
		if id, err = c.Resolver.ResolveClient(ctx, uow, name, phone); err != nil {
			return nil, err
		}
		if id == 0 {
			return nil, errs.NewValueIsRequiredError("clientName")
		}
	}
	return uow.ClientRepository().Get(ctx, id)
}

func (c OrderCollaborators) resolveEquipment(
	ctx context.Context, uow UoW, id int64, description, serial string,
) (*equipment.Equipment, error) {
	if id == 0 {
		var err error
		if id, err = c.Resolver.ResolveEquipment(ctx, uow, description, serial); err != nil {
			return nil, err
		}
		if id == 0 {
			return nil, errs.NewValueIsRequiredError("equipment")
		}
	}
	return uow.EquipmentRepository().Get(ctx, id)
}

// resolveCatalog registers typed catalog texts so they show up in the
// pick lists. Blank texts are skipped.
func (c OrderCollaborators) resolveCatalog(ctx context.Context, uow UoW, texts map[catalog.Kind]string) error {
	for _, kind := range catalog.Kinds() {
		text, ok := texts[kind]
		if !ok {
			continue
		}
		if _, err := c.Resolver.ResolveCatalogEntry(ctx, uow, kind, text); err != nil {
			return err
		}
	}
	return nil
}

// afterCommit queues the history entry and the document refresh of an order.
func (c OrderCollaborators) afterCommit(uow UoW, orderID int64, actor string, action history.Action, note string) {
	uow.AfterCommit(func(context.Context) {
		if c.Auditor != nil {
			c.Auditor.Record(orderID, actor, action, note)
		}
		if c.Documents != nil {
			c.Documents.Publish(orderID)
		}
	})
}
