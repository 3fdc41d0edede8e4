package services

import (
	"context"
	"errors"
	"fmt"

	"repairshop/internal/core/domain/model/equipment"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/ports"
	"repairshop/internal/pkg/errs"
)

// LinkerUoW is the slice of a unit of work the linker needs.
type LinkerUoW interface {
	ClientRepository() ports.ClientRepository
	EquipmentRepository() ports.EquipmentRepository
	OwnershipRepository() ports.OwnershipRepository
}

// OwnershipLinker makes a client the single active owner of an equipment.
// Previous links are deactivated, never deleted, and an existing link for the
// same pair is reactivated instead of duplicated.
type OwnershipLinker struct {
	clock kernel.Clock
}

// NewOwnershipLinker returns a linker that stamps new links with clock.
func NewOwnershipLinker(clock kernel.Clock) *OwnershipLinker {
	return &OwnershipLinker{clock: clock}
}

// Link must run inside a transaction. The equipment row is locked first so
// that concurrent links on the same equipment queue behind each other.
func (l *OwnershipLinker) Link(ctx context.Context, uow LinkerUoW, equipmentID, clientID int64, role string) error {
	if equipmentID <= 0 {
		return errs.NewObjectNotFoundError("equipmentId", equipmentID)
	}
	if clientID <= 0 {
		return errs.NewObjectNotFoundError("clientId", clientID)
	}

	if _, err := uow.EquipmentRepository().Lock(ctx, equipmentID); err != nil {
		return err
	}
	if _, err := uow.ClientRepository().Get(ctx, clientID); err != nil {
		return err
	}

	links := uow.OwnershipRepository()
	if _, err := links.DeactivateAll(ctx, equipmentID); err != nil {
		return fmt.Errorf("deactivate owners of equipment %d: %w", equipmentID, err)
	}

	link, err := links.Find(ctx, equipmentID, clientID)
	switch {
	case err == nil:
		link.Reactivate(role)
		return links.Update(ctx, link)
	case errors.Is(err, errs.ErrObjectNotFound):
		link, err = equipment.NewOwnershipLink(equipmentID, clientID, role, l.clock.Now())
		if err != nil {
			return err
		}
		return links.Add(ctx, link)
	default:
		return err
	}
}
