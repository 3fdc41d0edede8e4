package ports

import (
	"context"

	"repairshop/internal/core/domain/model/equipment"
)

// EquipmentRepository persists equipment and its ownership links.
type EquipmentRepository interface {
	FindBySerial(ctx context.Context, serial string) (*equipment.Equipment, error)

	// FindByDescription only considers equipment without a serial.
	FindByDescription(ctx context.Context, description string) (*equipment.Equipment, error)

	Get(ctx context.Context, id int64) (*equipment.Equipment, error)

	// Lock loads the equipment row with SELECT ... FOR UPDATE so that
	// ownership changes on the same equipment are serialized.
	Lock(ctx context.Context, id int64) (*equipment.Equipment, error)

	Add(ctx context.Context, e *equipment.Equipment) error

	Update(ctx context.Context, e *equipment.Equipment) error
}

// OwnershipRepository persists equipment to client links.
type OwnershipRepository interface {
	// DeactivateAll flips every active link of the equipment off and returns
	// how many changed.
	DeactivateAll(ctx context.Context, equipmentID int64) (int64, error)

	// Find returns the link for the pair, active or not.
	Find(ctx context.Context, equipmentID, clientID int64) (*equipment.OwnershipLink, error)

	// FindActive returns the single active link of the equipment.
	FindActive(ctx context.Context, equipmentID int64) (*equipment.OwnershipLink, error)

	Add(ctx context.Context, link *equipment.OwnershipLink) error

	Update(ctx context.Context, link *equipment.OwnershipLink) error
}
