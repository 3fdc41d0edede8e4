package queries

import (
	"context"
	"errors"
	"time"

	"repairshop/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListEquipmentQueryIsNotConstructed = errors.New(
	"ListEquipmentQuery must be created via NewListEquipmentQuery constructor",
)

// ListEquipmentQuery lists every equipment with its current owner.
type ListEquipmentQuery struct {
	guard guard.ConstructorGuard
}

func NewListEquipmentQuery() ListEquipmentQuery {
	return ListEquipmentQuery{guard: guard.NewConstructorGuard()}
}

func (q ListEquipmentQuery) Validate() error {
	return q.guard.Validate(ErrListEquipmentQueryIsNotConstructed)
}

// EquipmentResponse carries the active owner, if any. OwnerID is zero for
// equipment nobody owns.
type EquipmentResponse struct {
	ID          int64
	Type        string
	Brand       string
	Model       string
	Serial      string
	Description string
	OwnerID     int64
	OwnerName   string
	OwnerRole   string
	CreatedAt   time.Time
}

type ListEquipmentQueryHandler struct {
	db *gorm.DB
}

func NewListEquipmentQueryHandler(db *gorm.DB) ListEquipmentQueryHandler {
	return ListEquipmentQueryHandler{db: db}
}

func (h ListEquipmentQueryHandler) Handle(ctx context.Context, query ListEquipmentQuery) ([]EquipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	equipment := []EquipmentResponse{}
	err := h.db.WithContext(ctx).
		Raw(`SELECT e.id, e.type, e.brand, e.model,
				COALESCE(e.serial, '') AS serial, e.description,
				COALESCE(c.id, 0) AS owner_id,
				COALESCE(c.name, '') AS owner_name,
				COALESCE(ec.role, '') AS owner_role,
				e.created_at
			FROM equipment e
			LEFT JOIN equipment_clients ec ON ec.equipment_id = e.id AND ec.active
			LEFT JOIN clients c ON c.id = ec.client_id
			ORDER BY e.id`).
		Scan(&equipment).Error
	if err != nil {
		return nil, err
	}
	return equipment, nil
}
