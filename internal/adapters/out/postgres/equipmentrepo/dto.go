// Package equipmentrepo maps equipment and its ownership links onto the
// equipment and equipment_clients tables.
package equipmentrepo

import (
	"time"

	"repairshop/internal/core/domain/model/equipment"
	"repairshop/internal/pkg/textnorm"
)

// EquipmentDTO is the row shape of an equipment. Serial uniqueness and
// description uniqueness among serial-less rows are partial indexes created by
// the migration.
type EquipmentDTO struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Type        string  `gorm:"type:varchar(100);not null;default:''"`
	Brand       string  `gorm:"type:varchar(100);not null;default:''"`
	Model       string  `gorm:"type:varchar(100);not null;default:''"`
	Serial      *string `gorm:"type:varchar(100)"`
	Description string  `gorm:"type:varchar(300);not null;default:''"`
	CreatedAt   time.Time
}

func (EquipmentDTO) TableName() string {
	return "equipment"
}

// OwnershipDTO links an equipment to a client. At most one row per equipment
// is active, enforced by a partial unique index.
type OwnershipDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	EquipmentID int64  `gorm:"not null;uniqueIndex:idx_equipment_clients_pair,priority:1"`
	ClientID    int64  `gorm:"not null;uniqueIndex:idx_equipment_clients_pair,priority:2;index"`
	Role        string `gorm:"type:varchar(50);not null"`
	Active      bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

func (OwnershipDTO) TableName() string {
	return "equipment_clients"
}

func fromDomain(e *equipment.Equipment) EquipmentDTO {
	d := e.Details()
	return EquipmentDTO{
		ID:          e.ID(),
		Type:        d.Type,
		Brand:       d.Brand,
		Model:       d.Model,
		Serial:      textnorm.Optional(d.Serial),
		Description: d.Description,
		CreatedAt:   e.CreatedAt(),
	}
}

func toDomain(dto EquipmentDTO) (*equipment.Equipment, error) {
	serial := ""
	if dto.Serial != nil {
		serial = *dto.Serial
	}
	return equipment.RestoreEquipment(dto.ID, equipment.Details{
		Type:        dto.Type,
		Brand:       dto.Brand,
		Model:       dto.Model,
		Serial:      serial,
		Description: dto.Description,
	}, dto.CreatedAt)
}

func linkFromDomain(l *equipment.OwnershipLink) OwnershipDTO {
	return OwnershipDTO{
		ID:          l.ID(),
		EquipmentID: l.EquipmentID(),
		ClientID:    l.ClientID(),
		Role:        l.Role(),
		Active:      l.IsActive(),
		CreatedAt:   l.CreatedAt(),
	}
}

func linkToDomain(dto OwnershipDTO) *equipment.OwnershipLink {
	return equipment.RestoreOwnershipLink(dto.ID, dto.EquipmentID, dto.ClientID, dto.Role, dto.Active, dto.CreatedAt)
}
