package equipmentrepo

import (
	"context"
	"errors"
	"fmt"

	"repairshop/internal/adapters/out/postgres/pgutil"
	"repairshop/internal/core/domain/model/equipment"
	"repairshop/internal/pkg/errs"

	"gorm.io/gorm"
)

const linkEntity = "ownership"

// GormOwnershipRepository implements ports.OwnershipRepository using GORM.
type GormOwnershipRepository struct {
	db *gorm.DB
}

func NewGormOwnershipRepository(db *gorm.DB) *GormOwnershipRepository {
	return &GormOwnershipRepository{db: db}
}

func (r *GormOwnershipRepository) DeactivateAll(ctx context.Context, equipmentID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&OwnershipDTO{}).
		Where("equipment_id = ? AND active", equipmentID).
		Update("active", false)
	return result.RowsAffected, result.Error
}

func (r *GormOwnershipRepository) Find(ctx context.Context, equipmentID, clientID int64) (*equipment.OwnershipLink, error) {
	q := r.db.WithContext(ctx).Where("equipment_id = ? AND client_id = ?", equipmentID, clientID)
	return r.first(q, fmt.Sprintf("%d/%d", equipmentID, clientID))
}

func (r *GormOwnershipRepository) FindActive(ctx context.Context, equipmentID int64) (*equipment.OwnershipLink, error) {
	q := r.db.WithContext(ctx).Where("equipment_id = ? AND active", equipmentID)
	return r.first(q, equipmentID)
}

func (r *GormOwnershipRepository) first(q *gorm.DB, key any) (*equipment.OwnershipLink, error) {
	var dto OwnershipDTO
	if err := q.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(linkEntity, key)
		}
		return nil, err
	}
	return linkToDomain(dto), nil
}

func (r *GormOwnershipRepository) Add(ctx context.Context, link *equipment.OwnershipLink) error {
	if err := link.Validate(); err != nil {
		return err
	}

	dto := linkFromDomain(link)
	dto.ID = 0
	key := fmt.Sprintf("%d/%d", dto.EquipmentID, dto.ClientID)
	if err := pgutil.Insert(ctx, r.db, &dto, linkEntity, key); err != nil {
		return err
	}
	return link.AssignID(dto.ID)
}

func (r *GormOwnershipRepository) Update(ctx context.Context, link *equipment.OwnershipLink) error {
	if err := link.Validate(); err != nil {
		return err
	}

	return pgutil.Save(ctx, r.db, linkEntity, link.ID(), func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&OwnershipDTO{}).
			Where("id = ?", link.ID()).
			Updates(map[string]any{"role": link.Role(), "active": link.IsActive()})
	})
}
