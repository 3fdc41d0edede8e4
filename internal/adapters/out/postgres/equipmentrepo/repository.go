package equipmentrepo

import (
	"context"
	"errors"

	"repairshop/internal/adapters/out/postgres/pgutil"
	"repairshop/internal/core/domain/model/equipment"
	"repairshop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entity = "equipment"

// GormEquipmentRepository implements ports.EquipmentRepository using GORM.
type GormEquipmentRepository struct {
	db *gorm.DB
}

func NewGormEquipmentRepository(db *gorm.DB) *GormEquipmentRepository {
	return &GormEquipmentRepository{db: db}
}

func (r *GormEquipmentRepository) FindBySerial(ctx context.Context, serial string) (*equipment.Equipment, error) {
	return r.first(ctx, "serial", serial, r.db.WithContext(ctx).Where("serial = ?", serial))
}

func (r *GormEquipmentRepository) FindByDescription(ctx context.Context, description string) (*equipment.Equipment, error) {
	q := r.db.WithContext(ctx).Where("serial IS NULL AND description = ?", description)
	return r.first(ctx, "description", description, q)
}

func (r *GormEquipmentRepository) Get(ctx context.Context, id int64) (*equipment.Equipment, error) {
	return r.first(ctx, "equipmentId", id, r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *GormEquipmentRepository) Lock(ctx context.Context, id int64) (*equipment.Equipment, error) {
	q := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id)
	return r.first(ctx, "equipmentId", id, q)
}

func (r *GormEquipmentRepository) first(_ context.Context, param string, key any, q *gorm.DB) (*equipment.Equipment, error) {
	var dto EquipmentDTO
	if err := q.Order("id").First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, key)
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormEquipmentRepository) Add(ctx context.Context, e *equipment.Equipment) error {
	if err := e.Validate(); err != nil {
		return err
	}

	dto := fromDomain(e)
	dto.ID = 0
	if err := pgutil.Insert(ctx, r.db, &dto, entity, e.Identity().Key()); err != nil {
		return err
	}
	return e.AssignID(dto.ID)
}

func (r *GormEquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	if err := e.Validate(); err != nil {
		return err
	}

	dto := fromDomain(e)
	return pgutil.Save(ctx, r.db, entity, dto.ID, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&EquipmentDTO{}).
			Where("id = ?", dto.ID).
			Select("*").
			Omit("id", "created_at").
			Updates(&dto)
	})
}
