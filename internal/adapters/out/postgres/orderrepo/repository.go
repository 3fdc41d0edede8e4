package orderrepo

import (
	"context"
	"errors"

	"repairshop/internal/adapters/out/postgres/pgutil"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/errs"

	"gorm.io/gorm"
)

const entity = "order"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and assigns the generated number.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := pgutil.Insert(ctx, r.db, &dto, entity, "new"); err != nil {
		return err
	}
	return aggregate.AssignID(dto.ID)
}

// Update writes every column of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return pgutil.Save(ctx, r.db, entity, dto.ID, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Select("*").
			Omit("id", "created_at").
			Updates(&dto)
	})
}

// Get retrieves an order by number.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(entity, id)
		}
		return nil, err
	}

	return toDomain(dto)
}
