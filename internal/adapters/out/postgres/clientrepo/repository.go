package clientrepo

import (
	"context"
	"errors"

	"repairshop/internal/adapters/out/postgres/pgutil"
	"repairshop/internal/core/domain/model/client"
	"repairshop/internal/pkg/errs"

	"gorm.io/gorm"
)

const entity = "client"

// GormClientRepository implements ports.ClientRepository using GORM.
type GormClientRepository struct {
	db *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByIdentity compares phones through COALESCE so that a missing phone
// matches only another missing phone, the same rule the unique index uses.
func (r *GormClientRepository) FindByIdentity(ctx context.Context, identity client.Identity) (*client.Client, error) {
	phone := ""
	if p := identity.Phone(); p != nil {
		phone = *p
	}

	var dto ClientDTO
	err := r.db.WithContext(ctx).
		Where("name = ? AND COALESCE(phone, '') = ?", identity.Name(), phone).
		Order("id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(entity, identity.Key())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormClientRepository) Get(ctx context.Context, id int64) (*client.Client, error) {
	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("clientId", id)
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormClientRepository) Add(ctx context.Context, c *client.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	dto.ID = 0
	if err := pgutil.Insert(ctx, r.db, &dto, entity, c.Identity().Key()); err != nil {
		return err
	}
	return c.AssignID(dto.ID)
}

func (r *GormClientRepository) Update(ctx context.Context, c *client.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	return pgutil.Save(ctx, r.db, entity, dto.ID, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&ClientDTO{}).
			Where("id = ?", dto.ID).
			Select("*").
			Omit("id", "created_at").
			Updates(&dto)
	})
}
