package catalogrepo

import (
	"context"
	"errors"

	"repairshop/internal/adapters/out/postgres/pgutil"
	"repairshop/internal/core/domain/model/catalog"
	"repairshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) FindByIdentity(ctx context.Context, identity catalog.Identity) (*catalog.Entry, error) {
	var dto EntryDTO
	err := r.db.WithContext(ctx).
		Where("kind = ? AND key = ?", identity.Kind().String(), identity.Key()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(identity.Kind().String(), identity.Name())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormCatalogRepository) Add(ctx context.Context, entry *catalog.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	dto.ID = 0
	if err := pgutil.Insert(ctx, r.db, &dto, entry.Kind().String(), entry.Name()); err != nil {
		return err
	}
	return entry.AssignID(dto.ID)
}
