package queries

import (
	"context"
	"errors"

	"repairshop/internal/core/domain/model/catalog"
	"repairshop/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListCatalogQueryIsNotConstructed = errors.New(
	"ListCatalogQuery must be created via NewListCatalogQuery constructor",
)

// ListCatalogQuery lists one catalog by name.
type ListCatalogQuery struct {
	kind catalog.Kind

	guard guard.ConstructorGuard
}

func NewListCatalogQuery(kind catalog.Kind) (ListCatalogQuery, error) {
	if err := kind.Validate(); err != nil {
		return ListCatalogQuery{}, err
	}
	return ListCatalogQuery{kind: kind, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCatalogQuery) Validate() error {
	return q.guard.Validate(ErrListCatalogQueryIsNotConstructed)
}

func (q ListCatalogQuery) Kind() catalog.Kind { return q.kind }

// CatalogEntryResponse carries Cost only for spare parts that have one.
type CatalogEntryResponse struct {
	ID          int64
	Kind        string
	Name        string
	Description string
	Cost        *float64
}

type ListCatalogQueryHandler struct {
	db *gorm.DB
}

func NewListCatalogQueryHandler(db *gorm.DB) ListCatalogQueryHandler {
	return ListCatalogQueryHandler{db: db}
}

func (h ListCatalogQueryHandler) Handle(ctx context.Context, query ListCatalogQuery) ([]CatalogEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := []CatalogEntryResponse{}
	err := h.db.WithContext(ctx).
		Raw(`SELECT id, kind, name, description, cost
			FROM catalog_entries
			WHERE kind = ?
			ORDER BY key`, query.Kind().String()).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
