package ports

import (
	"context"

	"repairshop/internal/core/domain/model/catalog"
)

// CatalogRepository persists catalog entries of every kind.
type CatalogRepository interface {
	// FindByIdentity matches on kind and folded key.
	FindByIdentity(ctx context.Context, identity catalog.Identity) (*catalog.Entry, error)

	Add(ctx context.Context, entry *catalog.Entry) error
}
