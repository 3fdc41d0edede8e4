package services

import (
	"context"
	"errors"

	"repairshop/internal/core/domain/model/catalog"
	"repairshop/internal/core/domain/model/client"
	"repairshop/internal/core/domain/model/equipment"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/ports"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/logger"
)

// ResolverUoW is the slice of a unit of work the resolver needs.
type ResolverUoW interface {
	ClientRepository() ports.ClientRepository
	EquipmentRepository() ports.EquipmentRepository
	CatalogRepository() ports.CatalogRepository
	AfterCommit(fn func(ctx context.Context))
}

// EntityResolver maps identities to ids, inserting a row the first time an
// identity is seen. It never updates an existing row and never links.
//
// A zero id with a nil error means the input carried no usable identity.
type EntityResolver struct {
	clock  kernel.Clock
	cache  ports.ResolutionCache
	logger logger.Logger
}

// NewEntityResolver builds a resolver. cache may be nil.
func NewEntityResolver(clock kernel.Clock, cache ports.ResolutionCache, log logger.Logger) *EntityResolver {
	return &EntityResolver{
		clock:  clock,
		cache:  cache,
		logger: log.With(logger.String("component", "entity_resolver")),
	}
}

// ClientCacheKey is the resolution cache key of a client identity. Keys of
// different entity types never collide.
func ClientCacheKey(identity client.Identity) string {
	return "client:" + identity.Key()
}

// EquipmentCacheKey is the resolution cache key of an equipment identity.
func EquipmentCacheKey(identity equipment.Identity) string {
	return "equipment:" + identity.Key()
}

// CatalogCacheKey is the resolution cache key of a catalog identity, scoped
// by kind.
func CatalogCacheKey(identity catalog.Identity) string {
	return "catalog:" + identity.Kind().String() + ":" + identity.Key()
}

// ResolveClient resolves by (name, phone), phone compared null-safely.
func (r *EntityResolver) ResolveClient(ctx context.Context, uow ResolverUoW, name, phone string) (int64, error) {
	identity, ok := client.NewIdentity(name, phone)
	if !ok {
		return 0, nil
	}
	repo := uow.ClientRepository()

	lookup := func() (int64, error) {
		c, err := repo.FindByIdentity(ctx, identity)
		if err != nil {
			return 0, err
		}
		return c.ID(), nil
	}
	insert := func() (int64, error) {
		c, err := client.NewClientFromIdentity(identity, r.clock.Now())
		if err != nil {
			return 0, err
		}
		if err = repo.Add(ctx, c); err != nil {
			return 0, err
		}
		return c.ID(), nil
	}

	return r.resolve(ctx, uow, ClientCacheKey(identity), lookup, insert)
}

// ResolveEquipment tries the serial first, then the description among
// equipment without a serial, and creates a row only when neither matches.
func (r *EntityResolver) ResolveEquipment(ctx context.Context, uow ResolverUoW, description, serial string) (int64, error) {
	identity, ok := equipment.NewIdentity(description, serial)
	if !ok {
		return 0, nil
	}
	repo := uow.EquipmentRepository()

	lookup := func() (int64, error) {
		if identity.HasSerial() {
			e, err := repo.FindBySerial(ctx, *identity.Serial())
			if err == nil {
				return e.ID(), nil
			}
			if !errors.Is(err, errs.ErrObjectNotFound) {
				return 0, err
			}
		}
		if identity.Description() == "" {
			return 0, errs.NewObjectNotFoundError("equipment", identity.Key())
		}
		e, err := repo.FindByDescription(ctx, identity.Description())
		if err != nil {
			return 0, err
		}
		return e.ID(), nil
	}
	insert := func() (int64, error) {
		e, err := equipment.NewEquipmentFromIdentity(identity, r.clock.Now())
		if err != nil {
			return 0, err
		}
		if err = repo.Add(ctx, e); err != nil {
			return 0, err
		}
		return e.ID(), nil
	}

	return r.resolve(ctx, uow, EquipmentCacheKey(identity), lookup, insert)
}

// ResolveCatalogEntry resolves text within one catalog kind by folded key.
func (r *EntityResolver) ResolveCatalogEntry(ctx context.Context, uow ResolverUoW, kind catalog.Kind, text string) (int64, error) {
	if err := kind.Validate(); err != nil {
		return 0, err
	}
	identity, ok := catalog.NewIdentity(kind, text)
	if !ok {
		return 0, nil
	}
	repo := uow.CatalogRepository()

	lookup := func() (int64, error) {
		e, err := repo.FindByIdentity(ctx, identity)
		if err != nil {
			return 0, err
		}
		return e.ID(), nil
	}
	insert := func() (int64, error) {
		e, err := catalog.NewEntry(identity, "", nil)
		if err != nil {
			return 0, err
		}
		if err = repo.Add(ctx, e); err != nil {
			return 0, err
		}
		return e.ID(), nil
	}

	return r.resolve(ctx, uow, CatalogCacheKey(identity), lookup, insert)
}

func (r *EntityResolver) resolve(
	ctx context.Context,
	uow ResolverUoW,
	key string,
	lookup func() (int64, error),
	insert func() (int64, error),
) (int64, error) {
	if id, ok := r.cached(ctx, key); ok {
		return id, nil
	}

	id, err := lookup()
	if err == nil {
		r.remember(uow, key, id)
		return id, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return 0, err
	}

	id, err = insert()
	if err == nil {
		r.remember(uow, key, id)
		return id, nil
	}
	if !errors.Is(err, errs.ErrDuplicateEntity) {
		return 0, err
	}

	// a concurrent resolver inserted the same identity first
	r.logger.Debug("resolution conflict, reading winner", logger.String("key", key))
	id, err = lookup()
	if err != nil {
		return 0, err
	}
	r.remember(uow, key, id)
	return id, nil
}

func (r *EntityResolver) cached(ctx context.Context, key string) (int64, bool) {
	if r.cache == nil {
		return 0, false
	}
	id, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warn("resolution cache read failed", logger.String("key", key), logger.Error(err))
		return 0, false
	}
	return id, ok
}

func (r *EntityResolver) remember(uow ResolverUoW, key string, id int64) {
	if r.cache == nil {
		return
	}
	uow.AfterCommit(func(ctx context.Context) {
		if err := r.cache.Set(ctx, key, id); err != nil {
			r.logger.Warn("resolution cache write failed", logger.String("key", key), logger.Error(err))
		}
	})
}

// Forget drops a cached resolution once uow commits. Callers use it when an
// explicit edit changes an identity.
func (r *EntityResolver) Forget(uow ResolverUoW, key string) {
	if r.cache == nil {
		return
	}
	uow.AfterCommit(func(ctx context.Context) {
		if err := r.cache.Delete(ctx, key); err != nil {
			r.logger.Warn("resolution cache delete failed", logger.String("key", key), logger.Error(err))
		}
	})
}
