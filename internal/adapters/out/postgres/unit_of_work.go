// Package postgres provides the GORM-based Unit of Work and schema management.
//
// One UnitOfWork spans one business operation. Repositories obtained after
// Begin share its transaction; repositories obtained before Begin run against
// the plain connection.
//
// Basic Transaction Management:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	uow.AfterCommit(func(ctx context.Context) { notify(o.ID()) })
//
//	return uow.Commit(ctx)
//
// Hooks registered with AfterCommit run in registration order once Commit
// succeeds and are discarded by Rollback.
package postgres

import (
	"context"

	"repairshop/internal/adapters/out/postgres/catalogrepo"
	"repairshop/internal/adapters/out/postgres/clientrepo"
	"repairshop/internal/adapters/out/postgres/equipmentrepo"
	"repairshop/internal/adapters/out/postgres/historyrepo"
	"repairshop/internal/adapters/out/postgres/orderrepo"
	"repairshop/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no transaction open.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction and the hooks that must
// only run once it is durable.
type GormUnitOfWork struct {
	db    *gorm.DB
	tx    *gorm.DB
	hooks []func(ctx context.Context)
}

// Begin opens the transaction. Calling it again while open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes the transaction durable and then runs the after-commit hooks.
// A failed commit drops the hooks.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	hooks := uow.hooks
	uow.hooks = nil
	if err != nil {
		return err
	}

	for _, fn := range hooks {
		fn(ctx)
	}
	return nil
}

// Rollback discards the transaction and any pending hooks. Handlers defer it
// unconditionally, so after a successful Commit it returns
// gorm.ErrInvalidTransaction and changes nothing.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.hooks = nil
	return err
}

// AfterCommit registers fn to run after a successful Commit. Outside a
// transaction there is nothing to wait for and fn runs immediately.
func (uow *GormUnitOfWork) AfterCommit(fn func(ctx context.Context)) {
	if uow.tx == nil {
		fn(context.Background())
		return
	}
	uow.hooks = append(uow.hooks, fn)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) ClientRepository() ports.ClientRepository {
	return clientrepo.NewGormClientRepository(uow.conn())
}

func (uow *GormUnitOfWork) EquipmentRepository() ports.EquipmentRepository {
	return equipmentrepo.NewGormEquipmentRepository(uow.conn())
}

func (uow *GormUnitOfWork) OwnershipRepository() ports.OwnershipRepository {
	return equipmentrepo.NewGormOwnershipRepository(uow.conn())
}

func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) HistoryRepository() ports.HistoryRepository {
	return historyrepo.NewGormHistoryRepository(uow.conn())
}
