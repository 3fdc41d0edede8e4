package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one operation. Repositories
// obtained from it after Begin share the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// AfterCommit registers fn to run once the transaction commits. Hooks are
	// dropped on rollback.
	AfterCommit(fn func(ctx context.Context))

	ClientRepository() ClientRepository
	EquipmentRepository() EquipmentRepository
	OwnershipRepository() OwnershipRepository
	CatalogRepository() CatalogRepository
	OrderRepository() OrderRepository
	HistoryRepository() HistoryRepository
}
