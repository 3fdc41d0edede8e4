// Package commands contains the operations that change the shop's state.
// Every handler validates its command, runs inside one unit of work and
// dispatches audit and document side effects only after commit.
package commands

import (
	"context"

	"repairshop/internal/core/domain/model/history"
	"repairshop/internal/core/ports"
)

// Unit of Work interfaces give handlers transactional access to repositories.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AfterCommitter defers work until the transaction has committed.
	AfterCommitter interface {
		AfterCommit(fn func(ctx context.Context))
	}

	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	EquipmentRepoFactory interface {
		EquipmentRepository() ports.EquipmentRepository
	}

	OwnershipRepoFactory interface {
		OwnershipRepository() ports.OwnershipRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UoW spans every aggregate a command may touch.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil { ... }
	//   defer uow.Rollback(ctx)
	//
	//   id, err := resolver.ResolveClient(ctx, uow, name, phone)
	//   ...
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		AfterCommitter
		ClientRepoFactory
		EquipmentRepoFactory
		OwnershipRepoFactory
		CatalogRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates a unit of work per handled command.
	UoWFactory interface {
		Create() UoW
	}
)

// Side effects run after commit and never fail the command.
type (
	// Auditor appends an order history entry.
	Auditor interface {
		Record(orderID int64, actor string, action history.Action, note string)
	}

	// DocumentPublisher refreshes the printable document of an order.
	DocumentPublisher interface {
		Publish(orderID int64)
	}
)
