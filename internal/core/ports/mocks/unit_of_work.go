package mocks

import (
	"context"

	"repairshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork mocks transaction control. Repository accessors return the
// repositories set on the struct; AfterCommit hooks are collected and run by
// RunHooks.
type UnitOfWork struct {
	mock.Mock

	Clients    *ClientRepository
	Equipment  *EquipmentRepository
	Ownership  *OwnershipRepository
	Catalog    *CatalogRepository
	Orders     *OrderRepository
	History    *HistoryRepository
	AfterHooks []func(ctx context.Context)
}

// NewUnitOfWork returns a UnitOfWork wired to fresh repository mocks.
func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		Clients:   new(ClientRepository),
		Equipment: new(EquipmentRepository),
		Ownership: new(OwnershipRepository),
		Catalog:   new(CatalogRepository),
		Orders:    new(OrderRepository),
		History:   new(HistoryRepository),
	}
}

func (m *UnitOfWork) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *UnitOfWork) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *UnitOfWork) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *UnitOfWork) AfterCommit(fn func(ctx context.Context)) {
	m.AfterHooks = append(m.AfterHooks, fn)
}

// RunHooks runs the collected after-commit hooks.
func (m *UnitOfWork) RunHooks(ctx context.Context) {
	for _, fn := range m.AfterHooks {
		fn(ctx)
	}
}

func (m *UnitOfWork) ClientRepository() ports.ClientRepository       { return m.Clients }
func (m *UnitOfWork) EquipmentRepository() ports.EquipmentRepository { return m.Equipment }
func (m *UnitOfWork) OwnershipRepository() ports.OwnershipRepository { return m.Ownership }
func (m *UnitOfWork) CatalogRepository() ports.CatalogRepository     { return m.Catalog }
func (m *UnitOfWork) OrderRepository() ports.OrderRepository         { return m.Orders }
func (m *UnitOfWork) HistoryRepository() ports.HistoryRepository     { return m.History }

// AssertRepositories checks expectations on every repository mock.
func (m *UnitOfWork) AssertRepositories(t mock.TestingT) {
	m.Clients.AssertExpectations(t)
	m.Equipment.AssertExpectations(t)
	m.Ownership.AssertExpectations(t)
	m.Catalog.AssertExpectations(t)
	m.Orders.AssertExpectations(t)
	m.History.AssertExpectations(t)
}

type UnitOfWorkFactory struct{ mock.Mock }

func (m *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return m.Called().Get(0).(ports.UnitOfWork)
}
