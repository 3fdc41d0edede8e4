// Package mocks provides testify mocks of the ports for handler and service
// tests.
package mocks

import (
	"context"

	"repairshop/internal/core/domain/model/catalog"
	"repairshop/internal/core/domain/model/client"
	"repairshop/internal/core/domain/model/equipment"
	"repairshop/internal/core/domain/model/history"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var (
	_ ports.ClientRepository    = (*ClientRepository)(nil)
	_ ports.EquipmentRepository = (*EquipmentRepository)(nil)
	_ ports.OwnershipRepository = (*OwnershipRepository)(nil)
	_ ports.CatalogRepository   = (*CatalogRepository)(nil)
	_ ports.OrderRepository     = (*OrderRepository)(nil)
	_ ports.HistoryRepository   = (*HistoryRepository)(nil)
)

type ClientRepository struct{ mock.Mock }

func (m *ClientRepository) FindByIdentity(ctx context.Context, identity client.Identity) (*client.Client, error) {
	args := m.Called(ctx, identity)
	return getOrNil[*client.Client](args, 0), args.Error(1)
}

func (m *ClientRepository) Get(ctx context.Context, id int64) (*client.Client, error) {
	args := m.Called(ctx, id)
	return getOrNil[*client.Client](args, 0), args.Error(1)
}

func (m *ClientRepository) Add(ctx context.Context, c *client.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	return m.Called(ctx, c).Error(0)
}

type EquipmentRepository struct{ mock.Mock }

func (m *EquipmentRepository) FindBySerial(ctx context.Context, serial string) (*equipment.Equipment, error) {
	args := m.Called(ctx, serial)
	return getOrNil[*equipment.Equipment](args, 0), args.Error(1)
}

func (m *EquipmentRepository) FindByDescription(ctx context.Context, description string) (*equipment.Equipment, error) {
	args := m.Called(ctx, description)
	return getOrNil[*equipment.Equipment](args, 0), args.Error(1)
}

func (m *EquipmentRepository) Get(ctx context.Context, id int64) (*equipment.Equipment, error) {
	args := m.Called(ctx, id)
	return getOrNil[*equipment.Equipment](args, 0), args.Error(1)
}

func (m *EquipmentRepository) Lock(ctx context.Context, id int64) (*equipment.Equipment, error) {
	args := m.Called(ctx, id)
	return getOrNil[*equipment.Equipment](args, 0), args.Error(1)
}

func (m *EquipmentRepository) Add(ctx context.Context, e *equipment.Equipment) error {
	return m.Called(ctx, e).Error(0)
}

func (m *EquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	return m.Called(ctx, e).Error(0)
}

type OwnershipRepository struct{ mock.Mock }

func (m *OwnershipRepository) DeactivateAll(ctx context.Context, equipmentID int64) (int64, error) {
	args := m.Called(ctx, equipmentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OwnershipRepository) Find(ctx context.Context, equipmentID, clientID int64) (*equipment.OwnershipLink, error) {
	args := m.Called(ctx, equipmentID, clientID)
	return getOrNil[*equipment.OwnershipLink](args, 0), args.Error(1)
}

func (m *OwnershipRepository) FindActive(ctx context.Context, equipmentID int64) (*equipment.OwnershipLink, error) {
	args := m.Called(ctx, equipmentID)
	return getOrNil[*equipment.OwnershipLink](args, 0), args.Error(1)
}

func (m *OwnershipRepository) Add(ctx context.Context, link *equipment.OwnershipLink) error {
	return m.Called(ctx, link).Error(0)
}

func (m *OwnershipRepository) Update(ctx context.Context, link *equipment.OwnershipLink) error {
	return m.Called(ctx, link).Error(0)
}

type CatalogRepository struct{ mock.Mock }

func (m *CatalogRepository) FindByIdentity(ctx context.Context, identity catalog.Identity) (*catalog.Entry, error) {
	args := m.Called(ctx, identity)
	return getOrNil[*catalog.Entry](args, 0), args.Error(1)
}

func (m *CatalogRepository) Add(ctx context.Context, entry *catalog.Entry) error {
	return m.Called(ctx, entry).Error(0)
}

type OrderRepository struct{ mock.Mock }

func (m *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *OrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	return getOrNil[*order.Order](args, 0), args.Error(1)
}

type HistoryRepository struct{ mock.Mock }

func (m *HistoryRepository) Append(ctx context.Context, entry *history.Entry) error {
	return m.Called(ctx, entry).Error(0)
}

func getOrNil[T any](args mock.Arguments, i int) T {
	var zero T
	if v := args.Get(i); v != nil {
		return v.(T)
	}
	return zero
}
