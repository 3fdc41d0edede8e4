package mocks

import (
	"context"

	"repairshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var (
	_ ports.ResolutionCache     = (*ResolutionCache)(nil)
	_ ports.DocumentRenderer    = (*DocumentRenderer)(nil)
	_ ports.OrderDocumentSource = (*OrderDocumentSource)(nil)
)

type ResolutionCache struct{ mock.Mock }

func (m *ResolutionCache) Get(ctx context.Context, key string) (int64, bool, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *ResolutionCache) Set(ctx context.Context, key string, id int64) error {
	return m.Called(ctx, key, id).Error(0)
}

func (m *ResolutionCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type DocumentRenderer struct{ mock.Mock }

func (m *DocumentRenderer) Render(ctx context.Context, doc ports.OrderDocument) (string, error) {
	args := m.Called(ctx, doc)
	return args.String(0), args.Error(1)
}

type OrderDocumentSource struct{ mock.Mock }

func (m *OrderDocumentSource) LoadOrderDocument(ctx context.Context, orderID int64) (ports.OrderDocument, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(ports.OrderDocument), args.Error(1)
}
