package commands_test

import (
	"testing"
	"time"

	"repairshop/internal/core/application/usecases/commands"
	"repairshop/internal/core/domain/model/client"
	"repairshop/internal/core/domain/model/equipment"
	"repairshop/internal/core/domain/model/history"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/core/domain/services"
	"repairshop/internal/core/ports/mocks"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/logger"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var handlerNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockAuditor struct{ mock.Mock }

func (m *MockAuditor) Record(orderID int64, actor string, action history.Action, note string) {
	m.Called(orderID, actor, action, note)
}

type MockDocumentPublisher struct{ mock.Mock }

func (m *MockDocumentPublisher) Publish(orderID int64) {
	m.Called(orderID)
}

// fixture bundles a unit of work mock, its factory and the collaborators of
// the order handlers.
type fixture struct {
	uow       *mocks.UnitOfWork
	factory   *MockUoWFactory
	auditor   *MockAuditor
	documents *MockDocumentPublisher
	clock     *kernel.FixedClock
	resolver  *services.EntityResolver
	linker    *services.OwnershipLinker
}

func newFixture() *fixture {
	clock := kernel.NewFixedClock(handlerNow)
	f := &fixture{
		uow:       mocks.NewUnitOfWork(),
		factory:   new(MockUoWFactory),
		auditor:   new(MockAuditor),
		documents: new(MockDocumentPublisher),
		clock:     clock,
		resolver:  services.NewEntityResolver(clock, nil, logger.NewNop()),
		linker:    services.NewOwnershipLinker(clock),
	}
	f.factory.On("Create").Return(f.uow).Maybe()
	return f
}

func (f *fixture) deps() commands.OrderCollaborators {
	return commands.OrderCollaborators{
		Resolver:  f.resolver,
		Linker:    f.linker,
		Clock:     f.clock,
		Statuses:  order.DefaultStatusCatalog(),
		Auditor:   f.auditor,
		Documents: f.documents,
	}
}

// expectTx sets up a unit of work that begins, commits and rolls back.
func (f *fixture) expectTx(t *testing.T) {
	t.Helper()
	ctx := t.Context()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
}

// expectAbortedTx sets up a unit of work that begins and rolls back only.
func (f *fixture) expectAbortedTx(t *testing.T) {
	t.Helper()
	ctx := t.Context()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
}

// expectLink sets up a first time link of the equipment to the client.
func (f *fixture) expectLink(t *testing.T, e *equipment.Equipment, c *client.Client) {
	t.Helper()
	ctx := t.Context()
	f.uow.Equipment.On("Lock", ctx, e.ID()).Return(e, nil).Once()
	f.uow.Clients.On("Get", ctx, c.ID()).Return(c, nil).Once()
	f.uow.Ownership.On("DeactivateAll", ctx, e.ID()).Return(int64(0), nil).Once()
	f.uow.Ownership.On("Find", ctx, e.ID(), c.ID()).
		Return(nil, errs.NewObjectNotFoundError("ownership", e.ID())).Once()
	f.uow.Ownership.On("Add", ctx, mock.MatchedBy(func(l *equipment.OwnershipLink) bool {
		return l.IsActive() && l.EquipmentID() == e.ID() && l.ClientID() == c.ID()
	})).Return(nil).Once()
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.uow.AssertExpectations(t)
	f.uow.AssertRepositories(t)
	f.auditor.AssertExpectations(t)
	f.documents.AssertExpectations(t)
}

func assignOnAdd[T interface{ AssignID(int64) error }](id int64) func(mock.Arguments) {
	return func(args mock.Arguments) {
		_ = args.Get(1).(T).AssignID(id)
	}
}

func existingClient(t *testing.T, id int64, name, phone string) *client.Client {
	t.Helper()
	c, err := client.RestoreClient(id, client.Details{Name: name, Phone: phone}, handlerNow)
	require.NoError(t, err)
	return c
}

func existingEquipment(t *testing.T, id int64, description, serial string) *equipment.Equipment {
	t.Helper()
	e, err := equipment.RestoreEquipment(id, equipment.Details{Description: description, Serial: serial}, handlerNow)
	require.NoError(t, err)
	return e
}

func existingOrder(t *testing.T, s order.Snapshot) *order.Order {
	t.Helper()
	if s.ClientID == 0 {
		s.ClientID = 7
	}
	if s.EquipmentID == 0 {
		s.EquipmentID = 9
	}
	if s.Status.IsZero() {
		s.Status = order.StatusRepairing
	}
	if s.Intake.IsZero() {
		s.Intake = kernel.StampAt(handlerNow.Add(-48 * time.Hour))
	}
	o, err := order.RestoreOrder(s)
	require.NoError(t, err)
	return o
}
