package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "repairshop/internal/adapters/out/postgres"
	"repairshop/internal/adapters/out/postgres/pgtest"
	"repairshop/internal/core/domain/model/catalog"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/services"
	"repairshop/internal/core/ports"
	"repairshop/internal/pkg/logger"

	"github.com/stretchr/testify/suite"
)

// EntityResolverIntegrationTestSuite resolves the same identity from
// competing transactions against a real PostgreSQL database.
type EntityResolverIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
	resolver *services.EntityResolver
}

func (suite *EntityResolverIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
	clock := kernel.NewFixedClock(time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC))
	suite.resolver = services.NewEntityResolver(clock, nil, logger.NewNop())
}

func (suite *EntityResolverIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset(context.Background()))
}

func (suite *EntityResolverIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *EntityResolverIntegrationTestSuite) count(table string) int64 {
	var n int64
	suite.Require().NoError(suite.database.DB.Table(table).Count(&n).Error)
	return n
}

type resolveFunc func(ctx context.Context, uow ports.UnitOfWork) (int64, error)

// resolveInOwnTransaction runs resolve in a fresh unit of work and commits it.
func (suite *EntityResolverIntegrationTestSuite) resolveInOwnTransaction(ctx context.Context, resolve resolveFunc) (int64, error) {
	uow := suite.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	id, err := resolve(ctx, uow)
	if err != nil {
		_ = uow.Rollback(ctx)
		return 0, err
	}
	return id, uow.Commit(ctx)
}

func (suite *EntityResolverIntegrationTestSuite) TestResolveClient_LoserOfInsertRaceReadsWinner() {
	ctx := context.Background()
	resolve := func(ctx context.Context, uow ports.UnitOfWork) (int64, error) {
		return suite.resolver.ResolveClient(ctx, uow, "Juan Perez", "11 2233-4455")
	}

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	firstID, err := resolve(ctx, first)
	suite.Require().NoError(err)

	// the second insert waits on the uncommitted row, then hits the unique index
	type result struct {
		id  int64
		err error
	}
	second := make(chan result, 1)
	go func() {
		id, err := suite.resolveInOwnTransaction(ctx, resolve)
		second <- result{id: id, err: err}
	}()

	time.Sleep(200 * time.Millisecond)
	suite.Require().NoError(first.Commit(ctx))

	select {
	case got := <-second:
		suite.Require().NoError(got.err)
		suite.Equal(firstID, got.id)
	case <-time.After(10 * time.Second):
		suite.FailNow("second resolution never finished")
	}
	suite.Equal(int64(1), suite.count("clients"))
}

func (suite *EntityResolverIntegrationTestSuite) TestResolve_ConcurrentCallersShareOneRow() {
	cases := []struct {
		name    string
		table   string
		resolve resolveFunc
	}{
		{
			name:  "client",
			table: "clients",
			resolve: func(ctx context.Context, uow ports.UnitOfWork) (int64, error) {
				return suite.resolver.ResolveClient(ctx, uow, "ana  gomez", "")
			},
		},
		{
			name:  "equipment by serial",
			table: "equipment",
			resolve: func(ctx context.Context, uow ports.UnitOfWork) (int64, error) {
				return suite.resolver.ResolveEquipment(ctx, uow, "Notebook", "sn 001")
			},
		},
		{
			name:  "fault",
			table: "catalog_entries",
			resolve: func(ctx context.Context, uow ports.UnitOfWork) (int64, error) {
				return suite.resolver.ResolveCatalogEntry(ctx, uow, catalog.Fault, "no enciende")
			},
		},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			const callers = 8
			ctx := context.Background()
			start := make(chan struct{})
			ids := make([]int64, callers)
			errs := make([]error, callers)

			var wg sync.WaitGroup
			for i := range callers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					<-start
					ids[i], errs[i] = suite.resolveInOwnTransaction(ctx, tc.resolve)
				}()
			}
			close(start)
			wg.Wait()

			for i := range callers {
				suite.Require().NoError(errs[i])
				suite.Positive(ids[i])
				suite.Equal(ids[0], ids[i])
			}
			suite.Equal(int64(1), suite.count(tc.table))
		})
	}
}

func TestEntityResolverIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EntityResolverIntegrationTestSuite))
}
