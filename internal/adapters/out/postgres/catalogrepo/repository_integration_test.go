package catalogrepo_test

import (
	"context"
	"testing"

	"repairshop/internal/adapters/out/postgres/catalogrepo"
	"repairshop/internal/adapters/out/postgres/pgtest"
	"repairshop/internal/core/domain/model/catalog"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type CatalogRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *catalogrepo.GormCatalogRepository
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset(context.Background()))
	suite.repository = catalogrepo.NewGormCatalogRepository(suite.database.DB)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *CatalogRepositoryIntegrationTestSuite) add(kind catalog.Kind, name string, cost *kernel.Money) *catalog.Entry {
	identity, ok := catalog.NewIdentity(kind, name)
	suite.Require().True(ok)
	entry, err := catalog.NewEntry(identity, "", cost)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), entry))
	return entry
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestSameTextInDifferentKinds() {
	fault := suite.add(catalog.Fault, "Pantalla", nil)
	part := suite.add(catalog.SparePart, "Pantalla", nil)

	suite.NotEqual(fault.ID(), part.ID())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestFindByIdentity_FoldsCase() {
	ctx := context.Background()
	entry := suite.add(catalog.Accessory, "Cable de poder", nil)

	identity, _ := catalog.NewIdentity(catalog.Accessory, "  CABLE   de PODER ")
	got, err := suite.repository.FindByIdentity(ctx, identity)
	suite.Require().NoError(err)
	suite.Equal(entry.ID(), got.ID())

	identity, _ = catalog.NewIdentity(catalog.Fault, "Cable de poder")
	_, err = suite.repository.FindByIdentity(ctx, identity)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestAdd_DuplicateWithinKind() {
	suite.add(catalog.Repair, "Cambio de fusor", nil)

	identity, _ := catalog.NewIdentity(catalog.Repair, "cambio de FUSOR")
	entry, err := catalog.NewEntry(identity, "", nil)
	suite.Require().NoError(err)

	suite.Require().ErrorIs(suite.repository.Add(context.Background(), entry), errs.ErrDuplicateEntity)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestSparePartCostRoundTrips() {
	cost, err := kernel.MoneyFromCents(152050)
	suite.Require().NoError(err)
	suite.add(catalog.SparePart, "Rodillo", &cost)

	identity, _ := catalog.NewIdentity(catalog.SparePart, "rodillo")
	got, err := suite.repository.FindByIdentity(context.Background(), identity)
	suite.Require().NoError(err)
	suite.Require().NotNil(got.Cost())
	suite.Equal(int64(152050), got.Cost().Cents())
}

func TestCatalogRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryIntegrationTestSuite))
}
