package equipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"repairshop/internal/adapters/out/postgres/clientrepo"
	"repairshop/internal/adapters/out/postgres/equipmentrepo"
	"repairshop/internal/adapters/out/postgres/pgtest"
	"repairshop/internal/core/domain/model/client"
	"repairshop/internal/core/domain/model/equipment"
	"repairshop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type EquipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	database  *pgtest.Database
	equipment *equipmentrepo.GormEquipmentRepository
	links     *equipmentrepo.GormOwnershipRepository
	clients   *clientrepo.GormClientRepository
}

func (suite *EquipmentRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *EquipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset(context.Background()))
	suite.equipment = equipmentrepo.NewGormEquipmentRepository(suite.database.DB)
	suite.links = equipmentrepo.NewGormOwnershipRepository(suite.database.DB)
	suite.clients = clientrepo.NewGormClientRepository(suite.database.DB)
}

func (suite *EquipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *EquipmentRepositoryIntegrationTestSuite) addEquipment(description, serial string) *equipment.Equipment {
	e, err := equipment.NewEquipment(equipment.Details{Description: description, Serial: serial}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.equipment.Add(context.Background(), e))
	return e
}

func (suite *EquipmentRepositoryIntegrationTestSuite) addClient(name string) *client.Client {
	c, err := client.NewClient(client.Details{Name: name}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.clients.Add(context.Background(), c))
	return c
}

func (suite *EquipmentRepositoryIntegrationTestSuite) TestFindBySerial() {
	ctx := context.Background()
	e := suite.addEquipment("Impresora", "sn-001")

	got, err := suite.equipment.FindBySerial(ctx, "SN-001")
	suite.Require().NoError(err)
	suite.Equal(e.ID(), got.ID())
	suite.Require().NotNil(got.Serial())
	suite.Equal("SN-001", *got.Serial())

	_, err = suite.equipment.FindBySerial(ctx, "SN-002")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *EquipmentRepositoryIntegrationTestSuite) TestFindByDescription_IgnoresSerialisedEquipment() {
	ctx := context.Background()
	suite.addEquipment("Monitor", "ABC")

	_, err := suite.equipment.FindByDescription(ctx, "Monitor")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	plain := suite.addEquipment("Monitor", "")
	got, err := suite.equipment.FindByDescription(ctx, "Monitor")
	suite.Require().NoError(err)
	suite.Equal(plain.ID(), got.ID())
}

func (suite *EquipmentRepositoryIntegrationTestSuite) TestAdd_DuplicateSerialOrDescription() {
	ctx := context.Background()
	suite.addEquipment("Impresora", "SN1")
	suite.addEquipment("Notebook", "")

	sameSerial, err := equipment.NewEquipment(equipment.Details{Description: "Otra", Serial: "sn1"}, time.Now())
	suite.Require().NoError(err)
	suite.Require().ErrorIs(suite.equipment.Add(ctx, sameSerial), errs.ErrDuplicateEntity)

	sameDescription, err := equipment.NewEquipment(equipment.Details{Description: "Notebook"}, time.Now())
	suite.Require().NoError(err)
	suite.Require().ErrorIs(suite.equipment.Add(ctx, sameDescription), errs.ErrDuplicateEntity)

	withSerial, err := equipment.NewEquipment(equipment.Details{Description: "Notebook", Serial: "NB2"}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.equipment.Add(ctx, withSerial))
}

func (suite *EquipmentRepositoryIntegrationTestSuite) TestLock_UnknownIsNotFound() {
	ctx := context.Background()
	tx := suite.database.DB.Begin()
	defer tx.Rollback()

	_, err := equipmentrepo.NewGormEquipmentRepository(tx).Lock(ctx, 999)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *EquipmentRepositoryIntegrationTestSuite) TestUpdate_WritesDetails() {
	ctx := context.Background()
	e := suite.addEquipment("Impresora", "")

	suite.Require().NoError(e.Edit(equipment.Details{Description: "Impresora", Brand: "HP", Serial: "x 9"}))
	suite.Require().NoError(suite.equipment.Update(ctx, e))

	got, err := suite.equipment.FindBySerial(ctx, "X9")
	suite.Require().NoError(err)
	suite.Equal("HP", got.Details().Brand)
}

func (suite *EquipmentRepositoryIntegrationTestSuite) TestOwnership_SingleActiveLink() {
	ctx := context.Background()
	e := suite.addEquipment("Impresora", "SN1")
	first := suite.addClient("Ana")
	second := suite.addClient("Beto")

	link, err := equipment.NewOwnershipLink(e.ID(), first.ID(), "", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.links.Add(ctx, link))
	suite.Positive(link.ID())

	clash, err := equipment.NewOwnershipLink(e.ID(), second.ID(), "", time.Now())
	suite.Require().NoError(err)
	suite.Require().ErrorIs(suite.links.Add(ctx, clash), errs.ErrDuplicateEntity,
		"a second active link must violate the partial index")

	changed, err := suite.links.DeactivateAll(ctx, e.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(1), changed)

	_, err = suite.links.FindActive(ctx, e.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(suite.links.Add(ctx, clash))
	active, err := suite.links.FindActive(ctx, e.ID())
	suite.Require().NoError(err)
	suite.Equal(second.ID(), active.ClientID())
}

func (suite *EquipmentRepositoryIntegrationTestSuite) TestOwnership_ReactivateExistingPair() {
	ctx := context.Background()
	e := suite.addEquipment("Impresora", "SN1")
	c := suite.addClient("Ana")

	link, err := equipment.NewOwnershipLink(e.ID(), c.ID(), "", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.links.Add(ctx, link))
	_, err = suite.links.DeactivateAll(ctx, e.ID())
	suite.Require().NoError(err)

	found, err := suite.links.Find(ctx, e.ID(), c.ID())
	suite.Require().NoError(err)
	suite.False(found.IsActive())

	found.Reactivate("usuario")
	suite.Require().NoError(suite.links.Update(ctx, found))

	active, err := suite.links.FindActive(ctx, e.ID())
	suite.Require().NoError(err)
	suite.Equal(link.ID(), active.ID())
	suite.Equal("usuario", active.Role())
}

func TestEquipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EquipmentRepositoryIntegrationTestSuite))
}
