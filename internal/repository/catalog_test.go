//go:build integration
// +build integration

package repository

import (
	"testing"

	"balloon-flights-backend/internal/database/models"
	apperrors "balloon-flights-backend/internal/errors"
	"balloon-flights-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CatalogRepositoryTestSuite tests the pilot, balloon, airways and affiliation repositories
type CatalogRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	pilots        *PilotRepository
	balloons      *BalloonRepository
	airways       *AirwaysRepository
	affiliations  *AirwaysPilotRepository
	flights       *FlightRepository
	users         *UserRepository
	factories     *testutils.FactorySet
}

func (suite *CatalogRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.pilots = NewPilotRepository(db)
	suite.balloons = NewBalloonRepository(db)
	suite.airways = NewAirwaysRepository(db)
	suite.affiliations = NewAirwaysPilotRepository(db)
	suite.flights = NewFlightRepository(db)
	suite.users = NewUserRepository(db)
	suite.factories = testutils.NewFactorySet()
}

func (suite *CatalogRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *CatalogRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *CatalogRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CatalogRepositoryTestSuite) TestPilotCRUD() {
	pilot := suite.factories.Pilot.WithName("Ana", "Petrova")
	suite.NoError(suite.pilots.Create(pilot))

	found, err := suite.pilots.GetByID(pilot.ID)
	suite.NoError(err)
	suite.Equal("Ana Petrova", found.String())

	found.TotalHours = 1500
	suite.NoError(suite.pilots.Update(found))

	reloaded, err := suite.pilots.GetByID(pilot.ID)
	suite.NoError(err)
	suite.Equal(1500, reloaded.TotalHours)

	ok, err := suite.pilots.Exists(pilot.ID)
	suite.NoError(err)
	suite.True(ok)

	suite.NoError(suite.pilots.Delete(pilot.ID))
	ok, err = suite.pilots.Exists(pilot.ID)
	suite.NoError(err)
	suite.False(ok)
}

func (suite *CatalogRepositoryTestSuite) TestPilotGetAllOrdered() {
	suite.NoError(suite.pilots.Create(suite.factories.Pilot.WithName("Zoran", "Stojanov")))
	suite.NoError(suite.pilots.Create(suite.factories.Pilot.WithName("Ana", "Petrova")))

	pilots, err := suite.pilots.GetAll()
	suite.NoError(err)
	suite.Len(pilots, 2)
	suite.Equal("Petrova", pilots[0].LastName)
}

func (suite *CatalogRepositoryTestSuite) TestPilotNegativeHoursRejected() {
	pilot := suite.factories.Pilot.Create()
	pilot.TotalHours = -1

	err := suite.pilots.Create(pilot)

	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

func (suite *CatalogRepositoryTestSuite) TestBalloonZeroPassengersRejected() {
	balloon := suite.factories.Balloon.Create()
	balloon.MaxPassengers = 0

	err := suite.balloons.Create(balloon)

	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

func (suite *CatalogRepositoryTestSuite) TestAirwaysNameNotUnique() {
	suite.NoError(suite.airways.Create(suite.factories.Airways.WithName("Balkan Air")))
	suite.NoError(suite.airways.Create(suite.factories.Airways.WithName("Balkan Air")))

	all, err := suite.airways.GetAll()
	suite.NoError(err)
	suite.Len(all, 2)
}

func (suite *CatalogRepositoryTestSuite) TestAffiliationFindPreloads() {
	pilot := suite.factories.Pilot.WithName("Ana", "Petrova")
	airways := suite.factories.Airways.WithName("Balkan Air")
	suite.NoError(suite.pilots.Create(pilot))
	suite.NoError(suite.airways.Create(airways))
	suite.NoError(suite.affiliations.Create(suite.factories.AirwaysPilot.Create(pilot.ID, airways.ID)))

	found, err := suite.affiliations.Find(AirwaysPilotFilter{AirwaysID: airways.ID})
	suite.NoError(err)
	suite.Len(found, 1)
	suite.Equal("Ana Petrova - Balkan Air", found[0].String())

	none, err := suite.affiliations.Find(AirwaysPilotFilter{PilotID: uuid.New()})
	suite.NoError(err)
	suite.Empty(none)
}

func (suite *CatalogRepositoryTestSuite) TestAffiliationDanglingReference() {
	pilot := suite.factories.Pilot.Create()
	suite.NoError(suite.pilots.Create(pilot))

	err := suite.affiliations.Create(suite.factories.AirwaysPilot.Create(pilot.ID, uuid.New()))

	suite.True(apperrors.IsIntegrity(err))
}

func (suite *CatalogRepositoryTestSuite) TestDeletePilotCascades() {
	owner, pilot, balloon, airways := suite.factories.CreateCatalog()
	otherPilot := suite.factories.Pilot.WithName("Zoran", "Stojanov")
	suite.NoError(suite.users.Create(owner))
	suite.NoError(suite.pilots.Create(pilot))
	suite.NoError(suite.pilots.Create(otherPilot))
	suite.NoError(suite.balloons.Create(balloon))
	suite.NoError(suite.airways.Create(airways))
	suite.NoError(suite.affiliations.Create(suite.factories.AirwaysPilot.Create(pilot.ID, airways.ID)))
	suite.NoError(suite.affiliations.Create(suite.factories.AirwaysPilot.Create(otherPilot.ID, airways.ID)))
	suite.NoError(suite.flights.Create(suite.factories.Flight.WithRefs(owner.ID, balloon.ID, pilot.ID, airways.ID)))
	suite.NoError(suite.flights.Create(suite.factories.Flight.WithRefs(owner.ID, balloon.ID, otherPilot.ID, airways.ID)))

	suite.NoError(suite.pilots.Delete(pilot.ID))

	flights, err := suite.flights.Find(FlightFilter{})
	suite.NoError(err)
	suite.Len(flights, 1)
	suite.Equal(otherPilot.ID, flights[0].PilotID)

	affiliations, err := suite.affiliations.Find(AirwaysPilotFilter{})
	suite.NoError(err)
	suite.Len(affiliations, 1)
	suite.Equal(otherPilot.ID, affiliations[0].PilotID)
}

func (suite *CatalogRepositoryTestSuite) TestDeleteBalloonCascades() {
	owner, pilot, balloon, airways := suite.factories.CreateCatalog()
	suite.NoError(suite.users.Create(owner))
	suite.NoError(suite.pilots.Create(pilot))
	suite.NoError(suite.balloons.Create(balloon))
	suite.NoError(suite.airways.Create(airways))
	suite.NoError(suite.flights.Create(suite.factories.Flight.WithRefs(owner.ID, balloon.ID, pilot.ID, airways.ID)))

	suite.NoError(suite.balloons.Delete(balloon.ID))

	total, err := suite.flights.Count(FlightFilter{})
	suite.NoError(err)
	suite.Zero(total)

	// Catalog rows not referencing the balloon are untouched
	ok, err := suite.pilots.Exists(pilot.ID)
	suite.NoError(err)
	suite.True(ok)
}

func (suite *CatalogRepositoryTestSuite) TestDeleteAirwaysCascades() {
	owner, pilot, balloon, airways := suite.factories.CreateCatalog()
	suite.NoError(suite.users.Create(owner))
	suite.NoError(suite.pilots.Create(pilot))
	suite.NoError(suite.balloons.Create(balloon))
	suite.NoError(suite.airways.Create(airways))
	suite.NoError(suite.affiliations.Create(suite.factories.AirwaysPilot.Create(pilot.ID, airways.ID)))
	suite.NoError(suite.flights.Create(suite.factories.Flight.WithRefs(owner.ID, balloon.ID, pilot.ID, airways.ID)))

	suite.NoError(suite.airways.Delete(airways.ID))

	var affiliations, flights int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.AirwaysPilot{}).Count(&affiliations).Error)
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Flight{}).Count(&flights).Error)
	suite.Zero(affiliations)
	suite.Zero(flights)
}

func (suite *CatalogRepositoryTestSuite) TestDeleteMissing() {
	suite.ErrorIs(suite.balloons.Delete(uuid.New()), gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.affiliations.Delete(uuid.New()), gorm.ErrRecordNotFound)
}

func TestCatalogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryTestSuite))
}
