//go:build integration
// +build integration

package repository

import (
	"testing"

	apperrors "balloon-flights-backend/internal/errors"
	"balloon-flights-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.NotZero(user.CreatedAt)
}

// TestCreateDuplicateUsername tests the unique username index
func (suite *UserRepositoryTestSuite) TestCreateDuplicateUsername() {
	suite.NoError(suite.repo.Create(suite.factories.User.WithUsername("pilotfan")))

	err := suite.repo.Create(suite.factories.User.WithUsername("pilotfan"))

	suite.Error(err)
	suite.True(apperrors.IsAlreadyExists(err))
}

// TestGetByUsername tests retrieving a user by username
func (suite *UserRepositoryTestSuite) TestGetByUsername() {
	user := suite.factories.User.WithUsername("ana")
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByUsername("ana")

	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
}

// TestGetByIDNotFound tests retrieving a non-existent user
func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	user, err := suite.repo.GetByID(uuid.New())

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(user)
}

// TestDeleteCascadesToOwnedFlights tests that removing an owner removes their flights
func (suite *UserRepositoryTestSuite) TestDeleteCascadesToOwnedFlights() {
	db := suite.baseTestSuite.DB
	owner, pilot, balloon, airways := suite.factories.CreateCatalog()
	other := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(owner))
	suite.NoError(suite.repo.Create(other))
	suite.NoError(NewPilotRepository(db).Create(pilot))
	suite.NoError(NewBalloonRepository(db).Create(balloon))
	suite.NoError(NewAirwaysRepository(db).Create(airways))

	flights := NewFlightRepository(db)
	suite.NoError(flights.Create(suite.factories.Flight.WithRefs(owner.ID, balloon.ID, pilot.ID, airways.ID)))
	kept := suite.factories.Flight.WithRefs(other.ID, balloon.ID, pilot.ID, airways.ID)
	suite.NoError(flights.Create(kept))

	suite.NoError(suite.repo.Delete(owner.ID))

	remaining, err := flights.Find(FlightFilter{})
	suite.NoError(err)
	suite.Len(remaining, 1)
	suite.Equal(kept.ID, remaining[0].ID)
}

// TestDeleteNotFound tests deleting a missing user
func (suite *UserRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
