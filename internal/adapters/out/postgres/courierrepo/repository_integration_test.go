package courierrepo_test

import (
	"context"
	"testing"
	"time"

	"courierledger/internal/adapters/out/postgres/courierrepo"
	"courierledger/internal/adapters/out/postgres/postgrestest"
	"courierledger/internal/core/domain/model/courier"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/vehicle"
	"courierledger/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *postgrestest.Database
	repository *courierrepo.GormCourierRepository
	tracker    *MockAggregateTracker
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := postgrestest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(pg.DB.AutoMigrate(&courierrepo.CourierDTO{}))
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.repository = courierrepo.NewGormCourierRepository(suite.pg.DB, suite.tracker)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_ThenGet() {
	ctx := suite.T().Context()
	c := suite.newCourier("Ada", vehicle.Scooter)
	suite.tracker.On("TrackAggregate", c.ID(), c).Once()

	suite.Require().NoError(suite.repository.Add(ctx, c))

	got, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(c.ID()))
	suite.Equal("Ada", got.Name())
	suite.Equal(vehicle.Scooter, got.VehicleClass())
	suite.WithinDuration(c.CreatedAt(), got.CreatedAt(), time.Millisecond)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsAlreadyExists() {
	ctx := suite.T().Context()
	c := suite.newCourier("Ada", vehicle.Bike)
	suite.tracker.On("TrackAggregate", c.ID(), c).Once()
	suite.Require().NoError(suite.repository.Add(ctx, c))

	err := suite.repository.Add(ctx, c)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	got, err := suite.repository.Get(suite.T().Context(), kernel.NewUUID())

	suite.Nil(got)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate() {
	ctx := suite.T().Context()
	c := suite.newCourier("Ada", vehicle.Bike)
	suite.tracker.On("TrackAggregate", c.ID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, c))

	suite.Require().NoError(c.Rename("Ada Lovelace"))
	suite.Require().NoError(c.ChangeVehicle(vehicle.Car))
	suite.Require().NoError(suite.repository.Update(ctx, c))

	got, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal("Ada Lovelace", got.Name())
	suite.Equal(vehicle.Car, got.VehicleClass())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	err := suite.repository.Update(suite.T().Context(), suite.newCourier("Ghost", vehicle.Van))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *CourierRepositoryIntegrationTestSuite) newCourier(name string, class vehicle.Class) *courier.Courier {
	c, err := courier.NewCourier(kernel.NewUUID(), name, class, time.Now())
	suite.Require().NoError(err)
	return c
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	postgrestest.SkipIfUnavailable(t)
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
