package redisgeo_test

import (
	"context"
	"testing"
	"time"

	"courierledger/internal/adapters/out/redisgeo"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/location"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type IndexIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
	index     *redisgeo.Index
	center    kernel.Coordinates
	now       time.Time
}

func (suite *IndexIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)
	suite.client = redisgeo.NewClient(endpoint, "", 0)

	suite.center, err = kernel.NewCoordinates(-74.006, 40.7128)
	suite.Require().NoError(err)
}

func (suite *IndexIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushDB(suite.T().Context()).Err())
	suite.index = redisgeo.NewIndex(suite.client, "test:couriers")
	suite.now = time.Now().UTC().Truncate(time.Millisecond)
}

func (suite *IndexIntegrationTestSuite) TearDownSuite() {
	ctx := context.Background()
	if suite.client != nil {
		_ = suite.client.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(ctx))
	}
}

func (suite *IndexIntegrationTestSuite) record(courierID kernel.UUID, lng, lat float64, at time.Time) *location.Record {
	coords, err := kernel.NewCoordinates(lng, lat)
	suite.Require().NoError(err)
	r, err := location.NewRecord(kernel.NewUUID(), courierID, location.Sample{Coordinates: coords, Timestamp: &at}, at)
	suite.Require().NoError(err)
	return r
}

func (suite *IndexIntegrationTestSuite) TestFindNearby_NearestFirstWithinRadius() {
	ctx := suite.T().Context()
	near, far, outside := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	suite.Require().NoError(suite.index.Upsert(ctx, suite.record(far, -74.000, 40.7128, suite.now)))
	suite.Require().NoError(suite.index.Upsert(ctx, suite.record(near, -74.005, 40.7128, suite.now)))
	suite.Require().NoError(suite.index.Upsert(ctx, suite.record(outside, -73.9, 40.7128, suite.now)))

	got, err := suite.index.FindNearby(ctx, suite.center, 1000, suite.now.Add(-time.Minute))

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.True(got[0].CourierID.IsEqual(near))
	suite.True(got[1].CourierID.IsEqual(far))
	suite.Less(got[0].DistanceMeters, got[1].DistanceMeters)
	suite.InDelta(84, got[0].DistanceMeters, 5)
	suite.Equal(suite.now, got[0].LastSeen)
}

func (suite *IndexIntegrationTestSuite) TestFindNearby_SkipsStaleCouriers() {
	ctx := suite.T().Context()
	fresh, stale := kernel.NewUUID(), kernel.NewUUID()

	suite.Require().NoError(suite.index.Upsert(ctx, suite.record(fresh, -74.005, 40.7128, suite.now)))
	suite.Require().NoError(suite.index.Upsert(ctx, suite.record(stale, -74.005, 40.7129, suite.now.Add(-10*time.Minute))))

	got, err := suite.index.FindNearby(ctx, suite.center, 1000, suite.now.Add(-5*time.Minute))

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.True(got[0].CourierID.IsEqual(fresh))
}

func (suite *IndexIntegrationTestSuite) TestUpsert_IgnoresOlderFix() {
	ctx := suite.T().Context()
	courierID := kernel.NewUUID()

	suite.Require().NoError(suite.index.Upsert(ctx, suite.record(courierID, -74.005, 40.7128, suite.now)))
	suite.Require().NoError(suite.index.Upsert(ctx, suite.record(courierID, -73.9, 40.7128, suite.now.Add(-time.Minute))))

	got, err := suite.index.FindNearby(ctx, suite.center, 1000, suite.now.Add(-5*time.Minute))

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.InDelta(-74.005, got[0].Coordinates.Lng(), 1e-4)
}

func (suite *IndexIntegrationTestSuite) TestRemove() {
	ctx := suite.T().Context()
	courierID := kernel.NewUUID()
	suite.Require().NoError(suite.index.Upsert(ctx, suite.record(courierID, -74.005, 40.7128, suite.now)))

	suite.Require().NoError(suite.index.Remove(ctx, courierID))

	got, err := suite.index.FindNearby(ctx, suite.center, 1000, suite.now.Add(-time.Minute))
	suite.Require().NoError(err)
	suite.Empty(got)
}

func (suite *IndexIntegrationTestSuite) TestPruneBefore() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.index.Upsert(ctx, suite.record(kernel.NewUUID(), -74.005, 40.7128, suite.now)))
	suite.Require().NoError(suite.index.Upsert(ctx, suite.record(kernel.NewUUID(), -74.005, 40.7128, suite.now.Add(-8*24*time.Hour))))

	pruned, err := suite.index.PruneBefore(ctx, suite.now.Add(-location.Retention))

	suite.Require().NoError(err)
	suite.Equal(int64(1), pruned)
	members, err := suite.client.ZCard(ctx, "test:couriers").Result()
	suite.Require().NoError(err)
	suite.Equal(int64(1), members)
}

func TestIndexIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration suite skipped in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	suite.Run(t, new(IndexIntegrationTestSuite))
}
