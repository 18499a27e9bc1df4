package queries_test

import (
	"errors"
	"testing"
	"time"

	"courierledger/internal/core/application/usecases/queries"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/location"
	"courierledger/internal/core/ports"
	"courierledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fix(t *testing.T, courierID kernel.UUID, lng, lat float64, at time.Time) *location.Record {
	t.Helper()
	c, err := kernel.NewCoordinates(lng, lat)
	require.NoError(t, err)
	r, err := location.NewRecord(kernel.NewUUID(), courierID, location.Sample{Coordinates: c, Timestamp: &at}, at)
	require.NoError(t, err)
	return r
}

func TestGetLocationHistoryQuery_ClampsLimit(t *testing.T) {
	courierID := kernel.NewUUID()

	q, err := queries.NewGetLocationHistoryQuery(courierID, ports.HistoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, location.DefaultHistoryLimit, q.Filter().Limit)

	q, err = queries.NewGetLocationHistoryQuery(courierID, ports.HistoryFilter{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, location.MaxHistoryLimit, q.Filter().Limit)

	_, err = queries.NewGetLocationHistoryQuery(kernel.UUID{}, ports.HistoryFilter{})
	require.Error(t, err)
}

func TestGetLocationHistoryQueryHandler(t *testing.T) {
	courierID := kernel.NewUUID()
	records := []*location.Record{fix(t, courierID, -74, 40.7, t0)}
	reader := new(MockLocationReader)
	reader.On("History", mock.Anything, courierID, ports.HistoryFilter{Limit: 20}).Return(records, nil).Once()

	q, err := queries.NewGetLocationHistoryQuery(courierID, ports.HistoryFilter{Limit: 20})
	require.NoError(t, err)
	got, err := queries.NewGetLocationHistoryQueryHandler(reader).Handle(t.Context(), q)

	require.NoError(t, err)
	assert.Equal(t, records, got)
	reader.AssertExpectations(t)
}

func TestGetTrajectoryDistanceQueryHandler(t *testing.T) {
	courierID := kernel.NewUUID()
	offerID := kernel.NewUUID()

	t.Run("sums consecutive segments", func(t *testing.T) {
		path := []*location.Record{
			fix(t, courierID, 0, 0, t0),
			fix(t, courierID, 0, 0.01, t0.Add(time.Minute)),
			fix(t, courierID, 0.01, 0.01, t0.Add(2*time.Minute)),
		}
		reader := new(MockLocationReader)
		reader.On("Path", mock.Anything, courierID, &offerID, (*time.Time)(nil)).Return(path, nil).Once()

		q, err := queries.NewGetTrajectoryDistanceQuery(courierID, &offerID, nil)
		require.NoError(t, err)
		got, err := queries.NewGetTrajectoryDistanceQueryHandler(reader).Handle(t.Context(), q)

		require.NoError(t, err)
		assert.Equal(t, 3, got.Points)
		assert.InDelta(t, 2*1111.95, got.DistanceMeters, 1)
		reader.AssertExpectations(t)
	})

	t.Run("single point is zero", func(t *testing.T) {
		reader := new(MockLocationReader)
		reader.On("Path", mock.Anything, courierID, (*kernel.UUID)(nil), (*time.Time)(nil)).
			Return([]*location.Record{fix(t, courierID, 0, 0, t0)}, nil).Once()

		q, err := queries.NewGetTrajectoryDistanceQuery(courierID, nil, nil)
		require.NoError(t, err)
		got, err := queries.NewGetTrajectoryDistanceQueryHandler(reader).Handle(t.Context(), q)

		require.NoError(t, err)
		assert.Zero(t, got.DistanceMeters)
	})

	t.Run("reader error", func(t *testing.T) {
		boom := errors.New("boom")
		reader := new(MockLocationReader)
		reader.On("Path", mock.Anything, courierID, (*kernel.UUID)(nil), (*time.Time)(nil)).Return(nil, boom).Once()

		q, err := queries.NewGetTrajectoryDistanceQuery(courierID, nil, nil)
		require.NoError(t, err)
		_, err = queries.NewGetTrajectoryDistanceQueryHandler(reader).Handle(t.Context(), q)

		require.ErrorIs(t, err, boom)
	})
}

func TestGetNearbyCouriersQueryHandler(t *testing.T) {
	center, err := kernel.NewCoordinates(-74.006, 40.7128)
	require.NoError(t, err)

	_, err = queries.NewGetNearbyCouriersQuery(center, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	found := []location.NearbyCourier{{CourierID: kernel.NewUUID(), Coordinates: center}}
	finder := new(MockNearbyFinder)
	before := time.Now()
	finder.On("FindNearby", mock.Anything, center, 500.0, mock.MatchedBy(func(since time.Time) bool {
		return !since.Before(before.Add(-2*time.Minute)) && since.Before(before.Add(-time.Minute))
	})).Return(found, nil).Once()

	q, err := queries.NewGetNearbyCouriersQuery(center, 500)
	require.NoError(t, err)
	got, err := queries.NewGetNearbyCouriersQueryHandler(finder, 2*time.Minute).Handle(t.Context(), q)

	require.NoError(t, err)
	assert.Equal(t, found, got)
	finder.AssertExpectations(t)
}
