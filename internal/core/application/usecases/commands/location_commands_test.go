package commands_test

import (
	"errors"
	"testing"
	"time"

	"courierledger/internal/core/application/usecases/commands"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/location"
	"courierledger/internal/core/ports"
	"courierledger/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordLocationCommandHandler_Handle(t *testing.T) {
	t.Run("should store, index and announce the fix", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		courierID := kernel.NewUUID()
		offerID := kernel.NewUUID()
		heading := 90.0
		cmd, err := commands.NewRecordLocationCommand(courierID, location.Sample{
			Coordinates:  coordinates(t, 13.405, 52.52),
			OfferID:      &offerID,
			Heading:      &heading,
			TrackingType: location.HeadingToPickup,
		})
		require.NoError(t, err)

		repo := new(MockLocationRepository)
		uow := new(MockUoW)
		factory := new(MockLocationUoWFactory)
		index := new(MockPositionIndex)
		publisher := &recordingPublisher{}
		observer := &countingObserver{}

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("LocationRepository").Return(repo).Once(),
			repo.On("Add", ctx, mock.AnythingOfType("*location.Record")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			index.On("Upsert", ctx, mock.AnythingOfType("*location.Record")).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewRecordLocationCommandHandler(factory, index, publisher, observer, logging.Discard())

		// Act
		record, err := handler.Handle(ctx, cmd)

		// Assert
		require.NoError(t, err)
		assert.True(t, record.IsActive())
		assert.Equal(t, location.HeadingToPickup, record.TrackingType())
		assert.WithinDuration(t, time.Now(), record.Timestamp(), time.Minute)
		assert.Equal(t, []string{"heading_to_pickup"}, observer.recorded)

		events := publisher.Events()
		require.Len(t, events, 1)
		assert.Equal(t, ports.EventLocationRecorded, events[0].Name)
		assert.Equal(t, courierID.String(), events[0].Key)
		payload, ok := events[0].Payload.(ports.LocationRecordedPayload)
		require.True(t, ok)
		assert.Equal(t, offerID.String(), payload.OfferID)
		assert.Equal(t, []float64{13.405, 52.52}, payload.Coordinates)
		index.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("should reject out of range heading before touching storage", func(t *testing.T) {
		heading := 361.0
		cmd, err := commands.NewRecordLocationCommand(kernel.NewUUID(), location.Sample{
			Coordinates: coordinates(t, 0, 0),
			Heading:     &heading,
		})
		require.NoError(t, err)

		factory := new(MockLocationUoWFactory)
		handler := commands.NewRecordLocationCommandHandler(factory, new(MockPositionIndex),
			&recordingPublisher{}, nil, logging.Discard())

		_, err = handler.Handle(t.Context(), cmd)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "heading")
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("index failure does not fail the write", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewRecordLocationCommand(kernel.NewUUID(), location.Sample{Coordinates: coordinates(t, 1, 1)})
		require.NoError(t, err)

		repo := new(MockLocationRepository)
		uow := new(MockUoW)
		factory := new(MockLocationUoWFactory)
		index := new(MockPositionIndex)
		uow.On("Begin", ctx).Return(nil)
		uow.On("LocationRepository").Return(repo)
		repo.On("Add", ctx, mock.Anything).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		index.On("Upsert", ctx, mock.Anything).Return(errors.New("redis unavailable"))
		factory.On("Create").Return(uow)

		handler := commands.NewRecordLocationCommandHandler(factory, index, &recordingPublisher{}, nil, logging.Discard())

		record, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, location.Idle, record.TrackingType())
	})
}

func TestNewRecordLocationCommand_RequiresCoordinates(t *testing.T) {
	_, err := commands.NewRecordLocationCommand(kernel.NewUUID(), location.Sample{})

	require.ErrorIs(t, err, kernel.ErrInvalidCoordinates)
}

func TestDeactivateLocationsCommandHandler_Handle(t *testing.T) {
	offerID := kernel.NewUUID()
	latestFix := func(t *testing.T, courierID kernel.UUID, ref *kernel.UUID, active bool) *location.Record {
		t.Helper()
		r := locationRecord(t, courierID, ref, 0, 0, t0)
		if !active {
			r.Deactivate()
		}
		return r
	}

	testCases := []struct {
		name         string
		offerID      *kernel.UUID
		changed      int64
		latest       func(t *testing.T, courierID kernel.UUID) (*location.Record, error)
		removesIndex bool
	}{
		{name: "courier goes offline", changed: 4, removesIndex: true},
		{
			name: "closed offer owned the latest fix", offerID: &offerID, changed: 4,
			latest: func(t *testing.T, courierID kernel.UUID) (*location.Record, error) {
				return latestFix(t, courierID, &offerID, false), nil
			},
			removesIndex: true,
		},
		{
			name: "latest fix belongs to other work", offerID: &offerID, changed: 4,
			latest: func(t *testing.T, courierID kernel.UUID) (*location.Record, error) {
				return latestFix(t, courierID, nil, true), nil
			},
		},
		{name: "nothing to close", offerID: &offerID},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			courierID := kernel.NewUUID()
			cmd, err := commands.NewDeactivateLocationsCommand(courierID, tc.offerID)
			require.NoError(t, err)

			repo := new(MockLocationRepository)
			uow := new(MockUoW)
			factory := new(MockLocationUoWFactory)
			index := new(MockPositionIndex)
			uow.On("Begin", ctx).Return(nil)
			uow.On("LocationRepository").Return(repo)
			repo.On("Deactivate", ctx, courierID, tc.offerID).Return(tc.changed, nil).Once()
			if tc.latest != nil {
				latest, latestErr := tc.latest(t, courierID)
				repo.On("Latest", ctx, courierID).Return(latest, latestErr).Once()
			}
			uow.On("Commit", ctx).Return(nil)
			uow.On("Rollback", ctx).Return(nil)
			index.On("Remove", ctx, courierID).Return(nil)
			factory.On("Create").Return(uow)

			handler := commands.NewDeactivateLocationsCommandHandler(factory, index, logging.Discard())

			count, err := handler.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, tc.changed, count)
			repo.AssertExpectations(t)
			if tc.latest == nil {
				repo.AssertNotCalled(t, "Latest", mock.Anything, mock.Anything)
			}
			if tc.removesIndex {
				index.AssertCalled(t, "Remove", ctx, courierID)
			} else {
				index.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestPurgeExpiredLocationsCommandHandler_Handle(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewPurgeExpiredLocationsCommand(location.Retention)
	require.NoError(t, err)

	repo := new(MockLocationRepository)
	uow := new(MockUoW)
	factory := new(MockLocationUoWFactory)
	observer := &countingObserver{}
	expectedCutoff := time.Now().Add(-location.Retention)

	uow.On("Begin", ctx).Return(nil)
	uow.On("LocationRepository").Return(repo)
	repo.On("PurgeOlderThan", ctx, mock.MatchedBy(func(cutoff time.Time) bool {
		return cutoff.Sub(expectedCutoff).Abs() < time.Minute
	})).Return(int64(12), nil).Once()
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	factory.On("Create").Return(uow)

	handler := commands.NewPurgeExpiredLocationsCommandHandler(factory, observer)

	// Act
	purged, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(12), purged)
	assert.Equal(t, int64(12), observer.purged)
	repo.AssertExpectations(t)
}

func TestNewPurgeExpiredLocationsCommand_RejectsNonPositiveRetention(t *testing.T) {
	_, err := commands.NewPurgeExpiredLocationsCommand(0)

	require.Error(t, err)
}
