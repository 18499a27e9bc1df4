package vehicle_test

import (
	"testing"

	"courierledger/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, c := range vehicle.All() {
		parsed, err := vehicle.Parse(c.String())

		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	c, err := vehicle.Parse(" Car ")
	require.NoError(t, err)
	assert.Equal(t, vehicle.Car, c)

	_, err = vehicle.Parse("truck")
	require.ErrorIs(t, err, vehicle.ErrUnknownVehicleClass)
	assert.Contains(t, err.Error(), `"truck"`)
}

func TestClass_MinutesFor(t *testing.T) {
	t.Run("speed ordering", func(t *testing.T) {
		const meters = 5000.0
		bike, err := vehicle.Bike.MinutesFor(meters)
		require.NoError(t, err)
		scooter, err := vehicle.Scooter.MinutesFor(meters)
		require.NoError(t, err)
		car, err := vehicle.Car.MinutesFor(meters)
		require.NoError(t, err)
		van, err := vehicle.Van.MinutesFor(meters)
		require.NoError(t, err)

		assert.Less(t, scooter, bike)
		assert.Less(t, car, bike)
		assert.LessOrEqual(t, car, scooter)
		assert.InDelta(t, car, van, 1e-9)
	})

	t.Run("fifteen kilometers by bike is an hour", func(t *testing.T) {
		minutes, err := vehicle.Bike.MinutesFor(15000)

		require.NoError(t, err)
		assert.InDelta(t, 60, minutes, 1e-9)
	})

	t.Run("unknown class", func(t *testing.T) {
		_, err := vehicle.Unknown.MinutesFor(1000)

		require.ErrorIs(t, err, vehicle.ErrUnknownVehicleClass)
		require.ErrorIs(t, vehicle.Class(42).Validate(), vehicle.ErrUnknownVehicleClass)
		assert.Equal(t, "unknown", vehicle.Class(42).String())
	})
}
