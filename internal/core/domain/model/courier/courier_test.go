package courier_test

import (
	"strings"
	"testing"
	"time"

	"courierledger/internal/core/domain/model/courier"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/vehicle"
	"courierledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)

func TestNewCourier(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create courier with valid parameters", func(t *testing.T) {
		c, err := courier.NewCourier(validID, "  Alice ", vehicle.Scooter, now)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(validID))
		assert.Equal(t, "Alice", c.Name())
		assert.Equal(t, vehicle.Scooter, c.VehicleClass())
		assert.Equal(t, now, c.CreatedAt())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		c, err := courier.NewCourier(validID, "   ", vehicle.Bike, now)

		require.ErrorIs(t, err, courier.ErrNameIsRequired)
		assert.Nil(t, c)
	})

	t.Run("should fail with too long name", func(t *testing.T) {
		_, err := courier.NewCourier(validID, strings.Repeat("x", 121), vehicle.Bike, now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should report all invalid fields", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.UUID{}, "", vehicle.Unknown, now)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, courier.ErrNameIsRequired)
		require.ErrorIs(t, err, vehicle.ErrUnknownVehicleClass)
	})
}

func TestCourier_Mutations(t *testing.T) {
	c, err := courier.NewCourier(kernel.NewUUID(), "Bob", vehicle.Bike, now)
	require.NoError(t, err)

	require.NoError(t, c.Rename("Robert"))
	require.NoError(t, c.ChangeVehicle(vehicle.Van))
	assert.Equal(t, "Robert", c.Name())
	assert.Equal(t, vehicle.Van, c.VehicleClass())

	require.Error(t, c.Rename(""))
	require.Error(t, c.ChangeVehicle(vehicle.Class(9)))
	assert.Equal(t, "Robert", c.Name())
	assert.Equal(t, vehicle.Van, c.VehicleClass())
}

func TestCourier_Equality(t *testing.T) {
	id := kernel.NewUUID()
	a, _ := courier.NewCourier(id, "A", vehicle.Car, now)
	b, _ := courier.RestoreCourier(id, "B", vehicle.Bike, now)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))

	var zero *courier.Courier
	require.ErrorIs(t, zero.Validate(), courier.ErrCourierIsNotConstructed)
}
