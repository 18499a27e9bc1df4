package kernel_test

import (
	"math"
	"testing"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCoordinates(t *testing.T, lng, lat float64) kernel.Coordinates {
	t.Helper()
	c, err := kernel.NewCoordinates(lng, lat)
	require.NoError(t, err)
	return c
}

func TestNewCoordinates(t *testing.T) {
	t.Run("should accept boundary values", func(t *testing.T) {
		for _, p := range [][2]float64{{-180, -90}, {180, 90}, {0, 0}, {-74.006, 40.7128}} {
			c, err := kernel.NewCoordinates(p[0], p[1])

			require.NoError(t, err)
			require.NoError(t, c.Validate())
			assert.Equal(t, p[0], c.Lng())
			assert.Equal(t, p[1], c.Lat())
			assert.Equal(t, []float64{p[0], p[1]}, c.Pair())
		}
	})

	t.Run("should reject out of range and non finite values", func(t *testing.T) {
		testCases := []struct {
			name     string
			lng, lat float64
		}{
			{"longitude too small", -180.0001, 0},
			{"longitude too large", 181, 0},
			{"latitude too small", 0, -90.5},
			{"latitude too large", 0, 91},
			{"NaN longitude", math.NaN(), 0},
			{"infinite latitude", 0, math.Inf(1)},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewCoordinates(tc.lng, tc.lat)

				require.ErrorIs(t, err, kernel.ErrInvalidCoordinates)
			})
		}
	})

	t.Run("should report both axes when both are wrong", func(t *testing.T) {
		_, err := kernel.NewCoordinates(200, -100)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "longitude")
		assert.Contains(t, err.Error(), "latitude")
	})
}

func TestCoordinatesFromPair(t *testing.T) {
	c, err := kernel.CoordinatesFromPair([]float64{13.405, 52.52})
	require.NoError(t, err)
	assert.Equal(t, "[13.405000,52.520000]", c.String())

	for _, pair := range [][]float64{nil, {}, {1}, {1, 2, 3}} {
		_, err = kernel.CoordinatesFromPair(pair)
		require.ErrorIs(t, err, kernel.ErrInvalidCoordinates)
	}

	opt, err := kernel.OptionalCoordinatesFromPair(nil)
	require.NoError(t, err)
	assert.Nil(t, opt)

	_, err = kernel.OptionalCoordinatesFromPair([]float64{0, 95})
	require.ErrorIs(t, err, kernel.ErrInvalidCoordinates)
}

func TestDistance(t *testing.T) {
	nyc := mustCoordinates(t, -74.006, 40.7128)
	brooklyn := mustCoordinates(t, -73.9857, 40.6892)

	t.Run("identical points are zero apart", func(t *testing.T) {
		d, err := kernel.Distance(nyc, nyc)

		require.NoError(t, err)
		assert.Zero(t, d)
	})

	t.Run("is symmetric", func(t *testing.T) {
		ab, err := kernel.Distance(nyc, brooklyn)
		require.NoError(t, err)
		ba, err := brooklyn.DistanceTo(nyc)
		require.NoError(t, err)

		assert.InDelta(t, ab, ba, 1e-9)
	})

	t.Run("lower Manhattan to Brooklyn is a few kilometers", func(t *testing.T) {
		d, err := kernel.Distance(nyc, brooklyn)

		require.NoError(t, err)
		assert.Greater(t, d, 3000.0)
		assert.Less(t, d, 15000.0)
	})

	t.Run("one degree of latitude is about 111 km", func(t *testing.T) {
		d, err := kernel.Distance(mustCoordinates(t, 0, 0), mustCoordinates(t, 0, 1))

		require.NoError(t, err)
		assert.InDelta(t, 111195, d, 1)
	})

	t.Run("antipodal points are half the circumference apart", func(t *testing.T) {
		halfCircumference := math.Pi * kernel.EarthRadiusMeters
		pairs := [][2]kernel.Coordinates{
			{mustCoordinates(t, -180, -85.13), mustCoordinates(t, 0, 85.13)},
			{mustCoordinates(t, 0, 0), mustCoordinates(t, 180, 0)},
			{mustCoordinates(t, -74.006, 40.7128), mustCoordinates(t, 105.994, -40.7128)},
		}
		for _, p := range pairs {
			d, err := kernel.Distance(p[0], p[1])

			require.NoError(t, err)
			assert.False(t, math.IsNaN(d), "%v -> %v", p[0], p[1])
			assert.InDelta(t, halfCircumference, d, 1)
		}

		for lat := -89.0; lat <= 89; lat += 0.37 {
			for lng := -180.0; lng < 0; lng += 7.3 {
				d, err := kernel.Distance(mustCoordinates(t, lng, lat), mustCoordinates(t, lng+180, -lat))
				require.NoError(t, err)
				require.False(t, math.IsNaN(d), "lng=%v lat=%v", lng, lat)
			}
		}
	})

	t.Run("zero value coordinates are rejected", func(t *testing.T) {
		var zero kernel.Coordinates

		_, err := kernel.Distance(zero, nyc)

		require.ErrorIs(t, err, kernel.ErrInvalidCoordinates)
	})
}
