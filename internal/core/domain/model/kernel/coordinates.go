package kernel

import (
	"errors"
	"fmt"
	"math"

	"courierledger/internal/pkg/errs"
	"courierledger/internal/pkg/guard"
)

const (
	// EarthRadiusMeters is the mean Earth radius used for great-circle distances.
	EarthRadiusMeters = 6371000.0

	MinLongitude = -180.0
	MaxLongitude = 180.0
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
)

// ErrInvalidCoordinates is matched by every coordinate validation failure.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

var ErrCoordinatesAreNotConstructed = fmt.Errorf("%w: %w", ErrInvalidCoordinates,
	errs.NewValueIsRequiredError("coordinates must be created via NewCoordinates or CoordinatesFromPair"))

// Coordinates is a WGS84 point stored in [longitude, latitude] order, the order
// used on the wire and in persistence.
//
//	pickup, err := kernel.NewCoordinates(-74.006, 40.7128)
//	dropoff, _ := kernel.NewCoordinates(-73.9857, 40.6892)
//	meters, err := kernel.Distance(pickup, dropoff) // ~3.1 km
type Coordinates struct { //nolint:recvcheck // setters use pointer receivers
	lng   float64
	lat   float64
	guard guard.ConstructorGuard
}

// NewCoordinates validates and builds a point. Longitude must be in [-180, 180],
// latitude in [-90, 90], and neither may be NaN or infinite.
func NewCoordinates(lng, lat float64) (Coordinates, error) {
	c := Coordinates{guard: guard.NewConstructorGuard()}

	if err := errors.Join(c.setLng(lng), c.setLat(lat)); err != nil {
		return Coordinates{}, fmt.Errorf("%w: %w", ErrInvalidCoordinates, err)
	}

	return c, nil
}

// CoordinatesFromPair builds a point from a [lng, lat] slice as received at the boundary.
func CoordinatesFromPair(pair []float64) (Coordinates, error) {
	if len(pair) != 2 {
		return Coordinates{}, fmt.Errorf("%w: %w", ErrInvalidCoordinates, errs.NewValueIsInvalidErrorWithCause(
			"coordinates", fmt.Errorf("expected [longitude, latitude], got %d values", len(pair))))
	}
	return NewCoordinates(pair[0], pair[1])
}

// OptionalCoordinatesFromPair maps an absent pair to nil.
func OptionalCoordinatesFromPair(pair []float64) (*Coordinates, error) {
	if pair == nil {
		return nil, nil
	}
	c, err := CoordinatesFromPair(pair)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

func (c Coordinates) Lng() float64 {
	return c.lng
}

func (c Coordinates) Lat() float64 {
	return c.lat
}

// Pair returns the point as [longitude, latitude].
func (c Coordinates) Pair() []float64 {
	return []float64{c.lng, c.lat}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("[%.6f,%.6f]", c.lng, c.lat)
}

func (c Coordinates) IsEqual(other Coordinates) bool {
	return c.lng == other.lng && c.lat == other.lat
}

// DistanceTo is Distance with c as the first point.
func (c Coordinates) DistanceTo(other Coordinates) (float64, error) {
	return Distance(c, other)
}

// Distance returns the Haversine great-circle distance in meters. It is
// symmetric and exactly 0 for identical points.
func Distance(a, b Coordinates) (float64, error) {
	if err := errors.Join(a.Validate(), b.Validate()); err != nil {
		return 0, err
	}
	if a.IsEqual(b) {
		return 0, nil
	}

	lat1 := toRadians(a.lat)
	lat2 := toRadians(b.lat)
	dLat := toRadians(b.lat - a.lat)
	dLng := toRadians(b.lng - a.lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	// rounding can push near-antipodal pairs just past 1
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h)), nil
}

func (c *Coordinates) setLng(lng float64) error {
	if math.IsNaN(lng) || math.IsInf(lng, 0) {
		return errs.NewValueIsInvalidErrorWithCause("longitude", fmt.Errorf("%v is not a finite number", lng))
	}
	if lng < MinLongitude || lng > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", lng, MinLongitude, MaxLongitude)
	}
	c.lng = lng
	return nil
}

func (c *Coordinates) setLat(lat float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return errs.NewValueIsInvalidErrorWithCause("latitude", fmt.Errorf("%v is not a finite number", lat))
	}
	if lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", lat, MinLatitude, MaxLatitude)
	}
	c.lat = lat
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
