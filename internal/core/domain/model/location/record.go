package location

import (
	"errors"
	"fmt"
	"math"
	"time"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/pkg/errs"
	"courierledger/internal/pkg/guard"
)

const (
	// Retention is how long records are kept before the retention job purges them.
	Retention = 7 * 24 * time.Hour

	DefaultHistoryLimit = 100
	MaxHistoryLimit     = 1000

	// DefaultFreshness bounds how old a courier's last fix may be to count as nearby.
	DefaultFreshness = 5 * time.Minute
)

var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

type Device struct {
	Platform   string
	AppVersion string
	DeviceID   string
}

// Sample is one telemetry push from a courier device. Optional readings are nil
// when the device did not report them.
type Sample struct {
	Coordinates  kernel.Coordinates
	OfferID      *kernel.UUID
	Accuracy     *float64
	Altitude     *float64
	Heading      *float64
	Speed        *float64
	BatteryLevel *float64
	Device       Device
	TrackingType TrackingType
	Timestamp    *time.Time
}

// Record is a stored position fix. Records are append-only; the only mutation is
// deactivation.
type Record struct {
	id           kernel.UUID
	courierID    kernel.UUID
	offerID      *kernel.UUID
	coordinates  kernel.Coordinates
	accuracy     *float64
	altitude     *float64
	heading      *float64
	speed        *float64
	batteryLevel *float64
	device       Device
	trackingType TrackingType
	isActive     bool
	timestamp    time.Time
	guard        guard.ConstructorGuard
}

// NewRecord validates a sample and turns it into an active record. A missing
// timestamp becomes now; a blank tracking type becomes Idle.
func NewRecord(id, courierID kernel.UUID, s Sample, now time.Time) (*Record, error) {
	if s.TrackingType == "" {
		s.TrackingType = Idle
	}
	ts := now.UTC()
	if s.Timestamp != nil {
		ts = s.Timestamp.UTC()
	}

	r := &Record{isActive: true, timestamp: ts, guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		r.setIDs(id, courierID, s.OfferID),
		r.setCoordinates(s.Coordinates),
		r.setReadings(s),
		s.TrackingType.Validate(),
	); err != nil {
		return nil, err
	}
	r.device = s.Device
	r.trackingType = s.TrackingType

	return r, nil
}

// RestoreRecord rebuilds a record from storage.
func RestoreRecord(id, courierID kernel.UUID, s Sample, isActive bool) (*Record, error) {
	if s.Timestamp == nil {
		return nil, errs.NewValueIsRequiredError("timestamp")
	}
	r, err := NewRecord(id, courierID, s, *s.Timestamp)
	if err != nil {
		return nil, err
	}
	r.isActive = isActive
	return r, nil
}

func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

func (r *Record) ID() kernel.UUID                 { return r.id }
func (r *Record) CourierID() kernel.UUID          { return r.courierID }
func (r *Record) OfferID() *kernel.UUID           { return r.offerID }
func (r *Record) Coordinates() kernel.Coordinates { return r.coordinates }
func (r *Record) Accuracy() *float64              { return r.accuracy }
func (r *Record) Altitude() *float64              { return r.altitude }
func (r *Record) Heading() *float64               { return r.heading }
func (r *Record) Speed() *float64                 { return r.speed }
func (r *Record) BatteryLevel() *float64          { return r.batteryLevel }
func (r *Record) Device() Device                  { return r.device }
func (r *Record) TrackingType() TrackingType      { return r.trackingType }
func (r *Record) IsActive() bool                  { return r.isActive }
func (r *Record) Timestamp() time.Time            { return r.timestamp }

func (r *Record) Deactivate() {
	r.isActive = false
}

// IsExpired reports whether the record is past retention at now.
func (r *Record) IsExpired(now time.Time) bool {
	return now.Sub(r.timestamp) > Retention
}

func (r *Record) setIDs(id, courierID kernel.UUID, offerID *kernel.UUID) error {
	var offerErr error
	if offerID != nil {
		offerErr = offerID.Validate()
	}
	if err := errors.Join(id.Validate(), courierID.Validate(), offerErr); err != nil {
		return err
	}
	r.id = id
	r.courierID = courierID
	r.offerID = offerID
	return nil
}

func (r *Record) setCoordinates(c kernel.Coordinates) error {
	if err := c.Validate(); err != nil {
		return err
	}
	r.coordinates = c
	return nil
}

func (r *Record) setReadings(s Sample) error {
	if err := errors.Join(
		inRange("heading", s.Heading, 0, 360),
		inRange("battery level", s.BatteryLevel, 0, 100),
		inRange("accuracy", s.Accuracy, 0, math.MaxFloat64),
		inRange("speed", s.Speed, 0, math.MaxFloat64),
		inRange("altitude", s.Altitude, -math.MaxFloat64, math.MaxFloat64),
	); err != nil {
		return err
	}
	r.accuracy = s.Accuracy
	r.altitude = s.Altitude
	r.heading = s.Heading
	r.speed = s.Speed
	r.batteryLevel = s.BatteryLevel
	return nil
}

func inRange(name string, v *float64, lo, hi float64) error {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not a finite number", *v))
	}
	if *v < lo || *v > hi {
		return errs.NewValueIsOutOfRangeError(name, *v, lo, hi)
	}
	return nil
}
