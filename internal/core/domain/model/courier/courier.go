package courier

import (
	"errors"
	"strings"
	"time"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/vehicle"
	"courierledger/internal/pkg/errs"
	"courierledger/internal/pkg/guard"
)

const maxNameLength = 120

var (
	// ErrNameIsRequired is returned when a courier has no display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier is the profile of a delivery rider.
//
// The profile carries what the ledger and the estimator need to know about a
// rider: the display name shown in top-earner rankings and the vehicle class
// used for duration estimates. Earnings and location records reference a
// courier only by ID.
//
// Example usage:
//
//	c, err := courier.NewCourier(kernel.NewUUID(), "Alice", vehicle.Scooter, time.Now())
//	if err != nil {
//	    return err
//	}
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the display name used in rankings
	name string
	// vehicleClass drives the speed used for estimates
	vehicleClass vehicle.Class
	// createdAt is when the profile was registered
	createdAt time.Time
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier validates the inputs and creates a courier profile.
//
// Parameters:
//   - id: Unique identifier for the courier (must be valid UUID)
//   - name: Display name (non-empty after trimming, at most 120 characters)
//   - class: Vehicle class (bike, scooter, car or van)
//   - now: Registration time
//
// Returns:
//   - *Courier: The created profile
//   - error: Aggregated validation errors
func NewCourier(id kernel.UUID, name string, class vehicle.Class, now time.Time) (*Courier, error) {
	return RestoreCourier(id, name, class, now.UTC())
}

// RestoreCourier reconstructs a Courier from persistent storage.
func RestoreCourier(id kernel.UUID, name string, class vehicle.Class, createdAt time.Time) (*Courier, error) {
	courier := &Courier{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setVehicleClass(class),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// IsEqual compares two couriers by ID.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks the Courier was built through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the display name of the courier.
func (c *Courier) Name() string {
	return c.name
}

// VehicleClass returns the vehicle the courier delivers with.
func (c *Courier) VehicleClass() vehicle.Class {
	return c.vehicleClass
}

// CreatedAt returns when the profile was registered.
func (c *Courier) CreatedAt() time.Time {
	return c.createdAt
}

// Rename replaces the display name.
func (c *Courier) Rename(name string) error {
	return c.setName(name)
}

// ChangeVehicle switches the courier to another vehicle class.
func (c *Courier) ChangeVehicle(class vehicle.Class) error {
	return c.setVehicleClass(class)
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	if len([]rune(name)) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len([]rune(name)), 1, maxNameLength)
	}
	c.name = name
	return nil
}

func (c *Courier) setVehicleClass(class vehicle.Class) error {
	if err := class.Validate(); err != nil {
		return err
	}
	c.vehicleClass = class
	return nil
}
