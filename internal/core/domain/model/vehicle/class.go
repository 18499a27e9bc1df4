package vehicle

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownVehicleClass = errors.New("unknown vehicle class")

// Class is the kind of vehicle a courier delivers with.
type Class int

const (
	Unknown Class = iota
	Bike
	Scooter
	Car
	Van
)

var classNames = map[Class]string{
	Bike:    "bike",
	Scooter: "scooter",
	Car:     "car",
	Van:     "van",
}

// averageSpeedKmh is the flat urban speed used for duration estimates.
// Bike < scooter <= car, van matches car.
var averageSpeedKmh = map[Class]float64{
	Bike:    15,
	Scooter: 25,
	Car:     30,
	Van:     30,
}

// Parse maps a wire literal onto a Class.
func Parse(s string) (Class, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for c, name := range classNames {
		if name == needle {
			return c, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownVehicleClass, s)
}

func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "unknown"
}

func (c Class) Validate() error {
	if _, ok := classNames[c]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownVehicleClass, c)
	}
	return nil
}

// AverageSpeedKmh returns the speed table entry for the class.
func (c Class) AverageSpeedKmh() (float64, error) {
	speed, ok := averageSpeedKmh[c]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownVehicleClass, c)
	}
	return speed, nil
}

// MinutesFor converts a distance in meters to travel minutes at the class speed.
func (c Class) MinutesFor(meters float64) (float64, error) {
	speed, err := c.AverageSpeedKmh()
	if err != nil {
		return 0, err
	}
	return meters / 1000 / speed * 60, nil
}

// All lists the known classes in ascending speed order.
func All() []Class {
	return []Class{Bike, Scooter, Car, Van}
}
