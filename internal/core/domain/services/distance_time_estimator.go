package services

import (
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/vehicle"
)

// DistanceTimeEstimator turns a pickup/delivery pair into straight-line
// distance and travel time estimates.
//
// Absent inputs propagate as absent outputs: a missing coordinate yields a nil
// distance, and a nil distance yields a nil duration. Callers persist nil as
// "unknown" rather than zero.
//
// Example usage:
//
//	est := services.NewDistanceTimeEstimator()
//	route, err := est.EstimateRoute(&pickup, &dropoff, vehicle.Scooter)
//	if err != nil {
//	    return err
//	}
//	// route.DistanceMeters ~ 3100, route.DurationMinutes ~ 7.4
type DistanceTimeEstimator struct{}

// RouteEstimate is the combined result of Estimate and EstimateDuration.
type RouteEstimate struct {
	DistanceMeters  *float64
	DurationMinutes *float64
}

func NewDistanceTimeEstimator() DistanceTimeEstimator {
	return DistanceTimeEstimator{}
}

// Estimate returns the Haversine distance in meters, or nil when either point is absent.
func (DistanceTimeEstimator) Estimate(pickup, delivery *kernel.Coordinates) (*float64, error) {
	if pickup == nil || delivery == nil {
		return nil, nil
	}

	d, err := kernel.Distance(*pickup, *delivery)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// EstimateDuration converts a distance to minutes at the vehicle class speed.
// The class is validated even when the distance is absent.
func (DistanceTimeEstimator) EstimateDuration(distance *float64, class vehicle.Class) (*float64, error) {
	if err := class.Validate(); err != nil {
		return nil, err
	}
	if distance == nil {
		return nil, nil
	}

	minutes, err := class.MinutesFor(*distance)
	if err != nil {
		return nil, err
	}
	return &minutes, nil
}

func (e DistanceTimeEstimator) EstimateRoute(
	pickup, delivery *kernel.Coordinates,
	class vehicle.Class,
) (RouteEstimate, error) {
	distance, err := e.Estimate(pickup, delivery)
	if err != nil {
		return RouteEstimate{}, err
	}

	duration, err := e.EstimateDuration(distance, class)
	if err != nil {
		return RouteEstimate{}, err
	}

	return RouteEstimate{DistanceMeters: distance, DurationMinutes: duration}, nil
}
