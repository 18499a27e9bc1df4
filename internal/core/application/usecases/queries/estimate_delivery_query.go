package queries

import (
	"context"
	"errors"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/vehicle"
	"courierledger/internal/core/domain/services"
	"courierledger/internal/pkg/guard"
)

var ErrEstimateDeliveryQueryIsNotConstructed = errors.New(
	"EstimateDeliveryQuery must be created via NewEstimateDeliveryQuery constructor",
)

//nolint:recvcheck //using for validation
type EstimateDeliveryQuery struct {
	pickup   kernel.Coordinates
	delivery kernel.Coordinates
	class    vehicle.Class
	guard    guard.ConstructorGuard
}

func NewEstimateDeliveryQuery(pickup, delivery kernel.Coordinates, class vehicle.Class) (EstimateDeliveryQuery, error) {
	if err := errors.Join(pickup.Validate(), delivery.Validate(), class.Validate()); err != nil {
		return EstimateDeliveryQuery{}, err
	}
	return EstimateDeliveryQuery{pickup: pickup, delivery: delivery, class: class, guard: guard.NewConstructorGuard()}, nil
}

func (q EstimateDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrEstimateDeliveryQueryIsNotConstructed)
}

type RouteEstimator interface {
	EstimateRoute(pickup, delivery *kernel.Coordinates, class vehicle.Class) (services.RouteEstimate, error)
}

type EstimateDeliveryQueryHandler struct {
	estimator RouteEstimator
}

func NewEstimateDeliveryQueryHandler(estimator RouteEstimator) EstimateDeliveryQueryHandler {
	return EstimateDeliveryQueryHandler{estimator: estimator}
}

func (h EstimateDeliveryQueryHandler) Handle(_ context.Context, query EstimateDeliveryQuery) (services.RouteEstimate, error) {
	if err := query.Validate(); err != nil {
		return services.RouteEstimate{}, err
	}
	return h.estimator.EstimateRoute(&query.pickup, &query.delivery, query.class)
}
