package commands

import (
	"context"
	"time"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/offer"
	"courierledger/internal/core/domain/model/vehicle"
	"courierledger/internal/core/domain/services"
)

// RouteEstimator is the part of services.DistanceTimeEstimator offers need.
type RouteEstimator interface {
	EstimateRoute(pickup, delivery *kernel.Coordinates, class vehicle.Class) (services.RouteEstimate, error)
}

// CreateOfferCommandHandler creates open offers with straight-line estimates filled in.
type CreateOfferCommandHandler struct {
	uowFactory OfferUoWFactory
	estimator  RouteEstimator
}

func NewCreateOfferCommandHandler(uowFactory OfferUoWFactory, estimator RouteEstimator) CreateOfferCommandHandler {
	return CreateOfferCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
	}
}

func (h *CreateOfferCommandHandler) Handle(ctx context.Context, cmd CreateOfferCommand) (*offer.Offer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := offer.NewOffer(cmd.OfferID(), cmd.RequesterID(), cmd.Details(), time.Now())
	if err != nil {
		return nil, err
	}

	estimate, err := h.estimator.EstimateRoute(o.Pickup().Coordinates, o.Delivery().Coordinates, o.VehicleClass())
	if err != nil {
		return nil, err
	}
	if err = o.SetEstimates(estimate.DistanceMeters, estimate.DurationMinutes); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OfferRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
