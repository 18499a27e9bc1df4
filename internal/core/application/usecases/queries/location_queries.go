package queries

import (
	"context"
	"errors"
	"time"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/location"
	"courierledger/internal/core/ports"
	"courierledger/internal/pkg/errs"
	"courierledger/internal/pkg/guard"
)

var (
	ErrGetLocationHistoryQueryIsNotConstructed = errors.New(
		"GetLocationHistoryQuery must be created via NewGetLocationHistoryQuery constructor",
	)
	ErrGetTrajectoryDistanceQueryIsNotConstructed = errors.New(
		"GetTrajectoryDistanceQuery must be created via NewGetTrajectoryDistanceQuery constructor",
	)
	ErrGetNearbyCouriersQueryIsNotConstructed = errors.New(
		"GetNearbyCouriersQuery must be created via NewGetNearbyCouriersQuery constructor",
	)
)

// GetLocationHistoryQuery reads a courier's fixes newest first. The limit is
// clamped to [1, location.MaxHistoryLimit] with location.DefaultHistoryLimit
// for zero.
//
//nolint:recvcheck //using for validation
type GetLocationHistoryQuery struct {
	courierID kernel.UUID
	filter    ports.HistoryFilter
	guard     guard.ConstructorGuard
}

func NewGetLocationHistoryQuery(courierID kernel.UUID, filter ports.HistoryFilter) (GetLocationHistoryQuery, error) {
	var offerErr error
	if filter.OfferID != nil {
		offerErr = filter.OfferID.Validate()
	}
	if err := errors.Join(courierID.Validate(), offerErr); err != nil {
		return GetLocationHistoryQuery{}, err
	}

	filter.Limit = location.ClampHistoryLimit(filter.Limit)
	return GetLocationHistoryQuery{courierID: courierID, filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLocationHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationHistoryQueryIsNotConstructed)
}

func (q GetLocationHistoryQuery) Filter() ports.HistoryFilter { return q.filter }

type GetLocationHistoryQueryHandler struct {
	reader LocationReader
}

func NewGetLocationHistoryQueryHandler(reader LocationReader) GetLocationHistoryQueryHandler {
	return GetLocationHistoryQueryHandler{reader: reader}
}

func (h GetLocationHistoryQueryHandler) Handle(ctx context.Context, query GetLocationHistoryQuery) ([]*location.Record, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.reader.History(ctx, query.courierID, query.filter)
}

//nolint:recvcheck //using for validation
type GetTrajectoryDistanceQuery struct {
	courierID kernel.UUID
	offerID   *kernel.UUID
	start     *time.Time
	guard     guard.ConstructorGuard
}

func NewGetTrajectoryDistanceQuery(courierID kernel.UUID, offerID *kernel.UUID, start *time.Time) (GetTrajectoryDistanceQuery, error) {
	var offerErr error
	if offerID != nil {
		offerErr = offerID.Validate()
	}
	if err := errors.Join(courierID.Validate(), offerErr); err != nil {
		return GetTrajectoryDistanceQuery{}, err
	}

	return GetTrajectoryDistanceQuery{courierID: courierID, offerID: offerID, start: start, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTrajectoryDistanceQuery) Validate() error {
	return q.guard.Validate(ErrGetTrajectoryDistanceQueryIsNotConstructed)
}

type Trajectory struct {
	DistanceMeters float64
	Points         int
}

type GetTrajectoryDistanceQueryHandler struct {
	reader LocationReader
}

func NewGetTrajectoryDistanceQueryHandler(reader LocationReader) GetTrajectoryDistanceQueryHandler {
	return GetTrajectoryDistanceQueryHandler{reader: reader}
}

func (h GetTrajectoryDistanceQueryHandler) Handle(ctx context.Context, query GetTrajectoryDistanceQuery) (Trajectory, error) {
	if err := query.Validate(); err != nil {
		return Trajectory{}, err
	}

	path, err := h.reader.Path(ctx, query.courierID, query.offerID, query.start)
	if err != nil {
		return Trajectory{}, err
	}

	distance, err := location.TrajectoryDistance(path)
	if err != nil {
		return Trajectory{}, err
	}

	return Trajectory{DistanceMeters: distance, Points: len(path)}, nil
}

//nolint:recvcheck //using for validation
type GetNearbyCouriersQuery struct {
	center       kernel.Coordinates
	radiusMeters float64
	guard        guard.ConstructorGuard
}

func NewGetNearbyCouriersQuery(center kernel.Coordinates, radiusMeters float64) (GetNearbyCouriersQuery, error) {
	var radiusErr error
	if !(radiusMeters > 0) {
		radiusErr = errs.NewValueIsInvalidError("radius")
	}
	if err := errors.Join(center.Validate(), radiusErr); err != nil {
		return GetNearbyCouriersQuery{}, err
	}

	return GetNearbyCouriersQuery{center: center, radiusMeters: radiusMeters, guard: guard.NewConstructorGuard()}, nil
}

func (q GetNearbyCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyCouriersQueryIsNotConstructed)
}

// GetNearbyCouriersQueryHandler only considers couriers seen within freshness.
type GetNearbyCouriersQueryHandler struct {
	finder    ports.NearbyCourierFinder
	freshness time.Duration
}

func NewGetNearbyCouriersQueryHandler(finder ports.NearbyCourierFinder, freshness time.Duration) GetNearbyCouriersQueryHandler {
	if freshness <= 0 {
		freshness = location.DefaultFreshness
	}
	return GetNearbyCouriersQueryHandler{finder: finder, freshness: freshness}
}

func (h GetNearbyCouriersQueryHandler) Handle(ctx context.Context, query GetNearbyCouriersQuery) ([]location.NearbyCourier, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	since := time.Now().Add(-h.freshness)
	return h.finder.FindNearby(ctx, query.center, query.radiusMeters, since)
}
