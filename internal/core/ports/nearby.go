package ports

import (
	"context"
	"time"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/location"
)

// NearbyCourierFinder answers proximity searches over couriers whose latest
// fix is newer than since and still active.
type NearbyCourierFinder interface {
	FindNearby(
		ctx context.Context,
		center kernel.Coordinates,
		radiusMeters float64,
		since time.Time,
	) ([]location.NearbyCourier, error)
}

// CourierPositionIndex keeps the latest position per courier for fast proximity search.
type CourierPositionIndex interface {
	Upsert(ctx context.Context, record *location.Record) error
	Remove(ctx context.Context, courierID kernel.UUID) error
}
