package ports

import (
	"context"
	"time"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/location"
)

// HistoryFilter narrows a location history read. Limit is applied after the
// other filters; callers clamp it with location.ClampHistoryLimit.
type HistoryFilter struct {
	Limit   int
	Start   *time.Time
	End     *time.Time
	OfferID *kernel.UUID
}

// LocationRepository stores courier telemetry.
type LocationRepository interface {
	Add(ctx context.Context, record *location.Record) error

	// History returns records newest first.
	History(ctx context.Context, courierID kernel.UUID, filter HistoryFilter) ([]*location.Record, error)

	// Path returns the courier's records at or after start, oldest first,
	// optionally limited to one offer.
	Path(ctx context.Context, courierID kernel.UUID, offerID *kernel.UUID, start *time.Time) ([]*location.Record, error)

	// Latest returns the courier's newest record, active or not, or
	// errs.ErrObjectNotFound when the courier has none.
	Latest(ctx context.Context, courierID kernel.UUID) (*location.Record, error)

	// Deactivate marks active records inactive and reports how many changed.
	// A nil offerID deactivates all of the courier's active records.
	Deactivate(ctx context.Context, courierID kernel.UUID, offerID *kernel.UUID) (int64, error)

	// PurgeOlderThan deletes records with a timestamp before cutoff.
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
