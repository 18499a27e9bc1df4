// Package ports defines the contracts between the core and its adapters:
// repositories, the unit of work, the event publisher, the geocoder and the
// nearby courier index.
package ports

import (
	"context"

	"courierledger/internal/core/domain/model/courier"
	"courierledger/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier profiles.
type CourierRepository interface {
	// Add persists a new courier profile.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing profile.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier by ID. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
}
