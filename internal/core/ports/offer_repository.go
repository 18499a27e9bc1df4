package ports

import (
	"context"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/offer"
)

// OfferRepository persists offers together with their status history.
type OfferRepository interface {
	Add(ctx context.Context, aggregate *offer.Offer) error

	// Update writes the offer and appends any new status history entries.
	Update(ctx context.Context, aggregate *offer.Offer) error

	// Get returns errs.ErrObjectNotFound when the offer does not exist.
	Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// GetForUpdate reads like Get and locks the row until the transaction
	// ends. Read-modify-write flows use it inside Begin/Commit.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*offer.Offer, error)
}
