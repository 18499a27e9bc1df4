package ports

import (
	"context"

	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/kernel"
)

// EarningsRepository persists ledger entries and their adjustments.
type EarningsRepository interface {
	// Add inserts a new record. A second record for the same offer fails with
	// errs.ErrObjectAlreadyExists; the unique key on the offer reference is
	// what makes concurrent creation safe.
	Add(ctx context.Context, aggregate *earnings.Earnings) error

	// Update writes amounts and status and appends new adjustments.
	Update(ctx context.Context, aggregate *earnings.Earnings) error

	Get(ctx context.Context, id kernel.UUID) (*earnings.Earnings, error)

	// GetForUpdate reads like Get and locks the row until the transaction
	// ends. Read-modify-write flows use it inside Begin/Commit.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*earnings.Earnings, error)
	GetByOfferID(ctx context.Context, offerID kernel.UUID) (*earnings.Earnings, error)

	// FindByCourier returns the courier's records matching the filter, oldest first.
	FindByCourier(ctx context.Context, courierID kernel.UUID, filter earnings.Filter) ([]*earnings.Earnings, error)
}
