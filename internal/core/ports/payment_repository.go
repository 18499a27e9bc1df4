package ports

import (
	"context"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/payment"
)

type PaymentRepository interface {
	Add(ctx context.Context, aggregate *payment.Payment) error
	Update(ctx context.Context, aggregate *payment.Payment) error
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetForUpdate reads like Get and locks the row until the transaction
	// ends. Read-modify-write flows use it inside Begin/Commit.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByOfferID returns the most recent payment recorded for the offer.
	GetByOfferID(ctx context.Context, offerID kernel.UUID) (*payment.Payment, error)
}
