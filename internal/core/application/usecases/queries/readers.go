package queries

import (
	"context"
	"time"

	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/location"
	"courierledger/internal/core/domain/model/offer"
	"courierledger/internal/core/domain/model/payment"
	"courierledger/internal/core/ports"
)

// Read-only views of the repositories. A repository obtained from a unit of
// work that was never begun satisfies them and reads committed rows.
type (
	OfferReader interface {
		Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)
	}

	PaymentReader interface {
		Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)
	}

	EarningsReader interface {
		Get(ctx context.Context, id kernel.UUID) (*earnings.Earnings, error)
		FindByCourier(ctx context.Context, courierID kernel.UUID, filter earnings.Filter) ([]*earnings.Earnings, error)
	}

	LocationReader interface {
		History(ctx context.Context, courierID kernel.UUID, filter ports.HistoryFilter) ([]*location.Record, error)
		Path(ctx context.Context, courierID kernel.UUID, offerID *kernel.UUID, start *time.Time) ([]*location.Record, error)
	}
)
