package queries

import (
	"context"
	"errors"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/offer"
	"courierledger/internal/core/domain/model/payment"
	"courierledger/internal/pkg/guard"
)

var (
	ErrGetOfferQueryIsNotConstructed   = errors.New("GetOfferQuery must be created via NewGetOfferQuery constructor")
	ErrGetPaymentQueryIsNotConstructed = errors.New("GetPaymentQuery must be created via NewGetPaymentQuery constructor")
)

//nolint:recvcheck //using for validation
type GetOfferQuery struct {
	offerID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOfferQuery(offerID kernel.UUID) (GetOfferQuery, error) {
	if err := offerID.Validate(); err != nil {
		return GetOfferQuery{}, err
	}
	return GetOfferQuery{offerID: offerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOfferQuery) Validate() error {
	return q.guard.Validate(ErrGetOfferQueryIsNotConstructed)
}

func (q GetOfferQuery) OfferID() kernel.UUID { return q.offerID }

type GetOfferQueryHandler struct {
	offers OfferReader
}

func NewGetOfferQueryHandler(offers OfferReader) GetOfferQueryHandler {
	return GetOfferQueryHandler{offers: offers}
}

func (h GetOfferQueryHandler) Handle(ctx context.Context, query GetOfferQuery) (*offer.Offer, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.offers.Get(ctx, query.offerID)
}

//nolint:recvcheck //using for validation
type GetPaymentQuery struct {
	paymentID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetPaymentQuery(paymentID kernel.UUID) (GetPaymentQuery, error) {
	if err := paymentID.Validate(); err != nil {
		return GetPaymentQuery{}, err
	}
	return GetPaymentQuery{paymentID: paymentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentQueryIsNotConstructed)
}

type GetPaymentQueryHandler struct {
	payments PaymentReader
}

func NewGetPaymentQueryHandler(payments PaymentReader) GetPaymentQueryHandler {
	return GetPaymentQueryHandler{payments: payments}
}

func (h GetPaymentQueryHandler) Handle(ctx context.Context, query GetPaymentQuery) (*payment.Payment, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.payments.Get(ctx, query.paymentID)
}
