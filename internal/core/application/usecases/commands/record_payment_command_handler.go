package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courierledger/internal/core/domain/model/payment"
	"courierledger/internal/pkg/errs"
)

var (
	ErrPayerIsNotRequester = errors.New("payer must be the offer requester")
	ErrOfferHasNoCourier   = errors.New("offer has no accepted courier")
)

// RecordPaymentCommandHandler creates the single payment of an offer.
type RecordPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

func NewRecordPaymentCommandHandler(uowFactory PaymentUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{uowFactory: uowFactory}
}

func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OfferRepository().Get(ctx, cmd.OfferID())
	if err != nil {
		return nil, err
	}
	if !o.RequesterID().IsEqual(cmd.PayerID()) {
		return nil, fmt.Errorf("%w: %s", ErrPayerIsNotRequester, cmd.PayerID())
	}
	if o.AcceptedBy() == nil {
		return nil, fmt.Errorf("%w: %s", ErrOfferHasNoCourier, o.ID())
	}

	payments := uow.PaymentRepository()
	existing, err := payments.GetByOfferID(ctx, o.ID())
	switch {
	case err == nil && existing != nil:
		return nil, errs.NewObjectAlreadyExistsError("payment", o.ID())
	case err != nil && !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	p, err := payment.NewPayment(
		cmd.PaymentID(),
		o.ID(),
		cmd.PayerID(),
		*o.AcceptedBy(),
		cmd.TotalAmount(),
		cmd.PlatformFee(),
		cmd.Currency(),
		cmd.Method(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = payments.Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
