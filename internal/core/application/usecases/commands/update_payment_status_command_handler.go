package commands

import (
	"context"
	"time"

	"courierledger/internal/core/domain/model/payment"
)

type UpdatePaymentStatusCommandHandler struct {
	uowFactory PaymentUoWFactory
}

func NewUpdatePaymentStatusCommandHandler(uowFactory PaymentUoWFactory) UpdatePaymentStatusCommandHandler {
	return UpdatePaymentStatusCommandHandler{uowFactory: uowFactory}
}

func (h *UpdatePaymentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdatePaymentStatusCommand,
) (*payment.Payment, error) {
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

	repo := uow.PaymentRepository()
	p, err := repo.GetForUpdate(ctx, cmd.PaymentID())
	if err != nil {
		return nil, err
	}

	if err = p.UpdateStatus(cmd.Status(), time.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
