package commands

import (
	"context"
	"errors"
	"time"

	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/pkg/guard"
)

var ErrUpdateEarningsPaymentStatusCommandIsNotConstructed = errors.New(
	"UpdateEarningsPaymentStatusCommand must be created via NewUpdateEarningsPaymentStatusCommand constructor",
)

type UpdateEarningsPaymentStatusCommand struct { //nolint:recvcheck //using for validation
	earningsID kernel.UUID
	status     earnings.PaymentStatus

	guard guard.ConstructorGuard
}

func NewUpdateEarningsPaymentStatusCommand(
	earningsID kernel.UUID,
	status earnings.PaymentStatus,
) (UpdateEarningsPaymentStatusCommand, error) {
	if err := errors.Join(earningsID.Validate(), status.Validate()); err != nil {
		return UpdateEarningsPaymentStatusCommand{}, err
	}

	return UpdateEarningsPaymentStatusCommand{
		earningsID: earningsID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateEarningsPaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEarningsPaymentStatusCommandIsNotConstructed)
}

func (c UpdateEarningsPaymentStatusCommand) EarningsID() kernel.UUID        { return c.earningsID }
func (c UpdateEarningsPaymentStatusCommand) Status() earnings.PaymentStatus { return c.status }

// UpdateEarningsPaymentStatusCommandHandler moves the payout status of a ledger
// entry. paidAt is stamped by the aggregate on the first move into paid.
type UpdateEarningsPaymentStatusCommandHandler struct {
	uowFactory EarningsUoWFactory
}

func NewUpdateEarningsPaymentStatusCommandHandler(
	uowFactory EarningsUoWFactory,
) UpdateEarningsPaymentStatusCommandHandler {
	return UpdateEarningsPaymentStatusCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateEarningsPaymentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateEarningsPaymentStatusCommand,
) (*earnings.Earnings, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return amendEarnings(ctx, h.uowFactory, cmd.EarningsID(), func(e *earnings.Earnings) error {
		return e.UpdatePaymentStatus(cmd.Status(), time.Now())
	})
}
