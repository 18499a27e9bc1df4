package commands

import (
	"errors"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/payment"
	"courierledger/internal/pkg/guard"
)

var ErrUpdatePaymentStatusCommandIsNotConstructed = errors.New(
	"UpdatePaymentStatusCommand must be created via NewUpdatePaymentStatusCommand constructor",
)

type UpdatePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	status    payment.Status

	guard guard.ConstructorGuard
}

func NewUpdatePaymentStatusCommand(paymentID kernel.UUID, status payment.Status) (UpdatePaymentStatusCommand, error) {
	if err := errors.Join(paymentID.Validate(), status.Validate()); err != nil {
		return UpdatePaymentStatusCommand{}, err
	}

	return UpdatePaymentStatusCommand{
		paymentID: paymentID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdatePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentStatusCommandIsNotConstructed)
}

func (c UpdatePaymentStatusCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c UpdatePaymentStatusCommand) Status() payment.Status {
	return c.status
}
