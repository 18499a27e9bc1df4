package commands

import (
	"errors"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/pkg/guard"
)

var ErrCreateEarningsCommandIsNotConstructed = errors.New(
	"CreateEarningsCommand must be created via NewCreateEarningsCommand constructor",
)

// CreateEarningsCommand turns a completed offer into its ledger entry.
//
// PaymentID is optional; without it the payment recorded for the offer is used.
// With useTrajectory set, a completed offer without an actual distance gets the
// distance of the courier's tracked path before the entry is derived.
//
//	cmd, _ := NewCreateEarningsCommand(offerID, &paymentID, false)
//	result, err := handler.Handle(ctx, cmd)
//	if result.Outcome == earnings.AlreadyExists { ... }
type CreateEarningsCommand struct { //nolint:recvcheck //using for validation
	earningsID    kernel.UUID
	offerID       kernel.UUID
	paymentID     *kernel.UUID
	useTrajectory bool

	guard guard.ConstructorGuard
}

func NewCreateEarningsCommand(
	offerID kernel.UUID,
	paymentID *kernel.UUID,
	useTrajectory bool,
) (CreateEarningsCommand, error) {
	var paymentErr error
	if paymentID != nil {
		paymentErr = paymentID.Validate()
	}
	if err := errors.Join(offerID.Validate(), paymentErr); err != nil {
		return CreateEarningsCommand{}, err
	}

	return CreateEarningsCommand{
		earningsID:    kernel.NewUUID(),
		offerID:       offerID,
		paymentID:     paymentID,
		useTrajectory: useTrajectory,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateEarningsCommand) Validate() error {
	return c.guard.Validate(ErrCreateEarningsCommandIsNotConstructed)
}

func (c CreateEarningsCommand) EarningsID() kernel.UUID {
	return c.earningsID
}

func (c CreateEarningsCommand) OfferID() kernel.UUID {
	return c.offerID
}

func (c CreateEarningsCommand) PaymentID() *kernel.UUID {
	return c.paymentID
}

func (c CreateEarningsCommand) UseTrajectory() bool {
	return c.useTrajectory
}
