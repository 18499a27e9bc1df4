package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/pkg/guard"
)

var ErrAddEarningsAdjustmentCommandIsNotConstructed = errors.New(
	"AddEarningsAdjustmentCommand must be created via NewAddEarningsAdjustmentCommand constructor",
)

// AddEarningsAdjustmentCommand appends a signed correction to a ledger entry.
type AddEarningsAdjustmentCommand struct { //nolint:recvcheck //using for validation
	earningsID kernel.UUID
	amount     kernel.Money
	reason     string
	appliedBy  *kernel.UUID

	guard guard.ConstructorGuard
}

func NewAddEarningsAdjustmentCommand(
	earningsID kernel.UUID,
	amount kernel.Money,
	reason string,
	appliedBy *kernel.UUID,
) (AddEarningsAdjustmentCommand, error) {
	var errList []error
	errList = append(errList, earningsID.Validate())
	if amount.IsZero() {
		errList = append(errList, earnings.ErrMissingAdjustmentAmount)
	}
	if strings.TrimSpace(reason) == "" {
		errList = append(errList, earnings.ErrMissingAdjustmentReason)
	}
	if appliedBy != nil {
		errList = append(errList, appliedBy.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return AddEarningsAdjustmentCommand{}, err
	}

	return AddEarningsAdjustmentCommand{
		earningsID: earningsID,
		amount:     amount,
		reason:     reason,
		appliedBy:  appliedBy,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AddEarningsAdjustmentCommand) Validate() error {
	return c.guard.Validate(ErrAddEarningsAdjustmentCommandIsNotConstructed)
}

func (c AddEarningsAdjustmentCommand) EarningsID() kernel.UUID { return c.earningsID }
func (c AddEarningsAdjustmentCommand) Amount() kernel.Money    { return c.amount }
func (c AddEarningsAdjustmentCommand) Reason() string          { return c.reason }
func (c AddEarningsAdjustmentCommand) AppliedBy() *kernel.UUID { return c.appliedBy }

type AddEarningsAdjustmentCommandHandler struct {
	uowFactory EarningsUoWFactory
}

func NewAddEarningsAdjustmentCommandHandler(uowFactory EarningsUoWFactory) AddEarningsAdjustmentCommandHandler {
	return AddEarningsAdjustmentCommandHandler{uowFactory: uowFactory}
}

func (h *AddEarningsAdjustmentCommandHandler) Handle(
	ctx context.Context,
	cmd AddEarningsAdjustmentCommand,
) (*earnings.Earnings, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return amendEarnings(ctx, h.uowFactory, cmd.EarningsID(), func(e *earnings.Earnings) error {
		return e.AddAdjustment(cmd.Amount(), cmd.Reason(), cmd.AppliedBy(), time.Now())
	})
}
