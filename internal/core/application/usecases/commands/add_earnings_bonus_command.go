package commands

import (
	"context"
	"errors"
	"time"

	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/pkg/guard"
)

var ErrAddEarningsBonusCommandIsNotConstructed = errors.New(
	"AddEarningsBonusCommand must be created via NewAddEarningsBonusCommand constructor",
)

// AddEarningsBonusCommand accumulates a positive bonus on a ledger entry.
type AddEarningsBonusCommand struct { //nolint:recvcheck //using for validation
	earningsID kernel.UUID
	amount     kernel.Money
	reason     string

	guard guard.ConstructorGuard
}

func NewAddEarningsBonusCommand(earningsID kernel.UUID, amount kernel.Money, reason string) (AddEarningsBonusCommand, error) {
	var amountErr error
	if !amount.IsPositive() {
		amountErr = earnings.ErrInvalidBonusAmount
	}
	if err := errors.Join(earningsID.Validate(), amountErr); err != nil {
		return AddEarningsBonusCommand{}, err
	}

	return AddEarningsBonusCommand{
		earningsID: earningsID,
		amount:     amount,
		reason:     reason,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AddEarningsBonusCommand) Validate() error {
	return c.guard.Validate(ErrAddEarningsBonusCommandIsNotConstructed)
}

func (c AddEarningsBonusCommand) EarningsID() kernel.UUID { return c.earningsID }
func (c AddEarningsBonusCommand) Amount() kernel.Money    { return c.amount }
func (c AddEarningsBonusCommand) Reason() string          { return c.reason }

type AddEarningsBonusCommandHandler struct {
	uowFactory EarningsUoWFactory
}

func NewAddEarningsBonusCommandHandler(uowFactory EarningsUoWFactory) AddEarningsBonusCommandHandler {
	return AddEarningsBonusCommandHandler{uowFactory: uowFactory}
}

func (h *AddEarningsBonusCommandHandler) Handle(
	ctx context.Context,
	cmd AddEarningsBonusCommand,
) (*earnings.Earnings, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return amendEarnings(ctx, h.uowFactory, cmd.EarningsID(), func(e *earnings.Earnings) error {
		return e.AddBonus(cmd.Amount(), cmd.Reason(), time.Now())
	})
}
