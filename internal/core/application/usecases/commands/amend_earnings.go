package commands

import (
	"context"

	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/kernel"
)

// amendEarnings loads a ledger entry, applies one aggregate method and persists
// the result inside a single transaction.
func amendEarnings(
	ctx context.Context,
	uowFactory EarningsUoWFactory,
	earningsID kernel.UUID,
	apply func(*earnings.Earnings) error,
) (*earnings.Earnings, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.EarningsRepository()
	entry, err := repo.GetForUpdate(ctx, earningsID)
	if err != nil {
		return nil, err
	}

	if err = apply(entry); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}
