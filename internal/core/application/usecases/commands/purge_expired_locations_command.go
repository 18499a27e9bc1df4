package commands

import (
	"context"
	"errors"
	"time"

	"courierledger/internal/pkg/errs"
	"courierledger/internal/pkg/guard"
)

var ErrPurgeExpiredLocationsCommandIsNotConstructed = errors.New(
	"PurgeExpiredLocationsCommand must be created via NewPurgeExpiredLocationsCommand constructor",
)

// PurgeExpiredLocationsCommand deletes location records older than the retention.
type PurgeExpiredLocationsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

func NewPurgeExpiredLocationsCommand(retention time.Duration) (PurgeExpiredLocationsCommand, error) {
	if retention <= 0 {
		return PurgeExpiredLocationsCommand{}, errs.NewValueIsOutOfRangeError("retention", retention, "1ns", "unbounded")
	}

	return PurgeExpiredLocationsCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeExpiredLocationsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredLocationsCommandIsNotConstructed)
}

func (c PurgeExpiredLocationsCommand) Retention() time.Duration {
	return c.retention
}

type PurgeExpiredLocationsCommandHandler struct {
	uowFactory LocationUoWFactory
	observer   LocationObserver
}

func NewPurgeExpiredLocationsCommandHandler(
	uowFactory LocationUoWFactory,
	observer LocationObserver,
) PurgeExpiredLocationsCommandHandler {
	return PurgeExpiredLocationsCommandHandler{
		uowFactory: uowFactory,
		observer:   observer,
	}
}

func (h *PurgeExpiredLocationsCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredLocationsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().Add(-cmd.Retention())
	purged, err := uow.LocationRepository().PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if h.observer != nil {
		h.observer.LocationsPurged(purged)
	}

	return purged, nil
}
