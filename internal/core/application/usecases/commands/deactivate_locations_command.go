package commands

import (
	"context"
	"errors"
	"log/slog"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/ports"
	"courierledger/internal/pkg/errs"
	"courierledger/internal/pkg/guard"
)

var ErrDeactivateLocationsCommandIsNotConstructed = errors.New(
	"DeactivateLocationsCommand must be created via NewDeactivateLocationsCommand constructor",
)

// DeactivateLocationsCommand marks a courier's active records inactive, either
// all of them or only those tied to one offer.
type DeactivateLocationsCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	offerID   *kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeactivateLocationsCommand(courierID kernel.UUID, offerID *kernel.UUID) (DeactivateLocationsCommand, error) {
	var offerErr error
	if offerID != nil {
		offerErr = offerID.Validate()
	}
	if err := errors.Join(courierID.Validate(), offerErr); err != nil {
		return DeactivateLocationsCommand{}, err
	}

	return DeactivateLocationsCommand{
		courierID: courierID,
		offerID:   offerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeactivateLocationsCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateLocationsCommandIsNotConstructed)
}

func (c DeactivateLocationsCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c DeactivateLocationsCommand) OfferID() *kernel.UUID {
	return c.offerID
}

type DeactivateLocationsCommandHandler struct {
	uowFactory LocationUoWFactory
	index      ports.CourierPositionIndex
	logger     *slog.Logger
}

func NewDeactivateLocationsCommandHandler(
	uowFactory LocationUoWFactory,
	index ports.CourierPositionIndex,
	logger *slog.Logger,
) DeactivateLocationsCommandHandler {
	return DeactivateLocationsCommandHandler{
		uowFactory: uowFactory,
		index:      index,
		logger:     logger.With("component", "DeactivateLocationsCommandHandler"),
	}
}

// Handle returns the number of records deactivated. The courier leaves the
// nearby index when its latest fix is no longer active: always when going
// fully offline, and after an offer is closed only if that offer owned the
// latest fix.
func (h *DeactivateLocationsCommandHandler) Handle(ctx context.Context, cmd DeactivateLocationsCommand) (int64, error) {
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

	repo := uow.LocationRepository()
	count, err := repo.Deactivate(ctx, cmd.CourierID(), cmd.OfferID())
	if err != nil {
		return 0, err
	}

	leavesIndex := cmd.OfferID() == nil
	if !leavesIndex && count > 0 {
		latest, err := repo.Latest(ctx, cmd.CourierID())
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			leavesIndex = true
		case err != nil:
			return 0, err
		default:
			leavesIndex = !latest.IsActive()
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if leavesIndex && h.index != nil {
		if err = h.index.Remove(ctx, cmd.CourierID()); err != nil {
			h.logger.WarnContext(ctx, "failed to remove courier from nearby index",
				"courier_id", cmd.CourierID().String(), "error", err)
		}
	}

	return count, nil
}
