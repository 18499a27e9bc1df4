package commands

import (
	"context"
	"log/slog"
	"time"

	"courierledger/internal/core/domain/model/offer"
	"courierledger/internal/core/ports"
)

// UpdateOfferStatusCommandHandler applies a lifecycle transition and announces it
// once the transaction is committed.
type UpdateOfferStatusCommandHandler struct {
	uowFactory OfferUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewUpdateOfferStatusCommandHandler(
	uowFactory OfferUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) UpdateOfferStatusCommandHandler {
	return UpdateOfferStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "UpdateOfferStatusCommandHandler"),
	}
}

func (h *UpdateOfferStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOfferStatusCommand) (*offer.Offer, error) {
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

	repo := uow.OfferRepository()
	o, err := repo.GetForUpdate(ctx, cmd.OfferID())
	if err != nil {
		return nil, err
	}

	from := o.Status()
	if err = o.UpdateStatus(cmd.Status(), cmd.Actor(), time.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	event := ports.Event{
		Name:       ports.EventOfferStatusChanged,
		Key:        o.ID().String(),
		OccurredAt: o.UpdatedAt(),
		Payload: ports.OfferStatusChangedPayload{
			OfferID: o.ID().String(),
			From:    from.String(),
			To:      o.Status().String(),
			ActorID: cmd.Actor().ID.String(),
			Role:    cmd.Actor().Role.String(),
		},
	}
	if err = h.publisher.Publish(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "failed to publish offer status change",
			"offer_id", o.ID().String(), "error", err)
	}

	return o, nil
}
