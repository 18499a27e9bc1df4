package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/location"
	"courierledger/internal/core/ports"
	"courierledger/internal/pkg/guard"
)

var ErrRecordLocationCommandIsNotConstructed = errors.New(
	"RecordLocationCommand must be created via NewRecordLocationCommand constructor",
)

// RecordLocationCommand stores one telemetry sample of a courier.
type RecordLocationCommand struct { //nolint:recvcheck //using for validation
	recordID  kernel.UUID
	courierID kernel.UUID
	sample    location.Sample

	guard guard.ConstructorGuard
}

func NewRecordLocationCommand(courierID kernel.UUID, sample location.Sample) (RecordLocationCommand, error) {
	if err := errors.Join(courierID.Validate(), sample.Coordinates.Validate()); err != nil {
		return RecordLocationCommand{}, err
	}

	return RecordLocationCommand{
		recordID:  kernel.NewUUID(),
		courierID: courierID,
		sample:    sample,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RecordLocationCommand) Validate() error {
	return c.guard.Validate(ErrRecordLocationCommandIsNotConstructed)
}

func (c RecordLocationCommand) RecordID() kernel.UUID   { return c.recordID }
func (c RecordLocationCommand) CourierID() kernel.UUID  { return c.courierID }
func (c RecordLocationCommand) Sample() location.Sample { return c.sample }

// RecordLocationCommandHandler appends the record, then refreshes the nearby
// index and announces the fix. Index and event failures are logged only; the
// stored record is the source of truth. index may be nil.
type RecordLocationCommandHandler struct {
	uowFactory LocationUoWFactory
	index      ports.CourierPositionIndex
	publisher  ports.EventPublisher
	observer   LocationObserver
	logger     *slog.Logger
}

func NewRecordLocationCommandHandler(
	uowFactory LocationUoWFactory,
	index ports.CourierPositionIndex,
	publisher ports.EventPublisher,
	observer LocationObserver,
	logger *slog.Logger,
) RecordLocationCommandHandler {
	return RecordLocationCommandHandler{
		uowFactory: uowFactory,
		index:      index,
		publisher:  publisher,
		observer:   observer,
		logger:     logger.With("component", "RecordLocationCommandHandler"),
	}
}

func (h *RecordLocationCommandHandler) Handle(ctx context.Context, cmd RecordLocationCommand) (*location.Record, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	record, err := location.NewRecord(cmd.RecordID(), cmd.CourierID(), cmd.Sample(), time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LocationRepository().Add(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if h.observer != nil {
		h.observer.LocationRecorded(record.TrackingType().String())
	}

	if h.index != nil {
		if err = h.index.Upsert(ctx, record); err != nil {
			h.logger.WarnContext(ctx, "failed to update nearby index",
				"courier_id", record.CourierID().String(), "error", err)
		}
	}

	payload := ports.LocationRecordedPayload{
		CourierID:    record.CourierID().String(),
		Coordinates:  record.Coordinates().Pair(),
		TrackingType: record.TrackingType().String(),
		Timestamp:    record.Timestamp(),
	}
	if offerID := record.OfferID(); offerID != nil {
		payload.OfferID = offerID.String()
	}
	event := ports.Event{
		Name:       ports.EventLocationRecorded,
		Key:        record.CourierID().String(),
		OccurredAt: record.Timestamp(),
		Payload:    payload,
	}
	if err = h.publisher.Publish(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "failed to publish location recorded",
			"courier_id", record.CourierID().String(), "error", err)
	}

	return record, nil
}
