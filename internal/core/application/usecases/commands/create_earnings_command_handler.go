package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/location"
	"courierledger/internal/core/domain/model/offer"
	"courierledger/internal/core/domain/model/payment"
	"courierledger/internal/core/ports"
	"courierledger/internal/pkg/errs"
)

// CreateEarningsResult is the tagged result of the idempotent ledger create.
type CreateEarningsResult struct {
	Outcome  earnings.Outcome
	Earnings *earnings.Earnings
}

// CreateEarningsCommandHandler creates at most one ledger entry per offer.
//
// The lookup and the insert run in one transaction. Two concurrent callers can
// both miss the lookup; the unique offer_id index rejects the second insert,
// which is then answered by re-reading the winner's row.
type CreateEarningsCommandHandler struct {
	uowFactory LedgerUoWFactory
	publisher  ports.EventPublisher
	observer   LedgerObserver
	logger     *slog.Logger
}

func NewCreateEarningsCommandHandler(
	uowFactory LedgerUoWFactory,
	publisher ports.EventPublisher,
	observer LedgerObserver,
	logger *slog.Logger,
) CreateEarningsCommandHandler {
	return CreateEarningsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		observer:   observer,
		logger:     logger.With("component", "CreateEarningsCommandHandler"),
	}
}

func (h *CreateEarningsCommandHandler) Handle(
	ctx context.Context,
	cmd CreateEarningsCommand,
) (CreateEarningsResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateEarningsResult{}, err
	}

	result, err := h.findOrCreate(ctx, cmd)
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		result, err = h.existing(ctx, cmd)
	}
	if err != nil {
		return CreateEarningsResult{}, err
	}

	if h.observer != nil {
		h.observer.EarningsCreated(result.Outcome)
	}

	if result.Outcome == earnings.Created {
		h.publishCreated(ctx, result.Earnings)
	}

	return result, nil
}

func (h *CreateEarningsCommandHandler) findOrCreate(
	ctx context.Context,
	cmd CreateEarningsCommand,
) (CreateEarningsResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateEarningsResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OfferRepository().Get(ctx, cmd.OfferID())
	if err != nil {
		return CreateEarningsResult{}, err
	}

	found, err := uow.EarningsRepository().GetByOfferID(ctx, o.ID())
	switch {
	case err == nil:
		return CreateEarningsResult{Outcome: earnings.AlreadyExists, Earnings: found}, nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return CreateEarningsResult{}, err
	}

	p, err := h.payment(ctx, uow, cmd, o)
	if err != nil {
		return CreateEarningsResult{}, err
	}

	if cmd.UseTrajectory() {
		if err = h.applyTrajectory(ctx, uow, o); err != nil {
			return CreateEarningsResult{}, err
		}
	}

	entry, err := earnings.NewFromOffer(cmd.EarningsID(), o, p, time.Now())
	if err != nil {
		return CreateEarningsResult{}, err
	}

	if err = uow.EarningsRepository().Add(ctx, entry); err != nil {
		return CreateEarningsResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateEarningsResult{}, err
	}

	return CreateEarningsResult{Outcome: earnings.Created, Earnings: entry}, nil
}

// existing re-reads the entry that won a concurrent create.
func (h *CreateEarningsCommandHandler) existing(
	ctx context.Context,
	cmd CreateEarningsCommand,
) (CreateEarningsResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateEarningsResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	found, err := uow.EarningsRepository().GetByOfferID(ctx, cmd.OfferID())
	if err != nil {
		return CreateEarningsResult{}, err
	}

	return CreateEarningsResult{Outcome: earnings.AlreadyExists, Earnings: found}, nil
}

// payment returns nil when the offer has no payment so that derivation reports
// earnings.ErrPaymentRequired.
func (h *CreateEarningsCommandHandler) payment(
	ctx context.Context,
	uow LedgerUoW,
	cmd CreateEarningsCommand,
	o *offer.Offer,
) (*payment.Payment, error) {
	var (
		p   *payment.Payment
		err error
	)
	if id := cmd.PaymentID(); id != nil {
		p, err = uow.PaymentRepository().Get(ctx, *id)
	} else {
		p, err = uow.PaymentRepository().GetByOfferID(ctx, o.ID())
	}

	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	return p, err
}

func (h *CreateEarningsCommandHandler) applyTrajectory(ctx context.Context, uow LedgerUoW, o *offer.Offer) error {
	if !o.IsCompleted() || o.AcceptedBy() == nil || o.ActualDistance() != nil {
		return nil
	}

	offerID := o.ID()
	path, err := uow.LocationRepository().Path(ctx, *o.AcceptedBy(), &offerID, o.AcceptedAt())
	if err != nil {
		return err
	}
	if len(path) < 2 {
		return nil
	}

	meters, err := location.TrajectoryDistance(path)
	if err != nil {
		return err
	}
	if err = o.SetActualDistance(meters); err != nil {
		return err
	}

	return uow.OfferRepository().Update(ctx, o)
}

func (h *CreateEarningsCommandHandler) publishCreated(ctx context.Context, e *earnings.Earnings) {
	event := ports.Event{
		Name:       ports.EventEarningsCreated,
		Key:        e.CourierID().String(),
		OccurredAt: e.UpdatedAt(),
		Payload: ports.EarningsCreatedPayload{
			EarningsID:    e.ID().String(),
			CourierID:     e.CourierID().String(),
			OfferID:       e.OfferID().String(),
			NetAmount:     e.NetAmount().Cents(),
			FinalAmount:   e.FinalAmount().Cents(),
			PaymentStatus: e.PaymentStatus().String(),
		},
	}

	if err := h.publisher.Publish(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "failed to publish earnings created",
			"earnings_id", e.ID().String(), "offer_id", e.OfferID().String(), "error", err)
	}
}
