package earnings

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/offer"
	"courierledger/internal/core/domain/model/payment"
	"courierledger/internal/pkg/guard"
)

// Earnings is the ledger entry for one completed offer. At most one exists per
// offer; the repository enforces it with a unique key on the offer reference.
//
// FinalAmount is always NetAmount + BonusAmount + the sum of all adjustments.
// It is derived on read and never stored independently of its parts.
type Earnings struct {
	id            kernel.UUID
	courierID     kernel.UUID
	offerID       kernel.UUID
	paymentID     kernel.UUID
	paymentMethod payment.Method

	grossAmount kernel.Money
	platformFee kernel.Money
	netAmount   kernel.Money
	bonusAmount kernel.Money
	bonusReason string
	adjustments []Adjustment

	paymentStatus PaymentStatus
	paidAt        *time.Time

	distance  *float64
	duration  *float64
	earnedAt  time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewFromOffer derives a ledger entry from a completed offer and its payment.
//
// Checks run in order: the offer must be completed, it must have an assigned
// courier, and a payment must be given. Distance and duration prefer the
// offer's actual values and fall back to its estimates.
func NewFromOffer(id kernel.UUID, o *offer.Offer, p *payment.Payment, now time.Time) (*Earnings, error) {
	if err := errors.Join(id.Validate(), o.Validate()); err != nil {
		return nil, err
	}
	if o.Status() != offer.Completed {
		return nil, fmt.Errorf("%w: offer %s is %s", ErrOfferNotCompleted, o.ID(), o.Status())
	}
	if o.AcceptedBy() == nil {
		return nil, fmt.Errorf("%w: offer %s", ErrNoAssignedCourier, o.ID())
	}
	if p == nil {
		return nil, fmt.Errorf("%w: offer %s", ErrPaymentRequired, o.ID())
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !p.OfferID().IsEqual(o.ID()) {
		return nil, fmt.Errorf("%w: payment %s, offer %s", ErrPaymentOfferMismatch, p.ID(), o.ID())
	}

	status, err := StatusFromPayment(p.Status())
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	gross := p.TotalAmount()
	if gross.IsZero() {
		gross = o.PaymentTerms().Amount
	}

	e := &Earnings{
		id:            id,
		courierID:     *o.AcceptedBy(),
		offerID:       o.ID(),
		paymentID:     p.ID(),
		paymentMethod: p.Method(),
		grossAmount:   gross,
		platformFee:   p.PlatformFee(),
		netAmount:     p.PayeeEarnings(),
		paymentStatus: status,
		distance:      firstNonNil(o.ActualDistance(), o.EstimatedDistance()),
		duration:      firstNonNil(o.ActualDuration(), o.EstimatedDuration()),
		earnedAt:      now,
		updatedAt:     now,
		guard:         guard.NewConstructorGuard(),
	}
	if completedAt := o.CompletedAt(); completedAt != nil {
		e.earnedAt = completedAt.UTC()
	}
	if status == Paid {
		paidAt := now
		if processed := p.ProcessedAt(); processed != nil {
			paidAt = processed.UTC()
		}
		e.paidAt = &paidAt
	}

	return e, nil
}

// State is the persisted form of a ledger entry.
type State struct {
	ID            kernel.UUID
	CourierID     kernel.UUID
	OfferID       kernel.UUID
	PaymentID     kernel.UUID
	PaymentMethod payment.Method
	GrossAmount   kernel.Money
	PlatformFee   kernel.Money
	NetAmount     kernel.Money
	BonusAmount   kernel.Money
	BonusReason   string
	Adjustments   []Adjustment
	PaymentStatus PaymentStatus
	PaidAt        *time.Time
	Distance      *float64
	Duration      *float64
	EarnedAt      time.Time
	UpdatedAt     time.Time
}

func RestoreEarnings(s State) (*Earnings, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.CourierID.Validate(),
		s.OfferID.Validate(),
		s.PaymentID.Validate(),
		s.PaymentMethod.Validate(),
		s.PaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if s.BonusAmount < 0 {
		return nil, fmt.Errorf("%w: restored bonus %s", ErrInvalidBonusAmount, s.BonusAmount)
	}

	return &Earnings{
		id:            s.ID,
		courierID:     s.CourierID,
		offerID:       s.OfferID,
		paymentID:     s.PaymentID,
		paymentMethod: s.PaymentMethod,
		grossAmount:   s.GrossAmount,
		platformFee:   s.PlatformFee,
		netAmount:     s.NetAmount,
		bonusAmount:   s.BonusAmount,
		bonusReason:   s.BonusReason,
		adjustments:   append([]Adjustment(nil), s.Adjustments...),
		paymentStatus: s.PaymentStatus,
		paidAt:        s.PaidAt,
		distance:      s.Distance,
		duration:      s.Duration,
		earnedAt:      s.EarnedAt,
		updatedAt:     s.UpdatedAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (e *Earnings) Validate() error {
	if e == nil {
		return ErrEarningsIsNotConstructed
	}
	return e.guard.Validate(ErrEarningsIsNotConstructed)
}

func (e *Earnings) ID() kernel.UUID               { return e.id }
func (e *Earnings) CourierID() kernel.UUID        { return e.courierID }
func (e *Earnings) OfferID() kernel.UUID          { return e.offerID }
func (e *Earnings) PaymentID() kernel.UUID        { return e.paymentID }
func (e *Earnings) PaymentMethod() payment.Method { return e.paymentMethod }
func (e *Earnings) GrossAmount() kernel.Money     { return e.grossAmount }
func (e *Earnings) PlatformFee() kernel.Money     { return e.platformFee }
func (e *Earnings) NetAmount() kernel.Money       { return e.netAmount }
func (e *Earnings) BonusAmount() kernel.Money     { return e.bonusAmount }
func (e *Earnings) BonusReason() string           { return e.bonusReason }
func (e *Earnings) PaymentStatus() PaymentStatus  { return e.paymentStatus }
func (e *Earnings) PaidAt() *time.Time            { return e.paidAt }
func (e *Earnings) Distance() *float64            { return e.distance }
func (e *Earnings) Duration() *float64            { return e.duration }
func (e *Earnings) EarnedAt() time.Time           { return e.earnedAt }
func (e *Earnings) UpdatedAt() time.Time          { return e.updatedAt }

// Adjustments returns the corrections in the order they were applied.
func (e *Earnings) Adjustments() []Adjustment {
	return append([]Adjustment(nil), e.adjustments...)
}

func (e *Earnings) AdjustmentsTotal() kernel.Money {
	var total kernel.Money
	for _, a := range e.adjustments {
		total += a.amount
	}
	return total
}

func (e *Earnings) FinalAmount() kernel.Money {
	return e.netAmount + e.bonusAmount + e.AdjustmentsTotal()
}

// AddBonus accumulates a positive bonus. The latest reason replaces any earlier one.
func (e *Earnings) AddBonus(amount kernel.Money, reason string, now time.Time) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidBonusAmount, amount)
	}
	e.bonusAmount += amount
	e.bonusReason = strings.TrimSpace(reason)
	e.updatedAt = now.UTC()
	return nil
}

// AddAdjustment appends a signed correction stamped with now.
func (e *Earnings) AddAdjustment(amount kernel.Money, reason string, appliedBy *kernel.UUID, now time.Time) error {
	adj, err := NewAdjustment(amount, reason, appliedBy, now)
	if err != nil {
		return err
	}
	e.adjustments = append(e.adjustments, adj)
	e.updatedAt = now.UTC()
	return nil
}

// UpdatePaymentStatus sets the payout status. PaidAt is written on the first
// move into paid and never changes afterwards.
func (e *Earnings) UpdatePaymentStatus(status PaymentStatus, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.paymentStatus = status
	if status == Paid && e.paidAt == nil {
		at := now.UTC()
		e.paidAt = &at
	}
	e.updatedAt = now.UTC()
	return nil
}

func firstNonNil(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			out := *v
			return &out
		}
	}
	return nil
}
