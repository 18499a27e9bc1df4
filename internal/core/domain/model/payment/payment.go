package payment

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/pkg/errs"
	"courierledger/internal/pkg/guard"
)

const DefaultCurrency = "USD"

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Payment records what the requester paid for an offer and how it splits
// between the platform and the courier. PayeeEarnings is always
// TotalAmount minus PlatformFee.
type Payment struct {
	id          kernel.UUID
	offerID     kernel.UUID
	payerID     kernel.UUID
	payeeID     kernel.UUID
	totalAmount kernel.Money
	platformFee kernel.Money
	currency    string
	method      Method
	status      Status
	processedAt *time.Time
	createdAt   time.Time
	guard       guard.ConstructorGuard
}

// NewPayment creates a pending payment.
func NewPayment(
	id, offerID, payerID, payeeID kernel.UUID,
	total, fee kernel.Money,
	currency string,
	method Method,
	now time.Time,
) (*Payment, error) {
	p := &Payment{
		status:    Pending,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setIDs(id, offerID, payerID, payeeID),
		p.setAmounts(total, fee),
		p.setCurrency(currency),
		method.Validate(),
	); err != nil {
		return nil, err
	}
	p.method = method

	return p, nil
}

// RestorePayment rebuilds a payment read from storage.
func RestorePayment(
	id, offerID, payerID, payeeID kernel.UUID,
	total, fee kernel.Money,
	currency string,
	method Method,
	status Status,
	processedAt *time.Time,
	createdAt time.Time,
) (*Payment, error) {
	p := &Payment{
		processedAt: processedAt,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setIDs(id, offerID, payerID, payeeID),
		p.setAmounts(total, fee),
		p.setCurrency(currency),
		method.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	p.method = method
	p.status = status

	return p, nil
}

func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

func (p *Payment) ID() kernel.UUID           { return p.id }
func (p *Payment) OfferID() kernel.UUID      { return p.offerID }
func (p *Payment) PayerID() kernel.UUID      { return p.payerID }
func (p *Payment) PayeeID() kernel.UUID      { return p.payeeID }
func (p *Payment) TotalAmount() kernel.Money { return p.totalAmount }
func (p *Payment) PlatformFee() kernel.Money { return p.platformFee }
func (p *Payment) Currency() string          { return p.currency }
func (p *Payment) Method() Method            { return p.method }
func (p *Payment) Status() Status            { return p.status }
func (p *Payment) ProcessedAt() *time.Time   { return p.processedAt }
func (p *Payment) CreatedAt() time.Time      { return p.createdAt }

// PayeeEarnings is the courier's share after the platform fee.
func (p *Payment) PayeeEarnings() kernel.Money {
	return p.totalAmount - p.platformFee
}

// UpdateStatus moves the payment along its status graph. ProcessedAt is
// stamped whenever the payment settles as completed or failed.
func (p *Payment) UpdateStatus(next Status, now time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if !p.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, p.status, next)
	}

	p.status = next
	if next.IsSettled() {
		at := now.UTC()
		p.processedAt = &at
	}
	return nil
}

func (p *Payment) setIDs(id, offerID, payerID, payeeID kernel.UUID) error {
	if err := errors.Join(id.Validate(), offerID.Validate(), payerID.Validate(), payeeID.Validate()); err != nil {
		return err
	}
	p.id = id
	p.offerID = offerID
	p.payerID = payerID
	p.payeeID = payeeID
	return nil
}

func (p *Payment) setAmounts(total, fee kernel.Money) error {
	if !total.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("total amount", fmt.Errorf("%s is not greater than 0", total))
	}
	if fee < 0 || fee > total {
		return errs.NewValueIsOutOfRangeError("platform fee", fee.String(), "0.00", total.String())
	}
	p.totalAmount = total
	p.platformFee = fee
	return nil
}

func (p *Payment) setCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	if !currencyPattern.MatchString(currency) {
		return errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q is not an ISO 4217 code", currency))
	}
	p.currency = currency
	return nil
}
