package commands

import (
	"errors"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/payment"
	"courierledger/internal/pkg/errs"
	"courierledger/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand registers the payment a requester makes for an offer.
// The payee is always the courier who accepted the offer.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID   kernel.UUID
	offerID     kernel.UUID
	payerID     kernel.UUID
	totalAmount kernel.Money
	platformFee kernel.Money
	currency    string
	method      payment.Method

	guard guard.ConstructorGuard
}

func NewRecordPaymentCommand(
	offerID, payerID kernel.UUID,
	totalAmount, platformFee kernel.Money,
	currency string,
	method payment.Method,
) (RecordPaymentCommand, error) {
	var amountErr error
	if !totalAmount.IsPositive() {
		amountErr = errs.NewValueIsInvalidError("total amount")
	}

	if err := errors.Join(
		offerID.Validate(),
		payerID.Validate(),
		amountErr,
		method.Validate(),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return RecordPaymentCommand{
		paymentID:   kernel.NewUUID(),
		offerID:     offerID,
		payerID:     payerID,
		totalAmount: totalAmount,
		platformFee: platformFee,
		currency:    currency,
		method:      method,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

func (c RecordPaymentCommand) PaymentID() kernel.UUID    { return c.paymentID }
func (c RecordPaymentCommand) OfferID() kernel.UUID      { return c.offerID }
func (c RecordPaymentCommand) PayerID() kernel.UUID      { return c.payerID }
func (c RecordPaymentCommand) TotalAmount() kernel.Money { return c.totalAmount }
func (c RecordPaymentCommand) PlatformFee() kernel.Money { return c.platformFee }
func (c RecordPaymentCommand) Currency() string          { return c.currency }
func (c RecordPaymentCommand) Method() payment.Method    { return c.method }
