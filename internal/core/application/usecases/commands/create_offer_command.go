package commands

import (
	"errors"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/offer"
	"courierledger/internal/pkg/guard"
)

var ErrCreateOfferCommandIsNotConstructed = errors.New(
	"CreateOfferCommand must be created via NewCreateOfferCommand constructor",
)

// CreateOfferCommand posts a new delivery offer on behalf of a requester.
// Field validation of the details happens in the offer aggregate.
type CreateOfferCommand struct { //nolint:recvcheck //using for validation
	offerID     kernel.UUID
	requesterID kernel.UUID
	details     offer.Details

	guard guard.ConstructorGuard
}

func NewCreateOfferCommand(requesterID kernel.UUID, details offer.Details) (CreateOfferCommand, error) {
	if err := requesterID.Validate(); err != nil {
		return CreateOfferCommand{}, err
	}

	return CreateOfferCommand{
		offerID:     kernel.NewUUID(),
		requesterID: requesterID,
		details:     details,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOfferCommand) Validate() error {
	return c.guard.Validate(ErrCreateOfferCommandIsNotConstructed)
}

func (c CreateOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

func (c CreateOfferCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c CreateOfferCommand) Details() offer.Details {
	return c.details
}
