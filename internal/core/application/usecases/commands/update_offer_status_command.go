package commands

import (
	"errors"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/offer"
	"courierledger/internal/pkg/guard"
)

var ErrUpdateOfferStatusCommandIsNotConstructed = errors.New(
	"UpdateOfferStatusCommand must be created via NewUpdateOfferStatusCommand constructor",
)

// UpdateOfferStatusCommand asks to move an offer to a new status on behalf of an actor.
type UpdateOfferStatusCommand struct { //nolint:recvcheck //using for validation
	offerID kernel.UUID
	status  offer.Status
	actor   offer.Actor

	guard guard.ConstructorGuard
}

func NewUpdateOfferStatusCommand(
	offerID kernel.UUID,
	status offer.Status,
	actor offer.Actor,
) (UpdateOfferStatusCommand, error) {
	if err := errors.Join(
		offerID.Validate(),
		status.Validate(),
		actor.ID.Validate(),
		actor.Role.Validate(),
	); err != nil {
		return UpdateOfferStatusCommand{}, err
	}

	return UpdateOfferStatusCommand{
		offerID: offerID,
		status:  status,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOfferStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOfferStatusCommandIsNotConstructed)
}

func (c UpdateOfferStatusCommand) OfferID() kernel.UUID {
	return c.offerID
}

func (c UpdateOfferStatusCommand) Status() offer.Status {
	return c.status
}

func (c UpdateOfferStatusCommand) Actor() offer.Actor {
	return c.actor
}
