package offer

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/payment"
	"courierledger/internal/core/domain/model/vehicle"
	"courierledger/internal/pkg/errs"
	"courierledger/internal/pkg/guard"
)

var ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer or RestoreOffer")

// Details is the requester supplied part of an offer.
type Details struct {
	Title        string
	Description  string
	Package      Package
	Pickup       Pickup
	Delivery     Delivery
	Payment      PaymentTerms
	VehicleClass vehicle.Class
}

// Offer is a single delivery job and the aggregate root of the delivery lifecycle.
//
// Invariants:
//   - status only moves along the transition table, and only through UpdateStatus
//   - acceptedBy is set for every status past open, except cancelled-from-open
//   - every status change is appended to the history with the acting party
//
// Example:
//
//	o, _ := offer.NewOffer(kernel.NewUUID(), requesterID, details, time.Now())
//	courier, _ := offer.NewActor(courierID, offer.Courier)
//	err := o.UpdateStatus(offer.Accepted, courier, time.Now())
type Offer struct {
	id          kernel.UUID
	requesterID kernel.UUID
	details     Details
	status      Status
	acceptedBy  *kernel.UUID

	estimatedDistance *float64
	estimatedDuration *float64
	actualDistance    *float64
	actualDuration    *float64

	createdAt   time.Time
	updatedAt   time.Time
	acceptedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	completedAt *time.Time
	cancelledAt *time.Time

	history []StatusChange
	guard   guard.ConstructorGuard
}

// NewOffer creates an open offer.
func NewOffer(id, requesterID kernel.UUID, details Details, now time.Time) (*Offer, error) {
	now = now.UTC()
	o := &Offer{
		status:    Open,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setIDs(id, requesterID),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// State is the full persisted form of an offer, used by RestoreOffer.
type State struct {
	ID                kernel.UUID
	RequesterID       kernel.UUID
	Details           Details
	Status            Status
	AcceptedBy        *kernel.UUID
	EstimatedDistance *float64
	EstimatedDuration *float64
	ActualDistance    *float64
	ActualDuration    *float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	AcceptedAt        *time.Time
	PickedUpAt        *time.Time
	DeliveredAt       *time.Time
	CompletedAt       *time.Time
	CancelledAt       *time.Time
	History           []StatusChange
}

// RestoreOffer rebuilds an offer read from storage. Rows are taken as stored;
// HasConsistentCourier reports rows that lost their courier reference.
func RestoreOffer(s State) (*Offer, error) {
	o := &Offer{
		acceptedBy:        s.AcceptedBy,
		estimatedDistance: s.EstimatedDistance,
		estimatedDuration: s.EstimatedDuration,
		actualDistance:    s.ActualDistance,
		actualDuration:    s.ActualDuration,
		createdAt:         s.CreatedAt,
		updatedAt:         s.UpdatedAt,
		acceptedAt:        s.AcceptedAt,
		pickedUpAt:        s.PickedUpAt,
		deliveredAt:       s.DeliveredAt,
		completedAt:       s.CompletedAt,
		cancelledAt:       s.CancelledAt,
		history:           append([]StatusChange(nil), s.History...),
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setIDs(s.ID, s.RequesterID),
		o.setDetails(s.Details),
		o.setStatus(s.Status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Offer) Validate() error {
	if o == nil {
		return ErrOfferIsNotConstructed
	}
	return o.guard.Validate(ErrOfferIsNotConstructed)
}

func (o *Offer) IsEqual(other *Offer) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Offer) ID() kernel.UUID             { return o.id }
func (o *Offer) RequesterID() kernel.UUID    { return o.requesterID }
func (o *Offer) Details() Details            { return o.details }
func (o *Offer) Title() string               { return o.details.Title }
func (o *Offer) Pickup() Pickup              { return o.details.Pickup }
func (o *Offer) Delivery() Delivery          { return o.details.Delivery }
func (o *Offer) PaymentTerms() PaymentTerms  { return o.details.Payment }
func (o *Offer) VehicleClass() vehicle.Class { return o.details.VehicleClass }
func (o *Offer) Status() Status              { return o.status }
func (o *Offer) AcceptedBy() *kernel.UUID    { return o.acceptedBy }
func (o *Offer) EstimatedDistance() *float64 { return o.estimatedDistance }
func (o *Offer) EstimatedDuration() *float64 { return o.estimatedDuration }
func (o *Offer) ActualDistance() *float64    { return o.actualDistance }
func (o *Offer) ActualDuration() *float64    { return o.actualDuration }
func (o *Offer) CreatedAt() time.Time        { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time        { return o.updatedAt }
func (o *Offer) AcceptedAt() *time.Time      { return o.acceptedAt }
func (o *Offer) PickedUpAt() *time.Time      { return o.pickedUpAt }
func (o *Offer) DeliveredAt() *time.Time     { return o.deliveredAt }
func (o *Offer) CompletedAt() *time.Time     { return o.completedAt }
func (o *Offer) CancelledAt() *time.Time     { return o.cancelledAt }
func (o *Offer) IsCompleted() bool           { return o.status == Completed }

// HasConsistentCourier is false when the status implies an accepted courier but none is recorded.
func (o *Offer) HasConsistentCourier() bool {
	return !o.status.requiresCourier() || o.acceptedBy != nil
}

// History returns the audit trail oldest first.
func (o *Offer) History() []StatusChange {
	return append([]StatusChange(nil), o.history...)
}

// UpdateStatus is the only way to change an offer's status. The edge must
// exist in the transition table and the actor's role must be allowed on it.
// Couriers may only move offers they accepted; only the offer's own requester
// may complete or cancel it.
func (o *Offer) UpdateStatus(to Status, actor Actor, now time.Time) error {
	if err := errors.Join(o.Validate(), actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return err
	}

	from := o.status
	if err := CheckTransition(from, to, actor.Role); err != nil {
		return err
	}
	if err := o.checkOwnership(from, to, actor); err != nil {
		return err
	}

	now = now.UTC()
	switch to {
	case Accepted:
		id := actor.ID
		o.acceptedBy = &id
		o.acceptedAt = &now
	case PickedUp:
		o.pickedUpAt = &now
	case InTransit:
	case Delivered:
		o.deliveredAt = &now
		if o.actualDuration == nil && o.pickedUpAt != nil {
			minutes := now.Sub(*o.pickedUpAt).Minutes()
			o.actualDuration = &minutes
		}
	case Completed:
		o.completedAt = &now
	case Cancelled:
		o.cancelledAt = &now
	}

	o.status = to
	o.updatedAt = now
	o.history = append(o.history, StatusChange{From: from, To: to, ActorID: actor.ID, Role: actor.Role, At: now})
	return nil
}

// SetEstimates stores the straight-line distance (meters) and duration (minutes).
// Nil values mean the estimate is unknown.
func (o *Offer) SetEstimates(distance, duration *float64) error {
	if err := errors.Join(nonNegative("estimated distance", distance), nonNegative("estimated duration", duration)); err != nil {
		return err
	}
	o.estimatedDistance = distance
	o.estimatedDuration = duration
	return nil
}

// SetActualDistance records the tracked distance in meters.
func (o *Offer) SetActualDistance(meters float64) error {
	if err := nonNegative("actual distance", &meters); err != nil {
		return err
	}
	o.actualDistance = &meters
	return nil
}

func (o *Offer) checkOwnership(from, to Status, actor Actor) error {
	switch actor.Role {
	case Courier:
		// nobody owns an open offer yet
		if from == Open {
			return nil
		}
		if o.acceptedBy == nil || !o.acceptedBy.IsEqual(actor.ID) {
			return fmt.Errorf("%w: %s", ErrNotAssignedCourier, actor.ID)
		}
	case Requester:
		if !o.requesterID.IsEqual(actor.ID) {
			return fmt.Errorf("%w: %s", ErrNotOfferRequester, actor.ID)
		}
	}
	return nil
}

func (o *Offer) setIDs(id, requesterID kernel.UUID) error {
	if err := errors.Join(id.Validate(), requesterID.Validate()); err != nil {
		return err
	}
	o.id = id
	o.requesterID = requesterID
	return nil
}

func (o *Offer) setDetails(d Details) error {
	d.Title = strings.TrimSpace(d.Title)
	var titleErr error
	if d.Title == "" {
		titleErr = errs.NewValueIsRequiredError("title")
	}
	if err := errors.Join(
		titleErr,
		d.Package.Validate(),
		d.Pickup.Validate(),
		d.Delivery.Validate(),
		d.Payment.Validate(),
		d.VehicleClass.Validate(),
	); err != nil {
		return err
	}
	if d.Payment.Currency == "" {
		d.Payment.Currency = payment.DefaultCurrency
	}
	o.details = d
	return nil
}

func (o *Offer) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func nonNegative(name string, v *float64) error {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not a non-negative number", *v))
	}
	return nil
}
