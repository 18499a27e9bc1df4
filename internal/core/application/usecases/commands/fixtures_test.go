package commands_test

import (
	"testing"
	"time"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/location"
	"courierledger/internal/core/domain/model/offer"
	"courierledger/internal/core/domain/model/payment"
	"courierledger/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func coordinates(t *testing.T, lng, lat float64) kernel.Coordinates {
	t.Helper()
	c, err := kernel.NewCoordinates(lng, lat)
	require.NoError(t, err)
	return c
}

func offerDetails(t *testing.T) offer.Details {
	t.Helper()
	pickup := coordinates(t, -74.006, 40.7128)
	dropoff := coordinates(t, -73.9857, 40.6892)

	return offer.Details{
		Title:        "Documents to Brooklyn",
		Pickup:       offer.Pickup{Address: "1 Centre St, New York", Coordinates: &pickup},
		Delivery:     offer.Delivery{Address: "209 Joralemon St, Brooklyn", Coordinates: &dropoff},
		Payment:      offer.PaymentTerms{Amount: kernel.MoneyFromMajor(25.50), Method: payment.Card},
		VehicleClass: vehicle.Bike,
	}
}

func offerActor(t *testing.T, id kernel.UUID, role offer.Role) offer.Actor {
	t.Helper()
	a, err := offer.NewActor(id, role)
	require.NoError(t, err)
	return a
}

type offerParties struct {
	requesterID kernel.UUID
	courierID   kernel.UUID
}

// offerInStatus walks a new offer along the happy path until it reaches target.
func offerInStatus(t *testing.T, target offer.Status) (*offer.Offer, offerParties) {
	t.Helper()
	parties := offerParties{requesterID: kernel.NewUUID(), courierID: kernel.NewUUID()}

	o, err := offer.NewOffer(kernel.NewUUID(), parties.requesterID, offerDetails(t), t0)
	require.NoError(t, err)

	steps := []struct {
		to   offer.Status
		role offer.Role
	}{
		{offer.Accepted, offer.Courier},
		{offer.PickedUp, offer.Courier},
		{offer.InTransit, offer.Courier},
		{offer.Delivered, offer.Courier},
		{offer.Completed, offer.Requester},
	}

	at := t0
	for _, step := range steps {
		if o.Status() == target {
			break
		}
		id := parties.courierID
		if step.role == offer.Requester {
			id = parties.requesterID
		}
		at = at.Add(10 * time.Minute)
		require.NoError(t, o.UpdateStatus(step.to, offerActor(t, id, step.role), at))
	}
	require.Equal(t, target, o.Status())

	return o, parties
}

func paymentFor(t *testing.T, o *offer.Offer, total, fee float64, status payment.Status) *payment.Payment {
	t.Helper()
	require.NotNil(t, o.AcceptedBy())

	p, err := payment.NewPayment(
		kernel.NewUUID(),
		o.ID(),
		o.RequesterID(),
		*o.AcceptedBy(),
		kernel.MoneyFromMajor(total),
		kernel.MoneyFromMajor(fee),
		"USD",
		payment.Card,
		t0,
	)
	require.NoError(t, err)

	if status != payment.Pending {
		require.NoError(t, p.UpdateStatus(status, t0.Add(time.Hour)))
	}
	return p
}

func locationRecord(t *testing.T, courierID kernel.UUID, offerID *kernel.UUID, lng, lat float64, at time.Time) *location.Record {
	t.Helper()
	r, err := location.NewRecord(kernel.NewUUID(), courierID, location.Sample{
		Coordinates: coordinates(t, lng, lat),
		OfferID:     offerID,
		Timestamp:   &at,
	}, at)
	require.NoError(t, err)
	return r
}
