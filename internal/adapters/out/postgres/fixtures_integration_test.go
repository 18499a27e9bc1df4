package postgres_test

import (
	"testing"
	"time"

	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/offer"
	"courierledger/internal/core/domain/model/payment"
	"courierledger/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func newOffer(t *testing.T, requesterID kernel.UUID) *offer.Offer {
	t.Helper()
	pickup, err := kernel.NewCoordinates(-74.006, 40.7128)
	require.NoError(t, err)
	dropoff, err := kernel.NewCoordinates(-73.9857, 40.6892)
	require.NoError(t, err)

	o, err := offer.NewOffer(kernel.NewUUID(), requesterID, offer.Details{
		Title:        "Documents to Brooklyn",
		Package:      offer.Package{WeightKg: 1.2, Fragile: true},
		Pickup:       offer.Pickup{Address: "1 Centre St, New York", Coordinates: &pickup},
		Delivery:     offer.Delivery{Address: "209 Joralemon St, Brooklyn", Coordinates: &dropoff},
		Payment:      offer.PaymentTerms{Amount: kernel.MoneyFromMajor(25.50), Method: payment.Card},
		VehicleClass: vehicle.Bike,
	}, t0)
	require.NoError(t, err)
	return o
}

// completeOffer walks o through the happy path with courierID as the courier.
func completeOffer(t *testing.T, o *offer.Offer, courierID kernel.UUID) {
	t.Helper()
	c, err := offer.NewActor(courierID, offer.Courier)
	require.NoError(t, err)
	r, err := offer.NewActor(o.RequesterID(), offer.Requester)
	require.NoError(t, err)

	at := t0
	for _, step := range []struct {
		to    offer.Status
		actor offer.Actor
	}{
		{offer.Accepted, c},
		{offer.PickedUp, c},
		{offer.InTransit, c},
		{offer.Delivered, c},
		{offer.Completed, r},
	} {
		at = at.Add(10 * time.Minute)
		require.NoError(t, o.UpdateStatus(step.to, step.actor, at))
	}
}

func newPayment(t *testing.T, o *offer.Offer) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(
		kernel.NewUUID(), o.ID(), o.RequesterID(), *o.AcceptedBy(),
		kernel.MoneyFromMajor(25.50), kernel.MoneyFromMajor(2.55), "USD", payment.Card, t0,
	)
	require.NoError(t, err)
	return p
}

func newEarnings(t *testing.T, o *offer.Offer, p *payment.Payment) *earnings.Earnings {
	t.Helper()
	e, err := earnings.NewFromOffer(kernel.NewUUID(), o, p, t0.Add(time.Hour))
	require.NoError(t, err)
	return e
}
