package ports

import (
	"context"
	"time"
)

const (
	EventEarningsCreated    = "earnings.created"
	EventOfferStatusChanged = "offer.status_changed"
	EventLocationRecorded   = "location.recorded"
)

// Event is a fact published after a successful commit. Key orders events of
// the same entity on partitioned transports.
type Event struct {
	Name       string
	Key        string
	OccurredAt time.Time
	Payload    any
}

type EventPublisher interface {
	Publish(ctx context.Context, events ...Event) error
}

type EarningsCreatedPayload struct {
	EarningsID    string `json:"earningsId"`
	CourierID     string `json:"courierId"`
	OfferID       string `json:"offerId"`
	NetAmount     int64  `json:"netAmountCents"`
	FinalAmount   int64  `json:"finalAmountCents"`
	PaymentStatus string `json:"paymentStatus"`
}

type OfferStatusChangedPayload struct {
	OfferID string `json:"offerId"`
	From    string `json:"from"`
	To      string `json:"to"`
	ActorID string `json:"actorId"`
	Role    string `json:"role"`
}

type LocationRecordedPayload struct {
	CourierID    string    `json:"courierId"`
	OfferID      string    `json:"offerId,omitempty"`
	Coordinates  []float64 `json:"coordinates"`
	TrackingType string    `json:"trackingType"`
	Timestamp    time.Time `json:"timestamp"`
}
