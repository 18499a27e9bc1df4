package location

import (
	"fmt"
	"strings"

	"courierledger/internal/pkg/errs"
)

// TrackingType labels which phase of a delivery a sample was taken in.
type TrackingType string

const (
	Idle              TrackingType = "idle"
	HeadingToPickup   TrackingType = "heading_to_pickup"
	AtPickup          TrackingType = "at_pickup"
	HeadingToDelivery TrackingType = "heading_to_delivery"
	AtDelivery        TrackingType = "at_delivery"
)

// ParseTrackingType accepts the wire literal; blank means Idle.
func ParseTrackingType(s string) (TrackingType, error) {
	t := TrackingType(strings.TrimSpace(s))
	if t == "" {
		return Idle, nil
	}
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t TrackingType) Validate() error {
	switch t {
	case Idle, HeadingToPickup, AtPickup, HeadingToDelivery, AtDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("tracking type", fmt.Errorf("%q is not a valid tracking type", string(t)))
	}
}

func (t TrackingType) String() string {
	return string(t)
}
