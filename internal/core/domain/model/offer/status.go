package offer

import (
	"fmt"

	"courierledger/internal/pkg/errs"
)

// Status is the lifecycle state of an offer.
//
//	open ──> accepted ──> picked_up ──> in_transit ──> delivered ──> completed
//	  │         │
//	  └─────────┴──> cancelled
//
// Completed and cancelled are terminal.
type Status int

const (
	Unknown Status = iota
	Open
	Accepted
	PickedUp
	InTransit
	Delivered
	Completed
	Cancelled
)

var statusNames = map[Status]string{
	Open:      "open",
	Accepted:  "accepted",
	PickedUp:  "picked_up",
	InTransit: "in_transit",
	Delivered: "delivered",
	Completed: "completed",
	Cancelled: "cancelled",
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Open, Accepted, PickedUp, InTransit, Delivered, Completed, Cancelled}
}

func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid offer status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid offer status", s))
	}
	return nil
}

func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// requiresCourier reports whether an offer in this status must have acceptedBy set.
func (s Status) requiresCourier() bool {
	switch s {
	case Accepted, PickedUp, InTransit, Delivered, Completed:
		return true
	default:
		return false
	}
}
