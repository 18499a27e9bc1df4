package payment

import (
	"errors"
	"fmt"

	"courierledger/internal/pkg/errs"
)

var ErrInvalidStatusTransition = errors.New("invalid payment status transition")

// Status is the processing state of a payment.
//
//	pending ──> processing ──> completed
//	   │  │          │
//	   │  └──────────┴──────> failed ──> pending (retry)
//	   └──────────────────────────────> completed
type Status int

const (
	Unknown Status = iota
	Pending
	Processing
	Completed
	Failed
)

var statusNames = map[Status]string{
	Pending:    "pending",
	Processing: "processing",
	Completed:  "completed",
	Failed:     "failed",
}

var allowedTransitions = map[Status][]Status{
	Pending:    {Processing, Completed, Failed},
	Processing: {Completed, Failed},
	Failed:     {Pending},
}

func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsSettled reports whether the payment reached a final outcome.
func (s Status) IsSettled() bool {
	return s == Completed || s == Failed
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
