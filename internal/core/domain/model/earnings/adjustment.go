package earnings

import (
	"strings"
	"time"

	"courierledger/internal/core/domain/model/kernel"
)

// Adjustment is a signed manual correction to a record's final amount.
type Adjustment struct {
	amount    kernel.Money
	reason    string
	appliedBy *kernel.UUID
	appliedAt time.Time
}

func NewAdjustment(amount kernel.Money, reason string, appliedBy *kernel.UUID, appliedAt time.Time) (Adjustment, error) {
	if amount.IsZero() {
		return Adjustment{}, ErrMissingAdjustmentAmount
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Adjustment{}, ErrMissingAdjustmentReason
	}
	if appliedBy != nil {
		if err := appliedBy.Validate(); err != nil {
			return Adjustment{}, err
		}
	}
	return Adjustment{amount: amount, reason: reason, appliedBy: appliedBy, appliedAt: appliedAt.UTC()}, nil
}

func (a Adjustment) Amount() kernel.Money    { return a.amount }
func (a Adjustment) Reason() string          { return a.reason }
func (a Adjustment) AppliedBy() *kernel.UUID { return a.appliedBy }
func (a Adjustment) AppliedAt() time.Time    { return a.appliedAt }
