package earnings

import (
	"fmt"

	"courierledger/internal/core/domain/model/payment"
)

// PaymentStatus tracks whether the courier has been paid out for a record.
type PaymentStatus int

const (
	UnknownPaymentStatus PaymentStatus = iota
	Pending
	Processing
	Paid
	Failed
)

var paymentStatusNames = map[PaymentStatus]string{
	Pending:    "pending",
	Processing: "processing",
	Paid:       "paid",
	Failed:     "failed",
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for st, name := range paymentStatusNames {
		if name == s {
			return st, nil
		}
	}
	return UnknownPaymentStatus, fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, s)
}

func (s PaymentStatus) String() string {
	if name, ok := paymentStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s PaymentStatus) Validate() error {
	if _, ok := paymentStatusNames[s]; !ok {
		return fmt.Errorf("%w: %d", ErrInvalidPaymentStatus, s)
	}
	return nil
}

// StatusFromPayment maps a payment's processing status onto the earnings status.
func StatusFromPayment(s payment.Status) (PaymentStatus, error) {
	switch s {
	case payment.Completed:
		return Paid, nil
	case payment.Pending:
		return Pending, nil
	case payment.Processing:
		return Processing, nil
	case payment.Failed:
		return Failed, nil
	default:
		return UnknownPaymentStatus, fmt.Errorf("%w: payment status %s", ErrInvalidPaymentStatus, s)
	}
}
