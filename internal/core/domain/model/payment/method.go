package payment

import (
	"fmt"
	"strings"

	"courierledger/internal/pkg/errs"
)

// Method is how the requester pays for an offer.
type Method string

const (
	Card         Method = "card"
	Cash         Method = "cash"
	Wallet       Method = "wallet"
	BankTransfer Method = "bank_transfer"
)

func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m Method) Validate() error {
	switch m {
	case Card, Cash, Wallet, BankTransfer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not a known method", string(m)))
	}
}

func (m Method) String() string {
	return string(m)
}
