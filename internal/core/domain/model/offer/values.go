package offer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/payment"
	"courierledger/internal/pkg/errs"
)

type Dimensions struct {
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// Package describes what is being delivered.
type Package struct {
	WeightKg            float64
	Dimensions          Dimensions
	Fragile             bool
	SpecialInstructions string
}

func (p Package) Validate() error {
	var errList []error
	if p.WeightKg < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("package weight",
			fmt.Errorf("%v is negative", p.WeightKg)))
	}
	d := p.Dimensions
	if d.LengthCm < 0 || d.WidthCm < 0 || d.HeightCm < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("package dimensions",
			errors.New("dimensions cannot be negative")))
	}
	return errors.Join(errList...)
}

// Pickup is where the courier collects the package.
type Pickup struct {
	Address        string
	Coordinates    *kernel.Coordinates
	ContactName    string
	ContactPhone   string
	AvailableFrom  *time.Time
	AvailableUntil *time.Time
	Instructions   string
}

func (p Pickup) Validate() error {
	var errList []error
	if strings.TrimSpace(p.Address) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("pickup address"))
	}
	if p.Coordinates != nil {
		errList = append(errList, p.Coordinates.Validate())
	}
	if p.AvailableFrom != nil && p.AvailableUntil != nil && p.AvailableUntil.Before(*p.AvailableFrom) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("pickup window",
			errors.New("availableUntil is before availableFrom")))
	}
	return errors.Join(errList...)
}

// Delivery is where the courier drops the package off.
type Delivery struct {
	Address      string
	Coordinates  *kernel.Coordinates
	ContactName  string
	ContactPhone string
	Deadline     *time.Time
	Instructions string
}

func (d Delivery) Validate() error {
	var errList []error
	if strings.TrimSpace(d.Address) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("delivery address"))
	}
	if d.Coordinates != nil {
		errList = append(errList, d.Coordinates.Validate())
	}
	return errors.Join(errList...)
}

// PaymentTerms is what the requester offers to pay.
type PaymentTerms struct {
	Amount   kernel.Money
	Currency string
	Method   payment.Method
}

func (p PaymentTerms) Validate() error {
	var errList []error
	if !p.Amount.IsPositive() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("payment amount",
			fmt.Errorf("%s is not greater than 0", p.Amount)))
	}
	errList = append(errList, p.Method.Validate())
	return errors.Join(errList...)
}

// StatusChange is one entry of the offer's audit trail.
type StatusChange struct {
	From    Status
	To      Status
	ActorID kernel.UUID
	Role    Role
	At      time.Time
}
