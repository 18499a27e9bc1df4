package earnings

import (
	"sort"
	"time"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/payment"
)

const dayLayout = "2006-01-02"

// Filter narrows a summary. Both bounds are inclusive; nil means unbounded.
type Filter struct {
	Start         *time.Time
	End           *time.Time
	PaymentStatus *PaymentStatus
}

func (f Filter) Matches(e *Earnings) bool {
	if f.Start != nil && e.earnedAt.Before(*f.Start) {
		return false
	}
	if f.End != nil && e.earnedAt.After(*f.End) {
		return false
	}
	if f.PaymentStatus != nil && e.paymentStatus != *f.PaymentStatus {
		return false
	}
	return true
}

// Totals are the summed figures of a group of records.
type Totals struct {
	Gross      kernel.Money
	Fees       kernel.Money
	Net        kernel.Money
	Final      kernel.Money
	Deliveries int
	// Distance is in meters, Duration in minutes. Records without a value add 0.
	Distance float64
	Duration float64
}

func (t *Totals) add(e *Earnings) {
	t.Gross += e.grossAmount
	t.Fees += e.platformFee
	t.Net += e.netAmount
	t.Final += e.FinalAmount()
	t.Deliveries++
	if e.distance != nil {
		t.Distance += *e.distance
	}
	if e.duration != nil {
		t.Duration += *e.duration
	}
}

type MethodBreakdown struct {
	Method payment.Method
	Totals
}

type DayBreakdown struct {
	Day string // YYYY-MM-DD in UTC
	Totals
}

// Summary is the aggregate view of a courier's ledger.
type Summary struct {
	Totals
	Paid     kernel.Money
	Pending  kernel.Money
	ByMethod []MethodBreakdown
	ByDay    []DayBreakdown
}

// Summarize folds the records matching filter into a Summary. Paid and Pending
// sum net amounts. Method breakdowns are sorted by method name and day
// breakdowns by date, both ascending.
func Summarize(records []*Earnings, filter Filter) Summary {
	var s Summary
	byMethod := map[payment.Method]*Totals{}
	byDay := map[string]*Totals{}

	for _, e := range records {
		if e == nil || !filter.Matches(e) {
			continue
		}

		s.add(e)
		switch e.paymentStatus {
		case Paid:
			s.Paid += e.netAmount
		case Pending:
			s.Pending += e.netAmount
		case Processing, Failed, UnknownPaymentStatus:
		}

		if _, ok := byMethod[e.paymentMethod]; !ok {
			byMethod[e.paymentMethod] = &Totals{}
		}
		byMethod[e.paymentMethod].add(e)

		day := e.earnedAt.UTC().Format(dayLayout)
		if _, ok := byDay[day]; !ok {
			byDay[day] = &Totals{}
		}
		byDay[day].add(e)
	}

	for m, t := range byMethod {
		s.ByMethod = append(s.ByMethod, MethodBreakdown{Method: m, Totals: *t})
	}
	sort.Slice(s.ByMethod, func(i, j int) bool { return s.ByMethod[i].Method < s.ByMethod[j].Method })

	for d, t := range byDay {
		s.ByDay = append(s.ByDay, DayBreakdown{Day: d, Totals: *t})
	}
	sort.Slice(s.ByDay, func(i, j int) bool { return s.ByDay[i].Day < s.ByDay[j].Day })

	return s
}
