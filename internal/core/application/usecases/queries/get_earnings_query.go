package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/pkg/errs"
	"courierledger/internal/pkg/guard"
)

var (
	ErrGetEarningsQueryIsNotConstructed = errors.New(
		"GetEarningsQuery must be created via NewGetEarningsQuery constructor",
	)
	ErrGetRiderEarningsSummaryQueryIsNotConstructed = errors.New(
		"GetRiderEarningsSummaryQuery must be created via NewGetRiderEarningsSummaryQuery constructor",
	)
	ErrGetEarningsForPeriodQueryIsNotConstructed = errors.New(
		"GetEarningsForPeriodQuery must be created via NewGetEarningsForPeriodQuery constructor",
	)
)

//nolint:recvcheck //using for validation
type GetEarningsQuery struct {
	earningsID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetEarningsQuery(earningsID kernel.UUID) (GetEarningsQuery, error) {
	if err := earningsID.Validate(); err != nil {
		return GetEarningsQuery{}, err
	}
	return GetEarningsQuery{earningsID: earningsID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetEarningsQueryIsNotConstructed)
}

type GetEarningsQueryHandler struct {
	reader EarningsReader
}

func NewGetEarningsQueryHandler(reader EarningsReader) GetEarningsQueryHandler {
	return GetEarningsQueryHandler{reader: reader}
}

func (h GetEarningsQueryHandler) Handle(ctx context.Context, query GetEarningsQuery) (*earnings.Earnings, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.reader.Get(ctx, query.earningsID)
}

// GetRiderEarningsSummaryQuery summarizes one courier's ledger. All filter
// fields are optional; bounds are inclusive.
//
//nolint:recvcheck //using for validation
type GetRiderEarningsSummaryQuery struct {
	courierID kernel.UUID
	filter    earnings.Filter
	guard     guard.ConstructorGuard
}

func NewGetRiderEarningsSummaryQuery(courierID kernel.UUID, filter earnings.Filter) (GetRiderEarningsSummaryQuery, error) {
	var rangeErr error
	if filter.Start != nil && filter.End != nil && filter.End.Before(*filter.Start) {
		rangeErr = errs.NewValueIsInvalidErrorWithCause("date range",
			fmt.Errorf("end %s is before start %s", filter.End.Format(time.RFC3339), filter.Start.Format(time.RFC3339)))
	}
	var statusErr error
	if filter.PaymentStatus != nil {
		statusErr = filter.PaymentStatus.Validate()
	}
	if err := errors.Join(courierID.Validate(), rangeErr, statusErr); err != nil {
		return GetRiderEarningsSummaryQuery{}, err
	}

	return GetRiderEarningsSummaryQuery{
		courierID: courierID,
		filter:    filter,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetRiderEarningsSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderEarningsSummaryQueryIsNotConstructed)
}

type GetRiderEarningsSummaryQueryHandler struct {
	reader EarningsReader
}

func NewGetRiderEarningsSummaryQueryHandler(reader EarningsReader) GetRiderEarningsSummaryQueryHandler {
	return GetRiderEarningsSummaryQueryHandler{reader: reader}
}

func (h GetRiderEarningsSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetRiderEarningsSummaryQuery,
) (earnings.Summary, error) {
	if err := query.Validate(); err != nil {
		return earnings.Summary{}, err
	}
	return summarize(ctx, h.reader, query.courierID, query.filter)
}

//nolint:recvcheck //using for validation
type GetEarningsForPeriodQuery struct {
	courierID kernel.UUID
	period    earnings.Period
	guard     guard.ConstructorGuard
}

func NewGetEarningsForPeriodQuery(courierID kernel.UUID, period earnings.Period) (GetEarningsForPeriodQuery, error) {
	parsed, periodErr := earnings.ParsePeriod(string(period))
	if err := errors.Join(courierID.Validate(), periodErr); err != nil {
		return GetEarningsForPeriodQuery{}, err
	}

	return GetEarningsForPeriodQuery{courierID: courierID, period: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (q GetEarningsForPeriodQuery) Validate() error {
	return q.guard.Validate(ErrGetEarningsForPeriodQueryIsNotConstructed)
}

// PeriodSummary is a Summary together with the window it covers.
type PeriodSummary struct {
	Period earnings.Period
	Start  time.Time
	End    time.Time
	earnings.Summary
}

type GetEarningsForPeriodQueryHandler struct {
	reader EarningsReader
	window earnings.PeriodWindow
	now    func() time.Time
}

func NewGetEarningsForPeriodQueryHandler(reader EarningsReader, window earnings.PeriodWindow) GetEarningsForPeriodQueryHandler {
	return GetEarningsForPeriodQueryHandler{reader: reader, window: window, now: time.Now}
}

// WithClock returns a copy of the handler anchored at a fixed clock.
func (h GetEarningsForPeriodQueryHandler) WithClock(now func() time.Time) GetEarningsForPeriodQueryHandler {
	h.now = now
	return h
}

func (h GetEarningsForPeriodQueryHandler) Handle(ctx context.Context, query GetEarningsForPeriodQuery) (PeriodSummary, error) {
	if err := query.Validate(); err != nil {
		return PeriodSummary{}, err
	}

	start, end, err := h.window.Bounds(query.period, h.now())
	if err != nil {
		return PeriodSummary{}, err
	}

	summary, err := summarize(ctx, h.reader, query.courierID, earnings.Filter{Start: &start, End: &end})
	if err != nil {
		return PeriodSummary{}, err
	}

	return PeriodSummary{Period: query.period, Start: start, End: end, Summary: summary}, nil
}

func summarize(ctx context.Context, reader EarningsReader, courierID kernel.UUID, filter earnings.Filter) (earnings.Summary, error) {
	records, err := reader.FindByCourier(ctx, courierID, filter)
	if err != nil {
		return earnings.Summary{}, err
	}
	return earnings.Summarize(records, filter), nil
}
