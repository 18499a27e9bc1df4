package queries_test

import (
	"testing"
	"time"

	"courierledger/internal/core/application/usecases/queries"
	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/payment"
	"courierledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func entry(t *testing.T, courierID kernel.UUID, net float64, method payment.Method, status earnings.PaymentStatus, at time.Time) *earnings.Earnings {
	t.Helper()
	e, err := earnings.RestoreEarnings(earnings.State{
		ID:            kernel.NewUUID(),
		CourierID:     courierID,
		OfferID:       kernel.NewUUID(),
		PaymentID:     kernel.NewUUID(),
		PaymentMethod: method,
		GrossAmount:   kernel.MoneyFromMajor(net + 1),
		PlatformFee:   kernel.MoneyFromMajor(1),
		NetAmount:     kernel.MoneyFromMajor(net),
		PaymentStatus: status,
		EarnedAt:      at,
		UpdatedAt:     at,
	})
	require.NoError(t, err)
	return e
}

func TestGetEarningsQueryHandler(t *testing.T) {
	id := kernel.NewUUID()
	e := entry(t, kernel.NewUUID(), 10, payment.Card, earnings.Pending, t0)
	reader := new(MockEarningsReader)
	reader.On("Get", mock.Anything, id).Return(e, nil).Once()

	query, err := queries.NewGetEarningsQuery(id)
	require.NoError(t, err)
	got, err := queries.NewGetEarningsQueryHandler(reader).Handle(t.Context(), query)

	require.NoError(t, err)
	assert.Same(t, e, got)
	reader.AssertExpectations(t)

	_, err = queries.NewGetEarningsQueryHandler(reader).Handle(t.Context(), queries.GetEarningsQuery{})
	require.ErrorIs(t, err, queries.ErrGetEarningsQueryIsNotConstructed)
}

func TestGetRiderEarningsSummaryQueryHandler(t *testing.T) {
	courierID := kernel.NewUUID()
	records := []*earnings.Earnings{
		entry(t, courierID, 10, payment.Card, earnings.Paid, t0),
		entry(t, courierID, 20, payment.Cash, earnings.Pending, t0.Add(time.Hour)),
		entry(t, courierID, 5, payment.Card, earnings.Pending, t0.Add(25*time.Hour)),
	}

	t.Run("summarizes what the reader returns", func(t *testing.T) {
		reader := new(MockEarningsReader)
		reader.On("FindByCourier", mock.Anything, courierID, earnings.Filter{}).Return(records, nil).Once()

		query, err := queries.NewGetRiderEarningsSummaryQuery(courierID, earnings.Filter{})
		require.NoError(t, err)
		summary, err := queries.NewGetRiderEarningsSummaryQueryHandler(reader).Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, 3, summary.Deliveries)
		assert.Equal(t, kernel.MoneyFromMajor(35), summary.Net)
		assert.Equal(t, kernel.MoneyFromMajor(10), summary.Paid)
		assert.Equal(t, kernel.MoneyFromMajor(25), summary.Pending)
		assert.Len(t, summary.ByMethod, 2)
		assert.Len(t, summary.ByDay, 2)
		reader.AssertExpectations(t)
	})

	t.Run("rejects an inverted range", func(t *testing.T) {
		start, end := t0, t0.Add(-time.Hour)

		_, err := queries.NewGetRiderEarningsSummaryQuery(courierID, earnings.Filter{Start: &start, End: &end})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		status := earnings.PaymentStatus(42)

		_, err := queries.NewGetRiderEarningsSummaryQuery(courierID, earnings.Filter{PaymentStatus: &status})

		require.ErrorIs(t, err, earnings.ErrInvalidPaymentStatus)
	})
}

func TestGetEarningsForPeriodQueryHandler(t *testing.T) {
	courierID := kernel.NewUUID()
	now := time.Date(2025, 3, 14, 15, 30, 0, 0, time.UTC) // a Friday
	weekStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	reader := new(MockEarningsReader)
	reader.On("FindByCourier", mock.Anything, courierID, mock.MatchedBy(func(f earnings.Filter) bool {
		return f.Start != nil && f.Start.Equal(weekStart) && f.End != nil && f.End.Equal(now)
	})).Return([]*earnings.Earnings{entry(t, courierID, 12.5, payment.Card, earnings.Paid, weekStart.Add(time.Hour))}, nil).Once()

	query, err := queries.NewGetEarningsForPeriodQuery(courierID, "WEEK")
	require.NoError(t, err)

	handler := queries.NewGetEarningsForPeriodQueryHandler(reader, earnings.CalendarToDate).
		WithClock(func() time.Time { return now })
	result, err := handler.Handle(t.Context(), query)

	require.NoError(t, err)
	assert.Equal(t, earnings.Week, result.Period)
	assert.Equal(t, weekStart, result.Start)
	assert.Equal(t, kernel.MoneyFromMajor(12.5), result.Net)
	reader.AssertExpectations(t)

	_, err = queries.NewGetEarningsForPeriodQuery(courierID, "fortnight")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetTopEarnersQuery(t *testing.T) {
	q, err := queries.NewGetTopEarnersQuery(earnings.Month, 0)
	require.NoError(t, err)
	assert.Equal(t, queries.DefaultTopEarnersLimit, q.Limit())

	_, err = queries.NewGetTopEarnersQuery(earnings.Month, queries.MaxTopEarnersLimit+1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewGetTopEarnersQuery("decade", 5)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.ErrorIs(t, queries.GetTopEarnersQuery{}.Validate(), queries.ErrGetTopEarnersQueryIsNotConstructed)
}
