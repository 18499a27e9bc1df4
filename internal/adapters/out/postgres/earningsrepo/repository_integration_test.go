package earningsrepo_test

import (
	"context"
	"testing"
	"time"

	"courierledger/internal/adapters/out/postgres/earningsrepo"
	"courierledger/internal/adapters/out/postgres/postgrestest"
	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/payment"
	"courierledger/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

var t0 = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

type EarningsRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *postgrestest.Database
	repository *earningsrepo.GormEarningsRepository
	tracker    *MockAggregateTracker
}

func (suite *EarningsRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := postgrestest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(pg.DB.AutoMigrate(&earningsrepo.EarningsDTO{}, &earningsrepo.AdjustmentDTO{}))
}

func (suite *EarningsRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = earningsrepo.NewGormEarningsRepository(suite.pg.DB, suite.tracker)
}

func (suite *EarningsRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *EarningsRepositoryIntegrationTestSuite) TestAdd_ThenGetByOfferID() {
	ctx := suite.T().Context()
	e := suite.entry(kernel.NewUUID(), t0, earnings.Pending)

	suite.Require().NoError(suite.repository.Add(ctx, e))

	got, err := suite.repository.GetByOfferID(ctx, e.OfferID())
	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(e.ID()))
	suite.Equal(e.NetAmount(), got.NetAmount())
	suite.Equal(e.PlatformFee(), got.PlatformFee())
	suite.Equal(payment.Card, got.PaymentMethod())
	suite.Equal(t0, got.EarnedAt())
	suite.Empty(got.Adjustments())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", e.ID(), e)
}

func (suite *EarningsRepositoryIntegrationTestSuite) TestAdd_SecondEntryForOffer_ReturnsAlreadyExists() {
	ctx := suite.T().Context()
	first := suite.entry(kernel.NewUUID(), t0, earnings.Pending)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second, err := earnings.RestoreEarnings(earnings.State{
		ID:            kernel.NewUUID(),
		CourierID:     first.CourierID(),
		OfferID:       first.OfferID(),
		PaymentID:     first.PaymentID(),
		PaymentMethod: payment.Cash,
		PaymentStatus: earnings.Pending,
		EarnedAt:      t0,
		UpdatedAt:     t0,
	})
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *EarningsRepositoryIntegrationTestSuite) TestUpdate_AppendsAdjustmentsInOrder() {
	ctx := suite.T().Context()
	e := suite.entry(kernel.NewUUID(), t0, earnings.Pending)
	suite.Require().NoError(suite.repository.Add(ctx, e))

	admin := kernel.NewUUID()
	suite.Require().NoError(e.AddBonus(kernel.MoneyFromMajor(5), "rain", t0.Add(time.Hour)))
	suite.Require().NoError(e.AddAdjustment(kernel.MoneyFromMajor(-1.25), "damaged box", &admin, t0.Add(2*time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, e))

	suite.Require().NoError(e.AddAdjustment(kernel.MoneyFromMajor(0.75), "toll", nil, t0.Add(3*time.Hour)))
	suite.Require().NoError(e.UpdatePaymentStatus(earnings.Paid, t0.Add(4*time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, e))

	got, err := suite.repository.Get(ctx, e.ID())
	suite.Require().NoError(err)
	suite.Equal(e.FinalAmount(), got.FinalAmount())
	suite.Equal("rain", got.BonusReason())
	suite.Equal(earnings.Paid, got.PaymentStatus())
	suite.Require().NotNil(got.PaidAt())
	suite.Equal(t0.Add(4*time.Hour), *got.PaidAt())

	adjustments := got.Adjustments()
	suite.Require().Len(adjustments, 2)
	suite.Equal("damaged box", adjustments[0].Reason())
	suite.Require().NotNil(adjustments[0].AppliedBy())
	suite.True(adjustments[0].AppliedBy().IsEqual(admin))
	suite.Equal("toll", adjustments[1].Reason())
	suite.Nil(adjustments[1].AppliedBy())
}

func (suite *EarningsRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	err := suite.repository.Update(suite.T().Context(), suite.entry(kernel.NewUUID(), t0, earnings.Pending))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *EarningsRepositoryIntegrationTestSuite) TestFindByCourier_AppliesFilter() {
	ctx := suite.T().Context()
	courierID := kernel.NewUUID()
	early := suite.entry(courierID, t0, earnings.Paid)
	middle := suite.entry(courierID, t0.Add(24*time.Hour), earnings.Pending)
	late := suite.entry(courierID, t0.Add(48*time.Hour), earnings.Paid)
	other := suite.entry(kernel.NewUUID(), t0.Add(24*time.Hour), earnings.Paid)
	for _, e := range []*earnings.Earnings{late, other, middle, early} {
		suite.Require().NoError(suite.repository.Add(ctx, e))
	}

	all, err := suite.repository.FindByCourier(ctx, courierID, earnings.Filter{})
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.True(all[0].ID().IsEqual(early.ID()), "oldest first")
	suite.True(all[2].ID().IsEqual(late.ID()))

	start, end := t0.Add(24*time.Hour), t0.Add(48*time.Hour)
	windowed, err := suite.repository.FindByCourier(ctx, courierID, earnings.Filter{Start: &start, End: &end})
	suite.Require().NoError(err)
	suite.Len(windowed, 2, "bounds are inclusive")

	paid := earnings.Paid
	paidOnly, err := suite.repository.FindByCourier(ctx, courierID, earnings.Filter{PaymentStatus: &paid})
	suite.Require().NoError(err)
	suite.Len(paidOnly, 2)
}

func (suite *EarningsRepositoryIntegrationTestSuite) entry(
	courierID kernel.UUID,
	earnedAt time.Time,
	status earnings.PaymentStatus,
) *earnings.Earnings {
	distance := 3100.0
	e, err := earnings.RestoreEarnings(earnings.State{
		ID:            kernel.NewUUID(),
		CourierID:     courierID,
		OfferID:       kernel.NewUUID(),
		PaymentID:     kernel.NewUUID(),
		PaymentMethod: payment.Card,
		GrossAmount:   kernel.MoneyFromMajor(25.50),
		PlatformFee:   kernel.MoneyFromMajor(2.55),
		NetAmount:     kernel.MoneyFromMajor(22.95),
		PaymentStatus: status,
		Distance:      &distance,
		EarnedAt:      earnedAt,
		UpdatedAt:     earnedAt,
	})
	suite.Require().NoError(err)
	return e
}

func TestEarningsRepositoryIntegrationTestSuite(t *testing.T) {
	postgrestest.SkipIfUnavailable(t)
	suite.Run(t, new(EarningsRepositoryIntegrationTestSuite))
}
