package commands_test

import (
	"context"
	"sync"
	"time"

	"courierledger/internal/core/application/usecases/commands"
	"courierledger/internal/core/domain/model/courier"
	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/location"
	"courierledger/internal/core/domain/model/offer"
	"courierledger/internal/core/domain/model/payment"
	"courierledger/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCourierRepository struct {
	mock.Mock
}

func (m *MockCourierRepository) Add(ctx context.Context, courier *courier.Courier) error {
	args := m.Called(ctx, courier)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, courier *courier.Courier) error {
	args := m.Called(ctx, courier)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*courier.Courier)
	return c, args.Error(1)
}

type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) Add(ctx context.Context, aggregate *offer.Offer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOfferRepository) Update(ctx context.Context, aggregate *offer.Offer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*offer.Offer)
	return o, args.Error(1)
}

func (m *MockOfferRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*offer.Offer)
	return o, args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}

func (m *MockPaymentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}

func (m *MockPaymentRepository) GetByOfferID(ctx context.Context, offerID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, offerID)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}

type MockEarningsRepository struct {
	mock.Mock
}

func (m *MockEarningsRepository) Add(ctx context.Context, aggregate *earnings.Earnings) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockEarningsRepository) Update(ctx context.Context, aggregate *earnings.Earnings) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockEarningsRepository) Get(ctx context.Context, id kernel.UUID) (*earnings.Earnings, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*earnings.Earnings)
	return e, args.Error(1)
}

func (m *MockEarningsRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*earnings.Earnings, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*earnings.Earnings)
	return e, args.Error(1)
}

func (m *MockEarningsRepository) GetByOfferID(ctx context.Context, offerID kernel.UUID) (*earnings.Earnings, error) {
	args := m.Called(ctx, offerID)
	e, _ := args.Get(0).(*earnings.Earnings)
	return e, args.Error(1)
}

func (m *MockEarningsRepository) FindByCourier(
	ctx context.Context,
	courierID kernel.UUID,
	filter earnings.Filter,
) ([]*earnings.Earnings, error) {
	args := m.Called(ctx, courierID, filter)
	e, _ := args.Get(0).([]*earnings.Earnings)
	return e, args.Error(1)
}

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) Add(ctx context.Context, record *location.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockLocationRepository) History(
	ctx context.Context,
	courierID kernel.UUID,
	filter ports.HistoryFilter,
) ([]*location.Record, error) {
	args := m.Called(ctx, courierID, filter)
	r, _ := args.Get(0).([]*location.Record)
	return r, args.Error(1)
}

func (m *MockLocationRepository) Path(
	ctx context.Context,
	courierID kernel.UUID,
	offerID *kernel.UUID,
	start *time.Time,
) ([]*location.Record, error) {
	args := m.Called(ctx, courierID, offerID, start)
	r, _ := args.Get(0).([]*location.Record)
	return r, args.Error(1)
}

func (m *MockLocationRepository) Latest(ctx context.Context, courierID kernel.UUID) (*location.Record, error) {
	args := m.Called(ctx, courierID)
	r, _ := args.Get(0).(*location.Record)
	return r, args.Error(1)
}

func (m *MockLocationRepository) Deactivate(ctx context.Context, courierID kernel.UUID, offerID *kernel.UUID) (int64, error) {
	args := m.Called(ctx, courierID, offerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLocationRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every narrow unit of work interface.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) OfferRepository() ports.OfferRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) EarningsRepository() ports.EarningsRepository {
	args := m.Called()
	return args.Get(0).(ports.EarningsRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

type MockCourierUoWFactory struct {
	mock.Mock
}

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockOfferUoWFactory struct {
	mock.Mock
}

func (m *MockOfferUoWFactory) Create() commands.OfferUoW {
	args := m.Called()
	return args.Get(0).(commands.OfferUoW)
}

type MockPaymentUoWFactory struct {
	mock.Mock
}

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockEarningsUoWFactory struct {
	mock.Mock
}

func (m *MockEarningsUoWFactory) Create() commands.EarningsUoW {
	args := m.Called()
	return args.Get(0).(commands.EarningsUoW)
}

type MockLedgerUoWFactory struct {
	mock.Mock
}

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

type MockLocationUoWFactory struct {
	mock.Mock
}

func (m *MockLocationUoWFactory) Create() commands.LocationUoW {
	args := m.Called()
	return args.Get(0).(commands.LocationUoW)
}

type MockPositionIndex struct {
	mock.Mock
}

func (m *MockPositionIndex) Upsert(ctx context.Context, record *location.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPositionIndex) Remove(ctx context.Context, courierID kernel.UUID) error {
	args := m.Called(ctx, courierID)
	return args.Error(0)
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []ports.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, events ...ports.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return p.err
}

func (p *recordingPublisher) Events() []ports.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ports.Event(nil), p.events...)
}

type countingObserver struct {
	mu       sync.Mutex
	outcomes []earnings.Outcome
	recorded []string
	purged   int64
}

func (o *countingObserver) EarningsCreated(outcome earnings.Outcome) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, outcome)
}

func (o *countingObserver) LocationRecorded(trackingType string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.recorded = append(o.recorded, trackingType)
}

func (o *countingObserver) LocationsPurged(count int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.purged += count
}
