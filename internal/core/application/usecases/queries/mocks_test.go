package queries_test

import (
	"context"
	"time"

	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/location"
	"courierledger/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockEarningsReader struct {
	mock.Mock
}

func (m *MockEarningsReader) Get(ctx context.Context, id kernel.UUID) (*earnings.Earnings, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*earnings.Earnings)
	return e, args.Error(1)
}

func (m *MockEarningsReader) FindByCourier(
	ctx context.Context,
	courierID kernel.UUID,
	filter earnings.Filter,
) ([]*earnings.Earnings, error) {
	args := m.Called(ctx, courierID, filter)
	records, _ := args.Get(0).([]*earnings.Earnings)
	return records, args.Error(1)
}

type MockLocationReader struct {
	mock.Mock
}

func (m *MockLocationReader) History(
	ctx context.Context,
	courierID kernel.UUID,
	filter ports.HistoryFilter,
) ([]*location.Record, error) {
	args := m.Called(ctx, courierID, filter)
	records, _ := args.Get(0).([]*location.Record)
	return records, args.Error(1)
}

func (m *MockLocationReader) Path(
	ctx context.Context,
	courierID kernel.UUID,
	offerID *kernel.UUID,
	start *time.Time,
) ([]*location.Record, error) {
	args := m.Called(ctx, courierID, offerID, start)
	records, _ := args.Get(0).([]*location.Record)
	return records, args.Error(1)
}

type MockNearbyFinder struct {
	mock.Mock
}

func (m *MockNearbyFinder) FindNearby(
	ctx context.Context,
	center kernel.Coordinates,
	radiusMeters float64,
	since time.Time,
) ([]location.NearbyCourier, error) {
	args := m.Called(ctx, center, radiusMeters, since)
	found, _ := args.Get(0).([]location.NearbyCourier)
	return found, args.Error(1)
}

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (ports.GeocodeResult, error) {
	args := m.Called(ctx, address)
	r, _ := args.Get(0).(ports.GeocodeResult)
	return r, args.Error(1)
}

func (m *MockGeocoder) ReverseGeocode(ctx context.Context, coordinates kernel.Coordinates) (ports.ReverseGeocodeResult, error) {
	args := m.Called(ctx, coordinates)
	r, _ := args.Get(0).(ports.ReverseGeocodeResult)
	return r, args.Error(1)
}
