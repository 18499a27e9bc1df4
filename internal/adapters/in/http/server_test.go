package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "courierledger/internal/adapters/in/http"
	"courierledger/internal/core/application/usecases/commands"
	"courierledger/internal/core/application/usecases/queries"
	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/location"
	"courierledger/internal/core/domain/model/offer"
	"courierledger/internal/core/domain/services"
	"courierledger/internal/core/ports"
	"courierledger/internal/generated/servers"
	"courierledger/internal/pkg/errs"
	"courierledger/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

type MockRequestObserver struct {
	mock.Mock
}

func (m *MockRequestObserver) ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	m.Called(method, path, status, elapsed)
}

type fixture struct {
	earnings *MockEarningsReader
	finder   *MockNearbyFinder
	geocoder *MockGeocoder
	observer *MockRequestObserver
	handler  http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		earnings: new(MockEarningsReader),
		finder:   new(MockNearbyFinder),
		geocoder: new(MockGeocoder),
		observer: new(MockRequestObserver),
	}
	f.observer.On("ObserveHTTPRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()

	h := httpin.Handlers{
		GetEarnings:        queries.NewGetEarningsQueryHandler(f.earnings),
		GetEarningsSummary: queries.NewGetRiderEarningsSummaryQueryHandler(f.earnings),
		GetNearbyCouriers:  queries.NewGetNearbyCouriersQueryHandler(f.finder, location.DefaultFreshness),
		EstimateDelivery:   queries.NewEstimateDeliveryQueryHandler(services.NewDistanceTimeEstimator()),
		Geocode:            queries.NewGeocodeQueryHandler(f.geocoder),
	}
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics\n"))
	})
	e, err := httpin.NewServer(h, logging.Discard(), f.observer, metrics).Echo()
	require.NoError(t, err)
	f.handler = e
	return f
}

func (f *fixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var e servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errs.NewObjectNotFoundError("offer", kernel.NewUUID()), http.StatusNotFound},
		{ports.ErrNoGeocodingResults, http.StatusNotFound},
		{errs.NewObjectAlreadyExistsError("payment", kernel.NewUUID()), http.StatusConflict},
		{fmt.Errorf("%w: someone", offer.ErrNotAssignedCourier), http.StatusForbidden},
		{commands.ErrPayerIsNotRequester, http.StatusForbidden},
		{offer.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{earnings.ErrOfferNotCompleted, http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: google: %w", ports.ErrExternalGeocodingFailure, errors.New("boom")), http.StatusBadGateway},
		{errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{errors.Join(errs.NewValueIsRequiredError("title"), kernel.ErrInvalidCoordinates), http.StatusBadRequest},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, httpin.StatusFor(tt.err))
		})
	}
}

func TestServer_HealthAndMetrics(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())

	rec = f.do(t, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "# metrics")

	f.observer.AssertCalled(t, "ObserveHTTPRequest", http.MethodGet, "/health", http.StatusOK, mock.Anything)
}

func TestServer_GetEarnings(t *testing.T) {
	t.Run("malformed id is a bad request", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodGet, "/api/v1/earnings/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.earnings.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("missing record is not found", func(t *testing.T) {
		f := newFixture(t)
		id := kernel.NewUUID()
		f.earnings.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("earnings", id))

		rec := f.do(t, http.MethodGet, "/api/v1/earnings/"+id.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, id.String())
	})

	t.Run("unexpected errors are hidden", func(t *testing.T) {
		f := newFixture(t)
		f.earnings.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("pq: relation does not exist"))

		rec := f.do(t, http.MethodGet, "/api/v1/earnings/"+kernel.NewUUID().String(), "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeError(t, rec).Message)
	})
}

func TestServer_GetEarningsSummary(t *testing.T) {
	t.Run("passes date filters through", func(t *testing.T) {
		f := newFixture(t)
		courierID := kernel.NewUUID()
		start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 3, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
		paid := earnings.Paid
		f.earnings.On("FindByCourier", mock.Anything, courierID, earnings.Filter{
			Start: &start, End: &end, PaymentStatus: &paid,
		}).Return([]*earnings.Earnings{}, nil)

		rec := f.do(t, http.MethodGet,
			"/api/v1/couriers/"+courierID.String()+"/earnings/summary?startDate=2025-03-01&endDate=2025-03-31&paymentStatus=paid", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var summary servers.Summary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
		assert.Zero(t, summary.Totals.TotalDeliveries)
		assert.Empty(t, summary.ByDay)
		f.earnings.AssertExpectations(t)
	})

	t.Run("bad payment status", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodGet,
			"/api/v1/couriers/"+kernel.NewUUID().String()+"/earnings/summary?paymentStatus=whenever", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_GetNearbyCouriers(t *testing.T) {
	t.Run("returns hits nearest first", func(t *testing.T) {
		f := newFixture(t)
		courierID := kernel.NewUUID()
		at, err := kernel.NewCoordinates(-74.005, 40.713)
		require.NoError(t, err)
		seen := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
		f.finder.On("FindNearby", mock.Anything, mock.Anything, 500.0, mock.Anything).
			Return([]location.NearbyCourier{{CourierID: courierID, Coordinates: at, DistanceMeters: 84.2, LastSeen: seen}}, nil)

		rec := f.do(t, http.MethodGet, "/api/v1/locations/nearby?lng=-74.006&lat=40.7128&radius=500", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var hits []servers.NearbyCourier
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hits))
		require.Len(t, hits, 1)
		assert.Equal(t, courierID.String(), hits[0].CourierId.String())
		assert.Equal(t, []float64{-74.005, 40.713}, hits[0].Coordinates)
		assert.InDelta(t, 84.2, hits[0].Distance, 1e-9)
	})

	t.Run("rejects bad input before searching", func(t *testing.T) {
		for _, q := range []string{
			"lng=-74.006&lat=40.7128",
			"lng=-74.006&lat=40.7128&radius=0",
			"lng=-200&lat=40.7128&radius=100",
			"lng=abc&lat=40.7128&radius=100",
		} {
			f := newFixture(t)

			rec := f.do(t, http.MethodGet, "/api/v1/locations/nearby?"+q, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code, q)
			f.finder.AssertNotCalled(t, "FindNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		}
	})
}

func TestServer_EstimateDelivery(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/estimates",
		`{"pickup":[-74.006,40.7128],"delivery":[-73.9857,40.6892],"vehicleClass":"bike"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var estimate servers.Estimate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &estimate))
	require.NotNil(t, estimate.Distance)
	require.NotNil(t, estimate.Duration)
	assert.Greater(t, *estimate.Distance, 0.0)

	rec = f.do(t, http.MethodPost, "/api/v1/estimates",
		`{"pickup":[-74.006,40.7128],"delivery":[-73.9857,40.6892],"vehicleClass":"spaceship"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Geocode(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		f := newFixture(t)
		coords, err := kernel.NewCoordinates(-74.006, 40.7128)
		require.NoError(t, err)
		f.geocoder.On("Geocode", mock.Anything, "1 Centre St").Return(ports.GeocodeResult{
			Coordinates:      coords,
			FormattedAddress: "1 Centre St, New York, NY 10007, USA",
			Confidence:       ports.ConfidenceHigh,
			Components:       ports.AddressComponents{City: "New York", CountryCode: "US"},
			Provider:         "google",
		}, nil)

		rec := f.do(t, http.MethodGet, "/api/v1/geocode?address=1+Centre+St", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var result servers.GeocodeResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, []float64{-74.006, 40.7128}, result.Coordinates)
		assert.Equal(t, servers.GeocodeResultConfidenceHigh, result.Confidence)
		require.NotNil(t, result.Components.CountryCode)
		assert.Equal(t, "US", *result.Components.CountryCode)
		assert.Nil(t, result.Components.Street)
	})

	t.Run("provider failures map to bad gateway and not found", func(t *testing.T) {
		f := newFixture(t)
		f.geocoder.On("Geocode", mock.Anything, "nowhere").Return(nil, ports.ErrNoGeocodingResults)
		f.geocoder.On("Geocode", mock.Anything, "down").
			Return(nil, fmt.Errorf("%w: google: timeout", ports.ErrExternalGeocodingFailure))

		assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/api/v1/geocode?address=nowhere", "").Code)
		assert.Equal(t, http.StatusBadGateway, f.do(t, http.MethodGet, "/api/v1/geocode?address=down", "").Code)
	})

	t.Run("reverse validates coordinates", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodGet, "/api/v1/geocode/reverse?lng=10&lat=95", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.geocoder.AssertNotCalled(t, "ReverseGeocode", mock.Anything, mock.Anything)
	})
}

func TestServer_RejectsBeforeReachingHandlers(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name, method, target, body string
	}{
		{"courier without name", http.MethodPost, "/api/v1/couriers", `{"name":" ","vehicleClass":"bike"}`},
		{"courier bad class", http.MethodPost, "/api/v1/couriers", `{"name":"Ann","vehicleClass":"boat"}`},
		{"malformed json", http.MethodPost, "/api/v1/couriers", `{"name":`},
		{"offer status bad role", http.MethodPost, "/api/v1/offers/" + kernel.NewUUID().String() + "/status",
			`{"status":"accepted","actorId":"` + kernel.NewUUID().String() + `","role":"admin"}`},
		{"bonus not positive", http.MethodPost, "/api/v1/earnings/" + kernel.NewUUID().String() + "/bonus",
			`{"amount":0,"reason":"rain"}`},
		{"location out of range", http.MethodPost, "/api/v1/couriers/" + kernel.NewUUID().String() + "/locations",
			`{"coordinates":[-74.0,91.0]}`},
		{"top earners unknown period", http.MethodGet, "/api/v1/earnings/top?period=decade", ""},
		{"top earners limit too high", http.MethodGet, "/api/v1/earnings/top?limit=1000", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, tt.method, tt.target, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestServer_ValidatesAgainstOpenAPIDocument(t *testing.T) {
	tests := []struct {
		name, method, target, body string
		wantInMessage              string
	}{
		{"missing required body field", http.MethodPost, "/api/v1/couriers", `{"vehicleClass":"bike"}`, "name"},
		{"unknown enum value", http.MethodPost, "/api/v1/estimates",
			`{"pickup":[-74.006,40.7128],"delivery":[-73.9857,40.6892],"vehicleClass":"spaceship"}`, "vehicleClass"},
		{"coordinates need two numbers", http.MethodPost, "/api/v1/estimates",
			`{"pickup":[-74.006],"delivery":[-73.9857,40.6892],"vehicleClass":"bike"}`, "pickup"},
		{"unknown period in path", http.MethodGet,
			"/api/v1/couriers/" + kernel.NewUUID().String() + "/earnings/period/decade", "", "period"},
		{"radius must be positive", http.MethodGet, "/api/v1/locations/nearby?lng=0&lat=0&radius=-5", "", "radius"},
		{"required query parameter", http.MethodGet, "/api/v1/geocode", "", "address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			rec := f.do(t, tt.method, tt.target, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			e := decodeError(t, rec)
			assert.Equal(t, http.StatusBadRequest, e.Code)
			assert.Contains(t, e.Message, tt.wantInMessage)
			f.finder.AssertNotCalled(t, "FindNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			f.geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
		})
	}
}

func TestServer_UnknownRouteUsesErrorShape(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/nowhere", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decodeError(t, rec).Code)
}

func TestServer_SwaggerServesDocument(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var doc struct {
		OpenAPI string                     `json:"openapi"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Contains(t, doc.Paths, "/api/v1/offers/{id}/status")
	assert.Contains(t, doc.Paths, "/api/v1/locations/nearby")
}

func TestGetSwagger_DescribesEveryRoute(t *testing.T) {
	spec, err := servers.GetSwagger()
	require.NoError(t, err)
	require.NoError(t, spec.Validate(t.Context()))

	operations := 0
	for _, item := range spec.Paths.Map() {
		operations += len(item.Operations())
	}
	assert.Equal(t, 24, operations)
}
