// Package metrics exposes service counters through Prometheus. Metrics
// implements the observer interfaces of the command handlers and the
// geocoding gateway.
package metrics

import (
	"strconv"
	"time"

	"courierledger/internal/core/domain/model/earnings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const Namespace = "courierledger"

type Metrics struct {
	earningsCreates     *prometheus.CounterVec
	locationsRecorded   *prometheus.CounterVec
	locationsPurged     prometheus.Counter
	geocodingFailures   *prometheus.CounterVec
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New registers every collector on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		earningsCreates: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "earnings_create_total",
			Help:      "Ledger entry create calls by outcome (created or already_exists).",
		}, []string{"outcome"}),
		locationsRecorded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "location_records_total",
			Help:      "Stored courier position fixes by tracking type.",
		}, []string{"tracking_type"}),
		locationsPurged: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "location_records_purged_total",
			Help:      "Position fixes deleted by the retention job.",
		}),
		geocodingFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "geocoding_failures_total",
			Help:      "Failed geocoding provider calls.",
		}, []string{"provider"}),
		httpRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests handled",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}

func (m *Metrics) EarningsCreated(outcome earnings.Outcome) {
	m.earningsCreates.WithLabelValues(outcome.String()).Inc()
}

func (m *Metrics) LocationRecorded(trackingType string) {
	m.locationsRecorded.WithLabelValues(trackingType).Inc()
}

func (m *Metrics) LocationsPurged(count int64) {
	if count > 0 {
		m.locationsPurged.Add(float64(count))
	}
}

func (m *Metrics) GeocodingFailed(provider string) {
	m.geocodingFailures.WithLabelValues(provider).Inc()
}

// ObserveHTTPRequest records one handled request. path is the route template,
// not the raw URL, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequestsTotal.WithLabelValues(method, path, code).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}
