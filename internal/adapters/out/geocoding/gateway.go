// Package geocoding resolves addresses through Google Geocoding when an API
// key is configured and through OpenStreetMap Nominatim otherwise. Nominatim
// also answers when Google reports no results for a query.
//
// Provider calls run on an http.Client with a bounded timeout and are never
// retried. Provider and network errors surface wrapped in
// ports.ErrExternalGeocodingFailure.
package geocoding

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/ports"
)

const DefaultTimeout = 5 * time.Second

// FailureObserver counts provider failures. A nil observer is allowed.
type FailureObserver interface {
	GeocodingFailed(provider string)
}

// Provider is one geocoding backend.
type Provider interface {
	ports.Geocoder
	Name() string
}

type Gateway struct {
	primary  Provider
	fallback Provider
	observer FailureObserver
}

// NewGateway uses primary first when it is not nil. At least one provider is required.
func NewGateway(primary, fallback Provider, observer FailureObserver) *Gateway {
	return &Gateway{primary: primary, fallback: fallback, observer: observer}
}

// NewHTTPClient returns the client shared by the providers.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

func (g *Gateway) Geocode(ctx context.Context, address string) (ports.GeocodeResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return ports.GeocodeResult{}, ports.ErrInvalidAddress
	}

	if g.primary != nil {
		res, err := g.primary.Geocode(ctx, address)
		if g.fallback == nil || !errors.Is(err, ports.ErrNoGeocodingResults) {
			g.observe(g.primary, err)
			return res, err
		}
	}

	res, err := g.fallback.Geocode(ctx, address)
	g.observe(g.fallback, err)
	return res, err
}

func (g *Gateway) ReverseGeocode(ctx context.Context, coordinates kernel.Coordinates) (ports.ReverseGeocodeResult, error) {
	if err := coordinates.Validate(); err != nil {
		return ports.ReverseGeocodeResult{}, err
	}

	if g.primary != nil {
		res, err := g.primary.ReverseGeocode(ctx, coordinates)
		if g.fallback == nil || !errors.Is(err, ports.ErrNoGeocodingResults) {
			g.observe(g.primary, err)
			return res, err
		}
	}

	res, err := g.fallback.ReverseGeocode(ctx, coordinates)
	g.observe(g.fallback, err)
	return res, err
}

func (g *Gateway) observe(p Provider, err error) {
	if g.observer != nil && errors.Is(err, ports.ErrExternalGeocodingFailure) {
		g.observer.GeocodingFailed(p.Name())
	}
}

func externalFailure(provider string, err error) error {
	return fmt.Errorf("%w: %s: %w", ports.ErrExternalGeocodingFailure, provider, err)
}
