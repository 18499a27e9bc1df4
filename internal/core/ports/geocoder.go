package ports

import (
	"context"
	"errors"

	"courierledger/internal/core/domain/model/kernel"
)

var (
	// ErrExternalGeocodingFailure wraps provider and network errors; the cause
	// message is kept in the chain.
	ErrExternalGeocodingFailure = errors.New("external geocoding failure")
	ErrInvalidAddress           = errors.New("address is required")
	ErrNoGeocodingResults       = errors.New("no geocoding results")
)

// Confidence is the provider independent quality of a geocoding match.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

type AddressComponents struct {
	StreetNumber string
	Street       string
	City         string
	State        string
	PostalCode   string
	Country      string
	CountryCode  string
}

type GeocodeResult struct {
	Coordinates      kernel.Coordinates
	FormattedAddress string
	Confidence       Confidence
	Components       AddressComponents
	Provider         string
}

type ReverseGeocodeResult struct {
	Address    string
	Components AddressComponents
	Provider   string
}

// Geocoder resolves addresses to coordinates and back. Implementations apply
// their own bounded timeout and never retry.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (GeocodeResult, error)
	ReverseGeocode(ctx context.Context, coordinates kernel.Coordinates) (ReverseGeocodeResult, error)
}
