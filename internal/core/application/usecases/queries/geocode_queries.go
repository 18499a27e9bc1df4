package queries

import (
	"context"
	"errors"
	"strings"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/ports"
	"courierledger/internal/pkg/guard"
)

var (
	ErrGeocodeQueryIsNotConstructed        = errors.New("GeocodeQuery must be created via NewGeocodeQuery constructor")
	ErrReverseGeocodeQueryIsNotConstructed = errors.New("ReverseGeocodeQuery must be created via NewReverseGeocodeQuery constructor")
)

//nolint:recvcheck //using for validation
type GeocodeQuery struct {
	address string
	guard   guard.ConstructorGuard
}

func NewGeocodeQuery(address string) (GeocodeQuery, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return GeocodeQuery{}, ports.ErrInvalidAddress
	}
	return GeocodeQuery{address: address, guard: guard.NewConstructorGuard()}, nil
}

func (q GeocodeQuery) Validate() error {
	return q.guard.Validate(ErrGeocodeQueryIsNotConstructed)
}

//nolint:recvcheck //using for validation
type ReverseGeocodeQuery struct {
	coordinates kernel.Coordinates
	guard       guard.ConstructorGuard
}

func NewReverseGeocodeQuery(coordinates kernel.Coordinates) (ReverseGeocodeQuery, error) {
	if err := coordinates.Validate(); err != nil {
		return ReverseGeocodeQuery{}, err
	}
	return ReverseGeocodeQuery{coordinates: coordinates, guard: guard.NewConstructorGuard()}, nil
}

func (q ReverseGeocodeQuery) Validate() error {
	return q.guard.Validate(ErrReverseGeocodeQueryIsNotConstructed)
}

// GeocodeQueryHandler serves both directions through one geocoder.
type GeocodeQueryHandler struct {
	geocoder ports.Geocoder
}

func NewGeocodeQueryHandler(geocoder ports.Geocoder) GeocodeQueryHandler {
	return GeocodeQueryHandler{geocoder: geocoder}
}

func (h GeocodeQueryHandler) Geocode(ctx context.Context, query GeocodeQuery) (ports.GeocodeResult, error) {
	if err := query.Validate(); err != nil {
		return ports.GeocodeResult{}, err
	}
	return h.geocoder.Geocode(ctx, query.address)
}

func (h GeocodeQueryHandler) ReverseGeocode(ctx context.Context, query ReverseGeocodeQuery) (ports.ReverseGeocodeResult, error) {
	if err := query.Validate(); err != nil {
		return ports.ReverseGeocodeResult{}, err
	}
	return h.geocoder.ReverseGeocode(ctx, query.coordinates)
}
