package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/ports"
)

const (
	NominatimProviderName = "nominatim"
	NominatimBaseURL      = "https://nominatim.openstreetmap.org"

	// Nominatim's usage policy requires an identifying User-Agent.
	DefaultUserAgent = "courierledger/1.0"
)

type nominatimPlace struct {
	Lat         string           `json:"lat"`
	Lon         string           `json:"lon"`
	DisplayName string           `json:"display_name"`
	Importance  float64          `json:"importance"`
	Address     nominatimAddress `json:"address"`
	Error       string           `json:"error"`
}

type nominatimAddress struct {
	HouseNumber string `json:"house_number"`
	Road        string `json:"road"`
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	State       string `json:"state"`
	Postcode    string `json:"postcode"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
}

// NominatimProvider calls an OpenStreetMap Nominatim server.
type NominatimProvider struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewNominatimProvider(baseURL, userAgent string, client *http.Client) *NominatimProvider {
	if baseURL == "" {
		baseURL = NominatimBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &NominatimProvider{baseURL: strings.TrimRight(baseURL, "/"), userAgent: userAgent, client: client}
}

func (p *NominatimProvider) Name() string { return NominatimProviderName }

func (p *NominatimProvider) Geocode(ctx context.Context, address string) (ports.GeocodeResult, error) {
	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "jsonv2")
	q.Set("addressdetails", "1")
	q.Set("limit", "1")

	var places []nominatimPlace
	if err := p.get(ctx, "/search", q, &places); err != nil {
		return ports.GeocodeResult{}, err
	}
	if len(places) == 0 {
		return ports.GeocodeResult{}, ports.ErrNoGeocodingResults
	}

	best := places[0]
	lat, latErr := strconv.ParseFloat(best.Lat, 64)
	lng, lngErr := strconv.ParseFloat(best.Lon, 64)
	if err := errors.Join(latErr, lngErr); err != nil {
		return ports.GeocodeResult{}, externalFailure(p.Name(), err)
	}
	coords, err := kernel.NewCoordinates(lng, lat)
	if err != nil {
		return ports.GeocodeResult{}, externalFailure(p.Name(), err)
	}

	return ports.GeocodeResult{
		Coordinates:      coords,
		FormattedAddress: best.DisplayName,
		Confidence:       nominatimConfidence(best.Importance),
		Components:       best.Address.components(),
		Provider:         p.Name(),
	}, nil
}

func (p *NominatimProvider) ReverseGeocode(ctx context.Context, c kernel.Coordinates) (ports.ReverseGeocodeResult, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(c.Lat(), 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(c.Lng(), 'f', -1, 64))
	q.Set("format", "jsonv2")
	q.Set("addressdetails", "1")

	var place nominatimPlace
	if err := p.get(ctx, "/reverse", q, &place); err != nil {
		return ports.ReverseGeocodeResult{}, err
	}
	if place.Error != "" || place.DisplayName == "" {
		return ports.ReverseGeocodeResult{}, ports.ErrNoGeocodingResults
	}

	return ports.ReverseGeocodeResult{
		Address:    place.DisplayName,
		Components: place.Address.components(),
		Provider:   p.Name(),
	}, nil
}

func (p *NominatimProvider) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return externalFailure(p.Name(), err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return externalFailure(p.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return externalFailure(p.Name(), fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return externalFailure(p.Name(), err)
	}
	return nil
}

func (a nominatimAddress) components() ports.AddressComponents {
	city := a.City
	if city == "" {
		city = a.Town
	}
	if city == "" {
		city = a.Village
	}
	return ports.AddressComponents{
		StreetNumber: a.HouseNumber,
		Street:       a.Road,
		City:         city,
		State:        a.State,
		PostalCode:   a.Postcode,
		Country:      a.Country,
		CountryCode:  strings.ToUpper(a.CountryCode),
	}
}

func nominatimConfidence(importance float64) ports.Confidence {
	switch {
	case importance >= 0.7:
		return ports.ConfidenceHigh
	case importance >= 0.4:
		return ports.ConfidenceMedium
	default:
		return ports.ConfidenceLow
	}
}
