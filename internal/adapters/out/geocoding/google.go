package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/ports"
)

const (
	GoogleProviderName = "google"
	GoogleBaseURL      = "https://maps.googleapis.com/maps/api/geocode/json"
)

type googleResponse struct {
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message"`
	Results      []googleResult `json:"results"`
}

type googleResult struct {
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
		LocationType string `json:"location_type"`
	} `json:"geometry"`
	AddressComponents []struct {
		LongName  string   `json:"long_name"`
		ShortName string   `json:"short_name"`
		Types     []string `json:"types"`
	} `json:"address_components"`
}

// GoogleProvider calls the Google Geocoding API.
type GoogleProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewGoogleProvider(baseURL, apiKey string, client *http.Client) *GoogleProvider {
	if baseURL == "" {
		baseURL = GoogleBaseURL
	}
	return &GoogleProvider{baseURL: baseURL, apiKey: apiKey, client: client}
}

func (p *GoogleProvider) Name() string { return GoogleProviderName }

func (p *GoogleProvider) Geocode(ctx context.Context, address string) (ports.GeocodeResult, error) {
	q := url.Values{}
	q.Set("address", address)

	best, err := p.lookup(ctx, q)
	if err != nil {
		return ports.GeocodeResult{}, err
	}

	coords, err := kernel.NewCoordinates(best.Geometry.Location.Lng, best.Geometry.Location.Lat)
	if err != nil {
		return ports.GeocodeResult{}, externalFailure(p.Name(), err)
	}
	return ports.GeocodeResult{
		Coordinates:      coords,
		FormattedAddress: best.FormattedAddress,
		Confidence:       googleConfidence(best.Geometry.LocationType),
		Components:       best.components(),
		Provider:         p.Name(),
	}, nil
}

func (p *GoogleProvider) ReverseGeocode(ctx context.Context, c kernel.Coordinates) (ports.ReverseGeocodeResult, error) {
	q := url.Values{}
	q.Set("latlng", strconv.FormatFloat(c.Lat(), 'f', -1, 64)+","+strconv.FormatFloat(c.Lng(), 'f', -1, 64))

	best, err := p.lookup(ctx, q)
	if err != nil {
		return ports.ReverseGeocodeResult{}, err
	}
	return ports.ReverseGeocodeResult{
		Address:    best.FormattedAddress,
		Components: best.components(),
		Provider:   p.Name(),
	}, nil
}

func (p *GoogleProvider) lookup(ctx context.Context, q url.Values) (googleResult, error) {
	q.Set("key", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return googleResult{}, externalFailure(p.Name(), err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return googleResult{}, externalFailure(p.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return googleResult{}, externalFailure(p.Name(), fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var out googleResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return googleResult{}, externalFailure(p.Name(), err)
	}

	switch out.Status {
	case "OK":
	case "ZERO_RESULTS":
		return googleResult{}, ports.ErrNoGeocodingResults
	default:
		msg := out.Status
		if out.ErrorMessage != "" {
			msg += ": " + out.ErrorMessage
		}
		return googleResult{}, externalFailure(p.Name(), errors.New(msg))
	}
	if len(out.Results) == 0 {
		return googleResult{}, ports.ErrNoGeocodingResults
	}
	return out.Results[0], nil
}

func (r googleResult) components() ports.AddressComponents {
	var c ports.AddressComponents
	for _, part := range r.AddressComponents {
		for _, t := range part.Types {
			switch t {
			case "street_number":
				c.StreetNumber = part.LongName
			case "route":
				c.Street = part.LongName
			case "locality":
				c.City = part.LongName
			case "postal_town":
				if c.City == "" {
					c.City = part.LongName
				}
			case "administrative_area_level_1":
				c.State = part.LongName
			case "postal_code":
				c.PostalCode = part.LongName
			case "country":
				c.Country = part.LongName
				c.CountryCode = part.ShortName
			}
		}
	}
	return c
}

func googleConfidence(locationType string) ports.Confidence {
	switch locationType {
	case "ROOFTOP":
		return ports.ConfidenceHigh
	case "RANGE_INTERPOLATED":
		return ports.ConfidenceMedium
	default:
		return ports.ConfidenceLow
	}
}
