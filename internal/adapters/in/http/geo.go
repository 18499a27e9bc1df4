package http

import (
	"net/http"

	"courierledger/internal/core/application/usecases/queries"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// EstimateDelivery handles POST /api/v1/estimates.
func (s *Server) EstimateDelivery(c echo.Context) error {
	var body servers.EstimateDeliveryJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	pickup, err := kernel.CoordinatesFromPair(body.Pickup)
	if err != nil {
		return s.fail(c, err)
	}
	delivery, err := kernel.CoordinatesFromPair(body.Delivery)
	if err != nil {
		return s.fail(c, err)
	}
	class, err := vehicleClass(body.VehicleClass)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewEstimateDeliveryQuery(pickup, delivery, class)
	if err != nil {
		return s.fail(c, err)
	}
	estimate, err := s.h.EstimateDelivery.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, servers.Estimate{
		Distance: estimate.DistanceMeters,
		Duration: estimate.DurationMinutes,
	})
}

// Geocode handles GET /api/v1/geocode?address=.
func (s *Server) Geocode(c echo.Context, params servers.GeocodeParams) error {
	query, err := queries.NewGeocodeQuery(params.Address)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.h.Geocode.Geocode(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, geocodeFromPort(result))
}

// ReverseGeocode handles GET /api/v1/geocode/reverse?lng=&lat=.
func (s *Server) ReverseGeocode(c echo.Context, params servers.ReverseGeocodeParams) error {
	coords, err := kernel.NewCoordinates(params.Lng, params.Lat)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewReverseGeocodeQuery(coords)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.h.Geocode.ReverseGeocode(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, servers.ReverseGeocodeResult{
		Address:    result.Address,
		Components: componentsFromPort(result.Components),
		Provider:   result.Provider,
	})
}
