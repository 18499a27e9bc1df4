package http

import (
	"net/http"

	"courierledger/internal/core/application/usecases/commands"
	"courierledger/internal/core/application/usecases/queries"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/ports"
	"courierledger/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// RecordLocation handles POST /api/v1/couriers/{id}/locations.
func (s *Server) RecordLocation(c echo.Context, id servers.ID) error {
	courierID, err := idToDomain("id", id)
	if err != nil {
		return s.fail(c, err)
	}
	var body servers.RecordLocationJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	sample, err := sampleToDomain(body)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewRecordLocationCommand(courierID, sample)
	if err != nil {
		return s.fail(c, err)
	}

	record, err := s.h.RecordLocation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, locationFromDomain(record))
}

// GetLocationHistory handles GET /api/v1/couriers/{id}/locations.
func (s *Server) GetLocationHistory(c echo.Context, id servers.ID, params servers.GetLocationHistoryParams) error {
	courierID, err := idToDomain("id", id)
	if err != nil {
		return s.fail(c, err)
	}

	filter := ports.HistoryFilter{Limit: value(params.Limit)}
	if filter.Start, err = parseTime("startTime", params.StartTime, false); err != nil {
		return s.fail(c, err)
	}
	if filter.End, err = parseTime("endTime", params.EndTime, true); err != nil {
		return s.fail(c, err)
	}
	if filter.OfferID, err = optionalIDToDomain("offerId", params.OfferId); err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetLocationHistoryQuery(courierID, filter)
	if err != nil {
		return s.fail(c, err)
	}
	records, err := s.h.GetLocationHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]servers.Location, len(records))
	for i, r := range records {
		response[i] = locationFromDomain(r)
	}
	return c.JSON(http.StatusOK, response)
}

// GetTrajectoryDistance handles GET /api/v1/couriers/{id}/trajectory.
func (s *Server) GetTrajectoryDistance(c echo.Context, id servers.ID, params servers.GetTrajectoryDistanceParams) error {
	courierID, err := idToDomain("id", id)
	if err != nil {
		return s.fail(c, err)
	}
	offerID, err := optionalIDToDomain("offerId", params.OfferId)
	if err != nil {
		return s.fail(c, err)
	}
	start, err := parseTime("startTime", params.StartTime, false)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetTrajectoryDistanceQuery(courierID, offerID, start)
	if err != nil {
		return s.fail(c, err)
	}
	t, err := s.h.GetTrajectory.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, servers.Trajectory{Distance: t.DistanceMeters, Points: t.Points})
}

// DeactivateLocations handles POST /api/v1/couriers/{id}/locations/deactivate.
func (s *Server) DeactivateLocations(c echo.Context, id servers.ID) error {
	courierID, err := idToDomain("id", id)
	if err != nil {
		return s.fail(c, err)
	}
	var body servers.DeactivateLocationsJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	offerID, err := optionalIDToDomain("offerId", body.OfferId)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewDeactivateLocationsCommand(courierID, offerID)
	if err != nil {
		return s.fail(c, err)
	}

	n, err := s.h.DeactivateLocations.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, servers.Deactivated{Deactivated: n})
}

// GetNearbyCouriers handles GET /api/v1/locations/nearby?lng=&lat=&radius=.
func (s *Server) GetNearbyCouriers(c echo.Context, params servers.GetNearbyCouriersParams) error {
	center, err := kernel.NewCoordinates(params.Lng, params.Lat)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetNearbyCouriersQuery(center, params.Radius)
	if err != nil {
		return s.fail(c, err)
	}
	hits, err := s.h.GetNearbyCouriers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]servers.NearbyCourier, len(hits))
	for i, h := range hits {
		response[i] = servers.NearbyCourier{
			CourierId:   h.CourierID.Bytes(),
			Coordinates: h.Coordinates.Pair(),
			Distance:    h.DistanceMeters,
			LastSeen:    h.LastSeen,
		}
	}
	return c.JSON(http.StatusOK, response)
}
