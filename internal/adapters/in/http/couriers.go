package http

import (
	"net/http"

	"courierledger/internal/core/application/usecases/commands"
	"courierledger/internal/core/application/usecases/queries"
	"courierledger/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(c echo.Context) error {
	couriers, err := s.h.GetAllCouriers.Handle(c.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]servers.Courier, len(couriers))
	for i, courier := range couriers {
		response[i] = courierFromQuery(courier)
	}
	return c.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(c echo.Context) error {
	var body servers.CreateCourierJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	class, err := vehicleClass(body.VehicleClass)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCreateCourierCommand(body.Name, class)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.h.CreateCourier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, courierFromDomain(created))
}
