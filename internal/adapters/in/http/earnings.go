package http

import (
	"net/http"

	"courierledger/internal/core/application/usecases/commands"
	"courierledger/internal/core/application/usecases/queries"
	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateEarnings handles POST /api/v1/offers/{id}/earnings. A first creation
// answers 201; a repeated call answers 200 with the stored record.
func (s *Server) CreateEarnings(c echo.Context, id servers.ID) error {
	offerID, err := idToDomain("id", id)
	if err != nil {
		return s.fail(c, err)
	}
	var body servers.CreateEarningsJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	paymentID, err := optionalIDToDomain("paymentId", body.PaymentId)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCreateEarningsCommand(offerID, paymentID, value(body.UseTrajectory))
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.h.CreateEarnings.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	status := http.StatusOK
	if result.Outcome == earnings.Created {
		status = http.StatusCreated
	}
	return c.JSON(status, earningsFromDomain(result.Earnings))
}

// GetEarnings handles GET /api/v1/earnings/{id}.
func (s *Server) GetEarnings(c echo.Context, id servers.ID) error {
	earningsID, err := idToDomain("id", id)
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetEarningsQuery(earningsID)
	if err != nil {
		return s.fail(c, err)
	}

	found, err := s.h.GetEarnings.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, earningsFromDomain(found))
}

// AddEarningsBonus handles POST /api/v1/earnings/{id}/bonus.
func (s *Server) AddEarningsBonus(c echo.Context, id servers.ID) error {
	earningsID, err := idToDomain("id", id)
	if err != nil {
		return s.fail(c, err)
	}
	var body servers.AddEarningsBonusJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewAddEarningsBonusCommand(earningsID, kernel.MoneyFromMajor(body.Amount), body.Reason)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.AddEarningsBonus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, earningsFromDomain(updated))
}

// AddEarningsAdjustment handles POST /api/v1/earnings/{id}/adjustments.
func (s *Server) AddEarningsAdjustment(c echo.Context, id servers.ID) error {
	earningsID, err := idToDomain("id", id)
	if err != nil {
		return s.fail(c, err)
	}
	var body servers.AddEarningsAdjustmentJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	appliedBy, err := optionalIDToDomain("appliedBy", body.AppliedBy)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewAddEarningsAdjustmentCommand(earningsID, kernel.MoneyFromMajor(body.Amount), body.Reason, appliedBy)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.AddEarningsAdjustment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, earningsFromDomain(updated))
}

// UpdateEarningsPaymentStatus handles PUT /api/v1/earnings/{id}/payment-status.
func (s *Server) UpdateEarningsPaymentStatus(c echo.Context, id servers.ID) error {
	earningsID, err := idToDomain("id", id)
	if err != nil {
		return s.fail(c, err)
	}
	var body servers.UpdateEarningsPaymentStatusJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	status, err := earnings.ParsePaymentStatus(string(body.Status))
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewUpdateEarningsPaymentStatusCommand(earningsID, status)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.UpdateEarningsPaymentStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, earningsFromDomain(updated))
}

// GetEarningsSummary handles GET /api/v1/couriers/{id}/earnings/summary with
// optional startDate, endDate and paymentStatus filters.
func (s *Server) GetEarningsSummary(c echo.Context, id servers.ID, params servers.GetEarningsSummaryParams) error {
	courierID, err := idToDomain("id", id)
	if err != nil {
		return s.fail(c, err)
	}

	var filter earnings.Filter
	if filter.Start, err = parseTime("startDate", params.StartDate, false); err != nil {
		return s.fail(c, err)
	}
	if filter.End, err = parseTime("endDate", params.EndDate, true); err != nil {
		return s.fail(c, err)
	}
	if params.PaymentStatus != nil {
		status, parseErr := earnings.ParsePaymentStatus(string(*params.PaymentStatus))
		if parseErr != nil {
			return s.fail(c, parseErr)
		}
		filter.PaymentStatus = &status
	}

	query, err := queries.NewGetRiderEarningsSummaryQuery(courierID, filter)
	if err != nil {
		return s.fail(c, err)
	}
	summary, err := s.h.GetEarningsSummary.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, summaryFromDomain(summary))
}

// GetEarningsForPeriod handles GET /api/v1/couriers/{id}/earnings/period/{period}.
func (s *Server) GetEarningsForPeriod(c echo.Context, id servers.ID, period servers.EarningsPeriod) error {
	courierID, err := idToDomain("id", id)
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetEarningsForPeriodQuery(courierID, earnings.Period(period))
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.h.GetEarningsPeriod.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, servers.PeriodSummary{
		Period:  servers.EarningsPeriod(result.Period),
		Start:   result.Start,
		End:     result.End,
		Summary: summaryFromDomain(result.Summary),
	})
}

// GetTopEarners handles GET /api/v1/earnings/top?period=month&limit=10.
func (s *Server) GetTopEarners(c echo.Context, params servers.GetTopEarnersParams) error {
	period := earnings.Month
	if params.Period != nil {
		period = earnings.Period(*params.Period)
	}
	query, err := queries.NewGetTopEarnersQuery(period, value(params.Limit))
	if err != nil {
		return s.fail(c, err)
	}

	top, err := s.h.GetTopEarners.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	response := make([]servers.TopEarner, len(top))
	for i, t := range top {
		response[i] = servers.TopEarner{
			CourierId:       t.CourierID.Bytes(),
			Name:            t.Name,
			NetEarnings:     t.Net.Major(),
			TotalDeliveries: t.Deliveries,
		}
	}
	return c.JSON(http.StatusOK, response)
}
