package http

import (
	"net/http"

	"courierledger/internal/core/application/usecases/commands"
	"courierledger/internal/core/application/usecases/queries"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/offer"
	"courierledger/internal/core/domain/model/payment"
	"courierledger/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateOffer handles POST /api/v1/offers.
func (s *Server) CreateOffer(c echo.Context) error {
	var body servers.CreateOfferJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	requesterID, details, err := offerDetailsToDomain(body)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCreateOfferCommand(requesterID, details)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.h.CreateOffer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, offerFromDomain(created))
}

// GetOffer handles GET /api/v1/offers/{id}.
func (s *Server) GetOffer(c echo.Context, id servers.ID) error {
	offerID, err := idToDomain("id", id)
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetOfferQuery(offerID)
	if err != nil {
		return s.fail(c, err)
	}

	found, err := s.h.GetOffer.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, offerFromDomain(found))
}

// UpdateOfferStatus handles POST /api/v1/offers/{id}/status.
func (s *Server) UpdateOfferStatus(c echo.Context, id servers.ID) error {
	offerID, err := idToDomain("id", id)
	if err != nil {
		return s.fail(c, err)
	}
	var body servers.UpdateOfferStatusJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	status, err := offer.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(c, err)
	}
	role, err := offer.ParseRole(string(body.Role))
	if err != nil {
		return s.fail(c, err)
	}
	actorID, err := idToDomain("actorId", body.ActorId)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewUpdateOfferStatusCommand(offerID, status, offer.Actor{ID: actorID, Role: role})
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.UpdateOfferStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, offerFromDomain(updated))
}

// RecordPayment handles POST /api/v1/offers/{id}/payments.
func (s *Server) RecordPayment(c echo.Context, id servers.ID) error {
	offerID, err := idToDomain("id", id)
	if err != nil {
		return s.fail(c, err)
	}
	var body servers.RecordPaymentJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	payerID, err := idToDomain("payerId", body.PayerId)
	if err != nil {
		return s.fail(c, err)
	}
	method, err := payment.ParseMethod(string(body.Method))
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewRecordPaymentCommand(
		offerID,
		payerID,
		kernel.MoneyFromMajor(body.TotalAmount),
		kernel.MoneyFromMajor(body.PlatformFee),
		value(body.Currency),
		method,
	)
	if err != nil {
		return s.fail(c, err)
	}

	recorded, err := s.h.RecordPayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, paymentFromDomain(recorded))
}

// GetPayment handles GET /api/v1/payments/{id}.
func (s *Server) GetPayment(c echo.Context, id servers.ID) error {
	paymentID, err := idToDomain("id", id)
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetPaymentQuery(paymentID)
	if err != nil {
		return s.fail(c, err)
	}

	found, err := s.h.GetPayment.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, paymentFromDomain(found))
}

// UpdatePaymentStatus handles POST /api/v1/payments/{id}/status.
func (s *Server) UpdatePaymentStatus(c echo.Context, id servers.ID) error {
	paymentID, err := idToDomain("id", id)
	if err != nil {
		return s.fail(c, err)
	}
	var body servers.UpdatePaymentStatusJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	status, err := payment.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewUpdatePaymentStatusCommand(paymentID, status)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.UpdatePaymentStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, paymentFromDomain(updated))
}
