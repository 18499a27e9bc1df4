package http

import (
	"errors"
	"fmt"
	"net/http"

	"courierledger/internal/core/application/usecases/commands"
	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/offer"
	"courierledger/internal/core/domain/model/payment"
	"courierledger/internal/core/domain/model/vehicle"
	"courierledger/internal/core/ports"
	"courierledger/internal/generated/servers"
	"courierledger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusRules are checked in order; the first match decides the status code.
var statusRules = []struct {
	status int
	errs   []error
}{
	{http.StatusNotFound, []error{errs.ErrObjectNotFound, ports.ErrNoGeocodingResults}},
	{http.StatusConflict, []error{errs.ErrObjectAlreadyExists}},
	{http.StatusForbidden, []error{
		offer.ErrInsufficientRole,
		offer.ErrNotAssignedCourier,
		offer.ErrNotOfferRequester,
		commands.ErrPayerIsNotRequester,
	}},
	{http.StatusUnprocessableEntity, []error{
		offer.ErrInvalidTransition,
		payment.ErrInvalidStatusTransition,
		earnings.ErrOfferNotCompleted,
		earnings.ErrNoAssignedCourier,
		earnings.ErrPaymentRequired,
		earnings.ErrPaymentOfferMismatch,
		commands.ErrOfferHasNoCourier,
	}},
	{http.StatusBadGateway, []error{ports.ErrExternalGeocodingFailure}},
	{http.StatusBadRequest, []error{
		kernel.ErrInvalidCoordinates,
		vehicle.ErrUnknownVehicleClass,
		commands.ErrNameIsRequired,
		earnings.ErrInvalidBonusAmount,
		earnings.ErrMissingAdjustmentAmount,
		earnings.ErrMissingAdjustmentReason,
		earnings.ErrInvalidPaymentStatus,
		ports.ErrInvalidAddress,
		errs.ErrValueIsRequired,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
	}},
}

// StatusFor maps a core error onto an HTTP status code.
func StatusFor(err error) int {
	for _, rule := range statusRules {
		for _, target := range rule.errs {
			if errors.Is(err, target) {
				return rule.status
			}
		}
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(c echo.Context, err error) error {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		return c.JSON(status, servers.Error{Code: status, Message: http.StatusText(status)})
	}
	return c.JSON(status, servers.Error{Code: status, Message: err.Error()})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

// handleError renders errors that escaped the handlers, such as parameter
// binding failures and unknown routes, in the API's error shape.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		message = fmt.Sprint(he.Message)
	} else {
		s.logger.ErrorContext(c.Request().Context(), "unhandled error",
			"method", c.Request().Method, "path", c.Path(), "error", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, servers.Error{Code: status, Message: message})
	}
	if err != nil {
		s.logger.ErrorContext(c.Request().Context(), "write error response", "error", err)
	}
}
