// Package http is the REST adapter. Handlers translate JSON requests into
// commands and queries and map core errors onto status codes.
package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"courierledger/internal/core/application/usecases/commands"
	"courierledger/internal/core/application/usecases/queries"
	"courierledger/internal/core/domain/model/vehicle"
	"courierledger/internal/generated/servers"
	"courierledger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers bundles the use cases the server exposes.
type Handlers struct {
	CreateCourier               commands.CreateCourierCommandHandler
	CreateOffer                 commands.CreateOfferCommandHandler
	UpdateOfferStatus           commands.UpdateOfferStatusCommandHandler
	RecordPayment               commands.RecordPaymentCommandHandler
	UpdatePaymentStatus         commands.UpdatePaymentStatusCommandHandler
	CreateEarnings              commands.CreateEarningsCommandHandler
	AddEarningsBonus            commands.AddEarningsBonusCommandHandler
	AddEarningsAdjustment       commands.AddEarningsAdjustmentCommandHandler
	UpdateEarningsPaymentStatus commands.UpdateEarningsPaymentStatusCommandHandler
	RecordLocation              commands.RecordLocationCommandHandler
	DeactivateLocations         commands.DeactivateLocationsCommandHandler

	GetAllCouriers     queries.GetAllCouriersQueryHandler
	GetOffer           queries.GetOfferQueryHandler
	GetPayment         queries.GetPaymentQueryHandler
	GetEarnings        queries.GetEarningsQueryHandler
	GetEarningsSummary queries.GetRiderEarningsSummaryQueryHandler
	GetEarningsPeriod  queries.GetEarningsForPeriodQueryHandler
	GetTopEarners      queries.GetTopEarnersQueryHandler
	GetLocationHistory queries.GetLocationHistoryQueryHandler
	GetTrajectory      queries.GetTrajectoryDistanceQueryHandler
	GetNearbyCouriers  queries.GetNearbyCouriersQueryHandler
	EstimateDelivery   queries.EstimateDeliveryQueryHandler
	Geocode            queries.GeocodeQueryHandler
}

// Server implements servers.ServerInterface. It coordinates between HTTP
// handlers and application use cases.
type Server struct {
	h        Handlers
	logger   *slog.Logger
	observer RequestObserver
	metrics  http.Handler
}

// NewServer creates the server. observer and metrics may be nil.
func NewServer(h Handlers, logger *slog.Logger, observer RequestObserver, metrics http.Handler) *Server {
	return &Server{
		h:        h,
		logger:   logger.With("component", "http"),
		observer: observer,
		metrics:  metrics,
	}
}

// Echo builds the router with middleware and every route registered.
func (s *Server) Echo() (*echo.Echo, error) {
	spec, err := loadSpec()
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(spec); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(s.logger, s.observer))
	e.Use(requestValidator(spec))
	s.Register(e)
	return e, nil
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if s.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(s.metrics))
	}
	e.GET("/swagger", docRedirect)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, s)
}

// parseTime parses an RFC 3339 timestamp or a YYYY-MM-DD date. A bare date
// means the start of that UTC day, or its last instant when endOfDay is set.
func parseTime(name string, v *string, endOfDay bool) (*time.Time, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	raw := strings.TrimSpace(*v)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func vehicleClass(c servers.VehicleClass) (vehicle.Class, error) {
	return vehicle.Parse(string(c))
}
