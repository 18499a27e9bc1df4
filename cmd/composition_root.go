package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	httpin "courierledger/internal/adapters/in/http"
	"courierledger/internal/adapters/out/geocoding"
	"courierledger/internal/adapters/out/kafka"
	"courierledger/internal/adapters/out/metrics"
	"courierledger/internal/adapters/out/postgres"
	"courierledger/internal/adapters/out/redisgeo"
	"courierledger/internal/core/application/usecases/commands"
	"courierledger/internal/core/application/usecases/queries"
	"courierledger/internal/core/domain/services"
	"courierledger/internal/core/ports"
	"courierledger/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot owns the adapters and builds every handler from them.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	registry  *prometheus.Registry
	metrics   *metrics.Metrics
	publisher ports.EventPublisher
	kafka     *kafka.Publisher
	redis     *redis.Client
	index     *redisgeo.Index
	geocoder  ports.Geocoder
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		registry:   registry,
		metrics:    metrics.New(registry),
	}

	if brokers := cfg.KafkaBrokers(); len(brokers) > 0 {
		c.kafka = kafka.NewPublisher(kafka.NewWriter(brokers), cfg.KafkaEventsTopic, cfg.KafkaRoutes())
		c.publisher = c.kafka
	} else {
		c.publisher = kafka.NewLogPublisher(logger)
	}

	if cfg.RedisAddr != "" {
		c.redis = redisgeo.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		c.index = redisgeo.NewIndex(c.redis, cfg.RedisGeoKey)
	}

	client := geocoding.NewHTTPClient(cfg.GeocodingTimeout)
	var primary geocoding.Provider
	if cfg.GoogleMapsAPIKey != "" {
		primary = geocoding.NewGoogleProvider("", cfg.GoogleMapsAPIKey, client)
	}
	fallback := geocoding.NewNominatimProvider(cfg.NominatimURL, cfg.NominatimUserAgent, client)
	c.geocoder = geocoding.NewGateway(primary, fallback, c.metrics)

	return c
}

// Ping checks the optional Redis connection. The service still starts when
// it fails; nearby searches then return errors until Redis is back.
func (c *CompositionRoot) Ping(ctx context.Context) error {
	if c.redis == nil {
		return nil
	}
	return c.redis.Ping(ctx).Err()
}

func (c *CompositionRoot) Close() error {
	var errs []error
	if c.kafka != nil {
		errs = append(errs, c.kafka.Close())
	}
	if c.redis != nil {
		errs = append(errs, c.redis.Close())
	}
	return errors.Join(errs...)
}

func (c *CompositionRoot) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *CompositionRoot) positionIndex() ports.CourierPositionIndex {
	if c.index == nil {
		return nil
	}
	return c.index
}

func (c *CompositionRoot) nearbyFinder() ports.NearbyCourierFinder {
	if c.index == nil {
		return c.uowFactory.NearbyFinder()
	}
	return c.index
}

// Commands

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOfferCommandHandler() commands.CreateOfferCommandHandler {
	return commands.NewCreateOfferCommandHandler(c.offerUoWFactory(), services.NewDistanceTimeEstimator())
}

func (c *CompositionRoot) CreateUpdateOfferStatusCommandHandler() commands.UpdateOfferStatusCommandHandler {
	return commands.NewUpdateOfferStatusCommandHandler(c.offerUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePaymentStatusCommandHandler() commands.UpdatePaymentStatusCommandHandler {
	return commands.NewUpdatePaymentStatusCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateCreateEarningsCommandHandler() commands.CreateEarningsCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateEarningsCommandHandler(f, c.publisher, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateAddEarningsBonusCommandHandler() commands.AddEarningsBonusCommandHandler {
	return commands.NewAddEarningsBonusCommandHandler(c.earningsUoWFactory())
}

func (c *CompositionRoot) CreateAddEarningsAdjustmentCommandHandler() commands.AddEarningsAdjustmentCommandHandler {
	return commands.NewAddEarningsAdjustmentCommandHandler(c.earningsUoWFactory())
}

func (c *CompositionRoot) CreateUpdateEarningsPaymentStatusCommandHandler() commands.UpdateEarningsPaymentStatusCommandHandler {
	return commands.NewUpdateEarningsPaymentStatusCommandHandler(c.earningsUoWFactory())
}

func (c *CompositionRoot) CreateRecordLocationCommandHandler() commands.RecordLocationCommandHandler {
	return commands.NewRecordLocationCommandHandler(
		c.locationUoWFactory(), c.positionIndex(), c.publisher, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateDeactivateLocationsCommandHandler() commands.DeactivateLocationsCommandHandler {
	return commands.NewDeactivateLocationsCommandHandler(c.locationUoWFactory(), c.positionIndex(), c.logger)
}

func (c *CompositionRoot) CreatePurgeExpiredLocationsCommandHandler() commands.PurgeExpiredLocationsCommandHandler {
	return commands.NewPurgeExpiredLocationsCommandHandler(c.locationUoWFactory(), c.metrics)
}

// Queries

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOfferQueryHandler() queries.GetOfferQueryHandler {
	return queries.NewGetOfferQueryHandler(c.uowFactory.Create().OfferRepository())
}

func (c *CompositionRoot) CreateGetPaymentQueryHandler() queries.GetPaymentQueryHandler {
	return queries.NewGetPaymentQueryHandler(c.uowFactory.Create().PaymentRepository())
}

func (c *CompositionRoot) CreateGetEarningsQueryHandler() queries.GetEarningsQueryHandler {
	return queries.NewGetEarningsQueryHandler(c.uowFactory.Create().EarningsRepository())
}

func (c *CompositionRoot) CreateGetRiderEarningsSummaryQueryHandler() queries.GetRiderEarningsSummaryQueryHandler {
	return queries.NewGetRiderEarningsSummaryQueryHandler(c.uowFactory.Create().EarningsRepository())
}

func (c *CompositionRoot) CreateGetEarningsForPeriodQueryHandler() queries.GetEarningsForPeriodQueryHandler {
	return queries.NewGetEarningsForPeriodQueryHandler(c.uowFactory.Create().EarningsRepository(), c.cfg.PeriodWindow)
}

func (c *CompositionRoot) CreateGetTopEarnersQueryHandler() queries.GetTopEarnersQueryHandler {
	return queries.NewGetTopEarnersQueryHandler(c.gormDB, c.cfg.PeriodWindow)
}

func (c *CompositionRoot) CreateGetLocationHistoryQueryHandler() queries.GetLocationHistoryQueryHandler {
	return queries.NewGetLocationHistoryQueryHandler(c.uowFactory.Create().LocationRepository())
}

func (c *CompositionRoot) CreateGetTrajectoryDistanceQueryHandler() queries.GetTrajectoryDistanceQueryHandler {
	return queries.NewGetTrajectoryDistanceQueryHandler(c.uowFactory.Create().LocationRepository())
}

func (c *CompositionRoot) CreateGetNearbyCouriersQueryHandler() queries.GetNearbyCouriersQueryHandler {
	return queries.NewGetNearbyCouriersQueryHandler(c.nearbyFinder(), c.cfg.NearbyFreshness)
}

func (c *CompositionRoot) CreateEstimateDeliveryQueryHandler() queries.EstimateDeliveryQueryHandler {
	return queries.NewEstimateDeliveryQueryHandler(services.NewDistanceTimeEstimator())
}

func (c *CompositionRoot) CreateGeocodeQueryHandler() queries.GeocodeQueryHandler {
	return queries.NewGeocodeQueryHandler(c.geocoder)
}

// Inbound

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	h := httpin.Handlers{
		CreateCourier:               c.CreateCreateCourierCommandHandler(),
		CreateOffer:                 c.CreateCreateOfferCommandHandler(),
		UpdateOfferStatus:           c.CreateUpdateOfferStatusCommandHandler(),
		RecordPayment:               c.CreateRecordPaymentCommandHandler(),
		UpdatePaymentStatus:         c.CreateUpdatePaymentStatusCommandHandler(),
		CreateEarnings:              c.CreateCreateEarningsCommandHandler(),
		AddEarningsBonus:            c.CreateAddEarningsBonusCommandHandler(),
		AddEarningsAdjustment:       c.CreateAddEarningsAdjustmentCommandHandler(),
		UpdateEarningsPaymentStatus: c.CreateUpdateEarningsPaymentStatusCommandHandler(),
		RecordLocation:              c.CreateRecordLocationCommandHandler(),
		DeactivateLocations:         c.CreateDeactivateLocationsCommandHandler(),

		GetAllCouriers:     c.CreateGetAllCouriersQueryHandler(),
		GetOffer:           c.CreateGetOfferQueryHandler(),
		GetPayment:         c.CreateGetPaymentQueryHandler(),
		GetEarnings:        c.CreateGetEarningsQueryHandler(),
		GetEarningsSummary: c.CreateGetRiderEarningsSummaryQueryHandler(),
		GetEarningsPeriod:  c.CreateGetEarningsForPeriodQueryHandler(),
		GetTopEarners:      c.CreateGetTopEarnersQueryHandler(),
		GetLocationHistory: c.CreateGetLocationHistoryQueryHandler(),
		GetTrajectory:      c.CreateGetTrajectoryDistanceQueryHandler(),
		GetNearbyCouriers:  c.CreateGetNearbyCouriersQueryHandler(),
		EstimateDelivery:   c.CreateEstimateDeliveryQueryHandler(),
		Geocode:            c.CreateGeocodeQueryHandler(),
	}
	return httpin.NewServer(h, c.logger, c.metrics, c.MetricsHandler())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	purge := c.CreatePurgeExpiredLocationsCommandHandler()
	var pruner jobs.IndexPruner
	if c.index != nil {
		pruner = c.index
	}
	return jobs.NewJobManager(
		jobs.NewLocationRetentionJob(&purge, pruner, c.cfg.LocationRetention, c.logger),
	)
}

func (c *CompositionRoot) offerUoWFactory() commands.OfferUoWFactory {
	return FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) earningsUoWFactory() commands.EarningsUoWFactory {
	return FuncEarningsUoWFactory(func() commands.EarningsUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) locationUoWFactory() commands.LocationUoWFactory {
	return FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOfferUoWFactory func() commands.OfferUoW

func (f FuncOfferUoWFactory) Create() commands.OfferUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncEarningsUoWFactory func() commands.EarningsUoW

func (f FuncEarningsUoWFactory) Create() commands.EarningsUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}
