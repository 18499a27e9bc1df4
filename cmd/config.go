package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"courierledger/internal/adapters/out/redisgeo"
	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/location"
	"courierledger/internal/core/ports"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string
	LogLevel string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisAddr enables the Redis nearby index; empty falls back to Postgres.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisGeoKey   string

	// KafkaHost is a comma separated broker list; empty logs events instead.
	KafkaHost          string
	KafkaEventsTopic   string
	KafkaEarningsTopic string
	KafkaOfferTopic    string
	KafkaLocationTopic string

	GoogleMapsAPIKey   string
	NominatimURL       string
	NominatimUserAgent string
	GeocodingTimeout   time.Duration

	NearbyFreshness   time.Duration
	LocationRetention time.Duration
	PeriodWindow      earnings.PeriodWindow
}

// LoadConfig reads the environment, after loading envFile when it exists.
// All malformed values are reported together.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var errs []error
	c := Config{
		HTTPPort:           env("HTTP_PORT", "8080"),
		LogLevel:           env("LOG_LEVEL", "info"),
		DBHost:             env("DB_HOST", "localhost"),
		DBPort:             env("DB_PORT", "5432"),
		DBUser:             env("DB_USER", "postgres"),
		DBPassword:         env("DB_PASSWORD", ""),
		DBName:             env("DB_NAME", "courierledger"),
		DBSslMode:          env("DB_SSLMODE", "disable"),
		RedisAddr:          env("REDIS_ADDR", ""),
		RedisPassword:      env("REDIS_PASSWORD", ""),
		RedisGeoKey:        env("REDIS_GEO_KEY", redisgeo.DefaultKey),
		KafkaHost:          env("KAFKA_HOST", ""),
		KafkaEventsTopic:   env("KAFKA_EVENTS_TOPIC", "courierledger.events"),
		KafkaEarningsTopic: env("KAFKA_EARNINGS_TOPIC", ""),
		KafkaOfferTopic:    env("KAFKA_OFFER_TOPIC", ""),
		KafkaLocationTopic: env("KAFKA_LOCATION_TOPIC", ""),
		GoogleMapsAPIKey:   env("GOOGLE_MAPS_API_KEY", ""),
		NominatimURL:       env("NOMINATIM_URL", ""),
		NominatimUserAgent: env("NOMINATIM_USER_AGENT", ""),
	}

	var err error
	if c.RedisDB, err = envInt("REDIS_DB", 0); err != nil {
		errs = append(errs, err)
	}
	if c.GeocodingTimeout, err = envDuration("GEOCODING_TIMEOUT", 5*time.Second); err != nil {
		errs = append(errs, err)
	}
	if c.NearbyFreshness, err = envDuration("NEARBY_FRESHNESS", location.DefaultFreshness); err != nil {
		errs = append(errs, err)
	}
	if c.LocationRetention, err = envDuration("LOCATION_RETENTION", location.Retention); err != nil {
		errs = append(errs, err)
	}
	if c.PeriodWindow, err = earnings.ParsePeriodWindow(env("EARNINGS_PERIOD_WINDOW", string(earnings.CalendarToDate))); err != nil {
		errs = append(errs, fmt.Errorf("EARNINGS_PERIOD_WINDOW: %w", err))
	}

	if err = errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return c, nil
}

// DSN is the libpq connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// KafkaRoutes maps event names to their dedicated topics. Unrouted events go
// to KafkaEventsTopic.
func (c Config) KafkaRoutes() map[string]string {
	routes := map[string]string{}
	for event, topic := range map[string]string{
		ports.EventEarningsCreated:    c.KafkaEarningsTopic,
		ports.EventOfferStatusChanged: c.KafkaOfferTopic,
		ports.EventLocationRecorded:   c.KafkaLocationTopic,
	} {
		if topic != "" {
			routes[event] = topic
		}
	}
	return routes
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := env(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := env(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, d)
	}
	return d, nil
}
