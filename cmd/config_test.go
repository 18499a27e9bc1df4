package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"courierledger/cmd"
	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/location"
	"courierledger/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		c, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, "8080", c.HTTPPort)
		assert.Equal(t, location.Retention, c.LocationRetention)
		assert.Equal(t, location.DefaultFreshness, c.NearbyFreshness)
		assert.Equal(t, earnings.CalendarToDate, c.PeriodWindow)
		assert.Empty(t, c.KafkaBrokers())
		assert.Empty(t, c.KafkaRoutes())
	})

	t.Run("reads the env file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(file, []byte("DB_NAME=ledger_test\nNEARBY_FRESHNESS=2m\n"), 0o600))
		t.Setenv("DB_NAME", "")
		t.Setenv("NEARBY_FRESHNESS", "")
		require.NoError(t, os.Unsetenv("DB_NAME"))
		require.NoError(t, os.Unsetenv("NEARBY_FRESHNESS"))

		c, err := cmd.LoadConfig(file)

		require.NoError(t, err)
		assert.Equal(t, "ledger_test", c.DBName)
		assert.Equal(t, 2*time.Minute, c.NearbyFreshness)
		assert.Contains(t, c.DSN(), "dbname=ledger_test")
	})

	t.Run("kafka brokers and routes", func(t *testing.T) {
		t.Setenv("KAFKA_HOST", "kafka-1:9092, kafka-2:9092,")
		t.Setenv("KAFKA_EARNINGS_TOPIC", "ledger.earnings")

		c, err := cmd.LoadConfig("")

		require.NoError(t, err)
		assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.KafkaBrokers())
		assert.Equal(t, map[string]string{ports.EventEarningsCreated: "ledger.earnings"}, c.KafkaRoutes())
	})

	t.Run("reports every malformed value", func(t *testing.T) {
		t.Setenv("REDIS_DB", "one")
		t.Setenv("LOCATION_RETENTION", "-1h")
		t.Setenv("EARNINGS_PERIOD_WINDOW", "fiscal")

		_, err := cmd.LoadConfig("")

		require.Error(t, err)
		assert.ErrorContains(t, err, "REDIS_DB")
		assert.ErrorContains(t, err, "LOCATION_RETENTION")
		assert.ErrorContains(t, err, "EARNINGS_PERIOD_WINDOW")
	})
}
