package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"trustcart/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "REDIS_ADDR", "MINIO_ENDPOINT", "SESSION_TTL", "SNAPSHOT_INTERVAL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Empty(t, cfg.DB.URL)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.MinIO.Endpoint)
	assert.Equal(t, 24*time.Hour, cfg.JWT.SessionTTL)
	assert.Equal(t, 6*time.Hour, cfg.Jobs.SnapshotInterval)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("METRICS_REFRESH_INTERVAL", "not-a-duration")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 2*time.Hour, cfg.JWT.SessionTTL)
	assert.Equal(t, 5*time.Minute, cfg.Jobs.MetricsRefreshInterval)
}

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "pricing.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPricingDefaults(t *testing.T) {
	t.Run("no file returns built-in defaults", func(t *testing.T) {
		cfg, err := LoadPricingDefaults("")
		require.NoError(t, err)
		assert.Equal(t, models.DefaultPricingConfig(), cfg)
	})

	t.Run("file overrides selected keys", func(t *testing.T) {
		path := writeFile(t, "[pricing]\nprofit_margin = 45\ncurrency = \"usd\"\n")

		cfg, err := LoadPricingDefaults(path)

		require.NoError(t, err)
		assert.Equal(t, 45.0, cfg.ProfitMargin)
		assert.Equal(t, "USD", cfg.Currency)
		assert.Equal(t, 3.5, cfg.GatewayFee)
	})

	t.Run("invalid gateway fee is rejected", func(t *testing.T) {
		path := writeFile(t, "[pricing]\ngateway_fee = 100\n")

		_, err := LoadPricingDefaults(path)

		assert.ErrorIs(t, err, models.ErrInvalidConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPricingDefaults(filepath.Join(t.TempDir(), "absent.toml"))
		assert.Error(t, err)
	})
}
