package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, 0.25, cfg.Trade.MaxPriceDiffRatio)
	assert.Equal(t, 8, cfg.Trade.RoomCodeLength)
	assert.Equal(t, 2*time.Minute, cfg.Worker.ReconcileInterval)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("TRADE_MAX_PRICE_DIFF_RATIO", "0.1")
	t.Setenv("CATALOG_CACHE_SIZE", "16")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, 0.1, cfg.Trade.MaxPriceDiffRatio)
	assert.Equal(t, 16, cfg.Catalog.CacheSize)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported STORE_DRIVER")
}
