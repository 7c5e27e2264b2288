package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Store    StoreConfig
	Trade    TradeConfig
	Catalog  CatalogConfig
	Notify   NotifyConfig
	Worker   WorkerConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	PrettyLogs      bool          `env:"SERVER_PRETTY_LOGS" envDefault:"true"`
	LogLevel        string        `env:"SERVER_LOG_LEVEL" envDefault:"info"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"card_trading"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	MigrationsDir   string        `env:"DB_MIGRATIONS_DIR"`
}

// StoreConfig selects the persistence driver. "memory" keeps everything in process
// and is meant for local runs and tests.
type StoreConfig struct {
	Driver   string `env:"STORE_DRIVER" envDefault:"postgres"`
	SeedDemo bool   `env:"STORE_SEED_DEMO" envDefault:"false"`
}
type TradeConfig struct {
	MaxPriceDiffRatio float64 `env:"TRADE_MAX_PRICE_DIFF_RATIO" envDefault:"0.25"`
	RoomCodeLength    int     `env:"TRADE_ROOM_CODE_LENGTH" envDefault:"8"`
	DefaultPageSize   int     `env:"TRADE_DEFAULT_PAGE_SIZE" envDefault:"20"`
	MaxPageSize       int     `env:"TRADE_MAX_PAGE_SIZE" envDefault:"100"`
}
type CatalogConfig struct {
	CacheSize int           `env:"CATALOG_CACHE_SIZE" envDefault:"4096"`
	CacheTTL  time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"10m"`
}
type NotifyConfig struct {
	SendBuffer   int           `env:"NOTIFY_SEND_BUFFER" envDefault:"32"`
	WriteTimeout time.Duration `env:"NOTIFY_WRITE_TIMEOUT" envDefault:"5s"`
}
type WorkerConfig struct {
	ReconcileInterval time.Duration `env:"WORKER_RECONCILE_INTERVAL" envDefault:"2m"`
	ReconcileBatch    int           `env:"WORKER_RECONCILE_BATCH" envDefault:"50"`
	ReconcileGrace    time.Duration `env:"WORKER_RECONCILE_GRACE" envDefault:"30s"`
}

func Load() (*Config, error) {
	// .env is optional, real environment variables win
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Store.Driver != "postgres" && cfg.Store.Driver != "memory" {
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.Store.Driver)
	}
	return cfg, nil
}
