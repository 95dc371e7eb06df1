// Package config loads process configuration from the environment. A local
// .env file is read first when present so development runs need no exports.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string `env:"AGORA_ADDR,default=:8080"`
	JWTSigningKey string `env:"JWT_SIGNING_KEY,default=dev-secret-key-change-in-production"`
	Environment   string `env:"AGORA_ENV,default=development"`
	LogLevel      string `env:"LOG_LEVEL,default=info"`

	// BootstrapAdmin is granted SystemAdmin at startup when set.
	BootstrapAdmin string `env:"AGORA_BOOTSTRAP_ADMIN"`

	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Access   AccessConfig
	Features FeatureConfig
	Payout   PayoutConfig
}

// PostgresConfig selects the durable store. An empty DSN keeps every store in
// memory.
type PostgresConfig struct {
	DSN             string        `env:"DATABASE_URL"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,default=20"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,default=5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME,default=30m"`
}

// RedisConfig configures the shared cache and feature flag store. An empty URL
// falls back to the in-process cache.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	PoolSize     int           `env:"REDIS_POOL_SIZE,default=10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS,default=2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT,default=5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT,default=3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT,default=3s"`
}

// KafkaConfig configures the membership event bus. No brokers means events are
// delivered in process.
type KafkaConfig struct {
	Brokers       []string `env:"KAFKA_BROKERS"`
	ConsumerGroup string   `env:"KAFKA_CONSUMER_GROUP,default=agora-access"`
	ClientID      string   `env:"KAFKA_CLIENT_ID,default=agora"`
}

// AccessConfig tunes the access evaluator cache.
type AccessConfig struct {
	CacheTTL time.Duration `env:"ACCESS_CACHE_TTL,default=5m"`
}

// FeatureConfig sets flag defaults for territories without an explicit value.
type FeatureConfig struct {
	MarketplaceDefault bool `env:"MARKETPLACE_ENABLED_BY_DEFAULT,default=false"`
}

// PayoutConfig configures the external payout gateway and the batch worker.
type PayoutConfig struct {
	GatewayURL     string        `env:"PAYOUT_GATEWAY_URL"`
	GatewayAPIKey  string        `env:"PAYOUT_GATEWAY_API_KEY"`
	GatewayTimeout time.Duration `env:"PAYOUT_GATEWAY_TIMEOUT,default=10s"`
	GatewayRetries int           `env:"PAYOUT_GATEWAY_RETRIES,default=2"`
	BatchInterval  time.Duration `env:"PAYOUT_BATCH_INTERVAL,default=1h"`
	BatchEnabled   bool          `env:"PAYOUT_BATCH_ENABLED,default=true"`
}

// IsProduction reports whether the process runs with production settings.
func (s Server) IsProduction() bool {
	return s.Environment == "production"
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Server{}, fmt.Errorf("load .env: %w", err)
	}
	return decode()
}

func decode() (Server, error) {
	var cfg Server
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Server{}, fmt.Errorf("decode env: %w", err)
	}
	if cfg.IsProduction() && cfg.JWTSigningKey == "dev-secret-key-change-in-production" {
		return Server{}, errors.New("JWT_SIGNING_KEY must be set in production")
	}
	return cfg, nil
}
