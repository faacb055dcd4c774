// internal/config/config.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is the environment-driven configuration of the API server.
type Config struct {
	Port        string `env:"PORT" envDefault:"5000" validate:"required"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	StoreDriver string `env:"STORE_DRIVER" envDefault:"file" validate:"oneof=file postgres mongo memory"`

	// File backend.
	DataDir string `env:"DATA_DIR" envDefault:"./data"`

	// Postgres backend.
	DatabaseURL string `env:"DATABASE_URL" validate:"required_if=StoreDriver postgres"`

	// Mongo backend.
	MongoURI      string `env:"MONGO_URI" validate:"required_if=StoreDriver mongo"`
	MongoDatabase string `env:"MONGO_DB" envDefault:"storeadmin"`

	// Tracing; empty disables the exporter.
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	// Request rate limiting.
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"50"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"100"`
}

// Load reads .env when present, then the environment, then validates the
// result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
