package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"creative-sync/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the shared notification dedup store.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Sync holds engine and backend selection settings.
	Sync configs.Sync `envPrefix:"SYNC_"`

	// Partner configures the partner transport.
	Partner configs.Partner `envPrefix:"PARTNER_"`

	// Webhook configures notification delivery.
	Webhook configs.Webhook `envPrefix:"WEBHOOK_"`
}

// Load reads configuration from environment variables into a Config. A
// .env file in the working directory is loaded first when present; real
// environment variables take precedence over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Sync.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
