package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"agency-ops/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). Demo data
	// is only seeded outside prod.
	Env string `env:"ENV" envDefault:"prod"`

	// Store selects the persistence adapter: "postgres" or "sqlite".
	Store configs.Store `envPrefix:"STORE_"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// SQLite configures the embedded store.
	SQLite configs.SQLite `envPrefix:"SQLITE_"`

	// Auth configures bearer token verification.
	Auth configs.Auth `envPrefix:"AUTH_"`

	// Ledger holds invoicing defaults and write retry limits.
	Ledger configs.Ledger `envPrefix:"LEDGER_"`
}

// Load reads an optional .env file from the working directory and then the
// environment into a Config. Variables already set in the environment win
// over the file. All fields are loaded with their specified defaults when
// no variable is provided.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks settings that have no safe default.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case configs.DriverPostgres, configs.DriverSQLite:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Auth.Secret == "" {
		return errors.New("AUTH_SECRET is required")
	}
	return nil
}
