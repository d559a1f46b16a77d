// Package config defines service configuration structures and loading hooks.
//
// Conventions:
//   - Defaults come from New; Load layers an optional YAML file and HERMES_
//     environment variables on top.
//   - Load errors wrap ErrLoadConfig, validation errors wrap ErrInvalidConfig.
package config

import (
	"runtime"
	"time"
)

// Storage drivers.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log output.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// QueueSize bounds the in-memory submission queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of scoring workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets how many submission ids are remembered.
	DedupeSize int `koanf:"dedupe_size"`

	// StorageDriver is one of memory, sqlite, postgres.
	StorageDriver string `koanf:"storage_driver"`

	// StorageDSN is the sqlite path or postgres URL. Empty selects the
	// driver's default.
	StorageDSN string `koanf:"storage_dsn"`

	// AuthEnabled protects the API with bearer tokens. Off by default for
	// local use.
	AuthEnabled bool `koanf:"auth_enabled"`

	// JWTSecret signs HS256 tokens.
	JWTSecret string `koanf:"jwt_secret"`

	// TokenTTLHours is the token lifetime.
	TokenTTLHours int `koanf:"token_ttl_hours"`

	// Users maps adjudicator usernames to bcrypt password hashes.
	Users map[string]string `koanf:"users"`

	// CORSOrigins lists allowed browser origins; "*" allows any.
	CORSOrigins []string `koanf:"cors_origins"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		LogFormat:     "text",
		Addr:          ":9080",
		QueueSize:     10_000,
		WorkerCount:   runtime.NumCPU() * 2,
		DedupeSize:    50_000,
		StorageDriver: StorageMemory,
		TokenTTLHours: 7 * 24,
		CORSOrigins:   []string{"*"},
	}
}

// TokenTTL returns the token lifetime as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}
