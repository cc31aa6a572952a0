// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Config is built once at startup and treated as read-only afterwards.
// - Load layers defaults, an optional YAML file and environment variables.
// - Validation errors wrap ErrInvalidConfig; loading errors wrap ErrLoadConfig.
package config

import (
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LedgerURL is the base address of the ledger REST API.
	LedgerURL string `koanf:"ledger_url"`

	// LedgerTimeoutMS bounds each ledger call. Zero keeps the transport default.
	LedgerTimeoutMS int `koanf:"ledger_timeout_ms"`

	// MetricsEnabled exposes GET /metrics and turns recording on.
	MetricsEnabled bool `koanf:"metrics_enabled"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":8080",
		LedgerURL:       "http://localhost:8000",
		LedgerTimeoutMS: 0,
		MetricsEnabled:  true,
	}
}

// LedgerTimeout returns LedgerTimeoutMS as a duration.
func (c *Config) LedgerTimeout() time.Duration {
	return time.Duration(c.LedgerTimeoutMS) * time.Millisecond
}
