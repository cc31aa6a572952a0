package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "FABCAR_"

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. PORT, when set, becomes ":<PORT>"
//  3. file (YAML) if FABCAR_CONFIG is set
//  4. env (prefix FABCAR_)
func Load(_ context.Context) (*Config, error) {
	base := New()
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		base.Addr = ":" + port
	}

	k := koanf.New(".")

	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// Environment variables: FABCAR_ADDR, FABCAR_LEDGER_URL, ...
	// Map env keys like FABCAR_LEDGER_URL -> ledger_url (flat keys).
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, strings.ToLower(envPrefix))
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	// The file path is not a config key.
	k.Delete("config")

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.LedgerTimeoutMS < 0 {
		return fmt.Errorf("%w: ledger_timeout_ms must not be negative", ErrInvalidConfig)
	}
	u, err := url.Parse(c.LedgerURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: ledger_url must be an absolute http(s) URL, got %q", ErrInvalidConfig, c.LedgerURL)
	}
	c.LedgerURL = strings.TrimRight(c.LedgerURL, "/")
	return nil
}
