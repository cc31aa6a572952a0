package config_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/okian/fabcar-web/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LedgerURL, convey.ShouldEqual, "http://localhost:8000")
				convey.So(cfg.LedgerTimeoutMS, convey.ShouldEqual, 0)
				convey.So(cfg.MetricsEnabled, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("FABCAR_ADDR", ":9090")
			_ = os.Setenv("FABCAR_LEDGER_URL", "http://ledger.internal:8000/")
			_ = os.Setenv("FABCAR_LEDGER_TIMEOUT_MS", "2500")
			_ = os.Setenv("FABCAR_METRICS_ENABLED", "false")
			_ = os.Setenv("FABCAR_LOG_LEVEL", "debug")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LedgerURL, convey.ShouldEqual, "http://ledger.internal:8000")
				convey.So(cfg.LedgerTimeout(), convey.ShouldEqual, 2500*time.Millisecond)
				convey.So(cfg.MetricsEnabled, convey.ShouldBeFalse)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When only PORT is set", func() {
			_ = os.Setenv("PORT", "3000")

			cfg, err := config.Load(ctx)

			convey.Convey("Then the listen address follows it", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":3000")
			})
		})

		convey.Convey("When PORT and FABCAR_ADDR are both set", func() {
			_ = os.Setenv("PORT", "3000")
			_ = os.Setenv("FABCAR_ADDR", "127.0.0.1:4000")

			cfg, err := config.Load(ctx)

			convey.Convey("Then FABCAR_ADDR wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, "127.0.0.1:4000")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
# front end settings
addr: ":7070"
ledger_url: "https://ledger.example.com"
ledger_timeout_ms: 1000
log_level: warn
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("FABCAR_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.LedgerURL, convey.ShouldEqual, "https://ledger.example.com")
				convey.So(cfg.LedgerTimeoutMS, convey.ShouldEqual, 1000)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.MetricsEnabled, convey.ShouldBeTrue) // From defaults
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":7070"
ledger_url: "https://ledger.example.com"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("FABCAR_CONFIG", tmpFile)
			_ = os.Setenv("FABCAR_ADDR", ":8181")

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8181")                             // Overridden by env
				convey.So(cfg.LedgerURL, convey.ShouldEqual, "https://ledger.example.com") // From file
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("FABCAR_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("FABCAR_CONFIG", "/non/existent/file.yaml")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("FABCAR_ADDR", "")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a relative ledger URL", func() {
			_ = os.Setenv("FABCAR_LEDGER_URL", "localhost:8000")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "ledger_url")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a negative timeout", func() {
			_ = os.Setenv("FABCAR_LEDGER_TIMEOUT_MS", "-5")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("FABCAR_LEDGER_TIMEOUT_MS", "soon")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"PORT",
		"FABCAR_CONFIG",
		"FABCAR_ADDR",
		"FABCAR_LOG_LEVEL",
		"FABCAR_LEDGER_URL",
		"FABCAR_LEDGER_TIMEOUT_MS",
		"FABCAR_METRICS_ENABLED",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "fabcar-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
