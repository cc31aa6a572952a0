package config_test

import (
	"testing"
	"time"

	"github.com/okian/fabcar-web/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LedgerURL, convey.ShouldEqual, "http://localhost:8000")
			convey.So(cfg.LedgerTimeoutMS, convey.ShouldEqual, 0)
			convey.So(cfg.LedgerTimeout(), convey.ShouldEqual, time.Duration(0))
			convey.So(cfg.MetricsEnabled, convey.ShouldBeTrue)
		})
	})
}
