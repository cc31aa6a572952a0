package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/okian/fabcar-web/internal/adapters/ledgerstub"
	"github.com/okian/fabcar-web/internal/adapters/repository"
	"github.com/okian/fabcar-web/internal/config"
	"github.com/okian/fabcar-web/pkg/logger"
	"github.com/okian/fabcar-web/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("FABCAR_ADDR", ":9090")
			_ = os.Setenv("FABCAR_LEDGER_URL", "http://ledger:8000/")
			defer func() {
				_ = os.Unsetenv("FABCAR_ADDR")
				_ = os.Unsetenv("FABCAR_LEDGER_URL")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LedgerURL, convey.ShouldEqual, "http://ledger:8000")
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				manager := metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMainApplicationIntegration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	convey.Convey("Given the full route set wired to a ledger", t, func() {
		store := repository.NewMemoryStore(repository.WithSeed(repository.DemoCars()))
		ledgerSrv := httptest.NewServer(ledgerstub.NewRouter(store, nil))
		defer ledgerSrv.Close()

		cfg := *config.New()
		cfg.LedgerURL = ledgerSrv.URL
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		mux := newMux(ctx, cfg, logger.Nop())
		get := func(path string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))
			return w
		}

		convey.Convey("Then every route answers", func() {
			convey.So(get("/").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get("/queryAllCars").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get("/queryCar?carnumber=CAR3").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get("/healthz").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get("/metrics").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get("/static/style.css").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get("/api-docs").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get("/openapi.yaml").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get("/missing").Code, convey.ShouldEqual, http.StatusNotFound)
		})

		convey.Convey("Then the lookup reaches the ledger", func() {
			w := get("/queryCar?carnumber=CAR3")
			convey.So(strings.Contains(w.Body.String(), "Volkswagen"), convey.ShouldBeTrue)
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing system metrics updater", func() {
			convey.Convey("Then it should return once the context ends", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startSystemMetricsUpdater(ctx)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing system metrics update", func() {
			convey.Convey("Then it should update metrics without panicking", func() {
				convey.So(func() {
					updateSystemMetrics()
				}, convey.ShouldNotPanic)
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given main application error handling", t, func() {
		convey.Convey("When testing invalid configuration", func() {
			_ = os.Setenv("FABCAR_LEDGER_URL", "ledger:8000")
			defer func() { _ = os.Unsetenv("FABCAR_LEDGER_URL") }()

			convey.Convey("Then configuration loading should fail", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}
