package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test_namespace")
			subsystemOpt := WithSubsystem("test_subsystem")
			metricPrefixOpt := WithMetricPrefix("test_prefix")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)
			customLabelsOpt := WithCustomLabels(map[string]string{"env": "test"})

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(metricPrefixOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
				So(customLabelsOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should register under the default namespace", func() {
				So(manager, ShouldNotBeNil)
				manager.ledgerRequests.WithLabelValues("queryCar", "ok").Inc()
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				So(names, ShouldContain, "fabcar_web_ledger_requests_total")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithMetricPrefix("test_prefix"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithCustomLabels(map[string]string{"env": "test", "version": "1.0"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then names carry the namespace, subsystem and prefix", func() {
				So(manager, ShouldNotBeNil)
				manager.lookupsAbsent.Inc()
				n, err := testutil.GatherAndCount(registry, "test_namespace_test_subsystem_test_prefix_lookups_absent_total")
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 1)
			})
		})

		Convey("When creating with empty or nil option values", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithMetricPrefix(""),
				WithHistogramBuckets(nil),
				WithCustomLabels(nil),
				WithPrometheusRegistry(nil),
				WithPrometheusRegistry(registry),
			)

			Convey("Then defaults are kept", func() {
				So(manager.namespace, ShouldEqual, "fabcar")
				So(manager.subsystem, ShouldEqual, "web")
				So(manager.metricPrefix, ShouldEqual, "")
				So(len(manager.histogramBuckets), ShouldBeGreaterThan, 0)
				So(manager.customLabels, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		SetEnabled(true)

		Convey("When recording ledger calls", func() {
			before := testutil.ToFloat64(globalManager.ledgerRequests.WithLabelValues("createCar", "error"))
			RecordLedgerRequest("createCar", "error", 12.5)
			RecordLedgerRequest("createCar", "error", 3)

			Convey("Then the counter grows per call", func() {
				after := testutil.ToFloat64(globalManager.ledgerRequests.WithLabelValues("createCar", "error"))
				So(after-before, ShouldEqual, 2.0)
			})
		})

		Convey("When recording fallbacks", func() {
			absent := testutil.ToFloat64(globalManager.lookupsAbsent)
			rejected := testutil.ToFloat64(globalManager.submissionsRejected)
			RecordLookupAbsent()
			RecordSubmissionRejected()
			RecordSubmissionRejected()

			Convey("Then both counters move", func() {
				So(testutil.ToFloat64(globalManager.lookupsAbsent)-absent, ShouldEqual, 1.0)
				So(testutil.ToFloat64(globalManager.submissionsRejected)-rejected, ShouldEqual, 2.0)
			})
		})

		Convey("When recording HTTP metrics", func() {
			So(func() {
				RecordHTTPRequest("queryAllCars", "GET", "200")
				RecordHTTPRequestDuration("queryAllCars", "GET", "200", 5.0)
				RecordErrorByEndpoint("changeCarOwner", "POST", "server_error")
			}, ShouldNotPanic)
		})

		Convey("When recording system metrics", func() {
			So(func() {
				UpdateSystemMemoryUsage(1024 * 1024 * 100)
				UpdateSystemGoroutineCount(100)
				RecordSystemGCPauseTime(1.0)
			}, ShouldNotPanic)
		})

		Convey("When metrics are disabled", func() {
			SetEnabled(false)
			defer SetEnabled(true)
			before := testutil.ToFloat64(globalManager.lookupsAbsent)
			RecordLookupAbsent()

			Convey("Then nothing is recorded", func() {
				So(testutil.ToFloat64(globalManager.lookupsAbsent), ShouldEqual, before)
			})
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given metrics concurrency", t, func() {
		Convey("When recording metrics concurrently", func() {
			done := make(chan bool, 10)

			for i := 0; i < 10; i++ {
				go func() {
					for j := 0; j < 100; j++ {
						RecordLedgerRequest("queryAllCars", "ok", float64(j))
						RecordHTTPRequest("/test", "GET", "200")
					}
					done <- true
				}()
			}

			for i := 0; i < 10; i++ {
				<-done
			}

			Convey("Then it should handle concurrent access without panics", func() {
				So(GetRegistry(), ShouldNotBeNil)
			})
		})
	})
}
