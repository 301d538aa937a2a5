// Package metrics exposes the Prometheus collectors of the build pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "app_builder"

var (
	BuildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "builds_total",
		Help:      "Finished orchestration runs by outcome and failing stage.",
	}, []string{"outcome", "stage"})

	BuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "build_duration_seconds",
		Help:      "Wall time of orchestration runs.",
		Buckets:   []float64{5, 15, 30, 60, 120, 300, 600},
	}, []string{"outcome"})

	PlatformRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "platform_requests_total",
		Help:      "Control-plane calls by operation and outcome.",
	}, []string{"operation", "outcome"})

	PlatformRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "platform_request_duration_seconds",
		Help:      "Latency of control-plane calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	TeardownWarningsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "teardown_warnings_total",
		Help:      "Non-fatal failures collected during teardown.",
	})

	StaleBuildsReapedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stale_builds_reaped_total",
		Help:      "Projects moved from building to error by the reaper.",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Served HTTP requests.",
	}, []string{"method", "route", "status"})
)

// Outcome labels
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// ObserveBuild records one finished orchestration run. stage is empty on success.
func ObserveBuild(stage string, started time.Time) {
	outcome := OutcomeSuccess
	if stage != "" {
		outcome = OutcomeFailure
	}
	BuildsTotal.WithLabelValues(outcome, stage).Inc()
	BuildDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}

// ObservePlatformRequest records one control-plane call
func ObservePlatformRequest(operation string, err error, started time.Time) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	PlatformRequestsTotal.WithLabelValues(operation, outcome).Inc()
	PlatformRequestDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}

// GinMiddleware counts requests by matched route
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
