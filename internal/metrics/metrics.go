// Package metrics provides Prometheus metrics collection for the storefront service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CartOperationsTotal tracks cart mutations by operation and result.
	CartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation", "result"},
	)

	// RiskAnalysesTotal tracks risk-gate analyses by resulting tier.
	RiskAnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risk_analyses_total",
			Help: "Total number of risk-gate analyses",
		},
		[]string{"tier"},
	)

	// RiskAnalysisDuration tracks risk analysis duration including the
	// simulated latency.
	RiskAnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "risk_analysis_duration_seconds",
			Help:    "Risk analysis duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0},
		},
	)

	// CheckoutSettlementsTotal tracks checkout settlements by outcome.
	CheckoutSettlementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_settlements_total",
			Help: "Total number of checkout settlement attempts",
		},
		[]string{"mode", "status"},
	)

	// CheckoutSettlementDuration tracks settlement duration.
	CheckoutSettlementDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "checkout_settlement_duration_seconds",
			Help:    "Checkout settlement duration in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 2.0, 3.0, 5.0, 10.0},
		},
	)

	// PersistenceFailuresTotal tracks cart persistence failures by kind.
	PersistenceFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "persistence_failures_total",
			Help: "Total number of cart persistence failures",
		},
		[]string{"kind"},
	)

	// ActiveGates tracks currently pending risk gates.
	ActiveGates = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "risk_gates_active",
			Help: "Number of currently open risk gates",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCartOperation records a cart mutation outcome.
func RecordCartOperation(operation, result string) {
	CartOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordRiskAnalysis records a completed risk analysis.
func RecordRiskAnalysis(tier string, duration time.Duration) {
	RiskAnalysesTotal.WithLabelValues(tier).Inc()
	RiskAnalysisDuration.Observe(duration.Seconds())
}

// RecordSettlement records a checkout settlement attempt.
func RecordSettlement(mode, status string, duration time.Duration) {
	CheckoutSettlementsTotal.WithLabelValues(mode, status).Inc()
	CheckoutSettlementDuration.Observe(duration.Seconds())
}

// RecordPersistenceFailure records a cart persistence failure.
// Kind is "read" or "write".
func RecordPersistenceFailure(kind string) {
	PersistenceFailuresTotal.WithLabelValues(kind).Inc()
}
