// Package metrics exposes prometheus instrumentation for HTTP requests and
// store operations.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ctxKey string

const routeLabelKey ctxKey = "metrics_route"

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autoledger_http_requests_total",
		Help: "Total number of HTTP requests processed.",
	}, []string{"method", "route"})

	httpErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autoledger_http_errors_total",
		Help: "Total number of HTTP requests resulting in server errors.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "autoledger_http_request_duration_seconds",
		Help:    "Histogram of latencies for HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	dbLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "autoledger_db_latency_seconds",
		Help:    "Histogram of database operation latencies.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "route"})

	repairedRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autoledger_repaired_records_total",
		Help: "Records whose canonical id was backfilled by the cleanup job.",
	}, []string{"collection"})
)

// Middleware records request metrics and stores the route label in the
// request context for downstream instrumentation.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), routeLabelKey, route))

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		method := c.Request.Method
		statusCode := strconv.Itoa(status)

		httpRequestsTotal.WithLabelValues(method, route).Inc()
		httpRequestDuration.WithLabelValues(method, route, statusCode).Observe(time.Since(start).Seconds())
		if status >= http.StatusInternalServerError {
			httpErrorsTotal.WithLabelValues(method, route, statusCode).Inc()
		}
	}
}

// Handler exposes the Prometheus metrics endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// ObserveDBLatency records database latency for a given operation, associating it with the request route when available.
func ObserveDBLatency(ctx context.Context, operation string, start time.Time) {
	dbLatency.WithLabelValues(operation, routeFromContext(ctx)).Observe(time.Since(start).Seconds())
}

// AddRepaired counts records fixed by the cleanup job.
func AddRepaired(collection string, n int) {
	if n > 0 {
		repairedRecords.WithLabelValues(collection).Add(float64(n))
	}
}

func routeFromContext(ctx context.Context) string {
	if route, ok := ctx.Value(routeLabelKey).(string); ok && route != "" {
		return route
	}
	return "unknown"
}
