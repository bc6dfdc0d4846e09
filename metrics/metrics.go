package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	initOnce sync.Once

	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Store round-trip metrics
	DBOperationDuration *prometheus.HistogramVec
)

// Init registers the metric collectors under the given name prefix.
// Safe to call more than once; only the first call registers.
func Init(prefix string) {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		)
		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		)
		DBOperationDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_db_operation_duration_seconds",
				Help:    "Duration of store operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		)
	})
}

// Middleware records request count and duration per route and status.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if HTTPRequestsTotal == nil {
			return
		}

		path := c.FullPath()
		if path == "" {
			// Unrouted requests (static fallback, 404s) are grouped together
			// to keep the label set bounded.
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration)
	}
}

// TrackDBOperation returns a function that records the elapsed time of a
// single store round trip:
//
//	defer metrics.TrackDBOperation("cities_list")(time.Now())
func TrackDBOperation(operation string) func(start time.Time) {
	return func(start time.Time) {
		if DBOperationDuration == nil {
			return
		}
		DBOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
