// Package metrics collects and exposes Prometheus metrics for the HTTP
// layer and the upload pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records request and upload metrics.
type Collector struct {
	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
	uploadSuccess prometheus.Counter
	uploadFail    *prometheus.CounterVec
	uploadBytes   prometheus.Counter
}

// NewCollector registers the metric set on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vitalis_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vitalis_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		uploadSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vitalis_uploads_success_total",
			Help: "Successful file uploads.",
		}),
		uploadFail: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vitalis_uploads_fail_total",
			Help: "Failed file uploads by failure step.",
		}, []string{"step"}),
		uploadBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vitalis_uploads_bytes_total",
			Help: "Total bytes written by the upload handler.",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.uploadSuccess,
		c.uploadFail,
		c.uploadBytes,
	)
	return c
}

func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordUploadSuccess(size int64) {
	c.uploadSuccess.Inc()
	c.uploadBytes.Add(float64(size))
}

func (c *Collector) RecordUploadFailure(step string) {
	c.uploadFail.WithLabelValues(step).Inc()
}

// Handler returns the scrape endpoint handler.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
