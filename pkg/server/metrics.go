package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jobguard/go-jobguard/pkg/models"
)

// metrics holds the prometheus instruments. Each Server gets its own
// registry so parallel test servers never collide on registration.
type metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	verdictsTotal   *prometheus.CounterVec
	assessDuration  prometheus.Histogram
	rateLimited     prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobguard_http_requests_total",
			Help: "HTTP requests by method, path and status code.",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "jobguard_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		verdictsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobguard_assessments_total",
			Help: "Completed assessments by verdict.",
		}, []string{"verdict"}),
		assessDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "jobguard_assessment_duration_seconds",
			Help:    "Time spent running the analyzers and aggregation.",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25},
		}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jobguard_rate_limited_total",
			Help: "Requests rejected by the rate limiter.",
		}),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.verdictsTotal,
		m.assessDuration,
		m.rateLimited,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metrics) observeAssessment(verdict models.Verdict, elapsed time.Duration) {
	m.verdictsTotal.WithLabelValues(string(verdict)).Inc()
	m.assessDuration.Observe(elapsed.Seconds())
}
