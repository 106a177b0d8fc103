package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the server's Prometheus collectors.
type Metrics struct {
	analyses   *prometheus.CounterVec
	rejected   *prometheus.CounterVec
	percentage prometheus.Histogram
	requests   *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lettergrade_analyses_total",
			Help: "Letters analysed, by classification",
		}, []string{"classification"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lettergrade_rejected_requests_total",
			Help: "Analyse requests rejected before scoring, by reason",
		}, []string{"reason"}),
		percentage: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lettergrade_overall_percentage",
			Help:    "Overall percentage of analysed letters",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lettergrade_http_request_duration_seconds",
			Help:    "HTTP request latency by route, method and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
	reg.MustRegister(m.analyses, m.rejected, m.percentage, m.requests)
	return m
}

func (m *Metrics) observeAnalysis(classification string, percentage int) {
	m.analyses.WithLabelValues(classification).Inc()
	m.percentage.Observe(float64(percentage))
}

func (m *Metrics) observeRejected(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) observeRequest(route, method, status string, elapsed time.Duration) {
	m.requests.WithLabelValues(route, method, status).Observe(elapsed.Seconds())
}
