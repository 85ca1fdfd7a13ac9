// Package metrics содержит prometheus-коллекторы HTTP API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Причины отказа в авторизации (label reason).
const (
	ReasonMissing = "missing"
	ReasonFormat  = "format"
	ReasonInvalid = "invalid"
	ReasonLogin   = "login"
)

// Metrics: набор коллекторов одного реестра.
type Metrics struct {
	registry *prometheus.Registry

	Requests     *prometheus.CounterVec
	Duration     *prometheus.HistogramVec
	AuthFailures *prometheus.CounterVec
}

// New регистрирует коллекторы в собственном реестре, чтобы тесты не конфликтовали
// с глобальным DefaultRegisterer.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "boltpass",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "boltpass",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		AuthFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "boltpass",
			Name:      "auth_failures_total",
			Help:      "Rejected authentication attempts by reason.",
		}, []string{"reason"}),
	}
	reg.MustRegister(
		m.Requests,
		m.Duration,
		m.AuthFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// AuthFailed увеличивает счётчик отказов. Безопасен для nil.
func (m *Metrics) AuthFailed(reason string) {
	if m == nil {
		return
	}
	m.AuthFailures.WithLabelValues(reason).Inc()
}

// Handler отдаёт /metrics для этого реестра.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
