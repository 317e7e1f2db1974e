// AngelaMos | 2026
// metrics.go

package core

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	paymentAttempts *prometheus.CounterVec
	recordsCreated  *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		paymentAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "creatorcash_payment_attempts_total",
			Help: "Payment gateway charge attempts by method and outcome.",
		}, []string{"method", "outcome"}),
		recordsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "creatorcash_records_created_total",
			Help: "Transaction records appended to the ledger by kind.",
		}, []string{"kind"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "creatorcash_http_requests_total",
			Help: "HTTP requests by method and status class.",
		}, []string{"method", "status"}),
	}
}

func (m *Metrics) PaymentAttempt(method, outcome string) {
	m.paymentAttempts.WithLabelValues(method, outcome).Inc()
}

func (m *Metrics) RecordCreated(kind string) {
	m.recordsCreated.WithLabelValues(kind).Inc()
}

func (m *Metrics) HTTPRequest(method, status string) {
	m.httpRequests.WithLabelValues(method, status).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
