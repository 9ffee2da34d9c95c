package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec

	OrdersCreated prometheus.Counter
	Payments      *prometheus.CounterVec
}

// New builds the metric set on its own registry so repeated construction
// (e.g. in tests) never trips duplicate registration.
func New(service string) *Metrics {
	reg := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nexus",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"route", "status"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nexus",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"route"})

	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "nexus",
		Subsystem: service,
		Name:      "orders_created_total",
		Help:      "Orders successfully created from carts.",
	})

	payments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nexus",
		Subsystem: service,
		Name:      "payments_processed_total",
		Help:      "Payment attempts by result.",
	}, []string{"result"})

	reg.MustRegister(requests, latency, ordersCreated, payments)

	return &Metrics{
		registry:      reg,
		Requests:      requests,
		LatencyMS:     latency,
		OrdersCreated: ordersCreated,
		Payments:      payments,
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
