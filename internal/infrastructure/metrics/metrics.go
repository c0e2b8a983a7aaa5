// Package metrics holds the Prometheus collectors for the service.
//
// Wire it once in the router:
//
//	e.Use(middleware.Metrics(m))
//	e.GET("/metrics", echo.WrapHandler(m.Handler()))
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "agrimarket"

type Metrics struct {
	Registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	RequestTotal    *prometheus.CounterVec
	RequestInFlight prometheus.Gauge

	ContractsCreated     *prometheus.CounterVec
	ContractTransitions  *prometheus.CounterVec
	PaymentVerifications *prometheus.CounterVec
	InsightsGenerated    *prometheus.CounterVec
	NotificationsSent    *prometheus.CounterVec
}

// New builds a fresh registry so tests never collide on global registration.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		RequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		RequestInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
		ContractsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contract",
			Name:      "created_total",
			Help:      "Contracts created, by creator role.",
		}, []string{"role"}),
		ContractTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contract",
			Name:      "transitions_total",
			Help:      "Contract status transitions, by outcome.",
		}, []string{"from", "to", "outcome"}),
		PaymentVerifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payment",
			Name:      "verifications_total",
			Help:      "Payment signature verifications, by result.",
		}, []string{"result"}),
		InsightsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ai",
			Name:      "insights_generated_total",
			Help:      "AI insights generated, by risk level.",
		}, []string{"risk"}),
		NotificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notification",
			Name:      "sent_total",
			Help:      "Notifications dispatched, by type and result.",
		}, []string{"type", "result"}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDuration,
		m.RequestTotal,
		m.RequestInFlight,
		m.ContractsCreated,
		m.ContractTransitions,
		m.PaymentVerifications,
		m.InsightsGenerated,
		m.NotificationsSent,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// The helpers below are nil-safe so usecases can run without metrics in tests.

func (m *Metrics) ContractCreated(role string) {
	if m == nil {
		return
	}
	m.ContractsCreated.WithLabelValues(role).Inc()
}

func (m *Metrics) ContractTransition(from, to, outcome string) {
	if m == nil {
		return
	}
	m.ContractTransitions.WithLabelValues(from, to, outcome).Inc()
}

func (m *Metrics) PaymentVerification(result string) {
	if m == nil {
		return
	}
	m.PaymentVerifications.WithLabelValues(result).Inc()
}

func (m *Metrics) InsightGenerated(risk string) {
	if m == nil {
		return
	}
	m.InsightsGenerated.WithLabelValues(risk).Inc()
}

func (m *Metrics) NotificationSent(kind, result string) {
	if m == nil {
		return
	}
	m.NotificationsSent.WithLabelValues(kind, result).Inc()
}
