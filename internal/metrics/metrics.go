package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	WebhooksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_requests_total",
			Help: "Webhook calls by endpoint and response status",
		},
		[]string{"endpoint", "status"},
	)

	RegistrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_registrations_total",
			Help: "Event registrations by outcome",
		},
		[]string{"outcome"}, // confirmed, sold_out, full, closed
	)

	FinanceTransactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finance_transactions_total",
			Help: "Recorded finance transactions",
		},
		[]string{"type"}, // receita, despesa
	)

	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)

	initOnce sync.Once
)

// /metrics endpoint handler
var Handler = promhttp.Handler

// Init registers the collectors on the default registry; repeated calls are no-ops.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal)
		prometheus.MustRegister(WebhooksTotal)
		prometheus.MustRegister(RegistrationsTotal)
		prometheus.MustRegister(FinanceTransactionsTotal)
		prometheus.MustRegister(WorkerQueueDepth)
	})
}
