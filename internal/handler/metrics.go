package handler

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "store_admin"

// Операции, по которым считаем запросы
const (
	opGetOrder        = "get_order"
	opDownloadInvoice = "download_invoice"
	opRenderInvoice   = "render_invoice"
	opRecovery        = "request_recovery"
	opAdminOrders     = "admin_orders"
)

var (
	ordersProcessed = newConsumerCounter("orders_processed_total", "Orders decoded, validated and saved.")
	ordersFailed    = newConsumerCounter("orders_failed_total", "Messages that could not be turned into a saved order.")
	ordersDLQ       = newConsumerCounter("orders_dlq_total", "Messages moved to the dead letter topic.")
	dlqWriteErrors  = newConsumerCounter("dlq_write_errors_total", "Failed attempts to write to the dead letter topic.")
	commitErrors    = newConsumerCounter("commit_errors_total", "Failed offset commits.")

	orderProcessingDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: "kafka_consumer",
		Name:      "order_processing_duration_seconds",
		Help:      "Time spent on one message, DLQ retries included.",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
	})

	ordersInProgress = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "kafka_consumer",
		Name:      "orders_in_progress",
		Help:      "Messages currently being handled.",
	})
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "Handled API requests by operation and response status.",
	}, []string{"operation", "status"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "API request latency by operation.",
		// рендер PDF и вызов сервиса авторизации заметно дольше чтения заказа
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation"})

	requestsInProgress = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "api",
		Name:      "requests_in_progress",
		Help:      "API requests in progress by operation.",
	}, []string{"operation"})
)

func newConsumerCounter(name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "kafka_consumer",
		Name:      name,
		Help:      help,
	})
}

// trackRequest отмечает начало операции; возвращённую функцию вызвать со статусом ответа.
func trackRequest(operation string) func(status int) {
	inProgress := requestsInProgress.WithLabelValues(operation)
	inProgress.Inc()
	start := time.Now()

	return func(status int) {
		inProgress.Dec()
		requestsTotal.WithLabelValues(operation, strconv.Itoa(status)).Inc()
		requestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersProcessed,
		ordersFailed,
		ordersDLQ,
		dlqWriteErrors,
		commitErrors,
		orderProcessingDuration,
		ordersInProgress,

		requestsTotal,
		requestDuration,
		requestsInProgress,
	)
}
