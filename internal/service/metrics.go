package service

import "github.com/prometheus/client_golang/prometheus"

var (
	invoicesGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "store_admin",
			Subsystem: "invoice",
			Name:      "generated_total",
			Help:      "Total number of invoice requests by source of the document",
		},
		[]string{"source"},
	)

	recoveryRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "store_admin",
			Subsystem: "recovery",
			Name:      "requests_total",
			Help:      "Total number of password recovery requests by result",
		},
		[]string{"result"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		invoicesGenerated,
		recoveryRequests,
	)
}
