package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lruHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "store_admin",
		Subsystem: "order_cache",
		Name:      "hits_total",
		Help:      "Total number of order cache hits.",
	})

	lruMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "store_admin",
		Subsystem: "order_cache",
		Name:      "misses_total",
		Help:      "Total number of order cache misses.",
	})

	lruSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "store_admin",
		Subsystem: "order_cache",
		Name:      "entries",
		Help:      "Current number of cached orders.",
	})
)
