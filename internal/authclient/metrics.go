package authclient

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker"
)

var circuitState = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "store_admin",
	Subsystem: "auth_client",
	Name:      "circuit_breaker_state",
	Help:      "Auth service circuit breaker state (0=closed, 1=open, 2=half-open).",
})

func setBreakerState(state gobreaker.State) {
	switch state {
	case gobreaker.StateOpen:
		circuitState.Set(1)
	case gobreaker.StateHalfOpen:
		circuitState.Set(2)
	default:
		circuitState.Set(0)
	}
}
