package skedda

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skedda_client",
			Name:      "operations_total",
			Help:      "SDK operations by name and outcome.",
		},
		[]string{"op", "outcome"},
	)

	sessionsEstablishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "skedda_client",
			Name:      "sessions_established_total",
			Help:      "Successful credential exchanges.",
		},
	)
)

func recordOp(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	operationsTotal.WithLabelValues(op, outcome).Inc()
}
