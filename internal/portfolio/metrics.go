package portfolio

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	persistFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cinefolio",
		Subsystem: "storage",
		Name:      "persist_failures_total",
		Help:      "Writes rejected by the key-value backend.",
	}, []string{"key"})

	parseFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cinefolio",
		Subsystem: "storage",
		Name:      "parse_failures_total",
		Help:      "Stored values that could not be decoded and were replaced by their default.",
	}, []string{"key"})
)
