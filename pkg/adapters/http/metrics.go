package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "datashield_runs_total",
		Help: "Sanitization runs by mode and outcome.",
	}, []string{"mode", "status"})

	affectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "datashield_parameters_affected_total",
		Help: "Parameters affected by action category.",
	}, []string{"category"})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "datashield_run_duration_seconds",
		Help:    "Duration of sanitization passes.",
		Buckets: prometheus.DefBuckets,
	})
)
