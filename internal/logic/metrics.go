package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch outcomes used as metric labels and log fields.
const (
	OutcomeOK        = "ok"
	OutcomeNotFound  = "not_found"
	OutcomeMalformed = "malformed"
	OutcomeError     = "error"
)

// Prometheus metrics
var (
	documentsFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mcstats_documents_fetched_total",
		Help: "Stat documents requested during aggregation passes, by outcome",
	}, []string{"outcome"})

	fetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mcstats_document_fetch_duration_seconds",
		Help:    "Duration of a single stat document fetch",
		Buckets: prometheus.DefBuckets,
	})

	passDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mcstats_pass_duration_seconds",
		Help:    "Duration of a full aggregation pass over the player directory",
		Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	})

	playersWithoutData = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mcstats_players_without_data",
		Help: "Players that contributed nothing in the last aggregation pass",
	})
)
