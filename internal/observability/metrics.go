package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Package-level counters let the service layer record events without holding
// a reference to the observability server.
var (
	resolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docchat_reference_resolutions_total",
			Help: "Total number of reference resolution attempts by outcome",
		},
		[]string{"outcome"},
	)

	turnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docchat_chat_turns_total",
			Help: "Total number of reported chat turns by model and retrieval use",
		},
		[]string{"model", "retrieval"},
	)

	tokensUsedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "docchat_tokens_used_total",
			Help: "Total number of LLM tokens reported across chat turns",
		},
	)
)

// RecordResolution counts one resolution attempt.
func RecordResolution(resolved bool) {
	outcome := "miss"
	if resolved {
		outcome = "resolved"
	}
	resolutionsTotal.WithLabelValues(outcome).Inc()
}

// RecordTurn counts one reported chat turn.
func RecordTurn(model string, usedRetrieval bool, tokensUsed int) {
	turnsTotal.WithLabelValues(model, strconv.FormatBool(usedRetrieval)).Inc()
	tokensUsedTotal.Add(float64(tokensUsed))
}

func registerMetrics(reg prometheus.Registerer) {
	reg.MustRegister(resolutionsTotal)
	reg.MustRegister(turnsTotal)
	reg.MustRegister(tokensUsedTotal)
}
