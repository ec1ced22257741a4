package model

import "context"

// TurnMetrics is the per-turn usage record emitted for downstream
// aggregation. The core only writes these; dashboards read them elsewhere.
type TurnMetrics struct {
	SessionID           string
	TokensUsed          int
	Cost                float64
	ResponseTimeSeconds float64
	ModelName           string
	UsedRetrieval       bool
	RetrievalChunkCount int
	UsedExternalSearch  bool
}

// MetricsSink accepts per-turn usage records.
type MetricsSink interface {
	Record(ctx context.Context, m TurnMetrics) error
}
