package postgres

import (
	"context"
	"fmt"

	"github.com/jmfontan/docchat-server/internal/model"
)

var _ model.MetricsSink = (*MetricsRepository)(nil)

// MetricsRepository appends per-turn usage records for downstream
// aggregation. Write-only from the core's perspective.
type MetricsRepository struct {
	db DB
}

func NewMetricsRepository(db DB) *MetricsRepository {
	return &MetricsRepository{
		db: db,
	}
}

func (r *MetricsRepository) Record(ctx context.Context, m model.TurnMetrics) error {
	query := `INSERT INTO chat_metrics
			  (session_id, tokens_used, cost, response_time_seconds, model_name, used_retrieval, retrieval_chunk_count, used_external_search)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		m.SessionID, m.TokensUsed, m.Cost, m.ResponseTimeSeconds,
		m.ModelName, m.UsedRetrieval, m.RetrievalChunkCount, m.UsedExternalSearch,
	)
	if err != nil {
		return fmt.Errorf("failed to insert chat metrics: %w", err)
	}

	return nil
}
