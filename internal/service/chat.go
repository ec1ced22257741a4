package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jmfontan/docchat-server/internal/logger"
	"github.com/jmfontan/docchat-server/internal/model"
	"github.com/jmfontan/docchat-server/internal/observability"
	"github.com/jmfontan/docchat-server/internal/resolver"
)

// ReferenceResolver resolves document references in chat turns.
type ReferenceResolver interface {
	Resolve(ctx context.Context, sessionID, text string) (resolver.Resolution, bool)
}

// DocumentURLExpiry is how long a presigned document download link stays valid.
const DocumentURLExpiry = 15 * time.Minute

// Chat orchestrates the per-turn conversational path: reference resolution,
// session context updates, document file access and usage metrics emission.
type Chat struct {
	resolver  ReferenceResolver
	sessions  model.ContextStore
	documents model.DocumentStore
	storage   model.Storage
	metrics   model.MetricsSink
	logger    *logger.Logger
}

// NewChat creates a Chat service.
func NewChat(
	resolver ReferenceResolver,
	sessions model.ContextStore,
	documents model.DocumentStore,
	storage model.Storage,
	metrics model.MetricsSink,
	logger *logger.Logger,
) *Chat {
	return &Chat{
		resolver:  resolver,
		sessions:  sessions,
		documents: documents,
		storage:   storage,
		metrics:   metrics,
		logger:    logger,
	}
}

// ResolveTurn resolves the document reference of one chat turn, if any.
// A miss is normal control flow: the caller proceeds without document
// grounding.
func (s *Chat) ResolveTurn(ctx context.Context, sessionID, text string) (resolver.Resolution, bool) {
	res, ok := s.resolver.Resolve(ctx, sessionID, text)
	observability.RecordResolution(ok)

	if ok {
		s.logger.Debug("Chat service: reference resolved",
			"session_id", sessionID,
			"document_id", res.DocumentID)
	}

	return res, ok
}

// SetCurrentDocument pins a document as the session's current context.
func (s *Chat) SetCurrentDocument(ctx context.Context, sessionID string, documentID int64) (model.Document, error) {
	doc, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to get document by id: %w", err)
	}

	s.sessions.Set(sessionID, doc.ID, doc.Name)

	s.logger.Info("Chat service: current document set",
		"session_id", sessionID,
		"document_id", doc.ID)

	return doc, nil
}

// DocumentURL returns a time-limited download URL for the document's file.
func (s *Chat) DocumentURL(ctx context.Context, documentID int64) (string, error) {
	doc, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return "", fmt.Errorf("failed to get document by id: %w", err)
	}

	exists, err := s.storage.Exists(ctx, doc.S3Key)
	if err != nil {
		return "", fmt.Errorf("failed to stat document file: %w", err)
	}
	if !exists {
		return "", model.ErrNotFound
	}

	url, err := s.storage.PresignedURL(ctx, doc.S3Key, DocumentURLExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign document url: %w", err)
	}

	return url, nil
}

// ReportTurn records one turn's usage metrics for downstream aggregation.
func (s *Chat) ReportTurn(ctx context.Context, m model.TurnMetrics) error {
	if err := s.metrics.Record(ctx, m); err != nil {
		return fmt.Errorf("failed to record turn metrics: %w", err)
	}

	observability.RecordTurn(m.ModelName, m.UsedRetrieval, m.TokensUsed)

	return nil
}
