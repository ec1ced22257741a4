package model

import (
	"context"
	"time"
)

// DocumentStore looks up indexed documents. Indexing itself happens in an
// external pipeline; this core only reads.
type DocumentStore interface {
	// GetByDisplayID finds a document by its user-facing display identifier
	// (the short number shown in listings, distinct from the internal id).
	GetByDisplayID(ctx context.Context, displayID string) (Document, error)
	GetByID(ctx context.Context, id int64) (Document, error)
}

// Document represents an indexed document referenced in conversation.
type Document struct {
	ID        int64
	DisplayID string
	Name      string
	S3Key     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
