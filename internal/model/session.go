package model

import "time"

// SessionContext is the per-session record of the document currently being
// discussed. It is overwritten as a whole, never merged.
type SessionContext struct {
	DocumentID   int64
	DocumentName string
	LastAccess   time.Time
}

// ContextStore tracks the current document per conversation session.
// Implementations must be safe for concurrent use across sessions.
type ContextStore interface {
	Get(sessionID string) (SessionContext, bool)
	Set(sessionID string, documentID int64, documentName string)
}
