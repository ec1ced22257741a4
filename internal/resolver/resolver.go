// Package resolver maps natural-language document references in chat turns
// to internal document identifiers.
package resolver

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jmfontan/docchat-server/internal/logger"
	"github.com/jmfontan/docchat-server/internal/model"
)

// DefaultLookupTimeout bounds the display-id lookup so a slow document store
// cannot stall a conversational turn.
const DefaultLookupTimeout = 2 * time.Second

// idPattern matches an explicit reference: "ID" followed by an optional
// colon/whitespace and a decimal number ("ID:5", "id 12").
var idPattern = regexp.MustCompile(`(?i)\bid\s*:?\s*(\d+)`)

// contextCues are the anaphoric phrases that refer back to the document
// currently under discussion. Matched as case-insensitive substrings.
var contextCues = []string{
	"este documento",
	"ese documento",
	"este pdf",
	"ese pdf",
	"este archivo",
	"este libro",
	"this document",
	"that document",
	"this pdf",
	"that pdf",
	"this file",
	"this book",
}

// Resolution is the outcome of a successful reference resolution.
type Resolution struct {
	DocumentID   int64
	DocumentName string // empty when unknown (numeric fallback)
}

// Resolver resolves utterance references, consulting the document store for
// explicit identifiers and the session context store for anaphora.
type Resolver struct {
	documents     model.DocumentStore
	sessions      model.ContextStore
	lookupTimeout time.Duration
	logger        *logger.Logger
}

// New creates a Resolver. A non-positive lookupTimeout falls back to
// DefaultLookupTimeout.
func New(documents model.DocumentStore, sessions model.ContextStore, lookupTimeout time.Duration, logger *logger.Logger) *Resolver {
	if lookupTimeout <= 0 {
		lookupTimeout = DefaultLookupTimeout
	}
	return &Resolver{
		documents:     documents,
		sessions:      sessions,
		lookupTimeout: lookupTimeout,
		logger:        logger,
	}
}

// Resolve inspects the utterance and returns the referenced document, if
// any. Resolution order, first match wins:
//
//  1. explicit "ID:n" pattern, resolved by display id through the document
//     store, falling back to the raw number as internal id when the display
//     id is unknown;
//  2. anaphoric cue ("this PDF") resolved from the session context;
//  3. miss, and the turn proceeds without document grounding.
//
// An explicit resolution updates the session context so later anaphora refer
// to it. Document store outages degrade to a miss with a logged warning
// rather than failing the turn.
func (r *Resolver) Resolve(ctx context.Context, sessionID, text string) (Resolution, bool) {
	if m := idPattern.FindStringSubmatch(text); m != nil {
		return r.resolveExplicit(ctx, sessionID, m[1])
	}

	if containsCue(text) {
		if current, ok := r.sessions.Get(sessionID); ok {
			return Resolution{DocumentID: current.DocumentID, DocumentName: current.DocumentName}, true
		}
	}

	return Resolution{}, false
}

func (r *Resolver) resolveExplicit(ctx context.Context, sessionID, displayID string) (Resolution, bool) {
	lookupCtx, cancel := context.WithTimeout(ctx, r.lookupTimeout)
	defer cancel()

	doc, err := r.documents.GetByDisplayID(lookupCtx, displayID)
	switch {
	case err == nil:
		r.sessions.Set(sessionID, doc.ID, doc.Name)
		return Resolution{DocumentID: doc.ID, DocumentName: doc.Name}, true

	case errors.Is(err, model.ErrNotFound):
		// Best-effort fallback: treat the display number as the internal id.
		// Wrong whenever display and internal id spaces diverge.
		id, parseErr := strconv.ParseInt(displayID, 10, 64)
		if parseErr != nil {
			return Resolution{}, false
		}
		r.sessions.Set(sessionID, id, "")
		return Resolution{DocumentID: id}, true

	default:
		r.logger.Warn("document lookup failed, resolving without document context",
			"session_id", sessionID,
			"display_id", displayID,
			"error", err.Error())
		return Resolution{}, false
	}
}

func containsCue(text string) bool {
	lower := strings.ToLower(text)
	for _, cue := range contextCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}
