package resolver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jmfontan/docchat-server/internal/mocks"
	"github.com/jmfontan/docchat-server/internal/model"
	"github.com/jmfontan/docchat-server/internal/resolver"
	"github.com/jmfontan/docchat-server/internal/session"
	"github.com/jmfontan/docchat-server/internal/testutil"
)

func TestResolver_ExplicitID_Lookup(t *testing.T) {
	docs := mocks.NewDocumentStore(t)
	sessions := session.NewStore(0, 0)
	r := resolver.New(docs, sessions, time.Second, testutil.MakeNoopLogger())

	docs.On("GetByDisplayID", mock.Anything, "5").
		Return(model.Document{ID: 105, DisplayID: "5", Name: "informe.pdf"}, nil).Once()

	// Session context is ignored when an explicit id is present.
	sessions.Set("sess", 999, "otro.pdf")

	res, ok := r.Resolve(context.Background(), "sess", "¿qué dice el ID:5?")
	require.True(t, ok)
	assert.Equal(t, int64(105), res.DocumentID)
	assert.Equal(t, "informe.pdf", res.DocumentName)

	// Explicit resolution becomes the new session context.
	current, ok := sessions.Get("sess")
	require.True(t, ok)
	assert.Equal(t, int64(105), current.DocumentID)
	assert.Equal(t, "informe.pdf", current.DocumentName)
}

func TestResolver_ExplicitID_Variants(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "colon", text: "resume el ID:7"},
		{name: "space", text: "resume el id 7"},
		{name: "uppercase no separator", text: "what does ID7 say"},
		{name: "colon and space", text: "ID: 7 por favor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := mocks.NewDocumentStore(t)
			sessions := session.NewStore(0, 0)
			r := resolver.New(docs, sessions, time.Second, testutil.MakeNoopLogger())

			docs.On("GetByDisplayID", mock.Anything, "7").
				Return(model.Document{ID: 70, Name: "doc"}, nil).Once()

			res, ok := r.Resolve(context.Background(), "sess", tt.text)
			require.True(t, ok)
			assert.Equal(t, int64(70), res.DocumentID)
		})
	}
}

func TestResolver_ExplicitID_NumericFallback(t *testing.T) {
	docs := mocks.NewDocumentStore(t)
	sessions := session.NewStore(0, 0)
	r := resolver.New(docs, sessions, time.Second, testutil.MakeNoopLogger())

	docs.On("GetByDisplayID", mock.Anything, "12").
		Return(model.Document{}, model.ErrNotFound).Once()

	res, ok := r.Resolve(context.Background(), "sess", "abre el id 12")
	require.True(t, ok)
	assert.Equal(t, int64(12), res.DocumentID)
	assert.Empty(t, res.DocumentName)
}

func TestResolver_ExplicitID_LookupFailure(t *testing.T) {
	docs := mocks.NewDocumentStore(t)
	sessions := session.NewStore(0, 0)
	r := resolver.New(docs, sessions, time.Second, testutil.MakeNoopLogger())

	docs.On("GetByDisplayID", mock.Anything, "5").
		Return(model.Document{}, assert.AnError).Once()

	// Collaborator outage degrades to a miss, never a turn failure.
	_, ok := r.Resolve(context.Background(), "sess", "ID:5")
	assert.False(t, ok)
}

func TestResolver_ContextualCue(t *testing.T) {
	docs := mocks.NewDocumentStore(t)
	sessions := session.NewStore(0, 0)
	r := resolver.New(docs, sessions, time.Second, testutil.MakeNoopLogger())

	sessions.Set("sess", 42, "tesis.pdf")

	res, ok := r.Resolve(context.Background(), "sess", "explícame este documento")
	require.True(t, ok)
	assert.Equal(t, int64(42), res.DocumentID)
	assert.Equal(t, "tesis.pdf", res.DocumentName)

	res, ok = r.Resolve(context.Background(), "sess", "summarize THIS PDF please")
	require.True(t, ok)
	assert.Equal(t, int64(42), res.DocumentID)
}

func TestResolver_ContextualCue_NoContext(t *testing.T) {
	docs := mocks.NewDocumentStore(t)
	sessions := session.NewStore(0, 0)
	r := resolver.New(docs, sessions, time.Second, testutil.MakeNoopLogger())

	_, ok := r.Resolve(context.Background(), "sess", "explícame este documento")
	assert.False(t, ok)
}

func TestResolver_NoReference(t *testing.T) {
	docs := mocks.NewDocumentStore(t)
	sessions := session.NewStore(0, 0)
	r := resolver.New(docs, sessions, time.Second, testutil.MakeNoopLogger())

	_, ok := r.Resolve(context.Background(), "sess", "hola")
	assert.False(t, ok)
}

func TestResolver_SessionsIsolated(t *testing.T) {
	docs := mocks.NewDocumentStore(t)
	sessions := session.NewStore(0, 0)
	r := resolver.New(docs, sessions, time.Second, testutil.MakeNoopLogger())

	sessions.Set("sess-a", 1, "a.pdf")
	sessions.Set("sess-b", 2, "b.pdf")

	res, ok := r.Resolve(context.Background(), "sess-b", "qué dice este pdf")
	require.True(t, ok)
	assert.Equal(t, int64(2), res.DocumentID)
}
