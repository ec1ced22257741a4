package observability

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmfontan/docchat-server/internal/testutil"
)

func startServer(t *testing.T, ready ReadinessChecker) *Server {
	t.Helper()
	s := NewServer("127.0.0.1:0", ready, testutil.MakeNoopLogger())
	_, err := s.Start()
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Stop(ctx)
	})
	return s
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestServer_Liveness(t *testing.T) {
	s := startServer(t, nil)

	code, body := get(t, fmt.Sprintf("http://%s/healthz/liveness", s.Addr()))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok\n", body)
}

func TestServer_Readiness(t *testing.T) {
	ready := false
	s := startServer(t, func(context.Context) bool { return ready })

	url := fmt.Sprintf("http://%s/healthz/readiness", s.Addr())

	code, _ := get(t, url)
	assert.Equal(t, http.StatusServiceUnavailable, code)

	ready = true
	code, _ = get(t, url)
	assert.Equal(t, http.StatusOK, code)
}

func TestServer_Metrics(t *testing.T) {
	s := startServer(t, nil)

	RecordResolution(true)
	RecordResolution(false)
	RecordTurn("gpt-4o-mini", true, 128)

	code, body := get(t, fmt.Sprintf("http://%s/metrics", s.Addr()))
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "docchat_reference_resolutions_total")
	assert.Contains(t, body, "docchat_chat_turns_total")
}

func TestServer_StartTwice(t *testing.T) {
	s := startServer(t, nil)

	_, err := s.Start()
	assert.Error(t, err)
}

func TestServer_StopIdempotent(t *testing.T) {
	s := NewServer("127.0.0.1:0", nil, testutil.MakeNoopLogger())
	_, err := s.Start()
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Stop(ctx))
	require.NoError(t, s.Stop(ctx))
}
