package mcpserver

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/macroplate/macroplate/internal/signup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_StartStop(t *testing.T) {
	srv := setupTestServer(t, &flakySubmitter{})

	addr, err := srv.Start(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(addr, "127.0.0.1:"))
	assert.Equal(t, "http://"+addr+"/mcp", srv.URL())

	_, err = srv.Start(context.Background(), "")
	require.Error(t, err, "second start fails")

	body := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"1.0.0"}}}`
	resp, err := http.Post(srv.URL(), "application/json", strings.NewReader(body))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	startSession(t, srv)
	require.NoError(t, srv.Stop())
	assert.Equal(t, 0, srv.sessions.len(), "sessions are discarded on stop")
	require.NoError(t, srv.Stop(), "stop is idempotent")
}

func TestServer_EvictsIdleSessions(t *testing.T) {
	t.Parallel()

	srv := New(Options{
		Rules:              signup.DefaultRecommendationRules(),
		Submitter:          &flakySubmitter{},
		SessionIdleTimeout: 10 * time.Minute,
	})
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	srv.sessions.now = func() time.Time { return now }

	idle := startSession(t, srv)
	active := startSession(t, srv)

	now = now.Add(8 * time.Minute)
	decodeStatus(t, call(t, srv.handleStatus, map[string]any{"session_id": active}))
	assert.Equal(t, 0, srv.evictIdleSessions(), "nothing idle yet")

	now = now.Add(5 * time.Minute)
	assert.Equal(t, 1, srv.evictIdleSessions())
	assert.Equal(t, 1, srv.sessions.len())

	result := call(t, srv.handleStatus, map[string]any{"session_id": idle})
	assert.True(t, result.IsError)
	assert.Contains(t, extractText(result), "unknown session")

	decodeStatus(t, call(t, srv.handleStatus, map[string]any{"session_id": active}))
}
