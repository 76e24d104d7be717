package http

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/portfolio/portfolio-backend/internal/config"
	"github.com/portfolio/portfolio-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, addr string) *HTTPServer {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	cfg := &config.Config{Server: config.ServerConfig{Addr: addr}}
	return NewHTTPServer(cfg, NewHTTPHandlers(service.NewHealthService()))
}

func TestHTTPServer_EndToEnd(t *testing.T) {
	srv := newTestServer(t, "127.0.0.1:0")

	listener, err := srv.Listen()
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(listener) }()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.NoError(t, srv.Stop(ctx))
		assert.NoError(t, <-done)
	})

	baseURL := "http://" + listener.Addr().String()
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(baseURL + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, RootGreeting, string(body))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	resp, err = client.Get(baseURL + "/api/health")
	require.NoError(t, err)
	var health map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Len(t, health, 3)
	assert.Equal(t, "healthy", health["status"])
	assert.Contains(t, health, "message")
	assert.Contains(t, health, "timestamp")

	req, err := http.NewRequest(http.MethodDelete, baseURL+"/api/health", nil)
	require.NoError(t, err)
	resp, err = client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestHTTPServer_ListenFailsWhenPortTaken(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	srv := newTestServer(t, occupied.Addr().String())

	listener, err := srv.Listen()
	assert.Error(t, err)
	assert.Nil(t, listener)
	assert.Contains(t, err.Error(), occupied.Addr().String())
}

func TestNewHTTPServer_UsesConfiguredAddr(t *testing.T) {
	srv := newTestServer(t, config.ListenAddr)
	assert.Equal(t, "0.0.0.0:3000", srv.server.Addr)
	assert.Equal(t, "0.0.0.0:3000", srv.config.Server.Addr)
	assert.NotNil(t, srv.Handler())
}
