package http_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/fleet-dispatch/internal/adapters/http"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// tripTypes answers the trip listing with a fixed body.
func tripTypes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/trip/types", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"types":["intercity","local","space"]}`)
	})
	return mux
}

// serve starts s on a loopback listener and returns the channel Serve's
// result is sent on.
func serve(t *testing.T, s *adapthttp.Server) <-chan error {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ln) }()
	return errCh
}

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.ServerConfig
		want string
	}{
		{name: "ipv4", cfg: config.ServerConfig{Host: "127.0.0.1", Port: 9090}, want: "127.0.0.1:9090"},
		{name: "all interfaces", cfg: config.ServerConfig{Port: 8080}, want: ":8080"},
		{name: "ipv6", cfg: config.ServerConfig{Host: "::1", Port: 8080}, want: "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, adapthttp.NewServer(tt.cfg, tripTypes(), nil).Addr())
		})
	}
}

func TestServer_ServeAndShutdown(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	s := adapthttp.NewServer(config.ServerConfig{
		Host:         "127.0.0.1",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}, tripTypes(), slog.New(slog.NewTextHandler(&logs, nil)))
	errCh := serve(t, s)

	require.Eventually(t, func() bool { return s.Addr() != "127.0.0.1:0" }, time.Second, 5*time.Millisecond)

	resp, err := http.Get("http://" + s.Addr() + "/api/v1/trip/types")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"types":["intercity","local","space"]}`, string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))
	require.NoError(t, <-errCh)

	assert.Contains(t, logs.String(), "serving dispatch API")
	assert.Contains(t, logs.String(), "draining dispatch API")
}

func TestServer_ShutdownWithoutDeadline(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1"}, tripTypes(), discardLogger())
	errCh := serve(t, s)

	require.Eventually(t, func() bool { return s.Addr() != "127.0.0.1:0" }, time.Second, 5*time.Millisecond)
	require.NoError(t, s.Shutdown(context.Background()))
	require.NoError(t, <-errCh)
}

func TestServer_StartReportsListenError(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	port := ln.Addr().(*net.TCPAddr).Port
	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: port}, tripTypes(), discardLogger())

	err = s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listening on")
}
