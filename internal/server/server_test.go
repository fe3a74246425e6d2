package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/InQaaaaGit/yt_summary/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestHTTPServer_RunServesAndStops(t *testing.T) {
	addr := freeAddress(t)
	cfg := &config.Config{ServerAddress: addr, ShutdownTimeout: time.Second}

	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	srv := NewHTTPServer(&http.Server{Addr: addr, Handler: mux}, cfg, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestHTTPServer_RunReturnsListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	addr := l.Addr().String()
	cfg := &config.Config{ServerAddress: addr}
	srv := NewHTTPServer(&http.Server{Addr: addr, Handler: http.NewServeMux()}, cfg, zap.NewNop())

	err = srv.Run(context.Background())
	assert.Error(t, err)
}

func TestHTTPServer_StartHTTPSWithoutCertificates(t *testing.T) {
	addr := freeAddress(t)
	cfg := &config.Config{
		ServerAddress: addr,
		EnableHTTPS:   "true",
		TLSCertFile:   "missing.crt",
		TLSKeyFile:    "missing.key",
	}
	srv := NewHTTPServer(&http.Server{Addr: addr}, cfg, zap.NewNop())

	err := srv.Start()
	assert.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	logger, cleanup := InitLogger()
	require.NotNil(t, logger)
	assert.NotPanics(t, cleanup)
}
