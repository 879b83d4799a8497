package httpserver_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uns-visa/visakit/pkg/httpserver"
)

var hello = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	_, _ = io.WriteString(w, "こんにちは")
})

// start runs srv in the background and returns the bound address and the
// channel receiving Run's result.
func start(t *testing.T, ctx context.Context, cfg httpserver.Config, h http.Handler) (*httpserver.Server, string, <-chan error) {
	t.Helper()
	addrCh := make(chan string, 1)
	srv := httpserver.New(cfg, httpserver.WithReady(func(a net.Addr) { addrCh <- a.String() }))

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, h) }()

	select {
	case addr := <-addrCh:
		return srv, addr, done
	case err := <-done:
		t.Fatalf("run returned early: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not start")
	}
	return nil, "", nil
}

func wait(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return")
		return nil
	}
}

func TestRunServesUntilContextDone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, addr, done := start(t, ctx, httpserver.Config{Addr: "127.0.0.1:0"}, hello)

	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "こんにちは", string(body))

	cancel()
	require.NoError(t, wait(t, done))
}

func TestShutdown(t *testing.T) {
	t.Parallel()

	srv, _, done := start(t, context.Background(), httpserver.Config{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second}, hello)

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, wait(t, done))
	require.NoError(t, srv.Shutdown(context.Background()), "second shutdown is a no-op")

	err := srv.Run(context.Background(), hello)
	require.ErrorIs(t, err, httpserver.ErrStart)
	require.ErrorIs(t, err, httpserver.ErrAlreadyRunning)
}

func TestShutdownBeforeRun(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.Config{})
	require.NoError(t, srv.Shutdown(context.Background()))
}

func TestRunTwice(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv, _, done := start(t, ctx, httpserver.Config{Addr: "127.0.0.1:0"}, hello)

	err := srv.Run(ctx, hello)
	require.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

	cancel()
	require.NoError(t, wait(t, done))
}

func TestRunListenFailure(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := httpserver.New(httpserver.Config{Addr: ln.Addr().String()})
	err = srv.Run(context.Background(), hello)
	require.ErrorIs(t, err, httpserver.ErrStart)
}

func TestNilHandlerServesNotFound(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, addr, done := start(t, ctx, httpserver.Config{Addr: "127.0.0.1:0"}, nil)

	resp, err := http.Get("http://" + addr + "/anything")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	require.NoError(t, wait(t, done))
}
