package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/uns-visa/visakit/pkg/logger"
)

// Option adjusts a Server beyond its Config.
type Option func(*Server)

// WithLogger sets the logger for lifecycle events and http.Server errors.
// Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithReady registers fn to be called with the bound address once the
// listener is open. Useful when Addr uses port 0.
func WithReady(fn func(net.Addr)) Option {
	return func(s *Server) {
		if fn != nil {
			s.ready = append(s.ready, fn)
		}
	}
}

// Server runs one http.Handler with graceful shutdown.
type Server struct {
	cfg   Config
	log   *slog.Logger
	ready []func(net.Addr)

	mu      sync.Mutex
	srv     *http.Server
	stopped bool
}

// New returns a Server for cfg. Missing fields get defaults.
func New(cfg Config, opts ...Option) *Server {
	s := &Server{cfg: cfg.withDefaults(), log: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run listens on the configured address and serves h until ctx is done,
// SIGINT or SIGTERM arrives, or Shutdown is called. A Server runs once.
func (s *Server) Run(ctx context.Context, h http.Handler) error {
	srv, err := s.claim(h)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}
	for _, fn := range s.ready {
		fn(ln.Addr())
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	served := make(chan error, 1)
	go func() { served <- srv.Serve(ln) }()
	s.log.InfoContext(ctx, "http server listening", slog.String("addr", ln.Addr().String()))

	select {
	case err = <-served:
	case <-ctx.Done():
		bg := context.WithoutCancel(ctx)
		s.log.InfoContext(bg, "http server stopping", logger.Error(context.Cause(ctx)))
		if serr := s.Shutdown(bg); serr != nil {
			s.log.ErrorContext(bg, "http server shutdown", logger.Error(serr))
		}
		err = <-served
	}

	if errors.Is(err, http.ErrServerClosed) {
		s.log.InfoContext(context.WithoutCancel(ctx), "http server stopped")
		return nil
	}
	return errors.Join(ErrStart, err)
}

func (s *Server) claim(h http.Handler) (*http.Server, error) {
	if h == nil {
		h = http.NotFoundHandler()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv != nil || s.stopped {
		return nil, errors.Join(ErrStart, ErrAlreadyRunning)
	}
	s.srv = &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      h,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(s.log.Handler(), slog.LevelWarn),
	}
	return s.srv, nil
}

// Shutdown drains open connections within the configured timeout. It is a
// no-op before Run and after the first call.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	if srv == nil || s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
