// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown.
//
// A Server is built from Config, which carries the HTTP_* environment
// settings, and runs exactly once:
//
//	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
//	err := srv.Run(ctx, handler)
//
// Run blocks until its context is cancelled, SIGINT or SIGTERM is received,
// or Shutdown is called, then drains connections within ShutdownTimeout.
// HealthCheckHandler serves the JSON liveness and readiness probe mounted at
// /healthz.
package httpserver
