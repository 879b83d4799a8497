package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/uns-visa/visakit/pkg/logger"
)

// Check is a named readiness probe.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// Health is the JSON body written by HealthCheckHandler.
type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

const (
	StatusAlive    = "alive"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// HealthCheckHandler serves liveness when no checks are given and readiness
// otherwise. Every check runs with the request context; any failure turns the
// response into 503 with the failing check marked in the body.
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		body := Health{Status: StatusAlive}
		code := http.StatusOK

		if len(checks) > 0 {
			body.Status = StatusReady
			body.Checks = make(map[string]string, len(checks))
			for _, c := range checks {
				if err := c.Fn(ctx); err != nil {
					log.WarnContext(ctx, "readiness check failed", slog.String("check", c.Name), logger.Error(err))
					body.Checks[c.Name] = err.Error()
					body.Status = StatusNotReady
					code = http.StatusServiceUnavailable
					continue
				}
				body.Checks[c.Name] = "ok"
			}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(body)
	}
}
