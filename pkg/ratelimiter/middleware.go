package ratelimiter

import (
	"math"
	"net/http"
	"strconv"
)

// KeyFunc extracts the bucket key from a request. An empty key bypasses the
// limiter.
type KeyFunc func(r *http.Request) string

// Middleware sets the X-RateLimit-* headers on every response and hands
// denied requests to deny with Retry-After set. A nil deny writes a plain 429.
func Middleware(l *Limiter, key KeyFunc, deny http.Handler) func(http.Handler) http.Handler {
	if deny == nil {
		deny = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		})
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res := l.Allow(k)
			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(res.Remaining, 0)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				secs := int(math.Ceil(res.RetryAfter(l.now()).Seconds()))
				h.Set("Retry-After", strconv.Itoa(max(secs, 1)))
				deny.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
