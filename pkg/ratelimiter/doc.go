// Package ratelimiter is an in-memory token bucket limiter keyed by an
// arbitrary string, usually the client address.
//
//	l, err := ratelimiter.New(ratelimiter.Config{Capacity: 60, RefillRate: 1, RefillInterval: time.Second})
//	go l.Run(ctx, time.Minute, time.Hour)
//	r.Use(ratelimiter.Middleware(l, func(r *http.Request) string {
//		return clientip.FromContext(r.Context())
//	}, nil))
package ratelimiter
