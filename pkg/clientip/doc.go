// Package clientip resolves the address of the client behind a request.
//
// Forwarding headers are only honoured when the direct peer is a trusted
// proxy, so a client cannot pick its own rate limit key by sending
// X-Forwarded-For:
//
//	r.Use(clientip.Middleware(clientip.TrustLoopback()))
//	ip := clientip.FromContext(r.Context())
package clientip
