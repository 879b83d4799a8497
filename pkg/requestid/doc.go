// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware keeps a client supplied X-Request-ID when it passes Valid and
// otherwise generates a UUID. The id is stored in the request context, echoed
// in the response header and picked up by loggers built with
// logger.WithContextExtractors(requestid.LogExtractor()).
package requestid
