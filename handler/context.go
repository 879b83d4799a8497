package handler

import (
	"context"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/uns-visa/visakit/pkg/i18n"
)

// Context is the request's context.Context plus access to the request, the
// writer and the DataStar stream.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	// SSE opens the event stream on first use. It is nil for requests that
	// did not come from DataStar.
	SSE() *datastar.ServerSentEventGenerator
	// Lang is the UI language chosen by i18n.Middleware.
	Lang() string
}

// NewContext returns the Context Wrap passes to handlers.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &requestContext{Context: r.Context(), w: w, r: r}
}

type requestContext struct {
	context.Context
	w   http.ResponseWriter
	r   *http.Request
	sse *datastar.ServerSentEventGenerator
}

func (c *requestContext) Request() *http.Request              { return c.r }
func (c *requestContext) ResponseWriter() http.ResponseWriter { return c.w }
func (c *requestContext) Lang() string                        { return i18n.GetLocale(c.Context) }

func (c *requestContext) SSE() *datastar.ServerSentEventGenerator {
	if c.sse == nil && IsDataStar(c.r) {
		c.sse = datastar.NewSSE(c.w, c.r)
	}
	return c.sse
}
