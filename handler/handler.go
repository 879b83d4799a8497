package handler

import (
	"errors"
	"net/http"

	"github.com/uns-visa/visakit/pkg/binder"
)

// HandlerFunc receives the bound request value R and returns the Response
// to render.
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response writes itself to w.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ResponseFunc adapts a function to Response.
type ResponseFunc func(w http.ResponseWriter, r *http.Request) error

func (f ResponseFunc) Render(w http.ResponseWriter, r *http.Request) error { return f(w, r) }

// Fail returns a Response that renders nothing and hands err to the route's
// ErrorHandler, which picks the representation.
func Fail(err error) Response {
	return ResponseFunc(func(http.ResponseWriter, *http.Request) error { return err })
}

// Bind decodes part of r into v, which is always a pointer.
type Bind func(r *http.Request, v any) error

// ErrorHandler writes the response for a failed bind or render.
type ErrorHandler[C Context] func(ctx C, err error)

// WrapOption configures Wrap.
type WrapOption[C Context, R any] func(*route[C, R])

type route[C Context, R any] struct {
	handle  HandlerFunc[C, R]
	binders []Bind
	onError ErrorHandler[C]
}

// WithBinders appends binders, applied in order so later ones override
// earlier ones. A binder that returns binder.ErrBinderNotApplicable is
// skipped.
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		for _, b := range binders {
			if b != nil {
				rt.binders = append(rt.binders, b)
			}
		}
	}
}

// WithErrorHandler replaces the plain text default.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		if h != nil {
			rt.onError = h
		}
	}
}

func plainError[C Context](ctx C, err error) {
	status := statusOf(err)
	http.Error(ctx.ResponseWriter(), http.StatusText(status), status)
}

// Wrap turns h into an http.HandlerFunc: the request is bound into a fresh
// R, h runs, and its Response is rendered. Failures at any step go to the
// ErrorHandler.
//
//	r.Post("/api/validate", handler.Wrap(s.validateForm,
//		handler.WithBinders[handler.Context, jpfield.Form](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, jpfield.Form](s.errorHandler),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	rt := &route[C, R]{handle: h, onError: plainError[C]}
	for _, opt := range opts {
		opt(rt)
	}
	return rt.serve
}

func (rt *route[C, R]) serve(w http.ResponseWriter, r *http.Request) {
	ctx, ok := NewContext(w, r).(C)
	if !ok {
		panic("handler: Wrap supports handler.Context only")
	}

	var req R
	if err := rt.bind(r, &req); err != nil {
		rt.onError(ctx, err)
		return
	}

	resp := rt.handle(ctx, req)
	if resp == nil {
		rt.onError(ctx, ErrNilResponse)
		return
	}
	if err := resp.Render(w, r); err != nil {
		rt.onError(ctx, err)
	}
}

func (rt *route[C, R]) bind(r *http.Request, req *R) error {
	for _, b := range rt.binders {
		err := b(r, req)
		if err == nil || errors.Is(err, binder.ErrBinderNotApplicable) {
			continue
		}
		return bindError(err)
	}
	return nil
}
