// Package handler turns typed functions into http.HandlerFuncs.
//
// A HandlerFunc receives a Context and a request value filled by the
// configured binders, and returns a Response:
//
//	type fieldRequest struct {
//		Field string `json:"-" path:"field"`
//		Value string `json:"value"`
//	}
//
//	func checkField(ctx handler.Context, req fieldRequest) handler.Response {
//		res, err := jpfield.Validate(req.Field, req.Value, jpfield.WithLanguage(ctx.Lang()))
//		if err != nil {
//			return handler.Fail(errors.Join(handler.ErrNotFound, err))
//		}
//		return handler.JSON(res)
//	}
//
//	r.Post("/api/fields/{field}", handler.Wrap(checkField,
//		handler.WithBinders[handler.Context, fieldRequest](binder.Path(chi.URLParam), binder.JSON()),
//		handler.WithErrorHandler[handler.Context, fieldRequest](onError),
//	))
//
// JSON wraps data in the {"data": ...} envelope and JSONError writes
// {"error": {...}} with the status of the HTTPError in the chain. Templ
// renders a templ.Component, or an SSE element patch for DataStar requests;
// TemplPartial patches a fragment for DataStar and renders a full page
// otherwise.
//
// Bind, render and Fail errors go to the route's ErrorHandler.
// NewErrorHandler picks JSON, a DataStar toast or the error page from the
// request, translates the "errors.<key>" message and logs 5xx at error level.
package handler
