// Package binder fills request structs from JSON bodies, form posts, query
// strings and router path parameters.
//
// Each binder handles only its own struct tag (form, query, path) or, for
// JSON, the whole body, so they can be stacked in handler.WithBinders. A
// binder that does not apply to a request returns ErrBinderNotApplicable and
// is skipped.
//
//	type FieldCheck struct {
//		Field string `path:"field"`
//		Value string `json:"value" form:"value" query:"value"`
//	}
//
//	handler.Wrap(h, handler.WithBinders[handler.Context, FieldCheck](
//		binder.Path(chi.URLParam),
//		binder.Query(),
//		binder.Form(),
//	))
package binder
