package binder

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultMaxMemory bounds multipart parsing.
const DefaultMaxMemory = 10 << 20

// Form binds `form` tagged fields from an urlencoded or multipart body.
// Requests without a body, and JSON bodies, are skipped with
// ErrBinderNotApplicable.
//
//	type FieldCheck struct {
//		Value       string `form:"value" query:"value"`
//		Nationality string `form:"nationality" query:"nationality"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !hasBody(r) {
			return ErrBinderNotApplicable
		}

		switch mt := mediaType(r); mt {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return errors.Join(ErrInvalidForm, err)
			}
			return bindValues(v, "form", r.PostForm, ErrInvalidForm)
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return errors.Join(ErrInvalidForm, err)
			}
			return bindValues(v, "form", r.MultipartForm.Value, ErrInvalidForm)
		case "application/json":
			return ErrBinderNotApplicable
		default:
			return fmt.Errorf("%w: got %q, expected form data", ErrUnsupportedMediaType, mt)
		}
	}
}

// Query binds `query` tagged fields from the URL query string.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindValues(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}

// Path binds `path` tagged fields using extractor, typically chi.URLParam.
func Path(extractor func(r *http.Request, key string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: nil extractor", ErrInvalidPath)
		}
		return bindFunc(v, "path", func(key string) []string {
			if s := extractor(r, key); s != "" {
				return []string{s}
			}
			return nil
		}, ErrInvalidPath)
	}
}
