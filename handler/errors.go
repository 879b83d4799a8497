package handler

import (
	"errors"
	"net/http"

	"github.com/uns-visa/visakit/pkg/binder"
)

// ErrNilResponse is reported when a HandlerFunc returns nil.
var ErrNilResponse = errors.New("handler: nil response")

// HTTPError pairs a status code with a message key looked up under
// "errors." in the locale catalogs.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string { return e.Key }

// NewHTTPError returns an HTTPError for code and key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest            = NewHTTPError(http.StatusBadRequest, "bad_request")
	ErrNotFound              = NewHTTPError(http.StatusNotFound, "not_found")
	ErrMethodNotAllowed      = NewHTTPError(http.StatusMethodNotAllowed, "method_not_allowed")
	ErrRequestEntityTooLarge = NewHTTPError(http.StatusRequestEntityTooLarge, "request_entity_too_large")
	ErrUnsupportedMediaType  = NewHTTPError(http.StatusUnsupportedMediaType, "unsupported_media_type")
	ErrUnprocessableEntity   = NewHTTPError(http.StatusUnprocessableEntity, "unprocessable_entity")
	ErrTooManyRequests       = NewHTTPError(http.StatusTooManyRequests, "too_many_requests")
	ErrInternalServerError   = NewHTTPError(http.StatusInternalServerError, "internal")
)

// httpError returns the HTTPError in err's chain, or ErrInternalServerError.
func httpError(err error) HTTPError {
	var he HTTPError
	if errors.As(err, &he) {
		return he
	}
	return ErrInternalServerError
}

func statusOf(err error) int { return httpError(err).Code }

// bindError classifies a binder failure. The cause stays in the chain for
// logging.
func bindError(err error) error {
	var class HTTPError
	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		class = ErrUnsupportedMediaType
	case errors.Is(err, binder.ErrBodyTooLarge):
		class = ErrRequestEntityTooLarge
	case errors.Is(err, binder.ErrInvalidTarget):
		class = ErrInternalServerError
	default:
		class = ErrBadRequest
	}
	return errors.Join(class, err)
}
