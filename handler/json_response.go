package handler

import (
	"encoding/json"
	"net/http"
)

// JSONResponse is the envelope of every JSON body. Exactly one of Data and
// Error is set.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail is the "error" member of a JSONResponse.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// JSONOption adjusts a JSON response before it is written.
type JSONOption func(status *int, body *JSONResponse)

// WithJSONStatus overrides the status code.
func WithJSONStatus(code int) JSONOption {
	return func(status *int, _ *JSONResponse) { *status = code }
}

// WithJSONMeta sets the "meta" member.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(_ *int, body *JSONResponse) { body.Meta = meta }
}

// WithJSONMessage replaces the message of an error envelope, typically with
// a translated one. It has no effect on data envelopes.
func WithJSONMessage(msg string) JSONOption {
	return func(_ *int, body *JSONResponse) {
		if body.Error != nil && msg != "" {
			body.Error.Message = msg
		}
	}
}

// JSON writes v in the {"data": ...} envelope with status 200. An error
// value is written like JSONError and a JSONResponse is written as is.
func JSON(v any, opts ...JSONOption) Response {
	switch v := v.(type) {
	case error:
		return JSONError(v, opts...)
	case JSONResponse:
		return writeJSON(http.StatusOK, v, opts)
	default:
		return writeJSON(http.StatusOK, JSONResponse{Data: v}, opts)
	}
}

// JSONError writes {"error": {...}} with the status of the HTTPError in
// err's chain. Other errors become a 500 whose message does not leak err.
func JSONError(err error, opts ...JSONOption) Response {
	he := httpError(err)
	return writeJSON(he.Code, JSONResponse{Error: &ErrorDetail{
		Code:    he.Key,
		Message: http.StatusText(he.Code),
	}}, opts)
}

func writeJSON(status int, body JSONResponse, opts []JSONOption) Response {
	for _, opt := range opts {
		opt(&status, &body)
	}
	return ResponseFunc(func(w http.ResponseWriter, _ *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		return json.NewEncoder(w).Encode(body)
	})
}
