package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uns-visa/visakit/handler"
)

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("data envelope", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, handler.JSON(map[string]any{"valid": true}).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"data":{"valid":true}}`, rec.Body.String())
	})

	t.Run("meta and status", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		resp := handler.JSON([]string{"a"},
			handler.WithJSONMeta(map[string]any{"count": 1}),
			handler.WithJSONStatus(http.StatusAccepted),
		)
		require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.JSONEq(t, `{"data":["a"],"meta":{"count":1}}`, rec.Body.String())
	})

	t.Run("error value", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, handler.JSON(handler.ErrNotFound).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":{"code":"not_found","message":"Not Found"}}`, rec.Body.String())
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		opts       []handler.JSONOption
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"http error", handler.ErrBadRequest, nil, http.StatusBadRequest, "bad_request", "Bad Request"},
		{"wrapped http error", errors.Join(handler.ErrUnsupportedMediaType, errors.New("text/plain")), nil, http.StatusUnsupportedMediaType, "unsupported_media_type", "Unsupported Media Type"},
		{"generic error hides details", errors.New("db password wrong"), nil, http.StatusInternalServerError, "internal", "Internal Server Error"},
		{"translated message", handler.ErrNotFound, []handler.JSONOption{handler.WithJSONMessage("ページが見つかりません")}, http.StatusNotFound, "not_found", "ページが見つかりません"},
		{"unprocessable", handler.ErrUnprocessableEntity, nil, http.StatusUnprocessableEntity, "unprocessable_entity", "Unprocessable Entity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			require.NoError(t, handler.JSONError(tt.err, tt.opts...).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body handler.JSONResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMsg, body.Error.Message)
		})
	}
}

func TestFail(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Fail(handler.ErrNotFound)
	}, handler.WithErrorHandler[handler.Context, struct{}](func(ctx handler.Context, err error) {
		got = err
		handler.JSONError(err).Render(ctx.ResponseWriter(), ctx.Request())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/visa-renewal.html", nil))
	require.ErrorIs(t, got, handler.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTempl(t *testing.T) {
	t.Parallel()

	t.Run("html", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, handler.Templ(text("<p>ok</p>")).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "<p>ok</p>", rec.Body.String())
	})

	t.Run("status", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, handler.TemplStatus(http.StatusNotFound, text("missing")).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "missing", rec.Body.String())
	})

	t.Run("partial for datastar", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Datastar-Request", "true")
		rec := httptest.NewRecorder()
		resp := handler.TemplPartial(text(`<div id="hint">partial</div>`), text("full"), handler.WithTarget("#hint"))
		require.NoError(t, resp.Render(rec, req))

		body := rec.Body.String()
		assert.Contains(t, body, "event: datastar-patch-elements")
		assert.Contains(t, body, "partial")
		assert.Contains(t, body, "#hint")
		assert.NotContains(t, body, "full")
	})

	t.Run("full page otherwise", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		resp := handler.TemplPartial(text("partial"), text("full"))
		require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, "full", rec.Body.String())
	})
}
