package handler

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/uns-visa/visakit/pkg/i18n"
	"github.com/uns-visa/visakit/pkg/logger"
	"github.com/uns-visa/visakit/pkg/requestid"
)

// ErrorPageParams is passed to ErrorHandlerConfig.ErrorPage.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is passed to ErrorHandlerConfig.ErrorToast.
type ErrorToastParams struct {
	Message   string
	Type      string // error, warning or info
	RequestID string
}

// ErrorHandlerConfig holds the components NewErrorHandler renders. Every
// field is optional.
type ErrorHandlerConfig struct {
	// ErrorPage renders the full page for ordinary requests. Without it the
	// message is written as plain text.
	ErrorPage func(ErrorPageParams) templ.Component
	// ErrorToast renders the notification patched in for DataStar requests.
	ErrorToast func(ErrorToastParams) templ.Component
	// Translator localizes "errors.<key>" messages.
	Translator *i18n.Translator

	ToastTarget string // default "#toast-container"
	ToastMode   datastar.ElementPatchMode
}

// severity maps a status onto the toast type and log level.
func severity(status int) (string, slog.Level) {
	switch {
	case status >= http.StatusInternalServerError:
		return "error", slog.LevelError
	case status >= http.StatusBadRequest:
		return "warning", slog.LevelWarn
	default:
		return "info", slog.LevelInfo
	}
}

// NewErrorHandler returns the ErrorHandler shared by all routes. JSON clients
// get an error envelope, DataStar requests a toast patch and everything else
// the error page, each with the message in the request language.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}

	return func(ctx Context, err error) {
		r, w := ctx.Request(), ctx.ResponseWriter()
		he := httpError(err)
		kind, level := severity(he.Code)

		msg := http.StatusText(he.Code)
		if cfg.Translator != nil {
			msg = cfg.Translator.Td(ctx.Lang(), "errors."+he.Key, msg)
		}

		log.LogAttrs(ctx, level, "request failed",
			logger.Error(err),
			logger.Status(he.Code),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
		)

		var resp Response
		switch {
		case WantsJSON(r):
			resp = JSONError(err, WithJSONMessage(msg))
		case IsDataStar(r) && cfg.ErrorToast != nil:
			toast := cfg.ErrorToast(ErrorToastParams{Message: msg, Type: kind, RequestID: requestid.FromContext(ctx)})
			resp = Templ(toast, WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
		case cfg.ErrorPage != nil:
			resp = TemplStatus(he.Code, cfg.ErrorPage(ErrorPageParams{
				Error:      msg,
				StatusCode: he.Code,
				RequestID:  requestid.FromContext(ctx),
				RetryURL:   r.URL.Path,
			}))
		default:
			http.Error(w, msg, he.Code)
			return
		}

		if rerr := resp.Render(w, r); rerr != nil {
			log.ErrorContext(ctx, "render error response", logger.Error(rerr), logger.Status(he.Code))
		}
	}
}
