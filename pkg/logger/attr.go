package logger

import (
	"log/slog"
	"strconv"
)

// Error logs err under "error". Nil yields an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	var group []slog.Attr
	for i, err := range errs {
		if err != nil {
			group = append(group, slog.Any(strconv.Itoa(i), err))
		}
	}
	if group == nil {
		return slog.Attr{}
	}
	return Group("errors", group...)
}

func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// optional returns an empty Attr for an empty value.
func optional(key, value string) slog.Attr {
	if value == "" {
		return slog.Attr{}
	}
	return slog.String(key, value)
}

// Request scoped.

func RequestID(id string) slog.Attr   { return optional("request_id", id) }
func ClientIP(ip string) slog.Attr    { return optional("client_ip", ip) }
func Method(m string) slog.Attr       { return slog.String("method", m) }
func Path(p string) slog.Attr         { return slog.String("path", p) }
func Status(code int) slog.Attr       { return slog.Int("status", code) }
func Component(name string) slog.Attr { return slog.String("component", name) }
func Handler(name string) slog.Attr   { return slog.String("handler", name) }

// Visa forms.

// Field names the form field being validated, e.g. "passportNumber".
func Field(name string) slog.Attr { return slog.String("field", name) }

// Code is the message key of a validation result, e.g.
// "validation.passport.format". Valid results carry none.
func Code(key string) slog.Attr { return optional("code", key) }

func Lang(tag string) slog.Attr { return slog.String("lang", tag) }

// Page is the nav key of a rendered shell page.
func Page(key string) slog.Attr { return slog.String("page", key) }
