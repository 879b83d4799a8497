package logger

import (
	"io"
	"log/slog"
	"os"
)

// Format selects the slog handler New builds.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Option configures New.
type Option func(*options)

type options struct {
	level      slog.Level
	format     Format
	out        io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// WithLevel sets the minimum level. Info by default.
func WithLevel(l slog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithFormat sets the output format. Anything but FormatText means JSON.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithTextFormatter is shorthand for WithFormat(FormatText).
func WithTextFormatter() Option { return WithFormat(FormatText) }

// WithJSONFormatter is shorthand for WithFormat(FormatJSON).
func WithJSONFormatter() Option { return WithFormat(FormatJSON) }

// WithOutput sets the destination. Nil keeps stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) { o.attrs = append(o.attrs, attrs...) }
}

// WithContextExtractors registers callbacks that add attributes taken from
// the context of each *Context logging call. Nil entries are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		for _, ex := range extractors {
			if ex != nil {
				o.extractors = append(o.extractors, ex)
			}
		}
	}
}

// WithEnvironment applies the preset for env and tags records with service
// and env. Development logs text at debug; staging and production log JSON at
// info. A later WithLevel or WithFormat still overrides the preset.
func WithEnvironment(env Environment, service string) Option {
	return func(o *options) {
		if env == Production || env == Staging {
			o.level, o.format = slog.LevelInfo, FormatJSON
		} else {
			env = Development
			o.level, o.format = slog.LevelDebug, FormatText
		}
		if service != "" {
			o.attrs = append(o.attrs, slog.String("service", service))
		}
		o.attrs = append(o.attrs, slog.String("env", string(env)))
	}
}

// New builds a logger. Records pass through the registered context
// extractors before reaching the text or JSON handler.
func New(opts ...Option) *slog.Logger {
	o := options{level: slog.LevelInfo, format: FormatJSON, out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	ho := &slog.HandlerOptions{Level: o.level}
	var h slog.Handler = slog.NewJSONHandler(o.out, ho)
	if o.format == FormatText {
		h = slog.NewTextHandler(o.out, ho)
	}
	if len(o.attrs) > 0 {
		h = h.WithAttrs(o.attrs)
	}
	if len(o.extractors) > 0 {
		h = &contextHandler{Handler: h, extractors: o.extractors}
	}
	return slog.New(h)
}

// Discard returns a logger that drops everything. Components that take an
// optional logger default to it.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
