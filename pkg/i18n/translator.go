package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/uns-visa/visakit/pkg/logger"
)

// Translator resolves dot-separated keys against catalogs loaded through an
// adapter. Catalogs are flattened once at load time and never change
// afterwards, so a Translator is safe for concurrent use without locking.
type Translator struct {
	// messages maps language -> "a.b.c" -> message.
	messages    map[string]map[string]string
	defaultLang string
	keyFallback bool
	warnMissing bool
	log         *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language consulted when a key is missing in
// the requested one. Empty is ignored.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether T returns the key itself for a missing
// message. Enabled by default.
func WithFallbackToKey(enabled bool) Option {
	return func(t *Translator) { t.keyFallback = enabled }
}

// WithLogger sets the logger. Nil keeps the current one.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.log = l
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every key that resolves
// in neither the requested nor the default language.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) { t.warnMissing = enabled }
}

// WithNoLogging silences the translator entirely.
func WithNoLogging() Option {
	return func(t *Translator) {
		t.log = logger.Discard()
		t.warnMissing = false
	}
}

// NewTranslator loads the catalogs from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		keyFallback: true,
		log:         logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	catalogs, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	t.messages = make(map[string]map[string]string, len(catalogs))
	for lang, tree := range catalogs {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		if tree == nil {
			return nil, fmt.Errorf("%w: language %q has no entries", ErrInvalidCatalog, lang)
		}
		flat := make(map[string]string)
		flatten(flat, "", tree)
		t.messages[lang] = flat
	}

	if len(t.messages) == 0 {
		t.log.WarnContext(ctx, "no translations loaded")
	} else {
		t.log.DebugContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	}
	return t, nil
}

// flatten copies the string leaves of tree into dst under dotted keys.
// Values of other types are skipped.
func flatten(dst map[string]string, prefix string, tree map[string]any) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := v.(type) {
		case string:
			dst[key] = v
		case map[string]any:
			flatten(dst, key, v)
		case map[any]any:
			sub := make(map[string]any, len(v))
			for kk, vv := range v {
				if ks, ok := kk.(string); ok {
					sub[ks] = vv
				}
			}
			flatten(dst, key, sub)
		}
	}
}

// SupportedLanguages returns the loaded language codes in sorted order.
func (t *Translator) SupportedLanguages() []string {
	return slices.Sorted(maps.Keys(t.messages))
}

// DefaultLanguage returns the language used when a request names none.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasTranslation reports whether lang itself defines key, ignoring the
// default language.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.messages[lang][key]
	return ok
}

func (t *Translator) resolve(lang, key string) (string, bool) {
	if msg, ok := t.messages[lang][key]; ok {
		return msg, true
	}
	if msg, ok := t.messages[t.defaultLang][key]; ok {
		return msg, true
	}
	if t.warnMissing {
		t.log.Warn("missing translation", slog.String("lang", lang), slog.String("key", key))
	}
	return "", false
}

// T translates key for lang. Args are name/value pairs for %{name}
// placeholders:
//
//	tr.T("ja", "validation.date.required", "label", "生年月日")
//	// 生年月日を入力してください
//
// A missing key yields the key itself, or "" with WithFallbackToKey(false).
func (t *Translator) T(lang, key string, args ...string) string {
	if msg, ok := t.resolve(lang, key); ok {
		return interpolate(msg, args)
	}
	if t.keyFallback {
		return interpolate(key, args)
	}
	return ""
}

// Td is T with an explicit default message for a missing key.
func (t *Translator) Td(lang, key, def string, args ...string) string {
	if msg, ok := t.resolve(lang, key); ok {
		return interpolate(msg, args)
	}
	return interpolate(def, args)
}

// Tc translates key in the language stored in ctx by Middleware.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// ExportJSON returns the flattened catalog of lang as a JSON object, for
// page scripts that render messages client-side.
func (t *Translator) ExportJSON(lang string) (string, error) {
	msgs, ok := t.messages[lang]
	if !ok {
		return "", &ErrLanguageNotSupported{Lang: lang}
	}
	b, err := json.Marshal(msgs)
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}
	return string(b), nil
}

// interpolate replaces %{name} placeholders from name/value pairs. A trailing
// unpaired arg is ignored and unknown placeholders are left as they are.
func interpolate(msg string, args []string) string {
	if len(args) < 2 || !strings.Contains(msg, "%{") {
		return msg
	}
	pairs := make([]string, 0, len(args)&^1)
	for i := 0; i+1 < len(args); i += 2 {
		pairs = append(pairs, "%{"+args[i]+"}", args[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}
