package i18n

import (
	"context"
	"net/http"
)

type localeKey struct{}

// SetLocale returns a copy of ctx carrying lang.
func SetLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeKey{}, lang)
}

// GetLocale returns the language stored by SetLocale, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if lang, ok := ctx.Value(localeKey{}).(string); ok && lang != "" {
		return lang
	}
	return DefaultLanguage
}

// Middleware resolves the request language with extract (DefaultLangExtractor
// when nil) and stores it in the request context.
func Middleware(extract LangExtractor) func(http.Handler) http.Handler {
	if extract == nil {
		extract = DefaultLangExtractor()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if lang := extract(r); lang != "" {
				ctx = SetLocale(ctx, lang)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
