package i18n

import (
	"net/http"
	"strings"
)

// LangExtractor returns the language a request asks for, or "".
type LangExtractor func(r *http.Request) string

// ExtractorConfig configures DefaultLangExtractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

// ExtractorOption adjusts an ExtractorConfig.
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie consulted first; "" skips cookies.
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) { c.CookieName = name }
}

// WithQueryParamName sets the query parameter consulted second; "" skips it.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) { c.QueryParamName = name }
}

// WithSupportedLanguages sets the codes results are matched against.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) { c.SupportedLangs = langs }
}

// DefaultLangExtractor tries the "lang" cookie, then the "lang" query
// parameter, then Accept-Language. Cookie and query values that match no
// supported language are ignored. Supports ja and en unless configured.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
		SupportedLangs: []string{DefaultLanguage, "en"},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	explicit := func(r *http.Request) string {
		if cfg.CookieName != "" {
			if c, err := r.Cookie(cfg.CookieName); err == nil {
				if lang := NormalizeLanguage(c.Value, cfg.SupportedLangs); lang != "" {
					return lang
				}
			}
		}
		if cfg.QueryParamName != "" {
			if v := strings.TrimSpace(r.URL.Query().Get(cfg.QueryParamName)); v != "" {
				return NormalizeLanguage(v, cfg.SupportedLangs)
			}
		}
		return ""
	}

	return func(r *http.Request) string {
		if lang := explicit(r); lang != "" {
			return lang
		}
		if accept := r.Header.Get("Accept-Language"); accept != "" {
			return ParseAcceptLanguage(accept, cfg.SupportedLangs, "")
		}
		return ""
	}
}
