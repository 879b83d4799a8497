package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the language used when none can be determined.
const DefaultLanguage = "ja"

// maxAcceptLanguageLength bounds the header we are willing to parse.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage picks the supported language that best matches an
// Accept-Language header, honouring quality values and falling back from regional
// variants to their base language (en-US → en). Returns defaultLang when nothing
// matches.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return defaultLang
	}

	return matchLanguage(desired, supportedLangs, defaultLang)
}

// NormalizeLanguage returns the supported code matching lang ("JA-jp" → "ja"),
// or "" when lang is not supported.
func NormalizeLanguage(lang string, supportedLangs []string) string {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return ""
	}
	return matchLanguage([]language.Tag{tag}, supportedLangs, "")
}

func matchLanguage(desired []language.Tag, supportedLangs []string, defaultLang string) string {
	supported := make([]language.Tag, 0, len(supportedLangs))
	codes := make([]string, 0, len(supportedLangs))
	for _, code := range supportedLangs {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		codes = append(codes, code)
	}
	if len(supported) == 0 {
		return defaultLang
	}

	_, idx, confidence := language.NewMatcher(supported).Match(desired...)
	if confidence < language.High {
		return defaultLang
	}
	return codes[idx]
}
