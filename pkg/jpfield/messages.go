package jpfield

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/uns-visa/visakit/locales"
	"github.com/uns-visa/visakit/pkg/i18n"
	"github.com/uns-visa/visakit/pkg/validator"
)

var (
	defaultTranslatorOnce sync.Once
	defaultTranslator     *i18n.Translator
)

// DefaultTranslator returns the translator over the embedded ja and en catalogs.
// It panics if the embedded catalogs cannot be parsed.
func DefaultTranslator() *i18n.Translator {
	defaultTranslatorOnce.Do(func() {
		tr, err := i18n.NewTranslator(
			context.Background(),
			i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
			i18n.WithDefaultLanguage(i18n.DefaultLanguage),
		)
		if err != nil {
			panic(fmt.Sprintf("jpfield: load embedded locales: %v", err))
		}
		defaultTranslator = tr
	})
	return defaultTranslator
}

// translationArgs flattens values into sorted key/value pairs for Translator.T.
func translationArgs(values map[string]any) []string {
	if len(values) == 0 {
		return nil
	}
	args := make([]string, 0, len(values)*2)
	for _, k := range slices.Sorted(maps.Keys(values)) {
		args = append(args, k, fmt.Sprint(values[k]))
	}
	return args
}

func (c *config) message(key string, values map[string]any) string {
	return c.translator.T(c.lang, key, translationArgs(values)...)
}

// check runs rules until the first failure and converts it into a Result.
func (c *config) check(rules ...validator.Rule) (Result, bool) {
	err := validator.ApplyFirst(rules...)
	if err == nil {
		return Result{}, true
	}

	first, ok := validator.ExtractValidationErrors(err).First()
	if !ok {
		return Result{Valid: false}, false
	}

	args := translationArgs(first.TranslationValues)
	res := Result{
		Valid: false,
		Code:  first.TranslationKey,
		Error: c.translator.Td(c.lang, first.TranslationKey, first.Message, args...),
	}
	if first.HintKey != "" {
		res.Hint = c.translator.Td(c.lang, first.HintKey, first.Hint, args...)
	}
	return res, false
}
