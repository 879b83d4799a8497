// Package i18n resolves message catalogs for the Japanese-first UI.
//
// Catalogs are nested maps keyed by language code and loaded through a
// TranslationAdapter: MapAdapter for in-memory data, FSAdapter for YAML files in
// an fs.FS such as the embedded locales package. Keys are dot-separated paths and
// values may carry named placeholders:
//
//	ja:
//	  validation:
//	    date:
//	      required: "%{label}を入力してください"
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."))
//	msg := tr.T("ja", "validation.date.required", "label", "生年月日")
//
// A key missing in the requested language falls back to the default language
// (ja unless WithDefaultLanguage says otherwise) and then to the key itself.
//
// Middleware stores the request language in the context. DefaultLangExtractor
// looks at the lang cookie, the lang query parameter and Accept-Language, matched
// against the supported codes with golang.org/x/text/language.
package i18n
