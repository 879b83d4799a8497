package shell

import (
	"context"

	"github.com/uns-visa/visakit/pkg/i18n"
)

// DefaultIconScriptURL loads the lucide icon library.
const DefaultIconScriptURL = "https://unpkg.com/lucide@latest"

// Options configures the shell. The zero value renders the dashboard in Japanese.
type Options struct {
	// Active is the key of the highlighted nav item. Defaults to DefaultActive.
	Active string
	// Headline and Subtitle may contain inline markup.
	Headline string
	Subtitle string
	// Lang selects translations. Defaults to the language stored in the context
	// by i18n.Middleware.
	Lang string
	// Translator is optional; without it the built-in Japanese text is used.
	Translator *i18n.Translator
	// IconScriptURL is loaded by Document. Defaults to DefaultIconScriptURL.
	IconScriptURL string
	// Stylesheets are linked from the document head in order.
	Stylesheets []string
	// Scripts are loaded as ES modules after the icon script.
	Scripts []string
}

func (o Options) resolve(ctx context.Context) Options {
	if o.Active == "" {
		o.Active = DefaultActive
	}
	if o.Lang == "" {
		o.Lang = i18n.GetLocale(ctx)
	}
	if o.IconScriptURL == "" {
		o.IconScriptURL = DefaultIconScriptURL
	}
	return o
}

// text translates key, falling back to def.
func (o Options) text(key, def string) string {
	if o.Translator == nil {
		return def
	}
	return o.Translator.Td(o.Lang, key, def)
}
