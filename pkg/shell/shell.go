package shell

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// LoginHref is the target of the header login link.
const LoginHref = "login.html"

type navLink struct {
	NavItem
	Active bool
}

type headerData struct {
	Brand     string
	Headline  template.HTML
	Subtitle  template.HTML
	Secure    string
	AlwaysOn  string
	Login     string
	LoginHref string
	NavLabel  string
	Items     []navLink
}

type footerData struct {
	Version   string
	Copyright string
}

type documentData struct {
	Lang          string
	Title         string
	Stylesheets   []string
	Scripts       []string
	IconScriptURL string
}

// Links returns the nav items as rendered for opts: labels translated and the
// active item flagged.
func Links(opts Options) []NavItem {
	o := opts.resolve(context.Background())
	out := make([]NavItem, 0, len(navItems))
	for _, link := range o.links() {
		out = append(out, link.NavItem)
	}
	return out
}

func (o Options) links() []navLink {
	links := make([]navLink, 0, len(navItems))
	for _, item := range navItems {
		item.Label = o.text("nav."+item.Key, item.Label)
		links = append(links, navLink{NavItem: item, Active: item.Key == o.Active})
	}
	return links
}

func (o Options) headline() string {
	if o.Headline != "" {
		return o.Headline
	}
	return o.text("shell.headline", "UNS Visa Management System")
}

func (o Options) subtitle() string {
	if o.Subtitle != "" {
		return o.Subtitle
	}
	return o.text("shell.subtitle", "派遣会社向けビザ管理プラットフォーム")
}

func (o Options) header() headerData {
	return headerData{
		Brand:     o.text("shell.brand", "UNS Visa"),
		Headline:  sanitizeInline(o.headline()),
		Subtitle:  sanitizeInline(o.subtitle()),
		Secure:    o.text("shell.secure", "安全な社内利用"),
		AlwaysOn:  o.text("shell.always_on", "24時間稼働"),
		Login:     o.text("shell.login", "ログイン"),
		LoginHref: LoginHref,
		NavLabel:  o.text("nav.label", "メインナビゲーション"),
		Items:     o.links(),
	}
}

func (o Options) footer() footerData {
	return footerData{
		Version:   o.text("shell.version", "UNS Visa Management System v1.0"),
		Copyright: o.text("shell.copyright", "© 2024 UNS株式会社 - UI refreshed"),
	}
}

func execute(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return errors.Join(ErrRenderFailed, err)
	}
	return nil
}

// Header renders the brand block, breadcrumb, login link and nav list.
func Header(opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return execute(w, "header", opts.resolve(ctx).header())
	})
}

// Footer renders the version and copyright lines.
func Footer(opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return execute(w, "footer", opts.resolve(ctx).footer())
	})
}

// Page renders the header, then content, then the footer. A nil content renders
// the shell alone.
func Page(opts Options, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := Header(opts).Render(ctx, w); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		return Footer(opts).Render(ctx, w)
	})
}

// Document renders a complete HTML document whose body is Page. An empty title
// uses the headline without markup.
func Document(opts Options, title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		o := opts.resolve(ctx)
		pageTitle := title
		if pageTitle == "" {
			pageTitle = plainText(o.headline())
		}

		if err := execute(w, "document_open", documentData{
			Lang:          o.Lang,
			Title:         pageTitle,
			Stylesheets:   o.Stylesheets,
			Scripts:       o.Scripts,
			IconScriptURL: o.IconScriptURL,
		}); err != nil {
			return err
		}
		if err := Page(o, content).Render(ctx, w); err != nil {
			return err
		}
		return execute(w, "document_close", nil)
	})
}
