package visa

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/uns-visa/visakit/handler"
	"github.com/uns-visa/visakit/pkg/jpfield"
)

//go:embed templates/*.html
var templateFS embed.FS

var views = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func view(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := views.ExecuteTemplate(w, name, data); err != nil {
			return errors.Join(ErrRender, err)
		}
		return nil
	})
}

type pageView struct {
	Title  string
	Fields []string
}

type fieldPageView struct {
	Title            string
	Field            string
	Label            string
	Value            string
	Nationality      string
	NationalityLabel string
	WithNationality  bool
	Submit           string
	Hint             hintView
}

// hintView flattens a jpfield.Result for the hint fragment. Checked is false
// before the first submission so the fragment renders empty.
type hintView struct {
	Checked   bool
	Valid     bool
	Error     string
	Hint      string
	Formatted string
	Message   string
	Urgency   jpfield.Urgency
}

func newHintView(res jpfield.Result) hintView {
	h := hintView{
		Checked:   true,
		Valid:     res.Valid,
		Error:     res.Error,
		Hint:      res.Hint,
		Formatted: res.Formatted,
	}
	if res.Expiration != nil {
		h.Message = res.Expiration.Message
		h.Urgency = res.Expiration.Urgency
	}
	return h
}

type errorPageView struct {
	handler.ErrorPageParams
	Retry string
}

func pageContent(v pageView) templ.Component { return view("page", v) }

func fieldPage(v fieldPageView) templ.Component { return view("field_page", v) }

func fieldHint(v hintView) templ.Component { return view("field_hint", v) }

func errorContent(v errorPageView) templ.Component { return view("error_page", v) }

func toast(p handler.ErrorToastParams) templ.Component { return view("toast", p) }
