package visa

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/uns-visa/visakit/handler"
	"github.com/uns-visa/visakit/pkg/binder"
	"github.com/uns-visa/visakit/pkg/clientip"
	"github.com/uns-visa/visakit/pkg/i18n"
	"github.com/uns-visa/visakit/pkg/jpfield"
	"github.com/uns-visa/visakit/pkg/logger"
	"github.com/uns-visa/visakit/pkg/shell"
)

var (
	pathBinder  handler.Bind = binder.Path(chi.URLParam)
	queryBinder handler.Bind = binder.Query()
	formBinder  handler.Bind = binder.Form()
	jsonBinder  handler.Bind = binder.JSON()
)

type pageRequest struct {
	Page string `path:"page"`
}

// fieldRequest carries one value to check. Required overrides the field's
// default when set.
type fieldRequest struct {
	Field       string `json:"-" path:"field"`
	Value       string `json:"value" form:"value" query:"value"`
	Nationality string `json:"nationality,omitempty" form:"nationality" query:"nationality"`
	PhoneType   string `json:"phoneType,omitempty" form:"phoneType" query:"phoneType"`
	Label       string `json:"label,omitempty" form:"label" query:"label"`
	Required    *bool  `json:"required,omitempty" form:"required" query:"required"`
}

// fieldLabels maps field names to their label translation keys.
var fieldLabels = map[string]string{
	jpfield.FieldResidenceCard:             "labels.residence_card",
	jpfield.FieldCorporationNumber:         "labels.corporation_number",
	jpfield.FieldEmploymentInsuranceNumber: "labels.employment_insurance",
	jpfield.FieldPassportNumber:            "labels.passport",
	jpfield.FieldPhoneNumber:               "labels.telephone",
	jpfield.FieldPostalCode:                "labels.postal_code",
	jpfield.FieldVisaExpiration:            "labels.expiration",
	jpfield.FieldDate:                      "labels.date",
	jpfield.FieldBirthDate:                 "labels.birth_date",
	jpfield.FieldEmail:                     "labels.email",
	jpfield.FieldRomajiName:                "labels.romaji_name",
	jpfield.FieldKanjiName:                 "labels.kanji_name",
	jpfield.FieldSex:                       "labels.sex",
	jpfield.FieldApplicationType:           "labels.application_type",
	jpfield.FieldImmigrationCategory:       "labels.immigration_category",
}

func (s *Service) text(lang, key, def string) string {
	return s.translator.Td(lang, key, def)
}

func (s *Service) shellOptions(lang, active string) shell.Options {
	return shell.Options{
		Active:      active,
		Lang:        lang,
		Translator:  s.translator,
		Stylesheets: s.stylesheets,
		Scripts:     s.scripts,
	}
}

// fieldOptions returns the jpfield options shared by every check made for ctx.
func (s *Service) fieldOptions(ctx handler.Context, extra ...jpfield.Option) []jpfield.Option {
	opts := []jpfield.Option{
		jpfield.WithTranslator(s.translator),
		jpfield.WithLanguage(ctx.Lang()),
		jpfield.WithLocation(s.location),
		jpfield.WithClock(s.now),
	}
	return append(opts, extra...)
}

func (req fieldRequest) options() []jpfield.Option {
	var opts []jpfield.Option
	if req.Nationality != "" {
		opts = append(opts, jpfield.WithNationality(req.Nationality))
	}
	if req.PhoneType != "" {
		opts = append(opts, jpfield.WithPhoneType(jpfield.ParsePhoneType(req.PhoneType)))
	}
	if req.Label != "" {
		opts = append(opts, jpfield.WithLabel(req.Label))
	}
	if req.Required != nil {
		opts = append(opts, jpfield.WithRequired(*req.Required))
	}
	return opts
}

func (s *Service) check(ctx handler.Context, req fieldRequest) (jpfield.Result, error) {
	res, err := jpfield.Validate(req.Field, req.Value, s.fieldOptions(ctx, req.options()...)...)
	if err != nil {
		if errors.Is(err, jpfield.ErrUnknownField) {
			return res, errors.Join(handler.ErrNotFound, err)
		}
		return res, err
	}
	if s.metrics != nil {
		s.metrics.ObserveField(req.Field, res.Valid)
	}
	s.log.DebugContext(ctx, "field checked",
		logger.Field(req.Field),
		logger.Code(res.Code),
		logger.Lang(ctx.Lang()),
	)
	return res, nil
}

// page renders the document for a nav item. The empty page is the dashboard.
func (s *Service) page(ctx handler.Context, req pageRequest) handler.Response {
	key := shell.DefaultActive
	if req.Page != "" {
		item, ok := shell.ItemByHref(req.Page + ".html")
		if !ok {
			return handler.Fail(fmt.Errorf("%w: %w: %q", handler.ErrNotFound, ErrUnknownPage, req.Page))
		}
		key = item.Key
	}

	lang := ctx.Lang()
	title := s.text(lang, "nav."+key, key)
	view := pageView{Title: title}
	if key == shell.DefaultActive {
		view.Fields = jpfield.Names()
	}

	s.log.DebugContext(ctx, "page rendered", logger.Page(key), logger.Lang(lang))
	return handler.Templ(shell.Document(s.shellOptions(lang, key), title, pageContent(view)))
}

// fieldPage renders the inline check page. GET without a value renders an
// empty hint; POST from DataStar patches only the hint.
func (s *Service) fieldPage(ctx handler.Context, req fieldRequest) handler.Response {
	if _, ok := jpfield.Lookup(req.Field); !ok {
		return handler.Fail(fmt.Errorf("%w: %w: %q", handler.ErrNotFound, jpfield.ErrUnknownField, req.Field))
	}

	var hint hintView
	if ctx.Request().Method == http.MethodPost || req.Value != "" {
		res, err := s.check(ctx, req)
		if err != nil {
			return handler.Fail(err)
		}
		hint = newHintView(res)
	}

	lang := ctx.Lang()
	title := s.text(lang, "visa.fields_title", "入力チェック")
	view := fieldPageView{
		Title:            title,
		Field:            req.Field,
		Label:            s.text(lang, fieldLabels[req.Field], req.Field),
		Value:            req.Value,
		Nationality:      req.Nationality,
		NationalityLabel: s.text(lang, "visa.nationality", "国籍"),
		WithNationality:  req.Field == jpfield.FieldPassportNumber,
		Submit:           s.text(lang, "visa.submit", "チェック"),
		Hint:             hint,
	}

	return handler.TemplPartial(
		fieldHint(hint),
		shell.Document(s.shellOptions(lang, shell.DefaultActive), title, fieldPage(view)),
		handler.WithTarget("#field-hint"),
	)
}

func (s *Service) checkField(ctx handler.Context, req fieldRequest) handler.Response {
	res, err := s.check(ctx, req)
	if err != nil {
		return handler.Fail(err)
	}
	return handler.JSON(res)
}

func (s *Service) validateForm(ctx handler.Context, form jpfield.Form) handler.Response {
	summary := jpfield.ValidateForm(form, s.fieldOptions(ctx)...)
	if s.metrics != nil {
		s.metrics.ObserveForm(summary.IsValid, summary.ErrorCount, summary.WarningCount)
	}
	s.log.DebugContext(ctx, "form validated",
		logger.Lang(ctx.Lang()),
		"errors", summary.ErrorCount,
		"warnings", summary.WarningCount,
	)
	return handler.JSON(summary)
}

func (s *Service) navItems(ctx handler.Context, _ struct{}) handler.Response {
	active := ctx.Request().URL.Query().Get("active")
	return handler.JSON(shell.Links(s.shellOptions(ctx.Lang(), active)))
}

func (s *Service) fieldNames(_ handler.Context, _ struct{}) handler.Response {
	return handler.JSON(jpfield.Names())
}

func (s *Service) notFound(_ handler.Context, _ struct{}) handler.Response {
	return handler.Fail(handler.ErrNotFound)
}

func (s *Service) tooManyRequests(_ handler.Context, _ struct{}) handler.Response {
	return handler.Fail(handler.ErrTooManyRequests)
}

func clientKey(r *http.Request) string {
	return clientip.FromContext(r.Context())
}

func (s *Service) methodNotAllowed(_ handler.Context, _ struct{}) handler.Response {
	return handler.Fail(handler.ErrMethodNotAllowed)
}

func (s *Service) checkLocales(context.Context) error {
	if len(s.translator.SupportedLanguages()) == 0 {
		return ErrNoLocales
	}
	return nil
}

func (s *Service) errorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := i18n.GetLocale(ctx)
		content := errorContent(errorPageView{
			ErrorPageParams: p,
			Retry:           s.text(lang, "visa.retry", "再読み込み"),
		})
		return shell.Document(s.shellOptions(lang, ""), p.Error, content).Render(ctx, w)
	})
}
