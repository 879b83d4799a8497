package visa

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/uns-visa/visakit/handler"
	"github.com/uns-visa/visakit/pkg/clientip"
	"github.com/uns-visa/visakit/pkg/httpserver"
	"github.com/uns-visa/visakit/pkg/i18n"
	"github.com/uns-visa/visakit/pkg/jpfield"
	"github.com/uns-visa/visakit/pkg/logger"
	"github.com/uns-visa/visakit/pkg/metrics"
	"github.com/uns-visa/visakit/pkg/ratelimiter"
	"github.com/uns-visa/visakit/pkg/requestid"
)

// Service serves the shell pages and the validation endpoints.
type Service struct {
	translator   *i18n.Translator
	metrics      *metrics.Metrics
	log          *slog.Logger
	location     *time.Location
	now          func() time.Time
	stylesheets  []string
	scripts      []string
	errorHandler handler.ErrorHandler[handler.Context]
	limiter      *ratelimiter.Limiter
	trust        clientip.Trust
}

type Option func(*Service)

// WithTranslator replaces the embedded locale catalogs.
func WithTranslator(t *i18n.Translator) Option {
	return func(s *Service) {
		if t != nil {
			s.translator = t
		}
	}
}

// WithMetrics enables request and validation metrics and the /metrics route.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithLocation sets the zone "today" is computed in for date fields.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithStylesheets links the given stylesheets from every document.
func WithStylesheets(urls ...string) Option {
	return func(s *Service) { s.stylesheets = append(s.stylesheets, urls...) }
}

// WithScripts loads the given module scripts, typically the DataStar bundle.
func WithScripts(urls ...string) Option {
	return func(s *Service) { s.scripts = append(s.scripts, urls...) }
}

// WithRateLimit limits the /api routes per client address.
func WithRateLimit(l *ratelimiter.Limiter) Option {
	return func(s *Service) { s.limiter = l }
}

// WithTrustedProxies decides which peers may set forwarding headers. By
// default they are ignored.
func WithTrustedProxies(trust clientip.Trust) Option {
	return func(s *Service) {
		if trust != nil {
			s.trust = trust
		}
	}
}

// WithErrorHandler overrides the default error handler.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{
		log:      logger.Discard(),
		location: time.Local,
		now:      time.Now,
		trust:    clientip.TrustNone(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.translator == nil {
		s.translator = jpfield.DefaultTranslator()
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
			ErrorPage:  s.errorPage,
			ErrorToast: toast,
			Translator: s.translator,
		})
	}
	return s
}

// Handle returns the router:
//
//	GET  /                     dashboard document
//	GET  /{page}.html          document for the nav item linking to page
//	GET  /fields/{field}       inline validation page
//	POST /fields/{field}       validation hint, patched in for DataStar
//	GET  /api/nav              nav items
//	GET  /api/fields           registered field names
//	POST /api/fields/{field}   single field validation
//	POST /api/validate         whole form validation
//	GET  /healthz              readiness probe
//	GET  /metrics              prometheus metrics, when enabled
//
// The /api routes are rate limited per client address when a limiter is set.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(s.trust),
		middleware.Recoverer,
		i18n.Middleware(i18n.DefaultLangExtractor(
			i18n.WithSupportedLanguages(s.translator.SupportedLanguages()...),
		)),
	)
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
		r.Handle("/metrics", s.metrics.Handler())
	}

	r.Get("/healthz", httpserver.HealthCheckHandler(s.log, httpserver.Check{
		Name: "locales",
		Fn:   s.checkLocales,
	}))

	r.Get("/", handler.Wrap(s.page, onError[pageRequest](s)))
	r.Get("/{page}.html", handler.Wrap(s.page,
		handler.WithBinders[handler.Context, pageRequest](pathBinder),
		onError[pageRequest](s),
	))

	fieldPage := handler.Wrap(s.fieldPage,
		handler.WithBinders[handler.Context, fieldRequest](pathBinder, queryBinder, formBinder),
		onError[fieldRequest](s),
	)
	r.Get("/fields/{field}", fieldPage)
	r.Post("/fields/{field}", fieldPage)

	r.Route("/api", func(r chi.Router) {
		if s.limiter != nil {
			r.Use(ratelimiter.Middleware(s.limiter, clientKey,
				handler.Wrap(s.tooManyRequests, onError[struct{}](s))))
		}
		r.Get("/nav", handler.Wrap(s.navItems, onError[struct{}](s)))
		r.Get("/fields", handler.Wrap(s.fieldNames, onError[struct{}](s)))
		r.Post("/fields/{field}", handler.Wrap(s.checkField,
			handler.WithBinders[handler.Context, fieldRequest](pathBinder, jsonBinder),
			onError[fieldRequest](s),
		))
		r.Post("/validate", handler.Wrap(s.validateForm,
			handler.WithBinders[handler.Context, jpfield.Form](jsonBinder),
			onError[jpfield.Form](s),
		))
	})

	r.NotFound(handler.Wrap(s.notFound, onError[struct{}](s)))
	r.MethodNotAllowed(handler.Wrap(s.methodNotAllowed, onError[struct{}](s)))
	return r
}

func onError[R any](s *Service) handler.WrapOption[handler.Context, R] {
	return handler.WithErrorHandler[handler.Context, R](s.errorHandler)
}
