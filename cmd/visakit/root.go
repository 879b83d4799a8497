package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/uns-visa/visakit/locales"
	"github.com/uns-visa/visakit/pkg/clientip"
	"github.com/uns-visa/visakit/pkg/config"
	"github.com/uns-visa/visakit/pkg/httpserver"
	"github.com/uns-visa/visakit/pkg/i18n"
	"github.com/uns-visa/visakit/pkg/logger"
	"github.com/uns-visa/visakit/pkg/ratelimiter"
	"github.com/uns-visa/visakit/pkg/requestid"
)

// errInvalid makes the process exit with status 1 without printing anything
// beyond the command's own report.
var errInvalid = errors.New("validation failed")

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	Name        string `env:"APP_NAME" envDefault:"visakit"`
	Timezone    string `env:"APP_TIMEZONE" envDefault:"Asia/Tokyo"`
	DefaultLang string `env:"APP_DEFAULT_LANG" envDefault:"ja"`

	// TrustProxy honours forwarding headers from loopback and private peers.
	TrustProxy bool `env:"HTTP_TRUST_PROXY" envDefault:"false"`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
}

// app is shared by the subcommands and filled in by the root pre-run hook.
type app struct {
	cfg        appConfig
	log        *slog.Logger
	translator *i18n.Translator
	location   *time.Location
	lang       string
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.Load(&a.cfg); err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	opts := []logger.Option{
		logger.WithEnvironment(logger.ParseEnvironment(a.cfg.Env), a.cfg.Name),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(requestid.LogExtractor(), clientip.LogExtractor()),
	}
	switch {
	case verbose:
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	case cmd.Name() != "serve":
		opts = append(opts, logger.WithLevel(slog.LevelWarn))
	}
	a.log = logger.New(opts...)

	loc, err := time.LoadLocation(a.cfg.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", a.cfg.Timezone, err)
	}
	a.location = loc

	a.translator, err = i18n.NewTranslator(
		cmd.Context(),
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
		i18n.WithDefaultLanguage(a.cfg.DefaultLang),
		i18n.WithLogger(a.log),
	)
	if err != nil {
		return fmt.Errorf("load locales: %w", err)
	}

	if a.lang == "" {
		a.lang = a.cfg.DefaultLang
	}
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "visakit",
		Short: "Visa management shell and Japanese field validation",
		Long: `visakit renders the navigation shell of the visa management UI and validates
Japanese residence, passport, phone, postal and date fields.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.lang, "lang", "", "Message language (ja or en); defaults to APP_DEFAULT_LANG")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level")

	root.AddCommand(
		newServeCmd(a),
		newCheckCmd(a),
		newFormCmd(a),
		newNavCmd(a),
	)
	return root
}

// Execute runs the root command and exits with status 1 on failure.
func Execute(ctx context.Context) {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}
		os.Exit(1)
	}
}
