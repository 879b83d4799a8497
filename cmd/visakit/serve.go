package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/uns-visa/visakit/modules/visa"
	"github.com/uns-visa/visakit/pkg/clientip"
	"github.com/uns-visa/visakit/pkg/httpserver"
	"github.com/uns-visa/visakit/pkg/metrics"
	"github.com/uns-visa/visakit/pkg/ratelimiter"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr        string
		noMetrics   bool
		stylesheets []string
		scripts     []string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Serves the shell pages, the inline field check pages and the JSON validation API.
The JSON API is rate limited per client (RATE_LIMIT_CAPACITY, 0 disables).
Stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []visa.Option{
				visa.WithLogger(a.log),
				visa.WithTranslator(a.translator),
				visa.WithLocation(a.location),
				visa.WithStylesheets(stylesheets...),
				visa.WithScripts(scripts...),
			}
			if !noMetrics {
				opts = append(opts, visa.WithMetrics(metrics.New("visakit")))
			}
			if a.cfg.TrustProxy {
				opts = append(opts, visa.WithTrustedProxies(clientip.TrustLoopback()))
			}
			if a.cfg.RateLimit.Enabled() {
				limiter, err := ratelimiter.New(a.cfg.RateLimit)
				if err != nil {
					return err
				}
				go limiter.Run(cmd.Context(), time.Minute, 10*time.Minute)
				opts = append(opts, visa.WithRateLimit(limiter))
			}
			svc := visa.NewService(opts...)

			httpCfg := a.cfg.HTTP
			if addr != "" {
				httpCfg.Addr = addr
			}
			srv := httpserver.New(httpCfg, httpserver.WithLogger(a.log))
			return srv.Run(cmd.Context(), svc.Handle())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address; overrides HTTP_ADDR")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "Disable the /metrics endpoint")
	cmd.Flags().StringSliceVar(&stylesheets, "stylesheet", nil, "Stylesheet URL linked from every page (repeatable)")
	cmd.Flags().StringSliceVar(&scripts, "script", nil, "Module script URL loaded by every page, e.g. the DataStar bundle (repeatable)")
	return cmd
}
