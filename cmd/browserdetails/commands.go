package main

import (
	"fmt"
	"net/url"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/browserdetails"
	"github.com/dmitrymomot/browserdetails/pkg/config"
	"github.com/dmitrymomot/browserdetails/pkg/httpserver"
	"github.com/dmitrymomot/browserdetails/pkg/logger"
	"github.com/dmitrymomot/browserdetails/pkg/metrics"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "browserdetails",
		Short:         "Browser details logging demo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newDescribeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the demo HTTP server",
		Long: `Run the demo HTTP server. Settings come from the environment
and an optional .env file (APP_*, LOG_*, BROWSER_DETAILS_*, HTTP_*).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if err := cfg.validate(); err != nil {
				return err
			}

			log := newLogger(cfg, cmd.OutOrStdout())
			logger.SetAsDefault(log)

			collector := metrics.NewCollector(prometheus.DefaultRegisterer)
			router, err := newRouter(cfg, log, collector)
			if err != nil {
				return err
			}

			srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
			return srv.Run(cmd.Context(), router)
		},
	}
}

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <user-agent>",
		Short: "Print the details message for a User-Agent",
		Long: `Print the message the middleware would log for a request with the
given User-Agent.

Example:
  browserdetails describe "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36" --utf8 ✓`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sentinel, _ := cmd.Flags().GetString("utf8")
			ajax, _ := cmd.Flags().GetBool("ajax")

			params := url.Values{}
			if cmd.Flags().Changed("utf8") {
				params.Set(browserdetails.SentinelParam, sentinel)
			}

			message := browserdetails.Message(browserdetails.Snapshot{
				UserAgent: args[0],
				Params:    params,
				Ajax:      ajax,
			})
			if message == "" {
				return fmt.Errorf("nothing to report for %q", args[0])
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), message)
			return err
		},
	}

	cmd.Flags().String("utf8", "", "value of the utf8 form parameter")
	cmd.Flags().BoolP("ajax", "x", false, "treat the request as script-issued")
	return cmd
}
