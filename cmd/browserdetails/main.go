// Command browserdetails serves a small form application with browser
// details logging, request ids and Prometheus metrics, and describes single
// User-Agent strings from the command line.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/browserdetails/pkg/clientip"
	"github.com/dmitrymomot/browserdetails/pkg/logger"
	"github.com/dmitrymomot/browserdetails/pkg/requestid"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cfg Config, out io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithOutput(out),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(opts...)
}
