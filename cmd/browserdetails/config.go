package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/browserdetails"
	"github.com/dmitrymomot/browserdetails/pkg/httpserver"
	"github.com/dmitrymomot/browserdetails/pkg/logger"
)

// Log sinks selectable with BROWSER_DETAILS_LOG_SINK.
const (
	sinkSlog    = "slog"
	sinkStd     = "std"
	sinkContext = "context"
	sinkNone    = "none"
)

var (
	ErrUnknownSink       = errors.New("unknown log sink")
	ErrInvalidAjaxHeader = errors.New("invalid ajax header convention")
	ErrInvalidFormLimit  = errors.New("max form bytes must be positive")
	ErrInvalidLogFormat  = errors.New("invalid log format")
)

// Config is loaded from the environment and an optional .env file.
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Service   string `env:"APP_SERVICE" envDefault:"browserdetails"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	LogSink string `env:"BROWSER_DETAILS_LOG_SINK" envDefault:"slog"`
	// AjaxHeaders lists Header=Value pairs that mark a request as script-issued.
	AjaxHeaders  []string `env:"BROWSER_DETAILS_AJAX_HEADERS" envDefault:"X-Requested-With=XMLHttpRequest,HX-Request=true" envSeparator:","`
	MaxFormBytes int64    `env:"BROWSER_DETAILS_MAX_FORM_BYTES" envDefault:"1048576"`

	// ClientIPHeaders restricts which proxy headers are trusted for the
	// client address. Empty means the clientip package defaults.
	ClientIPHeaders []string `env:"BROWSER_DETAILS_CLIENT_IP_HEADERS" envSeparator:","`

	HTTP httpserver.Config
}

func (c Config) validate() error {
	var errs []error
	switch c.LogSink {
	case sinkSlog, sinkStd, sinkContext, sinkNone:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownSink, c.LogSink))
	}
	switch logger.Format(c.LogFormat) {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat))
	}
	if c.MaxFormBytes <= 0 {
		errs = append(errs, ErrInvalidFormLimit)
	}
	if _, err := ajaxDetector(c.AjaxHeaders); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ajaxDetector builds a detector matching any configured Header=Value pair.
// An empty list falls back to the XMLHttpRequest convention.
func ajaxDetector(pairs []string) (browserdetails.AjaxDetector, error) {
	if len(pairs) == 0 {
		return browserdetails.IsXHR, nil
	}

	detectors := make([]browserdetails.AjaxDetector, 0, len(pairs))
	for _, pair := range pairs {
		header, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		header, value = strings.TrimSpace(header), strings.TrimSpace(value)
		if !ok || header == "" || value == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAjaxHeader, pair)
		}
		detectors = append(detectors, browserdetails.HeaderDetector(header, value))
	}
	return browserdetails.AnyDetector(detectors...), nil
}
