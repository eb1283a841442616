package main

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/browserdetails"
	"github.com/dmitrymomot/browserdetails/pkg/clientip"
	"github.com/dmitrymomot/browserdetails/pkg/httpserver"
	"github.com/dmitrymomot/browserdetails/pkg/logger"
	"github.com/dmitrymomot/browserdetails/pkg/metrics"
	"github.com/dmitrymomot/browserdetails/pkg/requestid"
)

// The sentinel field is rendered with SentinelValue and rewritten by the
// inline script, so a submission that still carries the check mark came
// from a browser without scripting.
var formPage = template.Must(template.New("form").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Browser details</title></head>
<body>
<form method="post" action="/submit">
  <input type="hidden" name="{{.Param}}" value="{{.Value}}">
  <input type="text" name="name" placeholder="Your name">
  <button type="submit">Send</button>
</form>
<script>
  document.querySelectorAll('input[name="{{.Param}}"]').forEach(function (el) { el.value = "&#x2713;"; });
</script>
</body>
</html>
`))

func newRouter(cfg Config, log *slog.Logger, collector *metrics.Collector) (http.Handler, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	detector, err := ajaxDetector(cfg.AjaxHeaders)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(cfg.ClientIPHeaders...))
	r.Use(logger.Middleware(log))

	r.Get("/health", httpserver.HealthCheckHandler(log))
	r.Method(http.MethodGet, "/metrics", collector.Handler())

	r.Group(func(r chi.Router) {
		r.Use(browserdetails.Middleware(
			browserdetails.WithLogFunc(logSink(cfg.LogSink, log)),
			browserdetails.WithObserver(collector.Observe),
			browserdetails.WithObserver(debugObserver(log)),
			browserdetails.WithAjaxDetector(detector),
			browserdetails.WithMaxFormBytes(cfg.MaxFormBytes),
		))

		r.Get("/", showForm)
		r.Post("/submit", submitForm)
	})

	return r, nil
}

// logSink maps a configured sink name to a LogFunc. Unknown names and
// "none" disable message logging.
func logSink(name string, l *slog.Logger) browserdetails.LogFunc {
	switch name {
	case sinkSlog:
		return browserdetails.SlogLogger(l)
	case sinkStd:
		return browserdetails.StdLogger(slog.NewLogLogger(l.Handler(), slog.LevelInfo))
	case sinkContext:
		return browserdetails.ContextLogger()
	default:
		return nil
	}
}

// debugObserver records the structured details at debug level.
func debugObserver(l *slog.Logger) browserdetails.Observer {
	return func(ctx context.Context, d browserdetails.Details) {
		attrs := []any{logger.Scripting(d.Scripting.String())}
		if d.Agent != nil {
			attrs = append(attrs, logger.Browser(d.Agent.Browser, d.Agent.Version, d.Agent.Mobile))
		}
		l.DebugContext(ctx, "browser details", attrs...)
	}
}

func showForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct{ Param, Value string }{browserdetails.SentinelParam, browserdetails.SentinelValue}
	if err := formPage.Execute(w, data); err != nil {
		logger.FromContextOrDefault(r.Context()).ErrorContext(r.Context(), "render form", logger.Error(err))
	}
}

func submitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Thanks, " + r.PostForm.Get("name")))
}
