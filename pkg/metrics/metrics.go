// Package metrics exposes Prometheus counters for browser details observed by
// the browserdetails middleware.
package metrics

import (
	"context"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/browserdetails"
	"github.com/dmitrymomot/browserdetails/pkg/useragent"
)

const (
	unknown = "unknown"
	other   = "other"
)

// Collector counts described requests by browser name, mobile flag and
// scripting status. Browser names outside the parser's fixed tables are
// counted as "other".
type Collector struct {
	RequestsTotal *prometheus.CounterVec
	gatherer      prometheus.Gatherer
}

// NewCollector creates the counters and registers them with reg.
// A nil reg registers with a fresh registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	c := &Collector{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "browser_details_requests_total",
				Help: "Requests with browser details, by browser, mobile flag and JavaScript status.",
			},
			[]string{"browser", "mobile", "js"},
		),
		gatherer: prometheus.DefaultGatherer,
	}
	if g, ok := reg.(prometheus.Gatherer); ok {
		c.gatherer = g
	}

	reg.MustRegister(c.RequestsTotal)
	return c
}

// Observe records d. Its signature matches browserdetails.Observer.
func (c *Collector) Observe(_ context.Context, d browserdetails.Details) {
	browser, mobile := unknown, unknown
	if d.Agent != nil {
		browser = browserLabel(d.Agent.Browser)
		mobile = strconv.FormatBool(d.Agent.Mobile)
	}

	c.RequestsTotal.WithLabelValues(browser, mobile, scriptingLabel(d.Scripting)).Inc()
}

// Handler serves the registry the collector was registered with.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// browserLabel keeps the label set bounded: names copied from the User-Agent
// header are client controlled and collapse into "other".
func browserLabel(name string) string {
	switch {
	case name == "":
		return unknown
	case useragent.IsKnownTitle(name):
		return name
	default:
		return other
	}
}

func scriptingLabel(s browserdetails.Scripting) string {
	switch s {
	case browserdetails.ScriptingEnabled:
		return "enabled"
	case browserdetails.ScriptingDisabled:
		return "disabled"
	default:
		return unknown
	}
}
