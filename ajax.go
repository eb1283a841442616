package browserdetails

import (
	"net/http"
	"strings"
)

// Request headers used by script-driven clients to announce themselves.
const (
	XRequestedWith = "X-Requested-With"
	XMLHttpRequest = "XMLHttpRequest"
	HXRequest      = "HX-Request"
)

// AjaxDetector reports whether a request was issued by client-side script.
type AjaxDetector func(r *http.Request) bool

// IsXHR checks the X-Requested-With: XMLHttpRequest convention, case-insensitively.
func IsXHR(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(XRequestedWith), XMLHttpRequest)
}

// IsHTMX checks if the request is an HTMX request.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HXRequest) == "true"
}

// HeaderDetector matches a custom header/value pair, ignoring value case.
func HeaderDetector(header, value string) AjaxDetector {
	return func(r *http.Request) bool {
		v := r.Header.Get(header)
		return v != "" && strings.EqualFold(v, value)
	}
}

// AnyDetector is true when at least one of the detectors is.
func AnyDetector(detectors ...AjaxDetector) AjaxDetector {
	return func(r *http.Request) bool {
		for _, d := range detectors {
			if d != nil && d(r) {
				return true
			}
		}
		return false
	}
}
