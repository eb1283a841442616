package browserdetails

import (
	"errors"

	"github.com/dmitrymomot/browserdetails/pkg/useragent"
)

// Agent is the structured view of a User-Agent header the message is built from.
// Values are used verbatim; empty strings are rendered as-is.
type Agent struct {
	Browser  string
	Version  string
	Platform string
	OS       string
	Mobile   bool
}

// Parser turns a raw User-Agent header into an Agent.
// A non-nil error drops the browser fragment from the message.
type Parser func(ua string) (Agent, error)

// UserAgentParser is the default Parser backed by pkg/useragent.
//
// Soft classification failures (unknown device, malformed string) still carry
// whatever the parser recognized, so they are not reported as errors. Only an
// empty header fails.
func UserAgentParser(ua string) (Agent, error) {
	parsed, err := useragent.Parse(ua)
	if err != nil && errors.Is(err, useragent.ErrEmptyUserAgent) {
		return Agent{}, err
	}

	return Agent{
		Browser:  parsed.BrowserTitle(),
		Version:  parsed.BrowserVer(),
		Platform: parsed.Platform(),
		OS:       parsed.OSTitle(),
		Mobile:   parsed.IsMobile() || parsed.IsTablet(),
	}, nil
}
