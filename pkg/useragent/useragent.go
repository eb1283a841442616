package useragent

import (
	"regexp"
	"strings"
)

// UserAgent contains the parsed information from a user agent string
type UserAgent struct {
	userAgent string
	device    Device
	os        OS
	browser   Browser
}

// Device groups hardware related fields.
type Device struct {
	Type     string
	Model    string
	Platform string
}

// String returns the user agent as a string
func (ua UserAgent) String() string { return ua.userAgent }

// UserAgent returns the full user agent string
func (ua UserAgent) UserAgent() string { return ua.userAgent }

// DeviceType returns the device type (mobile, desktop, tablet, bot, unknown)
func (ua UserAgent) DeviceType() string { return ua.device.Type }

// DeviceModel returns the specific device model if available
func (ua UserAgent) DeviceModel() string { return ua.device.Model }

// Platform returns the hardware platform as written in the UA comment
// (Macintosh, Windows, iPhone, X11, ...), empty if unrecognized.
func (ua UserAgent) Platform() string { return ua.device.Platform }

// OS returns the operating system identifier
func (ua UserAgent) OS() string { return ua.os.Name }

// OSVersion returns the operating system version, empty if not reported
func (ua UserAgent) OSVersion() string { return ua.os.Version }

// BrowserName returns the browser identifier
func (ua UserAgent) BrowserName() string { return ua.browser.Name }

// BrowserVer returns the browser version
func (ua UserAgent) BrowserVer() string { return ua.browser.Version }

// BrowserInfo returns the browser name and version
func (ua UserAgent) BrowserInfo() Browser { return ua.browser }

// IsBot returns true if the user agent is a bot
func (ua UserAgent) IsBot() bool { return ua.device.Type == DeviceTypeBot }

// IsMobile returns true if the user agent is a mobile device
func (ua UserAgent) IsMobile() bool { return ua.device.Type == DeviceTypeMobile }

// IsDesktop returns true if the user agent is a desktop device
func (ua UserAgent) IsDesktop() bool { return ua.device.Type == DeviceTypeDesktop }

// IsTablet returns true if the user agent is a tablet device
func (ua UserAgent) IsTablet() bool { return ua.device.Type == DeviceTypeTablet }

// IsTV returns true if the user agent is a TV device
func (ua UserAgent) IsTV() bool { return ua.device.Type == DeviceTypeTV }

// IsConsole returns true if the user agent is a gaming console
func (ua UserAgent) IsConsole() bool { return ua.device.Type == DeviceTypeConsole }

// IsUnknown returns true if the device type could not be determined
func (ua UserAgent) IsUnknown() bool {
	return ua.device.Type == DeviceTypeUnknown || ua.device.Type == ""
}

// productToken matches the leading "name/version" token of a UA string.
var productToken = regexp.MustCompile(`^([A-Za-z][\w.\-]*)/([\w.\-]+)`)

// botToken matches a crawler's own "name/version" token anywhere in the UA,
// e.g. "Googlebot/2.1".
var botToken = regexp.MustCompile(`(?i)\b[a-z0-9\-_]*(?:bot|spider|crawler)/([\w.\-]+)`)

// Parse parses a user agent string.
//
// The returned UserAgent is populated with everything recognized even when an
// error is returned, so callers may treat ErrUnknownDevice and
// ErrMalformedUserAgent as soft failures. When no known browser matches, the
// leading product token ("curl/8.4.0" -> curl 8.4.0) is used instead.
func Parse(ua string) (UserAgent, error) {
	if ua == "" {
		return New("", Device{Type: DeviceTypeUnknown}, OS{Name: OSUnknown}, Browser{Name: BrowserUnknown}), ErrEmptyUserAgent
	}

	lowerUA := strings.ToLower(ua)

	deviceType := ParseDeviceType(lowerUA)
	device := Device{
		Type:     deviceType,
		Model:    GetDeviceModel(lowerUA, deviceType),
		Platform: ParsePlatform(lowerUA),
	}
	os := ParseOS(lowerUA)
	browser := ParseBrowser(lowerUA)

	recognized := browser.Name != BrowserUnknown
	switch {
	case deviceType == DeviceTypeBot:
		// Crawlers are titled by name, so their version comes from the same token.
		if m := botToken.FindStringSubmatch(ua); m != nil {
			browser.Version = m[1]
		}
	case !recognized:
		if m := productToken.FindStringSubmatch(ua); m != nil {
			browser = Browser{Name: m[1], Version: m[2]}
		}
	}

	result := New(ua, device, os, browser)

	switch {
	case deviceType == DeviceTypeUnknown && !strings.Contains(lowerUA, "bot"):
		// Some bots have unusual patterns, so an unknown device is only an
		// error for non-bots.
		return result, ErrUnknownDevice
	case os.Name == OSUnknown && !recognized && deviceType == DeviceTypeUnknown:
		return result, ErrMalformedUserAgent
	}

	return result, nil
}

// New creates a new UserAgent from already classified parts
func New(ua string, device Device, os OS, browser Browser) UserAgent {
	return UserAgent{
		userAgent: ua,
		device:    device,
		os:        os,
		browser:   browser,
	}
}
