package useragent_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/browserdetails/pkg/useragent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	chromeWindowsUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	safariIPhoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	safariIPadUA    = "Mozilla/5.0 (iPad; CPU OS 13_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/13.0.3 Mobile/15E148 Safari/604.1"
	safariMacUA     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0.3 Safari/605.1.15"
	chromeAndroidUA = "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Mobile Safari/537.36"
	firefoxLinuxUA  = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0"
	edgeWindowsUA   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36 Edg/91.0.864.59"
	ie11UA          = "Mozilla/5.0 (Windows NT 6.1; Trident/7.0; rv:11.0) like Gecko"
	googlebotUA     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ua         string
		deviceType string
		model      string
		platform   string
		os         string
		osTitle    string
		browser    string
		title      string
		version    string
	}{
		{
			name:       "Chrome on Windows",
			ua:         chromeWindowsUA,
			deviceType: useragent.DeviceTypeDesktop,
			platform:   "Windows",
			os:         useragent.OSWindows,
			osTitle:    "Windows 10",
			browser:    useragent.BrowserChrome,
			title:      "Chrome",
			version:    "91.0.4472.124",
		},
		{
			name:       "Safari on iPhone",
			ua:         safariIPhoneUA,
			deviceType: useragent.DeviceTypeMobile,
			model:      useragent.MobileDeviceIPhone,
			platform:   "iPhone",
			os:         useragent.OSiOS,
			osTitle:    "iOS 14.4",
			browser:    useragent.BrowserSafari,
			title:      "Safari",
			version:    "14.0",
		},
		{
			name:       "Safari on iPad",
			ua:         safariIPadUA,
			deviceType: useragent.DeviceTypeTablet,
			model:      useragent.TabletDeviceIPad,
			platform:   "iPad",
			os:         useragent.OSiOS,
			osTitle:    "iOS 13.2",
			browser:    useragent.BrowserSafari,
			title:      "Safari",
			version:    "13.0.3",
		},
		{
			name:       "Safari on macOS",
			ua:         safariMacUA,
			deviceType: useragent.DeviceTypeDesktop,
			platform:   "Macintosh",
			os:         useragent.OSMacOS,
			osTitle:    "macOS 10.15.7",
			browser:    useragent.BrowserSafari,
			title:      "Safari",
			version:    "14.0.3",
		},
		{
			name:       "Chrome on Android phone",
			ua:         chromeAndroidUA,
			deviceType: useragent.DeviceTypeMobile,
			model:      useragent.MobileDeviceAndroid,
			platform:   "Android",
			os:         useragent.OSAndroid,
			osTitle:    "Android 11",
			browser:    useragent.BrowserChrome,
			title:      "Chrome",
			version:    "91.0.4472.124",
		},
		{
			name:       "Firefox on Ubuntu",
			ua:         firefoxLinuxUA,
			deviceType: useragent.DeviceTypeDesktop,
			platform:   "X11",
			os:         useragent.OSLinux,
			osTitle:    "Linux",
			browser:    useragent.BrowserFirefox,
			title:      "Firefox",
			version:    "89.0",
		},
		{
			name:       "Edge on Windows",
			ua:         edgeWindowsUA,
			deviceType: useragent.DeviceTypeDesktop,
			platform:   "Windows",
			os:         useragent.OSWindows,
			osTitle:    "Windows 10",
			browser:    useragent.BrowserEdge,
			title:      "Edge",
			version:    "91.0.864.59",
		},
		{
			name:       "IE 11 on Windows 7",
			ua:         ie11UA,
			deviceType: useragent.DeviceTypeDesktop,
			platform:   "Windows",
			os:         useragent.OSWindows,
			osTitle:    "Windows 7",
			browser:    useragent.BrowserIE,
			title:      "Internet Explorer",
			version:    "11.0",
		},
		{
			name:       "Googlebot",
			ua:         googlebotUA,
			deviceType: useragent.DeviceTypeBot,
			os:         useragent.OSUnknown,
			browser:    useragent.BrowserUnknown,
			title:      "Googlebot",
			version:    "2.1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ua, err := useragent.Parse(tc.ua)
			require.NoError(t, err)

			assert.Equal(t, tc.ua, ua.UserAgent())
			assert.Equal(t, tc.deviceType, ua.DeviceType())
			assert.Equal(t, tc.model, ua.DeviceModel())
			assert.Equal(t, tc.platform, ua.Platform())
			assert.Equal(t, tc.os, ua.OS())
			assert.Equal(t, tc.osTitle, ua.OSTitle())
			assert.Equal(t, tc.browser, ua.BrowserName())
			assert.Equal(t, tc.title, ua.BrowserTitle())
			assert.Equal(t, tc.version, ua.BrowserVer())
		})
	}
}

func TestParse_BotVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ua      string
		title   string
		version string
	}{
		{
			name:    "crawler token wins over embedded browser",
			ua:      "Mozilla/5.0 AppleWebKit/537.36 (KHTML, like Gecko; compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm) Chrome/116.0.1938.76 Safari/537.36",
			title:   "Bingbot",
			version: "2.0",
		},
		{
			name:    "unlisted crawler",
			ua:      "Mozilla/5.0 (compatible; ExampleSpider/3.4; +https://example.com)",
			title:   "Examplespider",
			version: "3.4",
		},
		{
			name:  "crawler without version",
			ua:    "Mozilla/5.0 (compatible; Yahoo! Slurp)",
			title: "Bot",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ua, _ := useragent.Parse(tc.ua)
			require.True(t, ua.IsBot())
			assert.Equal(t, tc.title, ua.BrowserTitle())
			assert.Equal(t, tc.version, ua.BrowserVer())
		})
	}
}

func TestIsKnownTitle(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"Chrome", "Internet Explorer", "Googlebot", "Bot"} {
		assert.True(t, useragent.IsKnownTitle(name), name)
	}
	for _, name := range []string{"", "curl", "Examplespider", "chrome"} {
		assert.False(t, useragent.IsKnownTitle(name), name)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty string", func(t *testing.T) {
		t.Parallel()
		ua, err := useragent.Parse("")
		require.ErrorIs(t, err, useragent.ErrEmptyUserAgent)
		assert.True(t, ua.IsUnknown())
		assert.Equal(t, useragent.OSUnknown, ua.OS())
		assert.Empty(t, ua.BrowserTitle())
	})

	t.Run("unknown device keeps product token", func(t *testing.T) {
		t.Parallel()
		ua, err := useragent.Parse("curl/8.4.0")
		require.ErrorIs(t, err, useragent.ErrUnknownDevice)
		assert.Equal(t, "curl", ua.BrowserTitle())
		assert.Equal(t, "8.4.0", ua.BrowserVer())
		assert.Empty(t, ua.Platform())
		assert.Empty(t, ua.OSTitle())
	})

	t.Run("garbage without product token", func(t *testing.T) {
		t.Parallel()
		ua, err := useragent.Parse("???")
		require.Error(t, err)
		assert.Empty(t, ua.BrowserTitle())
		assert.Empty(t, ua.BrowserVer())
	})
}

func TestParseOS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected useragent.OS
	}{
		{name: "Windows 10", ua: chromeWindowsUA, expected: useragent.OS{Name: useragent.OSWindows, Version: "10"}},
		{name: "Windows 8.1", ua: "Mozilla/5.0 (Windows NT 6.3; WOW64)", expected: useragent.OS{Name: useragent.OSWindows, Version: "8.1"}},
		{name: "Windows Phone", ua: "Mozilla/5.0 (Windows Phone 10.0; Android 6.0.1; Microsoft; Lumia 950) Edge/15.15063", expected: useragent.OS{Name: useragent.OSWindowsPhone, Version: "10.0"}},
		{name: "macOS", ua: safariMacUA, expected: useragent.OS{Name: useragent.OSMacOS, Version: "10.15.7"}},
		{name: "iOS", ua: safariIPhoneUA, expected: useragent.OS{Name: useragent.OSiOS, Version: "14.4"}},
		{name: "Android", ua: chromeAndroidUA, expected: useragent.OS{Name: useragent.OSAndroid, Version: "11"}},
		{name: "ChromeOS", ua: "Mozilla/5.0 (X11; CrOS x86_64 14541.0.0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36", expected: useragent.OS{Name: useragent.OSChromeOS}},
		{name: "Linux", ua: firefoxLinuxUA, expected: useragent.OS{Name: useragent.OSLinux}},
		{name: "empty", ua: "", expected: useragent.OS{Name: useragent.OSUnknown}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, useragent.ParseOS(strings.ToLower(tc.ua)))
		})
	}
}

func TestParseBrowser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected useragent.Browser
	}{
		{name: "Chrome", ua: chromeWindowsUA, expected: useragent.Browser{Name: useragent.BrowserChrome, Version: "91.0.4472.124"}},
		{name: "Firefox", ua: firefoxLinuxUA, expected: useragent.Browser{Name: useragent.BrowserFirefox, Version: "89.0"}},
		{name: "Safari", ua: safariMacUA, expected: useragent.Browser{Name: useragent.BrowserSafari, Version: "14.0.3"}},
		{name: "Edge", ua: edgeWindowsUA, expected: useragent.Browser{Name: useragent.BrowserEdge, Version: "91.0.864.59"}},
		{name: "Opera", ua: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36 OPR/77.0.4054.254", expected: useragent.Browser{Name: useragent.BrowserOpera, Version: "77.0.4054.254"}},
		{name: "Samsung Internet", ua: "Mozilla/5.0 (Linux; Android 11; SM-G991B) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/14.0 Chrome/87.0.4280.141 Mobile Safari/537.36", expected: useragent.Browser{Name: useragent.BrowserSamsung, Version: "14.0"}},
		{name: "Chrome on iOS", ua: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) CriOS/118.0.5993.69 Mobile/15E148 Safari/604.1", expected: useragent.Browser{Name: useragent.BrowserChrome, Version: "118.0.5993.69"}},
		{name: "IE 11", ua: ie11UA, expected: useragent.Browser{Name: useragent.BrowserIE, Version: "11.0"}},
		{name: "IE 9", ua: "Mozilla/5.0 (compatible; MSIE 9.0; Windows NT 6.1; Trident/5.0)", expected: useragent.Browser{Name: useragent.BrowserIE, Version: "9.0"}},
		{name: "empty", ua: "", expected: useragent.Browser{Name: useragent.BrowserUnknown}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, useragent.ParseBrowser(strings.ToLower(tc.ua)))
		})
	}
}

func TestParsePlatform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{name: "Windows", ua: chromeWindowsUA, expected: "Windows"},
		{name: "Macintosh", ua: safariMacUA, expected: "Macintosh"},
		{name: "iPhone", ua: safariIPhoneUA, expected: "iPhone"},
		{name: "iPad", ua: safariIPadUA, expected: "iPad"},
		{name: "Android", ua: chromeAndroidUA, expected: "Android"},
		{name: "X11", ua: firefoxLinuxUA, expected: "X11"},
		{name: "Xbox", ua: "Mozilla/5.0 (Windows NT 10.0; Win64; x64; Xbox; Xbox One) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/70.0.3538.102 Safari/537.36 Edge/18.19041", expected: "Xbox"},
		{name: "unknown", ua: "curl/8.4.0", expected: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, useragent.ParsePlatform(strings.ToLower(tc.ua)))
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	ua := useragent.New(
		"test-ua",
		useragent.Device{Type: useragent.DeviceTypeMobile, Model: useragent.MobileDeviceIPhone, Platform: "iPhone"},
		useragent.OS{Name: useragent.OSiOS, Version: "17.0"},
		useragent.Browser{Name: useragent.BrowserSafari, Version: "17.0"},
	)

	assert.Equal(t, "test-ua", ua.String())
	assert.Equal(t, "iPhone", ua.Platform())
	assert.Equal(t, "iOS 17.0", ua.OSTitle())
	assert.Equal(t, "Safari", ua.BrowserTitle())
	assert.Equal(t, useragent.Browser{Name: useragent.BrowserSafari, Version: "17.0"}, ua.BrowserInfo())
	assert.True(t, ua.IsMobile())
	assert.False(t, ua.IsDesktop())
	assert.False(t, ua.IsTablet())
	assert.False(t, ua.IsBot())
	assert.False(t, ua.IsTV())
	assert.False(t, ua.IsConsole())
	assert.False(t, ua.IsUnknown())
}
