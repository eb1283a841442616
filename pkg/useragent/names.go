package useragent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var browserTitles = map[string]string{
	BrowserChrome:  "Chrome",
	BrowserFirefox: "Firefox",
	BrowserSafari:  "Safari",
	BrowserEdge:    "Edge",
	BrowserOpera:   "Opera",
	BrowserIE:      "Internet Explorer",
	BrowserSamsung: "Samsung Internet",
	BrowserUC:      "UC Browser",
	BrowserQQ:      "QQ Browser",
	BrowserHuawei:  "Huawei Browser",
	BrowserVivo:    "Vivo Browser",
	BrowserMIUI:    "MIUI Browser",
	BrowserBrave:   "Brave",
	BrowserVivaldi: "Vivaldi",
	BrowserYandex:  "Yandex Browser",
}

var osTitles = map[string]string{
	OSWindows:      "Windows",
	OSWindowsPhone: "Windows Phone",
	OSMacOS:        "macOS",
	OSiOS:          "iOS",
	OSAndroid:      "Android",
	OSLinux:        "Linux",
	OSChromeOS:     "ChromeOS",
	OSHarmonyOS:    "HarmonyOS",
	OSFireOS:       "Fire OS",
}

// knownTitles holds every display name BrowserTitle can produce without
// copying text from the User-Agent.
var knownTitles = func() map[string]struct{} {
	titles := make(map[string]struct{}, len(browserTitles)+len(knownBots)+1)
	for _, title := range browserTitles {
		titles[title] = struct{}{}
	}
	for _, bot := range knownBots {
		titles[bot.name] = struct{}{}
	}
	titles[genericBotName] = struct{}{}
	return titles
}()

// IsKnownTitle reports whether name comes from the fixed browser and crawler
// tables. Product-token fallbacks and pattern-matched bot names are client
// controlled and return false.
func IsKnownTitle(name string) bool {
	_, ok := knownTitles[name]
	return ok
}

// BrowserTitle returns the display name of the browser.
// Bots are reported by crawler name, product-token fallbacks as written and
// an unrecognized browser as an empty string.
func (ua UserAgent) BrowserTitle() string {
	if ua.IsBot() {
		return extractBotName(ua.userAgent)
	}
	if title, ok := browserTitles[ua.browser.Name]; ok {
		return title
	}
	if ua.browser.Name == BrowserUnknown {
		return ""
	}
	return ua.browser.Name
}

// OSTitle returns the display name of the operating system with its version
// when known, e.g. "Windows 10" or "macOS 10.15.7". Empty if unrecognized.
func (ua UserAgent) OSTitle() string {
	title, ok := osTitles[ua.os.Name]
	if !ok {
		return ""
	}
	if ua.os.Version != "" {
		return title + " " + ua.os.Version
	}
	return title
}

// knownBots maps UA keywords to crawler names, checked in order.
var knownBots = []struct{ keyword, name string }{
	{"googlebot", "Googlebot"},
	{"bingbot", "Bingbot"},
	{"yandexbot", "YandexBot"},
	{"baiduspider", "Baiduspider"},
	{"duckduckbot", "DuckDuckBot"},
	{"twitterbot", "Twitterbot"},
	{"facebookexternalhit", "Facebook"},
	{"linkedinbot", "LinkedInBot"},
	{"slackbot", "Slackbot"},
	{"telegrambot", "TelegramBot"},
	{"applebot", "Applebot"},
	{"headlesschrome", "HeadlessChrome"},
}

// Patterns for bots missing from knownBots.
var botNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([a-z0-9\-_]+bot)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+spider)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+crawler)`),
}

func extractBotName(userAgent string) string {
	lowerUA := strings.ToLower(userAgent)
	for _, bot := range knownBots {
		if strings.Contains(lowerUA, bot.keyword) {
			return bot.name
		}
	}

	title := cases.Title(language.English)
	for _, pattern := range botNamePatterns {
		if m := pattern.FindStringSubmatch(userAgent); len(m) > 1 {
			return title.String(strings.ToLower(m[1]))
		}
	}

	return genericBotName
}

const genericBotName = "Bot"
