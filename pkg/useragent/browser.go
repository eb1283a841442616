package useragent

import (
	"regexp"
	"strings"
)

// Browser represents browser information
type Browser struct {
	Name    string
	Version string
}

// browserRule detects one browser. Rules are evaluated in slice order, so
// engines that embed another browser's token (Edge, Opera and friends all
// carry "Chrome/") must come before the browser they imitate.
type browserRule struct {
	name     string
	anyOf    []string // at least one must be present
	allOf    []string // all must be present
	excludes []string
	version  *regexp.Regexp
}

func (r browserRule) matches(lowerUA string) bool {
	if len(r.anyOf) > 0 && !containsAny(lowerUA, r.anyOf) {
		return false
	}
	for _, kw := range r.allOf {
		if !strings.Contains(lowerUA, kw) {
			return false
		}
	}
	return !containsAny(lowerUA, r.excludes)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

const maxVersionLen = 20

func (r browserRule) extractVersion(lowerUA string) string {
	if r.version == nil {
		return ""
	}
	m := r.version.FindStringSubmatch(lowerUA)
	if len(m) < 2 {
		return ""
	}
	if len(m[1]) > maxVersionLen {
		return m[1][:maxVersionLen]
	}
	return m[1]
}

var browserRules = []browserRule{
	{name: BrowserEdge, anyOf: []string{"edg/", "edge/", "edga/", "edgios/"}, version: regexp.MustCompile(`(?:edge|edga|edgios|edg)/([\d.]+)`)},
	{name: BrowserSamsung, anyOf: []string{"samsungbrowser"}, version: regexp.MustCompile(`samsungbrowser[/\s]([\d.]+)`)},
	{name: BrowserUC, anyOf: []string{"ucbrowser"}, version: regexp.MustCompile(`ucbrowser[/\s]([\d.]+)`)},
	{name: BrowserQQ, anyOf: []string{"qqbrowser"}, version: regexp.MustCompile(`qqbrowser[/\s]([\d.]+)`)},
	{name: BrowserQQ, allOf: []string{"qq", "browser"}, version: regexp.MustCompile(`qq[/\s]([\d.]+)`)},
	{name: BrowserHuawei, anyOf: []string{"huaweibrowser"}, version: regexp.MustCompile(`huaweibrowser[/\s]([\d.]+)`)},
	{name: BrowserVivo, anyOf: []string{"vivobrowser"}, version: regexp.MustCompile(`vivobrowser[/\s]([\d.]+)`)},
	{name: BrowserMIUI, anyOf: []string{"miuibrowser"}, version: regexp.MustCompile(`miuibrowser[/\s]([\d.]+)`)},
	{name: BrowserMIUI, anyOf: []string{"miui"}, version: regexp.MustCompile(`miui[/\s]([\d.]+)`)},
	{name: BrowserYandex, anyOf: []string{"yabrowser", "yandexbrowser"}, version: regexp.MustCompile(`(?:yabrowser|yandexbrowser)[/\s]([\d.]+)`)},
	{name: BrowserVivaldi, anyOf: []string{"vivaldi"}, version: regexp.MustCompile(`vivaldi[/\s]([\d.]+)`)},
	{name: BrowserBrave, anyOf: []string{"brave"}, version: regexp.MustCompile(`brave[/\s]([\d.]+)`)},
	{name: BrowserOpera, anyOf: []string{"opr/"}, version: regexp.MustCompile(`opr/([\d.]+)`)},
	{name: BrowserOpera, anyOf: []string{"opera"}, version: regexp.MustCompile(`opera[/\s]([\d.]+)`)},
	{name: BrowserFirefox, anyOf: []string{"fxios/"}, version: regexp.MustCompile(`fxios/([\d.]+)`)},
	{name: BrowserChrome, anyOf: []string{"crios/"}, version: regexp.MustCompile(`crios/([\d.]+)`)},
	{name: BrowserChrome, anyOf: []string{"chrome"}, version: regexp.MustCompile(`chrome[/\s]([\d.]+)`)},
	{name: BrowserFirefox, anyOf: []string{"firefox"}, version: regexp.MustCompile(`firefox[/\s]([\d.]+)`)},
	{name: BrowserSafari, anyOf: []string{"safari"}, excludes: []string{"chrome", "chromium", "android"}, version: regexp.MustCompile(`version/([\d.]+)`)},
	{name: BrowserIE, anyOf: []string{"msie"}, version: regexp.MustCompile(`msie ([\d.]+)`)},
}

// ParseBrowser parses the browser information from a lower-cased user agent string
func ParseBrowser(lowerUA string) Browser {
	// IE 11 dropped the "MSIE" token and only reports the Trident engine.
	if strings.Contains(lowerUA, "trident/") && !strings.Contains(lowerUA, "msie") {
		return Browser{Name: BrowserIE, Version: "11.0"}
	}

	for _, rule := range browserRules {
		if rule.matches(lowerUA) {
			return Browser{Name: rule.name, Version: rule.extractVersion(lowerUA)}
		}
	}

	return Browser{Name: BrowserUnknown}
}
