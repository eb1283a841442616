package useragent

import (
	"strings"
)

// keywordSet optimizes keyword lookups using map structure
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Bot detection includes social media crawlers and monitoring tools.
var (
	botKeywords     = newKeywordSet("bot", "spider", "crawler", "archiver", "lighthouse", "slurp", "daum", "sogou", "yeti", "facebookexternalhit", "whatsapp", "discord", "camo asset", "monitor", "validator", "fetcher", "scraper", "headlesschrome")
	tvKeywords      = newKeywordSet("smarttv", "smart-tv", "appletv", "googletv", "android tv", "webos", "tizen", "hbbtv", "bravia")
	consoleKeywords = newKeywordSet("playstation", "xbox", "nintendo", "wiiu")
	tabletKeywords  = newKeywordSet("tablet", "kindle", "silk")
	mobileKeywords  = newKeywordSet("mobile", "iphone", "ipod", "windows phone", "iemobile", "blackberry", "nokia")
	desktopKeywords = newKeywordSet("windows", "macintosh", "mac os x", "linux", "x11", "ubuntu", "fedora", "debian", "chromeos", "cros")
)

// modelRule maps brand keywords to a device model identifier.
type modelRule struct {
	model    string
	keywords keywordSet
}

// Ordered by global market share for faster common-case detection.
var mobileModels = []modelRule{
	{MobileDeviceIPhone, newKeywordSet("iphone")},
	{MobileDeviceSamsung, newKeywordSet("samsung", "sm-g", "sm-a", "sm-n", "sm-s")},
	{MobileDeviceHuawei, newKeywordSet("huawei", "hwa-", "honor", "h60-", "h30-")},
	{MobileDeviceXiaomi, newKeywordSet("xiaomi", "mi ", "redmi", "miui")},
	{MobileDeviceOppo, newKeywordSet("oppo", "cph1", "cph2")},
	{MobileDeviceVivo, newKeywordSet("vivo", "viv-")},
	{MobileDeviceAndroid, newKeywordSet("android")},
}

var tabletModels = []modelRule{
	{TabletDeviceIPad, newKeywordSet("ipad")},
	{TabletDeviceSamsung, newKeywordSet("samsung", "sm-t", "gt-p", "sm-p")},
	{TabletDeviceHuawei, newKeywordSet("huawei", "mediapad", "agassi")},
	{TabletDeviceKindleFire, newKeywordSet("kindle", "silk", "kftt", "kfjwi")},
	{TabletDeviceAndroid, newKeywordSet("android")},
}

// ParseDeviceType classifies devices using fast string matching.
// Order matters: iOS devices first, then bots, then Android logic, then fallbacks.
func ParseDeviceType(lowerUA string) string {
	switch {
	case lowerUA == "":
		return DeviceTypeUnknown
	case strings.Contains(lowerUA, "ipad"):
		return DeviceTypeTablet
	case strings.Contains(lowerUA, "iphone"), strings.Contains(lowerUA, "ipod"):
		return DeviceTypeMobile
	case botKeywords.contains(lowerUA):
		return DeviceTypeBot
	case tvKeywords.contains(lowerUA):
		return DeviceTypeTV
	case consoleKeywords.contains(lowerUA):
		return DeviceTypeConsole
	case strings.Contains(lowerUA, "android"):
		// Android tablets omit the "Mobile" token, unlike phones.
		if strings.Contains(lowerUA, "mobile") {
			return DeviceTypeMobile
		}
		return DeviceTypeTablet
	case tabletKeywords.contains(lowerUA):
		return DeviceTypeTablet
	case mobileKeywords.contains(lowerUA):
		return DeviceTypeMobile
	case isWindowsTablet(lowerUA):
		return DeviceTypeTablet
	case desktopKeywords.contains(lowerUA):
		return DeviceTypeDesktop
	}
	return DeviceTypeUnknown
}

func isWindowsTablet(lowerUA string) bool {
	return strings.Contains(lowerUA, "windows") &&
		(strings.Contains(lowerUA, "touch") || strings.Contains(lowerUA, "tablet"))
}

// GetDeviceModel identifies device brands for mobile and tablet devices.
// Returns an empty string for other device types.
func GetDeviceModel(lowerUA, deviceType string) string {
	switch deviceType {
	case DeviceTypeMobile:
		return matchModel(lowerUA, mobileModels, MobileDeviceUnknown)
	case DeviceTypeTablet:
		if isWindowsTablet(lowerUA) {
			return TabletDeviceSurface
		}
		return matchModel(lowerUA, tabletModels, TabletDeviceUnknown)
	}
	return ""
}

func matchModel(lowerUA string, rules []modelRule, fallback string) string {
	for _, rule := range rules {
		if rule.keywords.contains(lowerUA) {
			return rule.model
		}
	}
	return fallback
}
