package useragent

import "strings"

// platformRule maps a keyword of the UA comment to the platform name.
type platformRule struct {
	keyword  string
	platform string
}

// platformRules is ordered so that more specific hardware wins: an iPad UA
// also says "like Mac OS X", an Xbox says "Windows NT" and Android UAs say "Linux".
var platformRules = []platformRule{
	{"ipad", "iPad"},
	{"iphone", "iPhone"},
	{"ipod", "iPod"},
	{"playstation", "PlayStation"},
	{"xbox", "Xbox"},
	{"nintendo", "Nintendo"},
	{"windows phone", "Windows Phone"},
	{"windows", "Windows"},
	{"macintosh", "Macintosh"},
	{"kindle", "Kindle"},
	{"blackberry", "BlackBerry"},
	{"android", "Android"},
	{"cros ", "X11"},
	{"x11", "X11"},
	{"linux", "Linux"},
}

// ParsePlatform returns the hardware platform named in a lower-cased UA,
// or an empty string when none is recognized.
func ParsePlatform(lowerUA string) string {
	for _, rule := range platformRules {
		if strings.Contains(lowerUA, rule.keyword) {
			return rule.platform
		}
	}
	return ""
}
