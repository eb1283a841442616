package useragent

import (
	"regexp"
	"strings"
)

// OS represents operating system information
type OS struct {
	Name    string
	Version string
}

// OS detection keyword sets optimized for common traffic patterns
var (
	windowsPhoneKeywords = newKeywordSet("windows phone")
	windowsKeywords      = newKeywordSet("windows")
	iOSKeywords          = newKeywordSet("iphone", "ipad", "ipod")
	macOSKeywords        = newKeywordSet("macintosh", "mac os x")
	harmonyOSKeywords    = newKeywordSet("harmonyos")
	androidKeywords      = newKeywordSet("android")
	fireOSKeywords       = newKeywordSet("kindle", "silk")
	chromeOSKeywords     = newKeywordSet("cros", "chromeos", "chrome os")
	linuxKeywords        = newKeywordSet("linux", "ubuntu", "debian", "fedora", "mint", "x11")
)

var (
	windowsNTVersion    = regexp.MustCompile(`windows nt ([\d.]+)`)
	windowsPhoneVersion = regexp.MustCompile(`windows phone(?: os)? ([\d.]+)`)
	iOSVersion          = regexp.MustCompile(`(?:iphone )?os (\d+(?:_\d+)*) like mac os x`)
	macOSVersion        = regexp.MustCompile(`mac os x (\d+(?:[_.]\d+)*)`)
	androidVersion      = regexp.MustCompile(`android[\s/]?(\d+(?:\.\d+)*)`)
	harmonyOSVersion    = regexp.MustCompile(`harmonyos[\s/]?(\d+(?:\.\d+)*)`)
)

// windowsReleases maps NT kernel versions to marketing names.
var windowsReleases = map[string]string{
	"10.0": "10",
	"6.3":  "8.1",
	"6.2":  "8",
	"6.1":  "7",
	"6.0":  "Vista",
	"5.2":  "XP x64",
	"5.1":  "XP",
	"5.0":  "2000",
}

// ParseOS identifies operating systems using keyword matching.
// Order reflects typical web traffic patterns: Windows first, then mobile OSes.
func ParseOS(lowerUA string) OS {
	if lowerUA == "" {
		return OS{Name: OSUnknown}
	}

	switch {
	case windowsPhoneKeywords.contains(lowerUA):
		return OS{Name: OSWindowsPhone, Version: firstGroup(windowsPhoneVersion, lowerUA)}
	case windowsKeywords.contains(lowerUA):
		nt := firstGroup(windowsNTVersion, lowerUA)
		if release, ok := windowsReleases[nt]; ok {
			nt = release
		}
		return OS{Name: OSWindows, Version: nt}
	case iOSKeywords.contains(lowerUA):
		return OS{Name: OSiOS, Version: dotted(firstGroup(iOSVersion, lowerUA))}
	case macOSKeywords.contains(lowerUA):
		return OS{Name: OSMacOS, Version: dotted(firstGroup(macOSVersion, lowerUA))}
	case harmonyOSKeywords.contains(lowerUA):
		// HarmonyOS UAs also carry "Android", so it is checked first.
		return OS{Name: OSHarmonyOS, Version: firstGroup(harmonyOSVersion, lowerUA)}
	case fireOSKeywords.contains(lowerUA):
		return OS{Name: OSFireOS}
	case androidKeywords.contains(lowerUA):
		return OS{Name: OSAndroid, Version: firstGroup(androidVersion, lowerUA)}
	case chromeOSKeywords.contains(lowerUA):
		return OS{Name: OSChromeOS}
	case linuxKeywords.contains(lowerUA):
		return OS{Name: OSLinux}
	}

	return OS{Name: OSUnknown}
}

func firstGroup(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return ""
}

func dotted(v string) string {
	return strings.ReplaceAll(v, "_", ".")
}
