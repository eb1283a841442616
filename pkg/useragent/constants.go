package useragent

// Device types
const (
	DeviceTypeBot     = "bot"
	DeviceTypeMobile  = "mobile"
	DeviceTypeTablet  = "tablet"
	DeviceTypeDesktop = "desktop"
	DeviceTypeTV      = "tv"
	DeviceTypeConsole = "console"
	DeviceTypeUnknown = "unknown"
)

// Mobile device models
const (
	MobileDeviceIPhone  = "iphone"
	MobileDeviceAndroid = "android"
	MobileDeviceSamsung = "samsung"
	MobileDeviceHuawei  = "huawei"
	MobileDeviceXiaomi  = "xiaomi"
	MobileDeviceOppo    = "oppo"
	MobileDeviceVivo    = "vivo"
	MobileDeviceUnknown = "unknown"
)

// Tablet device models
const (
	TabletDeviceIPad       = "ipad"
	TabletDeviceAndroid    = "android"
	TabletDeviceSamsung    = "samsung"
	TabletDeviceHuawei     = "huawei"
	TabletDeviceKindleFire = "kindle"
	TabletDeviceSurface    = "surface"
	TabletDeviceUnknown    = "unknown"
)

// Browser identifiers. Use BrowserTitle for display names.
const (
	BrowserChrome  = "chrome"
	BrowserFirefox = "firefox"
	BrowserSafari  = "safari"
	BrowserEdge    = "edge"
	BrowserOpera   = "opera"
	BrowserIE      = "ie"
	BrowserSamsung = "samsung"
	BrowserUC      = "uc"
	BrowserQQ      = "qq"
	BrowserHuawei  = "huawei"
	BrowserVivo    = "vivo"
	BrowserMIUI    = "miui"
	BrowserBrave   = "brave"
	BrowserVivaldi = "vivaldi"
	BrowserYandex  = "yandex"
	BrowserUnknown = "unknown"
)

// Operating system identifiers. Use OSTitle for display names.
const (
	OSWindows      = "windows"
	OSWindowsPhone = "windows phone"
	OSMacOS        = "macos"
	OSiOS          = "ios"
	OSAndroid      = "android"
	OSLinux        = "linux"
	OSChromeOS     = "chromeos"
	OSHarmonyOS    = "harmonyos"
	OSFireOS       = "fireos"
	OSUnknown      = "unknown"
)
