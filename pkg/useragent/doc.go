// Package useragent parses and classifies HTTP User-Agent strings.
//
// It identifies:
//   - Device type: desktop, mobile, tablet, TV, console, bot or unknown
//   - Device model: iPhone, Samsung, Huawei, etc. (when available)
//   - Platform: the hardware named in the UA comment (Macintosh, Windows, iPhone, X11, ...)
//   - Operating system and its version: Windows 10, macOS 10.15.7, Android 14, ...
//   - Browser name and version: Chrome, Safari, Firefox, ...
//
// Parsing uses plain-string keyword look-ups and a handful of pre-compiled
// regular expressions, which keeps it cheap enough to run on every request.
//
// # Usage
//
//	ua, err := useragent.Parse(r.UserAgent())
//	if errors.Is(err, useragent.ErrEmptyUserAgent) {
//		return
//	}
//
//	fmt.Println(ua.BrowserTitle(), ua.BrowserVer(), ua.Platform(), ua.OSTitle())
//	// Chrome 124.0.0.0 Windows Windows 10
//
// # Error Handling
//
// Parse returns ErrEmptyUserAgent, ErrUnknownDevice or ErrMalformedUserAgent.
// The last two are soft: the returned UserAgent still holds every field that
// was recognized, including a browser taken from the leading product token
// ("curl/8.4.0") when no known browser matched.
package useragent
