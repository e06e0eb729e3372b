// Package compat classifies browsers from their User-Agent and decides which
// compatibility workarounds a page needs: polyfills to load, a one-time
// storage clear for devices known to keep broken state, and an
// unsupported-browser notice.
package compat

import (
	"regexp"
	"strconv"
	"strings"
)

type Browser string

const (
	Unknown         Browser = "unknown"
	Chrome          Browser = "chrome"
	Edge            Browser = "edge"
	EdgeLegacy      Browser = "edge-legacy"
	Firefox         Browser = "firefox"
	Safari          Browser = "safari"
	SamsungInternet Browser = "samsung"
	Opera           Browser = "opera"
	IE              Browser = "ie"
)

// Version is a major.minor browser or OS version.
type Version struct {
	Major int
	Minor int
}

// Less reports whether v is older than o.
func (v Version) Less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	return v.Minor < o.Minor
}

func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// Client is what the server knows about the requesting browser.
type Client struct {
	Browser Browser
	Version Version
	IOS     bool
	// IOSVersion is set when IOS is true. Every iOS browser runs WebKit, so
	// feature support follows this version rather than Version.
	IOSVersion Version
	// InApp names the host app for in-app webviews ("facebook", "instagram", ...).
	InApp string
	Bot   bool
}

var (
	reIE         = regexp.MustCompile(`MSIE (\d+)\.(\d+)|Trident/.*rv:(\d+)\.(\d+)`)
	reEdgeLegacy = regexp.MustCompile(`Edge/(\d+)\.(\d+)`)
	reEdge       = regexp.MustCompile(`Edg(?:A|iOS)?/(\d+)\.(\d+)`)
	reSamsung    = regexp.MustCompile(`SamsungBrowser/(\d+)\.(\d+)`)
	reOpera      = regexp.MustCompile(`OPR/(\d+)\.(\d+)`)
	reFirefox    = regexp.MustCompile(`(?:Firefox|FxiOS)/(\d+)\.(\d+)`)
	reChrome     = regexp.MustCompile(`(?:Chrome|CriOS)/(\d+)\.(\d+)`)
	reSafari     = regexp.MustCompile(`Version/(\d+)(?:\.(\d+))?.*Safari/`)
	reIOS        = regexp.MustCompile(`\((?:iPhone|iPad|iPod).*? OS (\d+)(?:_(\d+))?`)
	// Crawlers announce "<name>bot/<version>" or a bare "bot" token. Device
	// names that merely end in "bot" (CUBOT) are browsers.
	reBot = regexp.MustCompile(`(?i)bot[/;)]|\bbot\b|googlebot|bingbot|slackbot|crawler|spider|slurp|lighthouse|headlesschrome|pingdom|facebookexternalhit`)

	inAppMarkers = []struct {
		marker string
		app    string
	}{
		{"FBAN", "facebook"},
		{"FBAV", "facebook"},
		{"Instagram", "instagram"},
		{" Line/", "line"},
		{"MicroMessenger", "wechat"},
		{"musical_ly", "tiktok"},
		{"BytedanceWebview", "tiktok"},
		{"LinkedInApp", "linkedin"},
	}
)

// Detect parses a User-Agent header.
func Detect(ua string) Client {
	c := Client{Browser: Unknown}
	if ua == "" {
		return c
	}

	c.Bot = reBot.MatchString(ua)

	if m := reIOS.FindStringSubmatch(ua); m != nil {
		c.IOS = true
		c.IOSVersion = version(m[1], m[2])
	}

	for _, in := range inAppMarkers {
		if strings.Contains(ua, in.marker) {
			c.InApp = in.app
			break
		}
	}

	switch {
	case reIE.MatchString(ua):
		m := reIE.FindStringSubmatch(ua)
		c.Browser = IE
		if m[1] != "" {
			c.Version = version(m[1], m[2])
		} else {
			c.Version = version(m[3], m[4])
		}
	case reEdgeLegacy.MatchString(ua):
		c.Browser, c.Version = EdgeLegacy, match(reEdgeLegacy, ua)
	case reEdge.MatchString(ua):
		c.Browser, c.Version = Edge, match(reEdge, ua)
	case reSamsung.MatchString(ua):
		c.Browser, c.Version = SamsungInternet, match(reSamsung, ua)
	case reOpera.MatchString(ua):
		c.Browser, c.Version = Opera, match(reOpera, ua)
	case reFirefox.MatchString(ua):
		c.Browser, c.Version = Firefox, match(reFirefox, ua)
	case reChrome.MatchString(ua):
		c.Browser, c.Version = Chrome, match(reChrome, ua)
	case reSafari.MatchString(ua):
		c.Browser, c.Version = Safari, match(reSafari, ua)
	case c.IOS:
		// In-app webviews on iOS drop the Version/ and Safari/ tokens.
		c.Browser, c.Version = Safari, c.IOSVersion
	}

	return c
}

func match(re *regexp.Regexp, ua string) Version {
	m := re.FindStringSubmatch(ua)
	return version(m[1], m[2])
}

func version(major, minor string) Version {
	maj, _ := strconv.Atoi(major)
	mnr, _ := strconv.Atoi(minor)
	return Version{Major: maj, Minor: mnr}
}
