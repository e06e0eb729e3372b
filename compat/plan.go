package compat

import "strings"

type Feature string

const (
	FeaturePromise              Feature = "promise"
	FeatureFetch                Feature = "fetch"
	FeatureIntersectionObserver Feature = "intersection-observer"
	FeatureResizeObserver       Feature = "resize-observer"
	FeatureGlobalThis           Feature = "globalthis"
)

// Features lists every polyfill the site can load, in load order.
var Features = []Feature{
	FeaturePromise,
	FeatureFetch,
	FeatureIntersectionObserver,
	FeatureResizeObserver,
	FeatureGlobalThis,
}

// minVersions is the first version of each browser shipping the feature.
// A browser missing from a row never shipped it.
var minVersions = map[Feature]map[Browser]Version{
	FeaturePromise: {
		Chrome: {33, 0}, Edge: {79, 0}, EdgeLegacy: {12, 0}, Firefox: {29, 0},
		Safari: {7, 1}, SamsungInternet: {2, 0}, Opera: {20, 0},
	},
	FeatureFetch: {
		Chrome: {42, 0}, Edge: {79, 0}, EdgeLegacy: {14, 0}, Firefox: {39, 0},
		Safari: {10, 1}, SamsungInternet: {4, 0}, Opera: {29, 0},
	},
	FeatureIntersectionObserver: {
		Chrome: {58, 0}, Edge: {79, 0}, EdgeLegacy: {16, 0}, Firefox: {55, 0},
		Safari: {12, 1}, SamsungInternet: {7, 0}, Opera: {45, 0},
	},
	FeatureResizeObserver: {
		Chrome: {64, 0}, Edge: {79, 0}, Firefox: {69, 0},
		Safari: {13, 1}, SamsungInternet: {9, 0}, Opera: {51, 0},
	},
	FeatureGlobalThis: {
		Chrome: {71, 0}, Edge: {79, 0}, Firefox: {65, 0},
		Safari: {12, 1}, SamsungInternet: {10, 0}, Opera: {58, 0},
	},
}

// Plan is the set of workarounds for one client.
type Plan struct {
	Polyfills []Feature
	// ClearStorage asks for a one-time wipe of local/session storage,
	// caches and service workers.
	ClearStorage bool
	Unsupported  bool
	Reason       string
}

// Key identifies the plan for page caching.
func (p Plan) Key() string {
	parts := make([]string, 0, len(p.Polyfills)+2)
	for _, f := range p.Polyfills {
		parts = append(parts, string(f))
	}
	if p.ClearStorage {
		parts = append(parts, "clear")
	}
	if p.Unsupported {
		parts = append(parts, "unsupported")
	}
	if len(parts) == 0 {
		return "modern"
	}
	return strings.Join(parts, "+")
}

// PlanFor computes the workarounds for c.
func PlanFor(c Client) Plan {
	var p Plan
	if c.Bot || c.Browser == Unknown {
		return p
	}

	browser, ver := c.Browser, c.Version
	if c.IOS {
		browser, ver = Safari, c.IOSVersion
	}

	for _, f := range Features {
		if !Supports(browser, ver, f) {
			p.Polyfills = append(p.Polyfills, f)
		}
	}

	switch {
	case c.IOS && c.InApp != "":
		p.ClearStorage = true
		p.Reason = "ios in-app webview (" + c.InApp + ")"
	case c.IOS && c.IOSVersion.Less(Version{13, 0}):
		p.ClearStorage = true
		p.Reason = "ios < 13"
	case c.Browser == SamsungInternet && c.Version.Less(Version{12, 0}):
		p.ClearStorage = true
		p.Reason = "samsung internet < 12"
	}

	switch {
	case c.Browser == IE:
		p.Unsupported = true
		p.Reason = joinReason(p.Reason, "internet explorer")
	case c.Browser == EdgeLegacy && c.Version.Less(Version{16, 0}):
		p.Unsupported = true
		p.Reason = joinReason(p.Reason, "edge legacy < 16")
	}

	return p
}

// Supports reports whether the browser version ships feature f natively.
func Supports(b Browser, v Version, f Feature) bool {
	if b == Unknown {
		return true
	}
	first, ok := minVersions[f][b]
	if !ok {
		return false
	}
	return !v.Less(first)
}

func joinReason(a, b string) string {
	if a == "" {
		return b
	}
	return a + "; " + b
}
