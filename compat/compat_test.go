package compat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	uaChrome     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	uaChromeOld  = "Mozilla/5.0 (Windows NT 6.1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/49.0.2623.112 Safari/537.36"
	uaEdge       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.2210.91"
	uaEdgeLegacy = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/52.0.2743.116 Safari/537.36 Edge/15.15063"
	uaFirefox    = "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0"
	uaSafari     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15"
	uaSafari12   = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_13_6) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/12.0 Safari/605.1.15"
	uaIOS12      = "Mozilla/5.0 (iPhone; CPU iPhone OS 12_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/12.1.2 Mobile/15E148 Safari/604.1"
	uaIOS17      = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1"
	uaIOSChrome  = "Mozilla/5.0 (iPhone; CPU iPhone OS 12_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) CriOS/120.0.6099.119 Mobile/15E148 Safari/604.1"
	uaIOSFB      = "Mozilla/5.0 (iPhone; CPU iPhone OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148 [FBAN/FBIOS;FBAV/442.0.0.30.110;FBBV/546936410]"
	uaSamsung    = "Mozilla/5.0 (Linux; Android 9; SAMSUNG SM-G960F) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/9.2 Chrome/67.0.3396.87 Mobile Safari/537.36"
	uaOpera      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36 OPR/105.0.0.0"
	uaIE11       = "Mozilla/5.0 (Windows NT 10.0; Trident/7.0; rv:11.0) like Gecko"
	uaIE9        = "Mozilla/5.0 (compatible; MSIE 9.0; Windows NT 6.1; Trident/5.0)"
	uaGooglebot  = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
	uaBingbot    = "Mozilla/5.0 (compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm)"
	uaCubot      = "Mozilla/5.0 (Linux; Android 5.1; CUBOT NOTE S Build/LMY47D) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/39.0.0.0 Mobile Safari/537.36"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		ua      string
		browser Browser
		version Version
		ios     bool
		inApp   string
		bot     bool
	}{
		{name: "chrome", ua: uaChrome, browser: Chrome, version: Version{120, 0}},
		{name: "edge", ua: uaEdge, browser: Edge, version: Version{120, 0}},
		{name: "edge legacy", ua: uaEdgeLegacy, browser: EdgeLegacy, version: Version{15, 15063}},
		{name: "firefox", ua: uaFirefox, browser: Firefox, version: Version{121, 0}},
		{name: "safari", ua: uaSafari, browser: Safari, version: Version{17, 2}},
		{name: "ios safari", ua: uaIOS12, browser: Safari, version: Version{12, 1}, ios: true},
		{name: "ios chrome", ua: uaIOSChrome, browser: Chrome, version: Version{120, 0}, ios: true},
		{name: "ios facebook", ua: uaIOSFB, browser: Safari, version: Version{16, 6}, ios: true, inApp: "facebook"},
		{name: "samsung", ua: uaSamsung, browser: SamsungInternet, version: Version{9, 2}},
		{name: "opera", ua: uaOpera, browser: Opera, version: Version{105, 0}},
		{name: "ie11", ua: uaIE11, browser: IE, version: Version{11, 0}},
		{name: "ie9", ua: uaIE9, browser: IE, version: Version{9, 0}},
		{name: "googlebot", ua: uaGooglebot, browser: Unknown, bot: true},
		{name: "bingbot", ua: uaBingbot, browser: Unknown, bot: true},
		{name: "device named like a bot", ua: uaCubot, browser: Chrome, version: Version{39, 0}},
		{name: "empty", ua: "", browser: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Detect(tt.ua)
			assert.Equal(t, tt.browser, c.Browser)
			assert.Equal(t, tt.version, c.Version)
			assert.Equal(t, tt.ios, c.IOS)
			assert.Equal(t, tt.inApp, c.InApp)
			assert.Equal(t, tt.bot, c.Bot)
		})
	}
}

func TestPlanFor(t *testing.T) {
	tests := []struct {
		name        string
		ua          string
		polyfills   []Feature
		clear       bool
		unsupported bool
	}{
		{name: "modern chrome", ua: uaChrome},
		{name: "modern ios", ua: uaIOS17},
		{name: "modern firefox", ua: uaFirefox},
		{
			name:      "old chrome",
			ua:        uaChromeOld,
			polyfills: []Feature{FeatureIntersectionObserver, FeatureResizeObserver, FeatureGlobalThis},
		},
		{
			name:      "safari 12.0",
			ua:        uaSafari12,
			polyfills: []Feature{FeatureIntersectionObserver, FeatureResizeObserver, FeatureGlobalThis},
		},
		{
			name:      "ios 12 safari clears storage",
			ua:        uaIOS12,
			polyfills: []Feature{FeatureResizeObserver},
			clear:     true,
		},
		{
			name:      "ios chrome follows webkit version",
			ua:        uaIOSChrome,
			polyfills: []Feature{FeatureResizeObserver},
			clear:     true,
		},
		{name: "ios in-app clears storage", ua: uaIOSFB, clear: true},
		{
			name:      "old samsung",
			ua:        uaSamsung,
			polyfills: []Feature{FeatureGlobalThis},
			clear:     true,
		},
		{
			name:        "ie11",
			ua:          uaIE11,
			polyfills:   Features,
			unsupported: true,
		},
		{
			name:        "edge legacy 15",
			ua:          uaEdgeLegacy,
			polyfills:   []Feature{FeatureIntersectionObserver, FeatureResizeObserver, FeatureGlobalThis},
			unsupported: true,
		},
		{name: "bot gets nothing", ua: uaGooglebot},
		{name: "unknown gets nothing", ua: "curl/8.4.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PlanFor(Detect(tt.ua))
			assert.Equal(t, tt.polyfills, p.Polyfills)
			assert.Equal(t, tt.clear, p.ClearStorage)
			assert.Equal(t, tt.unsupported, p.Unsupported)
			if tt.clear || tt.unsupported {
				assert.NotEmpty(t, p.Reason)
			}
		})
	}
}

func TestPlanFor_DeviceNamedLikeBotGetsPolyfills(t *testing.T) {
	p := PlanFor(Detect(uaCubot))
	assert.Contains(t, p.Polyfills, FeatureFetch)
	assert.Contains(t, p.Polyfills, FeatureIntersectionObserver)
}

func TestPlanKey(t *testing.T) {
	assert.Equal(t, "modern", Plan{}.Key())
	assert.Equal(t, "fetch+clear", Plan{Polyfills: []Feature{FeatureFetch}, ClearStorage: true}.Key())
	assert.Equal(t, "unsupported", Plan{Unsupported: true}.Key())
}

func TestVersionLess(t *testing.T) {
	assert.True(t, Version{12, 0}.Less(Version{12, 1}))
	assert.True(t, Version{11, 9}.Less(Version{12, 0}))
	assert.False(t, Version{13, 0}.Less(Version{12, 9}))
	assert.False(t, Version{12, 1}.Less(Version{12, 1}))
}

func TestFeatureDetectScript(t *testing.T) {
	all := FeatureDetectScript("/js/polyfills/", Plan{})
	for _, f := range Features {
		assert.Contains(t, all, `"/js/polyfills/`+string(f)+`.js"`)
	}

	some := FeatureDetectScript("/js/polyfills", Plan{Polyfills: []Feature{FeatureFetch}})
	assert.NotContains(t, some, "fetch.js")
	assert.Contains(t, some, "promise.js")
	assert.NotContains(t, some, "</script>")
}

func TestStorageClearScript(t *testing.T) {
	s := StorageClearScript(`3</script>`)
	assert.Contains(t, s, "localStorage.clear()")
	assert.Contains(t, s, "getRegistrations")
	assert.False(t, strings.Contains(s, "</script>"), "version must be escaped")
}

func TestRecoveryScript(t *testing.T) {
	s := RecoveryScript("/api/client-error")
	assert.Contains(t, s, `"/api/client-error"`)
	assert.Contains(t, s, "location.reload()")
	assert.Contains(t, s, "unhandledrejection")
}

func TestPolyfillURL(t *testing.T) {
	assert.Equal(t, "/js/polyfills/fetch.js", PolyfillURL("/js/polyfills/", FeatureFetch))
	assert.Equal(t, "https://cdn.example.com/p/fetch.js", PolyfillURL("https://cdn.example.com/p", FeatureFetch))
}
