package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fleetra/site/compat"
)

// polyfillSources are pinned CDN builds. Files under ./static/js/polyfills
// take precedence since static files are served first.
var polyfillSources = map[compat.Feature]string{
	compat.FeaturePromise:              "https://cdn.jsdelivr.net/npm/promise-polyfill@8.3.0/dist/polyfill.min.js",
	compat.FeatureFetch:                "https://cdn.jsdelivr.net/npm/whatwg-fetch@3.6.20/dist/fetch.umd.js",
	compat.FeatureIntersectionObserver: "https://cdn.jsdelivr.net/npm/intersection-observer@0.12.2/intersection-observer.js",
	compat.FeatureResizeObserver:       "https://cdn.jsdelivr.net/npm/resize-observer-polyfill@1.5.1/dist/ResizeObserver.global.js",
}

const globalThisPolyfill = `(function(){if(typeof globalThis==='undefined'){(typeof self!=='undefined'?self:window).globalThis=(typeof self!=='undefined'?self:window)}})();`

// HandlePolyfill serves /js/polyfills/<feature>.js.
func HandlePolyfill(c *fiber.Ctx) error {
	feature := compat.Feature(strings.TrimSuffix(c.Params("name"), ".js"))

	if feature == compat.FeatureGlobalThis {
		c.Set(fiber.HeaderContentType, "application/javascript; charset=utf-8")
		c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
		return c.SendString(globalThisPolyfill)
	}

	src, ok := polyfillSources[feature]
	if !ok {
		return fiber.ErrNotFound
	}
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Redirect(src, fiber.StatusFound)
}
