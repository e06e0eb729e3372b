package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/fleetra/site/compat"
	"github.com/fleetra/site/content"
	"github.com/fleetra/site/store"
)

func renderString(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestPage_ModernPlan(t *testing.T) {
	html := renderString(t, HomePage(content.Get(), "/", compat.Plan{}))

	assert.Contains(t, html, ClientErrorPath)
	assert.Contains(t, html, "IntersectionObserver")
	assert.NotContains(t, html, "localStorage.clear()")
	assert.NotContains(t, html, "unsupported-browser")
	assert.Contains(t, html, SubmitPath)

	// Recovery must run before the stylesheet can fail.
	assert.Less(t, strings.Index(html, "recovery_reloaded"), strings.Index(html, "rel=\"stylesheet\""))
}

func TestPage_LegacyPlan(t *testing.T) {
	plan := compat.Plan{
		Polyfills:    []compat.Feature{compat.FeatureFetch},
		ClearStorage: true,
		Unsupported:  true,
	}
	html := renderString(t, FeaturesPage(content.Get(), "/features", plan))

	assert.Contains(t, html, `src="/js/polyfills/fetch.js"`)
	assert.Contains(t, html, "localStorage.clear()")
	assert.Contains(t, html, "unsupported-browser")
	// fetch already has a script tag so runtime detection skips it.
	assert.NotContains(t, html, `m.push("/js/polyfills/fetch.js")`)
	assert.Contains(t, html, `m.push("/js/polyfills/promise.js")`)
}

func TestForms(t *testing.T) {
	s := content.Get()

	beta := renderString(t, BetaForm(s))
	assert.Contains(t, beta, `data-relay="beta"`)
	for _, field := range []string{"name", "email", "company", "fleetSize", "phone", "role", "message"} {
		assert.Contains(t, beta, `name="`+field+`"`)
	}

	survey := renderString(t, SurveyForm(s))
	assert.Contains(t, survey, `data-relay="beta"`)
	assert.Contains(t, survey, `data-redirect="/"`)
	assert.Contains(t, survey, `name="vehicles"`)
	assert.Contains(t, survey, "data-multi")

	investor := renderString(t, ContactForm("investor"))
	assert.Contains(t, investor, `data-relay="contact"`)
	assert.Contains(t, investor, `value="investor"`)
}

func TestErrorPage(t *testing.T) {
	html := renderString(t, ErrorPage(404, "Page not found"))
	assert.Contains(t, html, "Error 404")
	assert.Contains(t, html, "Page not found")
}

func TestAdminPage(t *testing.T) {
	records := []store.Record{
		{ID: "a", FormType: "beta", Name: "Ada", Email: "ada@example.com", Status: store.StatusFailed, Error: "spreadsheet down"},
	}
	stats := map[string]interface{}{
		"hits": uint64(1), "misses": uint64(0), "hit_rate": 100.0, "sets": uint64(1),
		"memory_used_kb": 1.5, "sets_dropped": uint64(0), "sets_rejected": uint64(0), "current_items": int64(1),
	}
	html := renderString(t, AdminPage(records, map[string]int{store.StatusFailed: 1}, stats))

	assert.Contains(t, html, "ada@example.com")
	assert.Contains(t, html, "spreadsheet down")
	assert.Contains(t, html, `hx-post="/admin/cache/clear"`)
}
