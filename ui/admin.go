package ui

import (
	"sort"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/fleetra/site/compat"
	"github.com/fleetra/site/store"
)

// AdminPage shows recent submissions and page cache health.
func AdminPage(records []store.Record, counts map[string]int, stats map[string]interface{}) g.Node {
	return Page(
		"Admin",
		"/admin",
		compat.Plan{},
		[]g.Node{
			H1(Class("text-4xl font-bold mb-8"), g.Text("Admin Dashboard")),
			Div(Class("text-gray-600 text-sm mb-6"), g.Text("Form relay activity and page cache statistics.")),
			Div(
				ID("admin-section-content"),
				CacheStatsPanel("Page Cache", stats),
			),
			statusCounts(counts),
			submissionTable(records),
		},
	)
}

// CacheStatsPanel is also returned on its own after the cache is cleared.
func CacheStatsPanel(title string, stats map[string]interface{}) g.Node {
	if len(stats) == 0 {
		return Div(
			Class("bg-gray-100 p-4 rounded-lg mb-4 text-gray-600"),
			g.Text(title+" is disabled."),
		)
	}
	return Div(
		Class("bg-gray-100 p-4 rounded-lg mb-4"),
		H2(Class("text-lg font-semibold mb-2"), g.Text(title)),
		Div(
			Class("grid grid-cols-2 md:grid-cols-4 gap-4 mb-4"),
			statCard("Hits", "%d", stats["hits"]),
			statCard("Misses", "%d", stats["misses"]),
			statCard("Hit Rate", "%.1f%%", stats["hit_rate"]),
			statCard("Sets", "%d", stats["sets"]),
			statCard("Memory Used", "%.0f KB", stats["memory_used_kb"]),
			statCard("Dropped", "%d", stats["sets_dropped"]),
			statCard("Rejected", "%d", stats["sets_rejected"]),
			statCard("Current Items", "%d", stats["current_items"]),
		),
		styledButton("Clear Cache", ButtonDanger,
			hx.Post("/admin/cache/clear"),
			hx.Target("#admin-section-content"),
			hx.Swap("innerHTML"),
		),
	)
}

func statCard(label, format string, value interface{}) g.Node {
	return Div(
		Class("bg-white p-3 rounded border"),
		Strong(g.Text(label+": ")),
		g.Textf(format, value),
	)
}

func statusCounts(counts map[string]int) g.Node {
	statuses := make([]string, 0, len(counts))
	for s := range counts {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)

	cards := make([]g.Node, 0, len(statuses))
	for _, s := range statuses {
		cards = append(cards, statCard(s, "%d", counts[s]))
	}
	return Div(
		Class("mb-6"),
		H2(Class("text-lg font-semibold mb-2"), g.Text("Submissions by status")),
		g.If(len(cards) == 0, P(Class("text-gray-500"), g.Text("No submissions yet."))),
		Div(Class("grid grid-cols-3 gap-4"), g.Group(cards)),
	)
}

func submissionTable(records []store.Record) g.Node {
	rows := make([]g.Node, 0, len(records))
	for _, r := range records {
		rows = append(rows, Tr(
			Class("border-t"),
			Td(Class("p-2 text-xs text-gray-500"), g.Text(r.CreatedAt.Format("Jan 2 15:04"))),
			Td(Class("p-2"), g.Text(r.FormType)),
			Td(Class("p-2"), g.Text(r.Name)),
			Td(Class("p-2"), g.Text(r.Email)),
			Td(Class("p-2"), statusBadge(r.Status), g.If(r.Error != "", Div(Class("text-xs text-red-600"), g.Text(r.Error)))),
		))
	}
	return Div(
		H2(Class("text-lg font-semibold mb-2"), g.Text("Recent submissions")),
		Table(
			Class("w-full text-sm border rounded"),
			THead(Tr(Class("bg-gray-50 text-left"),
				Th(Class("p-2"), g.Text("When")),
				Th(Class("p-2"), g.Text("Form")),
				Th(Class("p-2"), g.Text("Name")),
				Th(Class("p-2"), g.Text("Email")),
				Th(Class("p-2"), g.Text("Status")),
			)),
			TBody(g.Group(rows)),
		),
	)
}

func statusBadge(status string) g.Node {
	class := "bg-gray-100 text-gray-800"
	switch status {
	case store.StatusRelayed:
		class = "bg-green-100 text-green-800"
	case store.StatusFailed:
		class = "bg-red-100 text-red-800"
	}
	return Span(
		Class("inline-flex items-center px-2 py-1 rounded-full text-xs font-medium "+class),
		g.Text(status),
	)
}
