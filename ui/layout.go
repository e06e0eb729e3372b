package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/fleetra/site/compat"
	"github.com/fleetra/site/config"
)

// ClientErrorPath receives reports from the recovery script.
const ClientErrorPath = "/api/client-error"

// ---- Page Layout ----

func Page(title string, currentPath string, plan compat.Plan, content []g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:       title + " | " + config.SiteName,
		Description: "Fleet management for fleets of every size: live tracking, maintenance, fuel and driver safety.",
		Language:    "en",
		Head: []g.Node{
			// Compatibility and recovery scripts run before anything else
			// so they can fix up the environment the rest of the page needs.
			compatScripts(plan),
			Link(Rel("icon"), Type("image/png"), Href("/images/favicon-32x32.png"), g.Attr("sizes", "32x32")),
			Link(Rel("canonical"), Href(config.BaseURL+currentPath)),
			Link(
				Rel("stylesheet"),
				Href(config.TailwindCSSURL),
			),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
			Script(Type("text/javascript"), g.Raw(formScript())),
		},
		Body: []g.Node{
			g.If(plan.Unsupported, unsupportedBanner()),
			Div(
				Class("container mx-auto px-4 py-8"),
				navigation(currentPath),
				Main(g.Group(content)),
				footer(),
			),
		},
	})
}

func compatScripts(plan compat.Plan) g.Node {
	nodes := []g.Node{
		Script(Type("text/javascript"), g.Raw(compat.RecoveryScript(ClientErrorPath))),
	}
	if plan.ClearStorage {
		nodes = append(nodes, Script(Type("text/javascript"), g.Raw(compat.StorageClearScript(config.StorageClearVersion))))
	}
	for _, f := range plan.Polyfills {
		nodes = append(nodes, Script(Type("text/javascript"), Src(compat.PolyfillURL(config.PolyfillBaseURL, f))))
	}
	nodes = append(nodes, Script(Type("text/javascript"), g.Raw(compat.FeatureDetectScript(config.PolyfillBaseURL, plan))))
	return g.Group(nodes)
}

func unsupportedBanner() g.Node {
	return Div(
		ID("unsupported-browser"),
		Class("bg-yellow-100 border-b border-yellow-300 text-yellow-900 text-sm px-4 py-3 text-center"),
		g.Text("Your browser is no longer supported and parts of this site may not work. "+
			"Please switch to a current version of Chrome, Edge, Firefox or Safari."),
	)
}

func pageHeader(text string) g.Node {
	return H1(Class("text-4xl font-bold mb-8"), g.Text(text))
}
