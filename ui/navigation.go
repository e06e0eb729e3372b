package ui

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/fleetra/site/config"
)

type navLink struct {
	label string
	href  string
}

var navLinks = []navLink{
	{"Features", "/features"},
	{"About", "/about"},
	{"Investors", "/investors"},
	{"Contact", "/contact"},
}

func navItem(l navLink, currentPath string) g.Node {
	class := "text-gray-700 hover:text-blue-600"
	if l.href == currentPath {
		class = "text-blue-600 font-semibold"
	}
	return A(Href(l.href), Class(class), g.Text(l.label))
}

func navigation(currentPath string) g.Node {
	items := make([]g.Node, 0, len(navLinks))
	for _, l := range navLinks {
		items = append(items, navItem(l, currentPath))
	}
	return Nav(
		Class("mb-8 border-b pb-4 flex items-center justify-between w-full"),
		A(Href("/"), Class("text-xl font-bold"), g.Text(config.SiteName)),
		Div(
			Class("flex items-center space-x-6"),
			g.Group(items),
			g.If(currentPath != "/beta", styledLink("Join the beta", "/beta", buttonPrimary)),
		),
	)
}

func footer() g.Node {
	return Footer(
		Class("mt-16 border-t pt-6 text-sm text-gray-500 flex flex-wrap justify-between gap-4"),
		Span(g.Text("© "+strconv.Itoa(time.Now().Year())+" "+config.SiteName)),
		Div(
			Class("space-x-4"),
			A(Href("/survey"), Class("hover:underline"), g.Text("Fleet survey")),
			A(Href("/terms"), Class("hover:underline"), g.Text("Terms")),
			A(Href("/privacy"), Class("hover:underline"), g.Text("Privacy")),
		),
	)
}
