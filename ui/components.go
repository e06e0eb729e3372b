package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/fleetra/site/compat"
	"github.com/fleetra/site/content"
)

// ---- Layout Components ----

func contentContainer(content ...g.Node) g.Node {
	return Div(
		Class("max-w-2xl mx-auto"),
		g.Group(content),
	)
}

func wideContainer(content ...g.Node) g.Node {
	return Div(
		Class("max-w-5xl mx-auto"),
		g.Group(content),
	)
}

func section(title string, content ...g.Node) g.Node {
	return Section(
		Class("mb-12"),
		H2(Class("text-2xl font-semibold mb-4"), g.Text(title)),
		g.Group(content),
	)
}

func paragraph(text string) g.Node {
	return P(Class("mb-4 text-gray-700 leading-relaxed"), g.Text(text))
}

func statGrid(stats []content.Stat) g.Node {
	items := make([]g.Node, 0, len(stats))
	for _, s := range stats {
		items = append(items, Div(
			Class("text-center p-6 bg-gray-50 border border-gray-200 rounded-lg"),
			Div(Class("text-3xl font-bold text-blue-600"), g.Text(s.Value)),
			Div(Class("text-sm text-gray-600 mt-1"), g.Text(s.Label)),
		))
	}
	return Div(Class("grid grid-cols-1 sm:grid-cols-3 gap-4 my-8"), g.Group(items))
}

// ---- Button Components ----

type ButtonVariant string

const (
	buttonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonDanger    ButtonVariant = "danger"
)

func getButtonClass(variant ButtonVariant) string {
	baseClass := "px-4 py-2 rounded inline-block "
	switch variant {
	case ButtonSecondary:
		return baseClass + "text-blue-500 hover:underline"
	case ButtonDanger:
		return baseClass + "bg-red-500 text-white hover:bg-red-600"
	default:
		return baseClass + "bg-blue-500 text-white hover:bg-blue-600"
	}
}

func styledButton(text string, variant ButtonVariant, attrs ...g.Node) g.Node {
	allAttrs := append([]g.Node{Class(getButtonClass(variant))}, attrs...)
	return Button(append(allAttrs, g.Text(text))...)
}

func styledLink(text string, href string, variant ButtonVariant, attrs ...g.Node) g.Node {
	allAttrs := append([]g.Node{Href(href), Class(getButtonClass(variant))}, attrs...)
	return A(append(allAttrs, g.Text(text))...)
}

func actionButtons(buttons ...g.Node) g.Node {
	return Div(
		Class("mt-8 space-x-4"),
		g.Group(buttons),
	)
}

// ---- Message Components ----

func ValidationError(message string) g.Node {
	return Div(
		Class("bg-red-100 border-red-500 text-red-700 px-4 py-3 rounded"),
		g.Text(message),
	)
}

func SuccessMessage(message string) g.Node {
	return Div(
		Class("bg-green-100 border-green-500 text-green-700 px-4 py-3 rounded"),
		g.Text(message),
	)
}

// resultContainer is filled in by the form script with the relay response.
func resultContainer() g.Node {
	return Div(
		g.Attr("data-result", ""),
		g.Attr("role", "status"),
		g.Attr("aria-live", "polite"),
		Class("mt-4"),
	)
}

func ErrorPage(code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		"", // no current path
		compat.Plan{},
		[]g.Node{
			pageHeader(fmt.Sprintf("Error %d", code)),
			P(g.Text(message)),
			actionButtons(styledLink("Back to home", "/", buttonPrimary)),
		},
	)
}
