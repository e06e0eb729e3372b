package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/fleetra/site/compat"
	"github.com/fleetra/site/content"
)

func HomePage(s *content.Site, path string, plan compat.Plan) g.Node {
	return Page(
		s.Tagline,
		path,
		plan,
		[]g.Node{
			Section(
				Class("text-center py-12"),
				H1(Class("text-5xl font-bold mb-6"), g.Text(s.Hero.Title)),
				P(Class("text-xl text-gray-600 max-w-3xl mx-auto mb-8"), g.Text(s.Hero.Subtitle)),
				styledLink(s.Hero.CTA, "/beta", buttonPrimary),
			),
			statGrid(s.Stats),
			wideContainer(
				section("What you get", featureGrid(s.Features, false)),
				section("Questions", faqList(s.FAQ)),
				actionButtons(
					styledLink("See all features", "/features", ButtonSecondary),
					styledLink("Take the fleet survey", "/survey", ButtonSecondary),
				),
			),
		},
	)
}

func FeaturesPage(s *content.Site, path string, plan compat.Plan) g.Node {
	return Page(
		"Features",
		path,
		plan,
		[]g.Node{
			pageHeader("Features"),
			wideContainer(
				featureGrid(s.Features, true),
				actionButtons(styledLink(s.Hero.CTA, "/beta", buttonPrimary)),
			),
		},
	)
}

func featureGrid(features []content.Feature, withDetails bool) g.Node {
	cards := make([]g.Node, 0, len(features))
	for _, f := range features {
		details := make([]g.Node, 0, len(f.Details))
		for _, d := range f.Details {
			details = append(details, Li(g.Text(d)))
		}
		cards = append(cards, Div(
			Class("p-6 bg-white border border-gray-200 rounded-lg"),
			g.Attr("data-icon", f.Icon),
			H3(Class("text-lg font-semibold mb-2"), g.Text(f.Title)),
			P(Class("text-gray-600"), g.Text(f.Summary)),
			g.If(withDetails && len(details) > 0,
				Ul(Class("list-disc ml-5 mt-3 text-sm text-gray-600 space-y-1"), g.Group(details)),
			),
		))
	}
	return Div(Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6"), g.Group(cards))
}

func faqList(faq []content.QA) g.Node {
	items := make([]g.Node, 0, len(faq))
	for _, qa := range faq {
		items = append(items, Details(
			Class("border-b py-3"),
			Summary(Class("font-medium cursor-pointer"), g.Text(qa.Question)),
			P(Class("mt-2 text-gray-600"), g.Text(qa.Answer)),
		))
	}
	return Div(g.Group(items))
}

func AboutPage(s *content.Site, path string, plan compat.Plan) g.Node {
	team := make([]g.Node, 0, len(s.About.Team))
	for _, m := range s.About.Team {
		team = append(team, Div(
			Class("p-4 border rounded-lg"),
			Div(Class("font-semibold"), g.Text(m.Name)),
			Div(Class("text-sm text-blue-600 mb-2"), g.Text(m.Role)),
			P(Class("text-sm text-gray-600"), g.Text(m.Bio)),
		))
	}
	return Page(
		"About",
		path,
		plan,
		[]g.Node{
			pageHeader("About " + s.Name),
			contentContainer(
				section("Our story", paragraph(s.About.Story)),
				section("Our mission", paragraph(s.About.Mission)),
				section("Team", Div(Class("grid grid-cols-1 sm:grid-cols-2 gap-4"), g.Group(team))),
			),
		},
	)
}

func BetaPage(s *content.Site, path string, plan compat.Plan) g.Node {
	return Page(
		"Join the beta",
		path,
		plan,
		[]g.Node{
			pageHeader("Join the beta"),
			contentContainer(
				paragraph("Beta fleets use "+s.Name+" at no cost while we build toward general availability. Tell us about your fleet and we will be in touch."),
				BetaForm(s),
			),
		},
	)
}

func SurveyPage(s *content.Site, path string, plan compat.Plan) g.Node {
	return Page(
		"Fleet survey",
		path,
		plan,
		[]g.Node{
			pageHeader("Fleet survey"),
			contentContainer(
				paragraph("Five minutes of your time shapes what we build next. Every response is read by the product team."),
				SurveyForm(s),
			),
		},
	)
}

func ContactPage(s *content.Site, path string, plan compat.Plan) g.Node {
	return Page(
		"Contact",
		path,
		plan,
		[]g.Node{
			pageHeader("Contact us"),
			contentContainer(
				paragraph("Questions about "+s.Name+", partnerships or press? Send us a note and we will reply within one business day."),
				ContactForm("general"),
			),
		},
	)
}

func InvestorsPage(s *content.Site, path string, plan compat.Plan) g.Node {
	milestones := make([]g.Node, 0, len(s.Investors.Milestones))
	for _, m := range s.Investors.Milestones {
		milestones = append(milestones, Li(g.Text(m)))
	}
	return Page(
		"Investors",
		path,
		plan,
		[]g.Node{
			pageHeader("Investors"),
			contentContainer(
				paragraph(s.Investors.Summary),
				statGrid(s.Investors.Highlights),
				section("Milestones", Ol(Class("list-decimal ml-5 space-y-1 text-gray-700"), g.Group(milestones))),
				section("Request the deck", ContactForm("investor")),
			),
		},
	)
}
