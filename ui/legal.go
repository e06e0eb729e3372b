package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/fleetra/site/compat"
	"github.com/fleetra/site/config"
)

const legalUpdated = "Last updated: June 2026"

type clause struct {
	heading string
	body    []string
}

func legalDocument(clauses []clause) g.Node {
	nodes := []g.Node{
		P(Class("mb-4 text-sm text-gray-500"), g.Text(legalUpdated)),
	}
	for _, c := range clauses {
		nodes = append(nodes, H3(Class("text-lg font-semibold mb-2"), g.Text(c.heading)))
		for _, b := range c.body {
			nodes = append(nodes, P(Class("mb-4"), g.Text(b)))
		}
	}
	return contentContainer(Div(Class("prose max-w-none"), g.Group(nodes)))
}

func TermsPage(path string, plan compat.Plan) g.Node {
	name := config.SiteName
	return Page(
		"Terms of Service",
		path,
		plan,
		[]g.Node{
			pageHeader("Terms of Service"),
			legalDocument([]clause{
				{"1. Acceptance of Terms", []string{
					"By using the " + name + " website or joining the beta program you agree to these terms.",
				}},
				{"2. Beta Program", []string{
					"The beta is offered free of charge and may change, pause or end at any time. Features available during the beta may differ from the generally available product.",
				}},
				{"3. Your Submissions", []string{
					"Information you send through our forms must be accurate and yours to share. We use it to respond to you and to shape the product.",
				}},
				{"4. Disclaimer", []string{
					"The site and the beta are provided on an 'as is' basis without warranties of any kind, expressed or implied.",
				}},
				{"5. Limitations", []string{
					"In no event shall " + name + " be liable for any damages arising out of the use or inability to use the site or the beta.",
				}},
				{"6. Changes", []string{
					name + " may revise these terms at any time. Continued use of the site means you accept the current version.",
				}},
			}),
		},
	)
}

func PrivacyPage(path string, plan compat.Plan) g.Node {
	name := config.SiteName
	return Page(
		"Privacy Policy",
		path,
		plan,
		[]g.Node{
			pageHeader("Privacy Policy"),
			legalDocument([]clause{
				{"1. Information We Collect", []string{
					"We only collect what you type into our forms: your name, work email, company, fleet details and your message. A phone number is optional.",
				}},
				{"2. How We Use It", []string{
					"Submissions are stored in our internal spreadsheet and sent to our team by email so someone can follow up. We do not sell or rent your information.",
				}},
				{"3. Cookies", []string{
					"We set a single cookie, storage_cleared, when we reset stale browser storage on older devices. It holds a version number and nothing about you.",
				}},
				{"4. Error Reports", []string{
					"When a page fails to load correctly your browser may send us a short technical report with the error message and page address so we can fix it.",
				}},
				{"5. Your Choices", []string{
					"Email us through the contact page at any time to see or delete what you have sent to " + name + ".",
				}},
			}),
		},
	)
}
