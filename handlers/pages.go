package handlers

import (
	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/fleetra/site/compat"
	"github.com/fleetra/site/content"
	"github.com/fleetra/site/ui"
)

type sitePage func(s *content.Site, path string, plan compat.Plan) g.Node

func sitePageHandler(page sitePage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return renderCached(c, func(path string, plan compat.Plan) g.Node {
			return page(content.Get(), path, plan)
		})
	}
}

var (
	HandleHome      = sitePageHandler(ui.HomePage)
	HandleFeatures  = sitePageHandler(ui.FeaturesPage)
	HandleAbout     = sitePageHandler(ui.AboutPage)
	HandleContact   = sitePageHandler(ui.ContactPage)
	HandleSurvey    = sitePageHandler(ui.SurveyPage)
	HandleInvestors = sitePageHandler(ui.InvestorsPage)
	HandleBeta      = sitePageHandler(ui.BetaPage)
)

// HandleTermsOfService displays the Terms of Service page
func HandleTermsOfService(c *fiber.Ctx) error {
	return renderCached(c, ui.TermsPage)
}

// HandlePrivacyPolicy displays the Privacy Policy page
func HandlePrivacyPolicy(c *fiber.Ctx) error {
	return renderCached(c, ui.PrivacyPage)
}
