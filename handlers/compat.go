package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/fleetra/site/compat"
	"github.com/fleetra/site/config"
	"github.com/fleetra/site/cookie"
	"github.com/fleetra/site/local"
)

// CompatMiddleware classifies the browser and stores its plan for the page
// renderers. Browsers that need a storage reset get Clear-Site-Data once per
// storage-clear version; the inline script covers browsers that ignore the
// header.
func CompatMiddleware(c *fiber.Ctx) error {
	client := compat.Detect(c.Get(fiber.HeaderUserAgent))
	plan := compat.PlanFor(client)
	local.SetPlan(c, plan)

	if plan.ClearStorage && cookie.GetStorageCleared(c) != config.StorageClearVersion {
		c.Set("Clear-Site-Data", `"cache", "storage"`)
		cookie.SetStorageCleared(c, config.StorageClearVersion)
		log.Printf("[COMPAT] Clearing site data for %s %s: %s", client.Browser, client.Version, plan.Reason)
	}
	return c.Next()
}

func planFor(c *fiber.Ctx) compat.Plan {
	if plan, ok := local.GetPlan(c); ok {
		return plan
	}
	return compat.PlanFor(compat.Detect(c.Get(fiber.HeaderUserAgent)))
}
