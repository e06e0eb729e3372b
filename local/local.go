// Package local holds typed accessors for per-request fiber Locals.
package local

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fleetra/site/compat"
)

const planKey = "compatPlan"

// GetPlan returns the compatibility plan set for this request, if any.
func GetPlan(c *fiber.Ctx) (compat.Plan, bool) {
	plan, ok := c.Locals(planKey).(compat.Plan)
	return plan, ok
}

func SetPlan(c *fiber.Ctx, plan compat.Plan) {
	c.Locals(planKey, plan)
}
