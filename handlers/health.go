package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fleetra/site/db"
)

// HandleHealth returns the health status of the application. The submission
// log is optional, so only a configured-but-unreachable database or an
// unwired relay marks the service unhealthy.
func HandleHealth(c *fiber.Ctx) error {
	health := map[string]string{
		"status": "ok",
	}

	switch {
	case !db.Ready():
		health["database"] = "disabled"
	case db.Get().PingContext(c.UserContext()) != nil:
		health["status"] = "unhealthy"
		health["database"] = "down"
	default:
		health["database"] = "up"
	}

	if relay != nil && relay.Ready() {
		health["relay"] = "up"
	} else {
		health["status"] = "unhealthy"
		health["relay"] = "not configured"
	}

	if health["status"] != "ok" {
		c.Status(fiber.StatusServiceUnavailable)
	}
	return c.JSON(health)
}
