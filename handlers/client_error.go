package handlers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
)

// clientError is the report posted by the page recovery script.
type clientError struct {
	Message  string `json:"message"`
	Source   string `json:"source"`
	URL      string `json:"url"`
	Reloaded bool   `json:"reloaded"`
}

const maxClientErrorBody = 4 * 1024

// HandleClientError logs a script or asset load failure seen by a browser.
func HandleClientError(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) > maxClientErrorBody {
		return c.SendStatus(fiber.StatusRequestEntityTooLarge)
	}

	var report clientError
	if err := json.Unmarshal(body, &report); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	log.Printf("[COMPAT] Client error on %s (reloaded=%t, ua=%q): %s (%s)",
		clip(report.URL, 200), report.Reloaded, clip(c.Get(fiber.HeaderUserAgent), 200),
		clip(report.Message, 300), clip(report.Source, 200))
	return c.SendStatus(fiber.StatusNoContent)
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
