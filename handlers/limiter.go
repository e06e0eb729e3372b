package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/fleetra/site/config"
	"github.com/fleetra/site/submission"
)

// GlobalRateLimiter is the global rate limiter middleware. A nil storage
// keeps counters in memory.
func GlobalRateLimiter(storage fiber.Storage) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        config.ServerRateLimitMax,
		Expiration: config.ServerRateLimitExp,
		Storage:    storage,
	})
}

// SubmitRateLimiter is a strict rate limiter for form submissions (per IP)
func SubmitRateLimiter(storage fiber.Storage) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        config.SubmitRateLimitMax,
		Expiration: config.SubmitRateLimitExp,
		Storage:    storage,
		KeyGenerator: func(c *fiber.Ctx) string {
			// Rate limit per IP address
			return "submit:" + c.IP()
		},
		// Preflights don't count against the budget.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).
				JSON(submission.Failure("Too many submissions. Please try again later."))
		},
	})
}
