package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fleetra/site/submission"
	"github.com/fleetra/site/ui"
)

// CustomErrorHandler renders errors as the HTML error page, or as the JSON
// failure envelope for API routes.
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	message := err.Error()
	if e == nil {
		// Internal error text is not for visitors.
		message = "Something went wrong on our end."
	}

	if strings.HasPrefix(ctx.Path(), "/api/") {
		return ctx.Status(code).JSON(submission.Failure(message))
	}

	ctx.Status(code)
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ui.ErrorPage(code, message).Render(ctx)
}
