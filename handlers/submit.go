package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fleetra/site/config"
	"github.com/fleetra/site/submission"
)

// HandleSubmitForm relays a beta or contact form to the spreadsheet and the
// team inbox. Every reply uses the {success, message|error} envelope.
func HandleSubmitForm(c *fiber.Ctx) error {
	contentType := strings.ToLower(string(c.Request().Header.ContentType()))
	if !strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
		return c.Status(fiber.StatusUnsupportedMediaType).
			JSON(submission.Failure("Content-Type must be application/json"))
	}
	if len(c.Body()) > config.SubmitBodyLimit {
		return c.Status(fiber.StatusRequestEntityTooLarge).
			JSON(submission.Failure("Submission is too large"))
	}

	sub, err := submission.Decode(c.Body())
	if err != nil {
		return relayError(c, err)
	}
	if relay == nil {
		log.Printf("[RELAY] Rejecting %s submission: relay not configured", sub.Type)
		return c.Status(fiber.StatusInternalServerError).
			JSON(submission.Failure("Form submissions are temporarily unavailable"))
	}

	resp, err := relay.Submit(c.UserContext(), sub)
	if err != nil {
		return relayError(c, err)
	}
	return c.JSON(resp)
}

func relayError(c *fiber.Ctx, err error) error {
	var validationErr *submission.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(submission.Failure(validationErr.Message))
	}

	// Upstream detail stays in the log; the caller learns which step failed.
	var upstreamErr *submission.UpstreamError
	if errors.As(err, &upstreamErr) {
		return c.Status(fiber.StatusInternalServerError).JSON(submission.Failure(
			fmt.Sprintf("Failed to deliver your submission (%s). Please try again later.", upstreamErr.Service)))
	}

	log.Printf("[RELAY] Unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(submission.Failure("Internal server error"))
}
