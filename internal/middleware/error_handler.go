package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/log"

	"github.com/rajivgeraev/listings-api/internal/models"
)

// ErrorHandler renders every error returned by a handler as a JSON
// {"error": "..."} body. Unknown errors are logged and reported as 500 with
// an opaque message.
func ErrorHandler(c fiber.Ctx, err error) error {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Message})
	}

	var notFoundErr *models.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundErr.Message})
	}

	// Errors raised by Fiber itself: unknown routes, wrong methods, bad requests
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
		message := fiberErr.Message
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			message = "Endpoint not found"
		case fiber.StatusMethodNotAllowed:
			message = "Method not allowed"
		}
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": message})
	}

	log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
