package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"support-chatbot-be/internal/service"
	"support-chatbot-be/pkg/session"
)

// ErrorHandlerMiddleware converts errors returned by handlers into the
// common response envelope with the right status code.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := err.Error()

		var validationErr *ValidationError
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &validationErr):
			code = fiber.StatusUnprocessableEntity
		case errors.Is(err, session.ErrNotFound):
			code = fiber.StatusNotFound
		case errors.Is(err, service.ErrNotFound):
			code = fiber.StatusNotFound
		case errors.Is(err, service.ErrNotReady):
			code = fiber.StatusServiceUnavailable
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
