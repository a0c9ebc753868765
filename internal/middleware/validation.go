package middleware

import (
	"pylearn/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateLessonParam checks the :id path parameter of lesson routes.
func (vm *ValidationMiddleware) ValidateLessonParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errs := vm.validator.ValidateLessonID(c.Params("id")); len(errs) > 0 {
			return errs
		}
		return c.Next()
	}
}

// ValidateULIDParam checks an :id path parameter minted by this service.
func (vm *ValidationMiddleware) ValidateULIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errs := vm.validator.ValidateULID("id", c.Params("id")); len(errs) > 0 {
			return errs
		}
		return c.Next()
	}
}

// ValidateLimitQuery checks an optional ?limit query parameter.
func (vm *ValidationMiddleware) ValidateLimitQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 0)
		if errs := vm.validator.ValidateLimit(limit); len(errs) > 0 {
			return errs
		}
		c.Locals("validated_limit", limit)
		return c.Next()
	}
}
