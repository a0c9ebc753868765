package handler

import (
	"pylearn/internal/domain"
	"pylearn/internal/dto"
	"pylearn/internal/logger"
	"pylearn/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// currentUser returns the id set by middleware.Protected.
func currentUser(c *fiber.Ctx) (string, error) {
	userID := middleware.UserID(c)
	if userID == "" {
		logger.Get().Warn("User ID not found in context", zap.String("path", c.Path()))
		return "", domain.NewUnauthorizedError("user id not found in context")
	}
	return userID, nil
}

// parseBody decodes an optional JSON body. An empty body leaves out untouched.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}
	return nil
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok"})
}
