package handler

import (
	"pylearn/internal/dto"
	"pylearn/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AchievementHandler struct {
	service service.AchievementService
}

func NewAchievementHandler(service service.AchievementService) *AchievementHandler {
	return &AchievementHandler{service: service}
}

// GetProgress godoc
// @Summary Achievement progress
// @Description Every achievement with the learner's progress, unlocked first
// @Tags achievements
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} dto.AchievementProgressResponse
// @Router /achievements [get]
func (h *AchievementHandler) GetProgress(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	progress, err := h.service.GetProgress(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAchievementProgressResponses(progress))
}

// GetStats godoc
// @Summary Achievement stats
// @Tags achievements
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.AchievementStatsResponse
// @Router /achievements/stats [get]
func (h *AchievementHandler) GetStats(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	stats, err := h.service.GetStats(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAchievementStatsResponse(stats))
}

// Check godoc
// @Summary Unlock eligible achievements
// @Tags achievements
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.CheckAchievementsResponse
// @Router /achievements/check [post]
func (h *AchievementHandler) Check(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	unlocked, err := h.service.CheckAndUnlock(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.CheckAchievementsResponse{Unlocked: dto.NewAchievementResponses(unlocked)})
}
