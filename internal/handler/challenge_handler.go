package handler

import (
	"time"

	"pylearn/internal/domain"
	"pylearn/internal/dto"
	"pylearn/internal/logger"
	"pylearn/internal/service"
	"pylearn/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChallengeHandler struct {
	service   service.ChallengeService
	validator *validation.Validator
	now       func() time.Time
}

func NewChallengeHandler(service service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{
		service:   service,
		validator: validation.NewValidator(),
		now:       time.Now,
	}
}

// GetDaily godoc
// @Summary Today's challenges
// @Description The three challenges generated for today
// @Tags challenges
// @Produce json
// @Success 200 {object} dto.DailyChallengesResponse
// @Router /challenges/daily [get]
func (h *ChallengeHandler) GetDaily(c *fiber.Ctx) error {
	now := h.now()
	return c.JSON(dto.DailyChallengesResponse{
		Date:       now.Format(time.DateOnly),
		Challenges: dto.NewDailyChallengeResponses(h.service.Daily(now)),
	})
}

// GetWeekly godoc
// @Summary This week's challenges
// @Tags challenges
// @Produce json
// @Success 200 {object} dto.WeeklyChallengesResponse
// @Router /challenges/weekly [get]
func (h *ChallengeHandler) GetWeekly(c *fiber.Ctx) error {
	rotation := h.service.Weekly(h.now())
	return c.JSON(dto.WeeklyChallengesResponse{
		WeekStart:  rotation.WeekStart.Format(time.DateOnly),
		Challenges: dto.NewDailyChallengeResponses(rotation.Challenges),
	})
}

// Complete godoc
// @Summary Complete a challenge
// @Description Runs the submitted code and awards XP on success. A 7-day streak also claims the streak bonus.
// @Tags challenges
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Challenge ID"
// @Param request body dto.CompleteChallengeRequest true "Submission"
// @Success 200 {object} dto.ChallengeResultResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /challenges/{id}/complete [post]
func (h *ChallengeHandler) Complete(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.CompleteChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}
	challengeID := c.Params("id")
	if errs := h.validator.ValidateChallengeSubmission(challengeID, &req); len(errs) > 0 {
		return errs
	}

	result, err := h.service.Complete(c.UserContext(), userID, service.ChallengeSubmission{
		ChallengeID: challengeID,
		Code:        req.Code,
		HintsUsed:   req.HintsUsed,
		TimeSpent:   time.Duration(req.TimeSpentSeconds) * time.Second,
	}, h.now())
	if err != nil {
		return err
	}

	if result.StreakBonus > 0 {
		logger.Get().Info("Streak bonus claimed",
			zap.String("user_id", userID),
			zap.Int("bonus", result.StreakBonus),
		)
	}
	return c.JSON(dto.NewChallengeResultResponse(result))
}

// GetStreakBonus godoc
// @Summary Streak bonus status
// @Tags challenges
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.StreakBonusResponse
// @Router /challenges/streak-bonus [get]
func (h *ChallengeHandler) GetStreakBonus(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	report, err := h.service.StreakBonusReport(c.UserContext(), userID, h.now())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStreakBonusResponse(report))
}
