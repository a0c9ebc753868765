package handler

import (
	"time"

	"pylearn/internal/domain"
	"pylearn/internal/dto"
	"pylearn/internal/logger"
	"pylearn/internal/scoring"
	"pylearn/internal/service"
	"pylearn/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// LessonHandler handles lesson catalog and lesson progress requests
type LessonHandler struct {
	service   service.LessonService
	validator *validation.Validator
}

// NewLessonHandler creates a new LessonHandler instance
func NewLessonHandler(service service.LessonService) *LessonHandler {
	return &LessonHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListLessons godoc
// @Summary List lessons
// @Description Returns the lesson catalog ordered by position
// @Tags lessons
// @Produce json
// @Success 200 {array} dto.LessonSummaryResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /lessons [get]
func (h *LessonHandler) ListLessons(c *fiber.Ctx) error {
	lessons, err := h.service.ListLessons(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(lo.Map(lessons, func(l *domain.Lesson, _ int) dto.LessonSummaryResponse {
		return dto.NewLessonSummary(l)
	}))
}

// GetLesson godoc
// @Summary Get a lesson
// @Description Returns one lesson without its answers
// @Tags lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} dto.LessonResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /lessons/{id} [get]
func (h *LessonHandler) GetLesson(c *fiber.Ctx) error {
	lesson, err := h.service.GetLesson(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewLessonResponse(lesson))
}

// ValidateAttempt godoc
// @Summary Validate a lesson attempt
// @Description Scores an attempt and records it against the learner's progress
// @Tags lessons
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param request body dto.ValidateLessonRequest true "Attempt"
// @Success 200 {object} dto.ValidationResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /lessons/{id}/validate [post]
func (h *LessonHandler) ValidateAttempt(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.ValidateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}
	if errs := h.validator.ValidateAttempt(&req); len(errs) > 0 {
		return errs
	}

	result, err := h.service.ValidateAttempt(c.UserContext(), userID, c.Params("id"), domain.LessonAttempt{
		Answer:        req.Answer,
		Answers:       req.Answers,
		Code:          req.Code,
		Order:         req.Order,
		StoryChoices:  req.StoryChoices,
		PuzzleAnswers: req.PuzzleAnswers,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewValidationResponse(result))
}

// RevealHint godoc
// @Summary Reveal a hint
// @Tags lessons
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param request body dto.HintRequest false "Hint index, defaults to 0"
// @Success 200 {object} dto.HintResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /lessons/{id}/hints [post]
func (h *LessonHandler) RevealHint(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.HintRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateHintIndex(req.Index); len(errs) > 0 {
		return errs
	}

	hint, err := h.service.RevealHint(c.UserContext(), userID, c.Params("id"), req.Index)
	if err != nil {
		return err
	}
	return c.JSON(dto.HintResponse{Index: req.Index, Hint: hint})
}

// CompleteLesson godoc
// @Summary Complete a lesson
// @Description Awards XP after a successful attempt. Repeated completions award nothing.
// @Tags lessons
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param request body dto.CompleteLessonRequest false "Help used"
// @Success 200 {object} dto.LessonCompletionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /lessons/{id}/complete [post]
func (h *LessonHandler) CompleteLesson(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.CompleteLessonRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateCompletion(&req); len(errs) > 0 {
		return errs
	}

	completion, err := h.service.CompleteLesson(c.UserContext(), userID, c.Params("id"), scoring.Usage{
		HintsUsed: req.HintsUsed,
		Attempts:  req.Attempts,
		Elapsed:   time.Duration(req.TimeSpentSeconds) * time.Second,
	})
	if err != nil {
		return err
	}

	logger.Get().Info("Lesson completed",
		zap.String("user_id", userID),
		zap.String("lesson_id", completion.LessonID),
		zap.Int("xp_awarded", completion.XPAwarded),
	)
	return c.JSON(dto.NewLessonCompletionResponse(completion))
}
