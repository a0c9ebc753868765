package handler

import (
	"pylearn/internal/domain"
	"pylearn/internal/dto"
	"pylearn/internal/service"
	"pylearn/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	service   service.ProfileService
	validator *validation.Validator
}

func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service, validator: validation.NewValidator()}
}

// CreateMyProfile godoc
// @Summary Create my profile
// @Tags users
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateProfileRequest true "Profile"
// @Success 201 {object} dto.ProfileResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "Profile already exists"
// @Router /users/me [post]
func (h *ProfileHandler) CreateMyProfile(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}
	if errs := h.validator.ValidateCreateProfile(&req); len(errs) > 0 {
		return errs
	}

	profile, err := h.service.CreateProfile(c.UserContext(), userID, req.Username, req.DisplayName, req.AvatarURL)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewProfileResponse(profile))
}

// GetMyProfile godoc
// @Summary Get my profile
// @Description Profile with derived level, league and XP to the next league
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/me [get]
func (h *ProfileHandler) GetMyProfile(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	profile, err := h.service.GetProfile(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProfileResponse(profile))
}
