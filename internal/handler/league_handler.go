package handler

import (
	"pylearn/internal/domain"
	"pylearn/internal/dto"
	"pylearn/internal/league"
	"pylearn/internal/service"
	"pylearn/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type LeagueHandler struct {
	service   service.LeagueService
	validator *validation.Validator
}

func NewLeagueHandler(service service.LeagueService) *LeagueHandler {
	return &LeagueHandler{service: service, validator: validation.NewValidator()}
}

// ListLeagues godoc
// @Summary League bands
// @Description XP thresholds and benefits of every league
// @Tags leagues
// @Produce json
// @Success 200 {array} dto.LeagueBandResponse
// @Router /leagues [get]
func (h *LeagueHandler) ListLeagues(c *fiber.Ctx) error {
	return c.JSON(lo.Map(h.service.Bands(), func(b league.Band, _ int) dto.LeagueBandResponse {
		return dto.NewLeagueBandResponse(b)
	}))
}

// GetMyStanding godoc
// @Summary My league standing
// @Tags leagues
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.LeagueStandingResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /leagues/me [get]
func (h *LeagueHandler) GetMyStanding(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	standing, err := h.service.GetStanding(c.UserContext(), userID)
	if err != nil {
		return err
	}

	resp := dto.LeagueStandingResponse{
		League:     dto.NewLeagueBandResponse(standing.Band),
		TotalXP:    standing.TotalXP,
		Level:      standing.Level,
		Rank:       standing.Rank,
		Total:      standing.Total,
		Percentile: standing.Percentile,
		XPToNext:   standing.XPToNext,
	}
	if standing.NextBand != nil {
		next := dto.NewLeagueBandResponse(*standing.NextBand)
		resp.NextLeague = &next
	}
	return c.JSON(resp)
}

// GetLeaderboard godoc
// @Summary League leaderboard
// @Tags leagues
// @Produce json
// @Param league path string true "League" Enums(bronze, silver, gold, platinum)
// @Param limit query int false "Number of entries (default 10, max 100)"
// @Success 200 {object} dto.LeaderboardResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /leagues/{league}/leaderboard [get]
func (h *LeagueHandler) GetLeaderboard(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if errs := h.validator.ValidateLimit(limit); len(errs) > 0 {
		return errs
	}

	l := domain.League(c.Params("league"))
	entries, err := h.service.GetLeaderboard(c.UserContext(), l, limit)
	if err != nil {
		return err
	}
	return c.JSON(dto.LeaderboardResponse{
		League: string(l),
		Entries: lo.Map(entries, func(e service.LeaderboardEntry, _ int) dto.LeaderboardEntryResponse {
			return dto.LeaderboardEntryResponse(e)
		}),
	})
}
