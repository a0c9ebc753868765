package dto

import (
	"time"

	"pylearn/internal/domain"
	"pylearn/internal/league"
)

// CreateProfileRequest creates the profile of the authenticated user.
// @Description Request body for creating a profile
type CreateProfileRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

// ProfileResponse includes the derived level and league.
// @Description Learner profile
type ProfileResponse struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	DisplayName    string     `json:"display_name"`
	AvatarURL      string     `json:"avatar_url,omitempty"`
	TotalXP        int        `json:"total_xp"`
	Level          int        `json:"level"`
	League         string     `json:"league"`
	XPToNextLeague int        `json:"xp_to_next_league"`
	CurrentStreak  int        `json:"current_streak"`
	LongestStreak  int        `json:"longest_streak"`
	LastActiveDate *time.Time `json:"last_active_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func NewProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:             p.ID,
		Username:       p.Username,
		DisplayName:    p.DisplayName,
		AvatarURL:      p.AvatarURL,
		TotalXP:        p.TotalXP,
		Level:          p.Level(),
		League:         string(league.ForXP(p.TotalXP).League),
		XPToNextLeague: league.XPToNext(p.TotalXP),
		CurrentStreak:  p.CurrentStreak,
		LongestStreak:  p.LongestStreak,
		LastActiveDate: p.LastActiveDate,
		CreatedAt:      p.CreatedAt,
	}
}
