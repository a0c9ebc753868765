package dto

import (
	"pylearn/internal/league"
)

// LeagueBandResponse describes one league. MaxXP is omitted for the top league.
// @Description League band
type LeagueBandResponse struct {
	League   string   `json:"league"`
	Name     string   `json:"name"`
	MinXP    int      `json:"min_xp"`
	MaxXP    *int     `json:"max_xp,omitempty"`
	Benefits []string `json:"benefits"`
}

func NewLeagueBandResponse(b league.Band) LeagueBandResponse {
	resp := LeagueBandResponse{
		League:   string(b.League),
		Name:     b.Name,
		MinXP:    b.MinXP,
		Benefits: b.Benefits,
	}
	if b.MaxXP != league.Unbounded {
		maxXP := b.MaxXP
		resp.MaxXP = &maxXP
	}
	return resp
}

type LeagueStandingResponse struct {
	League     LeagueBandResponse  `json:"league"`
	TotalXP    int                 `json:"total_xp"`
	Level      int                 `json:"level"`
	Rank       int                 `json:"rank"`
	Total      int                 `json:"total"`
	Percentile int                 `json:"percentile"`
	XPToNext   int                 `json:"xp_to_next"`
	NextLeague *LeagueBandResponse `json:"next_league,omitempty"`
}

type LeaderboardEntryResponse struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	TotalXP     int    `json:"total_xp"`
	Level       int    `json:"level"`
}

type LeaderboardResponse struct {
	League  string                     `json:"league"`
	Entries []LeaderboardEntryResponse `json:"entries"`
}
