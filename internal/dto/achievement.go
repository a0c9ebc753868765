package dto

import (
	"time"

	"pylearn/internal/domain"

	"github.com/samber/lo"
)

type AchievementResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	TargetValue int    `json:"target_value"`
	XPReward    int    `json:"xp_reward"`
	Rarity      string `json:"rarity"`
}

func NewAchievementResponse(a *domain.Achievement) AchievementResponse {
	return AchievementResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Icon:        a.Icon,
		Category:    a.Category,
		Type:        string(a.Type),
		TargetValue: a.TargetValue,
		XPReward:    a.XPReward,
		Rarity:      a.Rarity,
	}
}

func NewAchievementResponses(list []*domain.Achievement) []AchievementResponse {
	return lo.Map(list, func(a *domain.Achievement, _ int) AchievementResponse {
		return NewAchievementResponse(a)
	})
}

// AchievementProgressResponse is derived per request and never stored.
// @Description Progress toward one achievement
type AchievementProgressResponse struct {
	Achievement  AchievementResponse `json:"achievement"`
	CurrentValue int                 `json:"current_value"`
	TargetValue  int                 `json:"target_value"`
	Percentage   int                 `json:"percentage"`
	IsUnlocked   bool                `json:"is_unlocked"`
	UnlockedAt   *time.Time          `json:"unlocked_at,omitempty"`
}

func NewAchievementProgressResponses(list []domain.AchievementProgress) []AchievementProgressResponse {
	return lo.Map(list, func(p domain.AchievementProgress, _ int) AchievementProgressResponse {
		return AchievementProgressResponse{
			Achievement:  NewAchievementResponse(p.Achievement),
			CurrentValue: p.CurrentValue,
			TargetValue:  p.TargetValue,
			Percentage:   p.Percentage,
			IsUnlocked:   p.IsUnlocked,
			UnlockedAt:   p.UnlockedAt,
		}
	})
}

type GroupCountResponse struct {
	Total    int `json:"total"`
	Unlocked int `json:"unlocked"`
}

type AchievementStatsResponse struct {
	Total              int                           `json:"total"`
	Unlocked           int                           `json:"unlocked"`
	CompletionRate     int                           `json:"completion_rate"`
	XPFromAchievements int                           `json:"xp_from_achievements"`
	ByRarity           map[string]GroupCountResponse `json:"by_rarity"`
	ByCategory         map[string]GroupCountResponse `json:"by_category"`
}

func NewAchievementStatsResponse(s *domain.AchievementStats) AchievementStatsResponse {
	toGroups := func(in map[string]domain.GroupCount) map[string]GroupCountResponse {
		return lo.MapValues(in, func(g domain.GroupCount, _ string) GroupCountResponse {
			return GroupCountResponse{Total: g.Total, Unlocked: g.Unlocked}
		})
	}
	return AchievementStatsResponse{
		Total:              s.Total,
		Unlocked:           s.Unlocked,
		CompletionRate:     s.CompletionRate,
		XPFromAchievements: s.XPFromAchievements,
		ByRarity:           toGroups(s.ByRarity),
		ByCategory:         toGroups(s.ByCategory),
	}
}

type CheckAchievementsResponse struct {
	Unlocked []AchievementResponse `json:"unlocked"`
}
