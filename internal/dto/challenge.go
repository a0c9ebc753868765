package dto

import (
	"time"

	"pylearn/internal/domain"

	"github.com/samber/lo"
)

// DailyChallengeResponse is a generated challenge. Expected output stays server side.
// @Description Daily challenge
type DailyChallengeResponse struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Difficulty          string   `json:"difficulty"`
	XPReward            int      `json:"xp_reward"`
	TimeEstimateMinutes int      `json:"time_estimate_minutes"`
	Topic               string   `json:"topic"`
	StarterCode         string   `json:"starter_code"`
	Hints               []string `json:"hints"`
	Weekday             string   `json:"weekday"`
}

func NewDailyChallengeResponses(list []domain.DailyChallenge) []DailyChallengeResponse {
	return lo.Map(list, func(c domain.DailyChallenge, _ int) DailyChallengeResponse {
		return DailyChallengeResponse{
			ID:                  c.ID,
			Title:               c.Title,
			Description:         c.Description,
			Difficulty:          string(c.Difficulty),
			XPReward:            c.XPReward,
			TimeEstimateMinutes: c.TimeEstimateMinutes,
			Topic:               c.Topic,
			StarterCode:         c.StarterCode,
			Hints:               c.Hints,
			Weekday:             c.Weekday.String(),
		}
	})
}

type DailyChallengesResponse struct {
	Date       string                   `json:"date"`
	Challenges []DailyChallengeResponse `json:"challenges"`
}

type WeeklyChallengesResponse struct {
	WeekStart  string                   `json:"week_start"`
	Challenges []DailyChallengeResponse `json:"challenges"`
}

// CompleteChallengeRequest submits code for today's challenge.
// @Description Request body for completing a daily challenge
type CompleteChallengeRequest struct {
	Code             string `json:"code"`
	HintsUsed        int    `json:"hints_used"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

type ChallengeResultResponse struct {
	Validation       ValidationResponse `json:"validation"`
	XPAwarded        int                `json:"xp_awarded"`
	PerformanceScore int                `json:"performance_score"`
	StreakBonus      int                `json:"streak_bonus"`
	CurrentStreak    int                `json:"current_streak"`
	TotalXP          int                `json:"total_xp"`
	AlreadyCompleted bool               `json:"already_completed"`
}

func NewChallengeResultResponse(r *domain.ChallengeResult) ChallengeResultResponse {
	return ChallengeResultResponse{
		Validation:       NewValidationResponse(&r.Validation),
		XPAwarded:        r.XPAwarded,
		PerformanceScore: r.PerformanceScore,
		StreakBonus:      r.StreakBonus,
		CurrentStreak:    r.CurrentStreak,
		TotalXP:          r.TotalXP,
		AlreadyCompleted: r.AlreadyCompleted,
	}
}

type StreakBonusResponse struct {
	CurrentStreak int     `json:"current_streak"`
	Bonus         int     `json:"bonus"`
	Eligible      bool    `json:"eligible"`
	Claimed       bool    `json:"claimed"`
	RunStartedOn  *string `json:"run_started_on,omitempty"`
}

func NewStreakBonusResponse(r *domain.StreakBonusReport) StreakBonusResponse {
	resp := StreakBonusResponse{
		CurrentStreak: r.CurrentStreak,
		Bonus:         r.Bonus,
		Eligible:      r.Eligible,
		Claimed:       r.Claimed,
	}
	if r.RunStartedOn != nil {
		s := r.RunStartedOn.Format(time.DateOnly)
		resp.RunStartedOn = &s
	}
	return resp
}
