package models

import "time"

type Achievement struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Icon        string `db:"icon"`
	Category    string `db:"category"`
	Type        string `db:"type"`
	TargetValue int    `db:"target_value"`
	XPReward    int    `db:"xp_reward"`
	Rarity      string `db:"rarity"`
}

type UserAchievement struct {
	UserID        string    `db:"user_id"`
	AchievementID string    `db:"achievement_id"`
	UnlockedAt    time.Time `db:"unlocked_at"`
}

// ChallengeCompletion maps daily_challenge_completions.
type ChallengeCompletion struct {
	ID               string    `db:"id"`
	UserID           string    `db:"user_id"`
	ChallengeID      string    `db:"challenge_id"`
	ChallengeDate    time.Time `db:"challenge_date"`
	XPEarned         int       `db:"xp_earned"`
	PerformanceScore int       `db:"performance_score"`
	CompletedAt      time.Time `db:"completed_at"`
}
