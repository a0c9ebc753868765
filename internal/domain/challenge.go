package domain

import (
	"context"
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DailyChallenge is generated from (weekday, difficulty) and never persisted.
type DailyChallenge struct {
	ID                  string
	Title               string
	Description         string
	Difficulty          Difficulty
	XPReward            int
	TimeEstimateMinutes int
	Topic               string
	StarterCode         string
	ExpectedOutput      string
	Hints               []string
	TestCases           []TestCase
	Weekday             time.Weekday
}

// ChallengeCompletion is stored once per (user, challenge, date).
type ChallengeCompletion struct {
	ID               string
	UserID           string
	ChallengeID      string
	ChallengeDate    time.Time
	XPEarned         int
	PerformanceScore int
	CompletedAt      time.Time
}

// ChallengeResult is returned after a daily challenge attempt.
type ChallengeResult struct {
	Validation       ValidationResult
	XPAwarded        int
	PerformanceScore int
	StreakBonus      int
	CurrentStreak    int
	TotalXP          int
	AlreadyCompleted bool
}

// StreakBonusReport describes the streak bonus for the current streak run.
type StreakBonusReport struct {
	CurrentStreak int
	Bonus         int
	Eligible      bool
	Claimed       bool
	RunStartedOn  *time.Time
}

type ChallengeRepository interface {
	// InsertCompletion returns false if the challenge was already completed that day.
	InsertCompletion(ctx context.Context, c *ChallengeCompletion) (bool, error)
	ListCompletions(ctx context.Context, userID string, from, to time.Time) ([]*ChallengeCompletion, error)
	CountCompletions(ctx context.Context, userID string) (int, error)
	// ClaimStreakBonus returns false if the run was already claimed.
	ClaimStreakBonus(ctx context.Context, userID string, runStartedOn time.Time) (bool, error)
	HasClaimedStreakBonus(ctx context.Context, userID string, runStartedOn time.Time) (bool, error)
}
