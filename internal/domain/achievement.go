package domain

import (
	"context"
	"time"
)

// AchievementType selects which counter an achievement is measured against.
type AchievementType string

const (
	AchievementLessonsCompleted AchievementType = "lessons_completed"
	AchievementTotalXP          AchievementType = "total_xp"
	AchievementCurrentStreak    AchievementType = "current_streak"
	AchievementLongestStreak    AchievementType = "longest_streak"
	AchievementPerfectLesson    AchievementType = "perfect_lesson"
	AchievementDailyChallenges  AchievementType = "daily_challenges"
	AchievementCodeChallenges   AchievementType = "code_challenges"
	AchievementFriendsAdded     AchievementType = "friends_added"
	AchievementLevelReached     AchievementType = "level_reached"
	AchievementConsecutiveDays  AchievementType = "consecutive_days"
)

// Achievement is an immutable catalog entry.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Category    string
	Type        AchievementType
	TargetValue int
	XPReward    int
	Rarity      string
}

// UserAchievement is the durable unlock record.
type UserAchievement struct {
	UserID        string
	AchievementID string
	UnlockedAt    time.Time
}

// AchievementProgress is derived per user and never stored.
type AchievementProgress struct {
	Achievement  *Achievement
	CurrentValue int
	TargetValue  int
	Percentage   int
	IsUnlocked   bool
	UnlockedAt   *time.Time
}

// Unlockable reports whether the target is reached but no unlock record exists yet.
func (p AchievementProgress) Unlockable() bool {
	return p.Percentage >= 100 && !p.IsUnlocked
}

// AchievementStats summarises a user's achievement catalog.
type AchievementStats struct {
	Total              int
	Unlocked           int
	CompletionRate     int
	XPFromAchievements int
	ByRarity           map[string]GroupCount
	ByCategory         map[string]GroupCount
}

// GroupCount is the catalog size and unlocked count for one rarity or category.
type GroupCount struct {
	Total    int
	Unlocked int
}

// UserCounters is the snapshot the progress calculator reads from.
type UserCounters struct {
	LessonsCompleted int
	PerfectLessons   int
	DailyChallenges  int
	CodeChallenges   int
	FriendsAdded     int
	TotalXP          int
	CurrentStreak    int
	LongestStreak    int
}

type AchievementRepository interface {
	ListAchievements(ctx context.Context) ([]*Achievement, error)
	ListUserAchievements(ctx context.Context, userID string) ([]*UserAchievement, error)
	// InsertUserAchievement returns false when the unlock record already exists.
	InsertUserAchievement(ctx context.Context, ua *UserAchievement) (bool, error)
}
