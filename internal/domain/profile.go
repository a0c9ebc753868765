package domain

import (
	"context"
	"time"
)

// XPPerLevel is the XP span of one level.
const XPPerLevel = 100

// League is a tier band derived from total XP.
type League string

const (
	LeagueBronze   League = "bronze"
	LeagueSilver   League = "silver"
	LeagueGold     League = "gold"
	LeaguePlatinum League = "platinum"
)

// Profile holds a learner's identity and progression counters.
// Level and league are derived from TotalXP and never stored.
type Profile struct {
	ID             string
	Username       string
	DisplayName    string
	AvatarURL      string
	TotalXP        int
	CurrentStreak  int
	LongestStreak  int
	LastActiveDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewProfile creates a Profile with zeroed counters.
func NewProfile(id, username, displayName string) *Profile {
	now := time.Now()
	return &Profile{
		ID:          id,
		Username:    username,
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Level returns floor(total_xp/100)+1.
func (p *Profile) Level() int {
	return LevelForXP(p.TotalXP)
}

func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/XPPerLevel + 1
}

// XPAward is the outcome of an atomic XP increment.
type XPAward struct {
	UserID string
	OldXP  int
	NewXP  int
}

// XPEvent is an audit row for every XP increment.
type XPEvent struct {
	UserID    string
	Source    string
	SourceID  string
	Amount    int
	CreatedAt time.Time
}

const (
	XPSourceLesson       = "lesson"
	XPSourceAchievement  = "achievement"
	XPSourceChallenge    = "daily_challenge"
	XPSourceStreakBonus  = "streak_bonus"
	XPSourceWeeklyReward = "weekly_leaderboard"
)

// StreakUpdate is the result of recording a day of activity.
type StreakUpdate struct {
	CurrentStreak  int
	LongestStreak  int
	LastActiveDate time.Time
}

// StreakStart returns the first day of the streak run ending at lastActive.
func StreakStart(lastActive time.Time, streak int) time.Time {
	if streak < 1 {
		streak = 1
	}
	return truncateDay(lastActive).AddDate(0, 0, -(streak - 1))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ProfileRepository defines persistence for learner profiles.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *Profile) error
	GetProfileByID(ctx context.Context, userID string) (*Profile, error)
	// IncrementXP adds amount to total_xp in a single statement and records an XP event.
	IncrementXP(ctx context.Context, event XPEvent) (*XPAward, error)
	// TouchActivity records activity on day and advances or restarts the streak.
	TouchActivity(ctx context.Context, userID string, day time.Time) (*StreakUpdate, error)
	// CountRankInLeague returns the 1-based rank of the user among profiles with xp in [minXP, maxXP).
	// maxXP < 0 means unbounded.
	CountRankInLeague(ctx context.Context, userID string, minXP, maxXP int) (rank int, total int, err error)
	ListTopByXP(ctx context.Context, minXP, maxXP int, limit int) ([]*Profile, error)
	// ResetInactiveStreaks zeroes streaks of users whose last activity is before cutoff.
	ResetInactiveStreaks(ctx context.Context, cutoff time.Time) (int64, error)
}
