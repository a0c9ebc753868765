// Package achievement computes per-user progress against the achievement catalog.
package achievement

import (
	"math"
	"sort"
	"time"

	"pylearn/internal/domain"

	"github.com/samber/lo"
)

// Resolver reads the current value for one achievement type.
type Resolver func(c domain.UserCounters) int

var resolvers = map[domain.AchievementType]Resolver{
	domain.AchievementLessonsCompleted: func(c domain.UserCounters) int { return c.LessonsCompleted },
	domain.AchievementTotalXP:          func(c domain.UserCounters) int { return c.TotalXP },
	domain.AchievementCurrentStreak:    func(c domain.UserCounters) int { return c.CurrentStreak },
	domain.AchievementLongestStreak:    func(c domain.UserCounters) int { return c.LongestStreak },
	domain.AchievementPerfectLesson:    func(c domain.UserCounters) int { return c.PerfectLessons },
	domain.AchievementDailyChallenges:  func(c domain.UserCounters) int { return c.DailyChallenges },
	domain.AchievementCodeChallenges:   func(c domain.UserCounters) int { return c.CodeChallenges },
	domain.AchievementFriendsAdded:     func(c domain.UserCounters) int { return c.FriendsAdded },
	domain.AchievementLevelReached:     func(c domain.UserCounters) int { return domain.LevelForXP(c.TotalXP) },
	domain.AchievementConsecutiveDays:  func(c domain.UserCounters) int { return c.CurrentStreak },
}

// CurrentValue resolves the counter for t. Unknown types resolve to 0.
func CurrentValue(t domain.AchievementType, c domain.UserCounters) int {
	r, ok := resolvers[t]
	if !ok {
		return 0
	}
	return r(c)
}

// Known reports whether t has a resolver.
func Known(t domain.AchievementType) bool {
	_, ok := resolvers[t]
	return ok
}

// Percentage is min(100, floor(current/target*100)). A non-positive target yields 0.
func Percentage(current, target int) int {
	if target <= 0 || current <= 0 {
		return 0
	}
	p := int(math.Floor(float64(current) / float64(target) * 100))
	return min(100, p)
}

// Compute derives progress for every definition. unlocked maps achievement id to unlock time.
func Compute(defs []*domain.Achievement, counters domain.UserCounters, unlocked map[string]time.Time) []domain.AchievementProgress {
	out := make([]domain.AchievementProgress, 0, len(defs))
	for _, def := range defs {
		cur := CurrentValue(def.Type, counters)
		p := domain.AchievementProgress{
			Achievement:  def,
			CurrentValue: cur,
			TargetValue:  def.TargetValue,
			Percentage:   Percentage(cur, def.TargetValue),
		}
		if at, ok := unlocked[def.ID]; ok {
			p.IsUnlocked = true
			p.UnlockedAt = &at
		}
		out = append(out, p)
	}
	return out
}

// Sort puts locked achievements first, then higher progress, then name.
func Sort(progress []domain.AchievementProgress) {
	sort.SliceStable(progress, func(i, j int) bool {
		a, b := progress[i], progress[j]
		if a.IsUnlocked != b.IsUnlocked {
			return !a.IsUnlocked
		}
		if a.Percentage != b.Percentage {
			return a.Percentage > b.Percentage
		}
		return a.Achievement.Name < b.Achievement.Name
	})
}

// Unlockable filters progress down to entries ready to unlock.
func Unlockable(progress []domain.AchievementProgress) []domain.AchievementProgress {
	return lo.Filter(progress, func(p domain.AchievementProgress, _ int) bool {
		return p.Unlockable()
	})
}

// Stats summarises the catalog against the user's unlock records.
func Stats(defs []*domain.Achievement, unlocked map[string]time.Time) domain.AchievementStats {
	isUnlocked := func(a *domain.Achievement) bool {
		_, ok := unlocked[a.ID]
		return ok
	}
	won := lo.Filter(defs, func(a *domain.Achievement, _ int) bool { return isUnlocked(a) })

	group := func(key func(a *domain.Achievement) string) map[string]domain.GroupCount {
		return lo.MapValues(lo.GroupBy(defs, key), func(items []*domain.Achievement, _ string) domain.GroupCount {
			return domain.GroupCount{
				Total:    len(items),
				Unlocked: lo.CountBy(items, isUnlocked),
			}
		})
	}

	stats := domain.AchievementStats{
		Total:              len(defs),
		Unlocked:           len(won),
		XPFromAchievements: lo.SumBy(won, func(a *domain.Achievement) int { return a.XPReward }),
		ByRarity:           group(func(a *domain.Achievement) string { return a.Rarity }),
		ByCategory:         group(func(a *domain.Achievement) string { return a.Category }),
	}
	if stats.Total > 0 {
		stats.CompletionRate = stats.Unlocked * 100 / stats.Total
	}
	return stats
}
