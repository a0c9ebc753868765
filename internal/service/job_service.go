package service

import (
	"context"
	"fmt"
	"time"

	"pylearn/internal/domain"
	"pylearn/internal/logger"
	"pylearn/internal/util"

	"go.uber.org/zap"
)

// weeklyPodium is how many top entries get a leaderboard notification.
const weeklyPodium = 3

// WeeklyReport summarises one weekly leaderboard run.
type WeeklyReport struct {
	WeekStart time.Time
	Entries   []*domain.WeeklyEntry
	Notified  int
}

// JobService holds the scheduled maintenance tasks run by cmd/jobs.
type JobService interface {
	// ResetStreaks zeroes the streak of every user not active yesterday or today.
	ResetStreaks(ctx context.Context, now time.Time) (int64, error)
	// RankWeek ranks the XP earned in the Monday-to-Monday week before now.
	RankWeek(ctx context.Context, now time.Time) (*WeeklyReport, error)
}

type jobServiceImpl struct {
	profiles    domain.ProfileRepository
	leaderboard domain.LeaderboardRepository
	notifier    NotificationService
	tx          domain.TransactionManager
}

func NewJobService(
	profiles domain.ProfileRepository,
	leaderboard domain.LeaderboardRepository,
	notifier NotificationService,
	tx domain.TransactionManager,
) JobService {
	return &jobServiceImpl{profiles: profiles, leaderboard: leaderboard, notifier: notifier, tx: tx}
}

func (s *jobServiceImpl) ResetStreaks(ctx context.Context, now time.Time) (int64, error) {
	cutoff := util.DateOnly(now).AddDate(0, 0, -1)
	n, err := s.profiles.ResetInactiveStreaks(ctx, cutoff)
	if err != nil {
		return 0, domain.NewInternalError("failed to reset inactive streaks", err)
	}
	logger.Get().Info("Streak maintenance finished",
		zap.Time("cutoff", cutoff),
		zap.Int64("streaks_reset", n))
	return n, nil
}

// PreviousWeekStart returns the Monday that starts the last complete week before now.
func PreviousWeekStart(now time.Time) time.Time {
	today := util.DateOnly(now)
	offset := (int(today.Weekday()) + 6) % 7
	return today.AddDate(0, 0, -offset-7)
}

func (s *jobServiceImpl) RankWeek(ctx context.Context, now time.Time) (*WeeklyReport, error) {
	from := PreviousWeekStart(now)
	to := from.AddDate(0, 0, 7)

	entries, err := s.leaderboard.SumWeeklyXP(ctx, from, to)
	if err != nil {
		return nil, domain.NewInternalError("failed to rank weekly xp", err)
	}
	report := &WeeklyReport{WeekStart: from, Entries: entries}
	if len(entries) == 0 {
		logger.Get().Info("No XP earned last week", zap.Time("week_start", from))
		return report, nil
	}

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.leaderboard.SaveWeekly(txCtx, from, entries)
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to save weekly leaderboard", err)
	}

	for _, e := range entries {
		if e.Rank > weeklyPodium {
			break
		}
		n := newNotification(e.UserID, domain.NotificationLeaderboard,
			"Weekly Leaderboard",
			fmt.Sprintf("You finished #%d last week with %d XP!", e.Rank, e.WeeklyXP),
			map[string]interface{}{
				"week_start": from.Format(time.DateOnly),
				"rank":       e.Rank,
				"weekly_xp":  e.WeeklyXP,
			})
		if err := s.notifier.Notify(ctx, n); err != nil {
			logger.Get().Warn("Failed to send leaderboard notification", zap.String("user_id", e.UserID), zap.Error(err))
			continue
		}
		report.Notified++
	}

	logger.Get().Info("Weekly leaderboard saved",
		zap.Time("week_start", from),
		zap.Int("entries", len(entries)),
		zap.Int("notified", report.Notified))
	return report, nil
}
