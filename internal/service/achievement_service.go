package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pylearn/internal/achievement"
	"pylearn/internal/cache"
	"pylearn/internal/domain"
	"pylearn/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// maxUnlockPasses bounds cascading unlocks (an unlock's XP can satisfy another achievement).
const maxUnlockPasses = 3

type AchievementService interface {
	GetProgress(ctx context.Context, userID string) ([]domain.AchievementProgress, error)
	GetStats(ctx context.Context, userID string) (*domain.AchievementStats, error)
	// CheckAndUnlock records every achievement whose target is reached and returns the new ones.
	CheckAndUnlock(ctx context.Context, userID string) ([]*domain.Achievement, error)
}

type achievementServiceImpl struct {
	repo       domain.AchievementRepository
	profiles   domain.ProfileRepository
	progress   domain.ProgressRepository
	challenges domain.ChallengeRepository
	friends    domain.FriendRepository
	profileSvc ProfileService
	notifier   NotificationService
	tx         domain.TransactionManager
	cache      domain.Cache
	cacheTTL   time.Duration
	group      singleflight.Group
}

func NewAchievementService(
	repo domain.AchievementRepository,
	profiles domain.ProfileRepository,
	progress domain.ProgressRepository,
	challenges domain.ChallengeRepository,
	friends domain.FriendRepository,
	profileSvc ProfileService,
	notifier NotificationService,
	tx domain.TransactionManager,
	c domain.Cache,
	cacheTTL time.Duration,
) AchievementService {
	return &achievementServiceImpl{
		repo:       repo,
		profiles:   profiles,
		progress:   progress,
		challenges: challenges,
		friends:    friends,
		profileSvc: profileSvc,
		notifier:   notifier,
		tx:         tx,
		cache:      c,
		cacheTTL:   cacheTTL,
	}
}

func (s *achievementServiceImpl) catalog(ctx context.Context) ([]*domain.Achievement, error) {
	key := cache.AchievementCatalogKey()
	var cached []*domain.Achievement
	if cache.GetJSON(ctx, s.cache, key, &cached) {
		return cached, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		defs, err := s.repo.ListAchievements(ctx)
		if err != nil {
			return nil, err
		}
		cache.SetJSON(ctx, s.cache, key, defs, s.cacheTTL)
		return defs, nil
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to load achievement catalog", err)
	}
	return v.([]*domain.Achievement), nil
}

func (s *achievementServiceImpl) unlockedAt(ctx context.Context, userID string) (map[string]time.Time, error) {
	rows, err := s.repo.ListUserAchievements(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load unlocked achievements", err)
	}
	out := make(map[string]time.Time, len(rows))
	for _, ua := range rows {
		out[ua.AchievementID] = ua.UnlockedAt
	}
	return out, nil
}

// counters gathers every value the progress calculator reads.
func (s *achievementServiceImpl) counters(ctx context.Context, userID string) (domain.UserCounters, error) {
	var c domain.UserCounters
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := s.profiles.GetProfileByID(gctx, userID)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		if p == nil {
			return domain.NewProfileNotFoundError(userID)
		}
		c.TotalXP, c.CurrentStreak, c.LongestStreak = p.TotalXP, p.CurrentStreak, p.LongestStreak
		return nil
	})
	g.Go(func() (err error) {
		c.LessonsCompleted, err = s.progress.CountCompleted(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		c.PerfectLessons, err = s.progress.CountPerfect(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		c.DailyChallenges, err = s.challenges.CountCompletions(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		c.CodeChallenges, err = s.progress.CountPassedCodeAttempts(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		c.FriendsAdded, err = s.friends.CountAccepted(gctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		var de *domain.DomainError
		if errors.As(err, &de) {
			return c, err
		}
		return c, domain.NewInternalError("failed to load achievement counters", err)
	}
	return c, nil
}

func (s *achievementServiceImpl) GetProgress(ctx context.Context, userID string) ([]domain.AchievementProgress, error) {
	defs, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	counters, err := s.counters(ctx, userID)
	if err != nil {
		return nil, err
	}
	unlocked, err := s.unlockedAt(ctx, userID)
	if err != nil {
		return nil, err
	}
	progress := achievement.Compute(defs, counters, unlocked)
	achievement.Sort(progress)
	return progress, nil
}

func (s *achievementServiceImpl) GetStats(ctx context.Context, userID string) (*domain.AchievementStats, error) {
	defs, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	unlocked, err := s.unlockedAt(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := achievement.Stats(defs, unlocked)
	return &stats, nil
}

func (s *achievementServiceImpl) CheckAndUnlock(ctx context.Context, userID string) ([]*domain.Achievement, error) {
	var newly []*domain.Achievement
	for pass := 0; pass < maxUnlockPasses; pass++ {
		progress, err := s.GetProgress(ctx, userID)
		if err != nil {
			return newly, err
		}
		ready := achievement.Unlockable(progress)
		if len(ready) == 0 {
			break
		}
		for _, p := range ready {
			ok, err := s.unlock(ctx, userID, p.Achievement)
			if err != nil {
				return newly, err
			}
			if ok {
				newly = append(newly, p.Achievement)
			}
		}
	}
	return newly, nil
}

// unlock inserts the unlock record, awards its XP and stores the notification in
// one transaction. It reports false when another request unlocked it first.
func (s *achievementServiceImpl) unlock(ctx context.Context, userID string, a *domain.Achievement) (bool, error) {
	var (
		inserted bool
		award    *domain.XPAward
		note     *domain.Notification
	)
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		inserted, err = s.repo.InsertUserAchievement(txCtx, &domain.UserAchievement{
			UserID:        userID,
			AchievementID: a.ID,
			UnlockedAt:    time.Now(),
		})
		if err != nil {
			return domain.NewInternalError("failed to record achievement", err)
		}
		if !inserted {
			return nil
		}
		if a.XPReward > 0 {
			award, err = s.profileSvc.AwardXP(txCtx, domain.XPEvent{
				UserID:   userID,
				Source:   domain.XPSourceAchievement,
				SourceID: a.ID,
				Amount:   a.XPReward,
			})
			if err != nil {
				return err
			}
		}
		note = newNotification(userID, domain.NotificationAchievement,
			"Achievement Unlocked!",
			fmt.Sprintf("You earned %s %s", a.Icon, a.Name),
			map[string]interface{}{
				"achievement_id": a.ID,
				"xp_reward":      a.XPReward,
				"rarity":         a.Rarity,
			})
		return s.notifier.Store(txCtx, note)
	})
	if err != nil {
		return false, err
	}
	if !inserted {
		return false, nil
	}

	logger.Get().Info("Achievement unlocked",
		zap.String("user_id", userID),
		zap.String("achievement_id", a.ID),
		zap.Int("xp_reward", a.XPReward))
	s.notifier.Publish(ctx, note)
	s.profileSvc.NotifyPromotion(ctx, award)
	return true, nil
}
