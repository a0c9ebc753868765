package service

import (
	"context"
	"fmt"
	"time"

	"pylearn/internal/challenge"
	"pylearn/internal/domain"
	"pylearn/internal/logger"
	"pylearn/internal/scoring"
	"pylearn/internal/util"

	"go.uber.org/zap"
)

// ChallengeSubmission is one attempt at a daily challenge.
type ChallengeSubmission struct {
	ChallengeID string
	Code        string
	HintsUsed   int
	TimeSpent   time.Duration
}

type ChallengeService interface {
	Daily(now time.Time) []domain.DailyChallenge
	Weekly(now time.Time) challenge.WeeklyRotation
	Complete(ctx context.Context, userID string, sub ChallengeSubmission, now time.Time) (*domain.ChallengeResult, error)
	StreakBonusReport(ctx context.Context, userID string, now time.Time) (*domain.StreakBonusReport, error)
}

type challengeServiceImpl struct {
	repo         domain.ChallengeRepository
	profiles     ProfileService
	achievements AchievementService
	notifier     NotificationService
	tx           domain.TransactionManager
	validator    *scoring.Validator
	policy       scoring.Policy
}

func NewChallengeService(
	repo domain.ChallengeRepository,
	profiles ProfileService,
	achievements AchievementService,
	notifier NotificationService,
	tx domain.TransactionManager,
	validator *scoring.Validator,
	policy scoring.Policy,
) ChallengeService {
	if policy == nil {
		policy = scoring.BandPolicy{}
	}
	return &challengeServiceImpl{
		repo:         repo,
		profiles:     profiles,
		achievements: achievements,
		notifier:     notifier,
		tx:           tx,
		validator:    validator,
		policy:       policy,
	}
}

func (s *challengeServiceImpl) Daily(now time.Time) []domain.DailyChallenge {
	return challenge.ForDay(now.Weekday())
}

func (s *challengeServiceImpl) Weekly(now time.Time) challenge.WeeklyRotation {
	return challenge.Rotation(now)
}

func (s *challengeServiceImpl) Complete(ctx context.Context, userID string, sub ChallengeSubmission, now time.Time) (*domain.ChallengeResult, error) {
	ch, ok := challenge.ByID(sub.ChallengeID)
	if !ok {
		return nil, domain.NewChallengeNotFoundError(sub.ChallengeID)
	}
	if ch.Weekday != now.Weekday() {
		return nil, domain.NewInvalidInputError("challenge is not available today").
			WithContext("challenge_id", sub.ChallengeID)
	}
	if _, err := s.profiles.GetProfile(ctx, userID); err != nil {
		return nil, err
	}

	validation := s.validator.ValidateCode(ctx, sub.Code, domain.LessonContent{
		ExpectedOutput: ch.ExpectedOutput,
		TestCases:      ch.TestCases,
	})
	result := &domain.ChallengeResult{Validation: validation}
	if !validation.IsCorrect {
		return result, nil
	}

	estimate := time.Duration(ch.TimeEstimateMinutes) * time.Minute
	result.PerformanceScore = challenge.PerformanceScore(sub.TimeSpent, estimate, sub.HintsUsed, len(ch.Hints))
	xp := s.policy.Award(ch.XPReward, scoring.Usage{HintsUsed: sub.HintsUsed, Attempts: 1, Elapsed: sub.TimeSpent})

	var award *domain.XPAward
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		inserted, err := s.repo.InsertCompletion(txCtx, &domain.ChallengeCompletion{
			UserID:           userID,
			ChallengeID:      ch.ID,
			ChallengeDate:    now,
			XPEarned:         xp,
			PerformanceScore: result.PerformanceScore,
		})
		if err != nil {
			return domain.NewInternalError("failed to record challenge completion", err)
		}
		if !inserted {
			result.AlreadyCompleted = true
			return nil
		}
		award, err = s.profiles.AwardXP(txCtx, domain.XPEvent{
			UserID:   userID,
			Source:   domain.XPSourceChallenge,
			SourceID: ch.ID,
			Amount:   xp,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	if !result.AlreadyCompleted {
		result.XPAwarded = xp
		s.profiles.NotifyPromotion(ctx, award)

		streak, err := s.profiles.TouchActivity(ctx, userID, now)
		if err != nil {
			logger.Get().Warn("Failed to update streak", zap.String("user_id", userID), zap.Error(err))
		} else {
			result.CurrentStreak = streak.CurrentStreak
			result.StreakBonus = s.claimStreakBonus(ctx, userID, streak)
		}

		if _, err := s.achievements.CheckAndUnlock(ctx, userID); err != nil {
			logger.Get().Warn("Achievement check failed", zap.String("user_id", userID), zap.Error(err))
		}
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	result.TotalXP = profile.TotalXP
	if result.AlreadyCompleted {
		result.CurrentStreak = profile.CurrentStreak
	}

	logger.Get().Info("Daily challenge completed",
		zap.String("user_id", userID),
		zap.String("challenge_id", ch.ID),
		zap.Int("xp_awarded", result.XPAwarded),
		zap.Int("performance_score", result.PerformanceScore),
		zap.Bool("already_completed", result.AlreadyCompleted))
	return result, nil
}

// claimStreakBonus awards the bonus once per streak run and returns the XP granted.
func (s *challengeServiceImpl) claimStreakBonus(ctx context.Context, userID string, streak *domain.StreakUpdate) int {
	bonus := challenge.StreakBonus(streak.CurrentStreak)
	if bonus == 0 {
		return 0
	}
	runStart := domain.StreakStart(streak.LastActiveDate, streak.CurrentStreak)

	var (
		claimed bool
		award   *domain.XPAward
	)
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		claimed, err = s.repo.ClaimStreakBonus(txCtx, userID, runStart)
		if err != nil || !claimed {
			return err
		}
		award, err = s.profiles.AwardXP(txCtx, domain.XPEvent{
			UserID:   userID,
			Source:   domain.XPSourceStreakBonus,
			SourceID: util.DateOnly(runStart).Format(time.DateOnly),
			Amount:   bonus,
		})
		return err
	})
	if err != nil {
		logger.Get().Warn("Failed to claim streak bonus", zap.String("user_id", userID), zap.Error(err))
		return 0
	}
	if !claimed {
		return 0
	}

	s.profiles.NotifyPromotion(ctx, award)
	n := newNotification(userID, domain.NotificationStreakBonus,
		"Streak Bonus!",
		fmt.Sprintf("%d days in a row! You earned %d bonus XP.", streak.CurrentStreak, bonus),
		map[string]interface{}{
			"streak":   streak.CurrentStreak,
			"xp_bonus": bonus,
		})
	if err := s.notifier.Notify(ctx, n); err != nil {
		logger.Get().Warn("Failed to send streak bonus notification", zap.String("user_id", userID), zap.Error(err))
	}
	return bonus
}

func (s *challengeServiceImpl) StreakBonusReport(ctx context.Context, userID string, now time.Time) (*domain.StreakBonusReport, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := &domain.StreakBonusReport{}
	if profile.LastActiveDate == nil {
		return report, nil
	}
	yesterday := util.DateOnly(now).AddDate(0, 0, -1)
	if util.DateOnly(*profile.LastActiveDate).Before(yesterday) {
		return report, nil
	}

	report.CurrentStreak = profile.CurrentStreak
	report.Bonus = challenge.StreakBonus(profile.CurrentStreak)
	report.Eligible = report.Bonus > 0
	start := domain.StreakStart(*profile.LastActiveDate, profile.CurrentStreak)
	report.RunStartedOn = &start
	if report.Eligible {
		claimed, err := s.repo.HasClaimedStreakBonus(ctx, userID, start)
		if err != nil {
			return nil, domain.NewInternalError("failed to check streak bonus", err)
		}
		report.Claimed = claimed
	}
	return report, nil
}
