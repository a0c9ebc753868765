package service

import (
	"context"
	"time"

	"pylearn/internal/cache"
	"pylearn/internal/domain"
	"pylearn/internal/league"
	"pylearn/internal/logger"
	"pylearn/internal/scoring"

	"go.uber.org/zap"
)

// LessonService serves the lesson catalog and scores attempts.
type LessonService interface {
	ListLessons(ctx context.Context) ([]*domain.Lesson, error)
	GetLesson(ctx context.Context, lessonID string) (*domain.Lesson, error)
	ValidateAttempt(ctx context.Context, userID, lessonID string, attempt domain.LessonAttempt) (*domain.ValidationResult, error)
	// RevealHint returns hint index and records that it was used.
	RevealHint(ctx context.Context, userID, lessonID string, index int) (string, error)
	CompleteLesson(ctx context.Context, userID, lessonID string, usage scoring.Usage) (*domain.LessonCompletion, error)
}

type lessonServiceImpl struct {
	lessons      domain.LessonRepository
	progress     domain.ProgressRepository
	profiles     ProfileService
	achievements AchievementService
	tx           domain.TransactionManager
	validator    *scoring.Validator
	policy       scoring.Policy
	cache        domain.Cache
	cacheTTL     time.Duration
}

func NewLessonService(
	lessons domain.LessonRepository,
	progress domain.ProgressRepository,
	profiles ProfileService,
	achievements AchievementService,
	tx domain.TransactionManager,
	validator *scoring.Validator,
	policy scoring.Policy,
	c domain.Cache,
	cacheTTL time.Duration,
) LessonService {
	if policy == nil {
		policy = scoring.BandPolicy{}
	}
	return &lessonServiceImpl{
		lessons:      lessons,
		progress:     progress,
		profiles:     profiles,
		achievements: achievements,
		tx:           tx,
		validator:    validator,
		policy:       policy,
		cache:        c,
		cacheTTL:     cacheTTL,
	}
}

func (s *lessonServiceImpl) ListLessons(ctx context.Context) ([]*domain.Lesson, error) {
	var cached []*domain.Lesson
	if cache.GetJSON(ctx, s.cache, cache.LessonCatalogKey(), &cached) {
		return cached, nil
	}

	lessons, err := s.lessons.ListLessons(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list lessons", err)
	}
	cache.SetJSON(ctx, s.cache, cache.LessonCatalogKey(), lessons, s.cacheTTL)
	return lessons, nil
}

func (s *lessonServiceImpl) GetLesson(ctx context.Context, lessonID string) (*domain.Lesson, error) {
	key := cache.LessonKey(lessonID)
	var cached domain.Lesson
	if cache.GetJSON(ctx, s.cache, key, &cached) {
		return &cached, nil
	}

	lesson, err := s.lessons.GetLessonByID(ctx, lessonID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load lesson", err)
	}
	if lesson == nil {
		return nil, domain.NewLessonNotFoundError(lessonID)
	}
	cache.SetJSON(ctx, s.cache, key, lesson, s.cacheTTL)
	return lesson, nil
}

func (s *lessonServiceImpl) ValidateAttempt(ctx context.Context, userID, lessonID string, attempt domain.LessonAttempt) (*domain.ValidationResult, error) {
	lesson, err := s.GetLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if !lesson.Type.Valid() {
		return nil, domain.NewError(domain.CodeUnsupportedLesson, "unsupported lesson type", nil).
			WithContext("type", string(lesson.Type))
	}

	result := s.validator.Validate(ctx, lesson, attempt)

	if _, err := s.progress.RecordAttempt(ctx, userID, lessonID, result.Score, result.IsCorrect); err != nil {
		logger.Get().Warn("Failed to record lesson attempt",
			zap.String("user_id", userID), zap.String("lesson_id", lessonID), zap.Error(err))
	}
	if lesson.Type == domain.LessonTypeCode {
		if err := s.progress.RecordCodeAttempt(ctx, userID, lessonID, result.IsCorrect); err != nil {
			logger.Get().Warn("Failed to record code attempt",
				zap.String("user_id", userID), zap.String("lesson_id", lessonID), zap.Error(err))
		}
	}

	logger.Get().Debug("Lesson attempt validated",
		zap.String("user_id", userID),
		zap.String("lesson_id", lessonID),
		zap.Bool("correct", result.IsCorrect),
		zap.Int("score", result.Score))
	return &result, nil
}

func (s *lessonServiceImpl) RevealHint(ctx context.Context, userID, lessonID string, index int) (string, error) {
	lesson, err := s.GetLesson(ctx, lessonID)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(lesson.Hints) {
		return "", domain.NewInvalidInputError("hint index out of range").
			WithContext("index", index).
			WithContext("available", len(lesson.Hints))
	}

	if _, err := s.progress.RecordHint(ctx, userID, lessonID, index); err != nil {
		logger.Get().Warn("Failed to track hint usage",
			zap.String("user_id", userID), zap.String("lesson_id", lessonID), zap.Error(err))
	}
	return lesson.Hints[index], nil
}

func (s *lessonServiceImpl) CompleteLesson(ctx context.Context, userID, lessonID string, usage scoring.Usage) (*domain.LessonCompletion, error) {
	lesson, err := s.GetLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if _, err := s.profiles.GetProfile(ctx, userID); err != nil {
		return nil, err
	}

	progress, err := s.progress.GetProgress(ctx, userID, lessonID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load lesson progress", err)
	}
	if progress == nil || (!progress.Passed && !progress.Completed()) {
		return nil, domain.NewInvalidInputError("lesson has no correct attempt yet").
			WithContext("lesson_id", lessonID)
	}

	usage.HintsUsed = max(usage.HintsUsed, progress.HintsUsed)
	usage.Attempts = max(usage.Attempts, progress.Attempts)
	xp := s.policy.Award(lesson.XPReward, usage)

	result := &domain.LessonCompletion{
		LessonID:   lessonID,
		HintsUsed:  usage.HintsUsed,
		PenaltyPct: s.policy.PenaltyPercent(usage),
	}

	var award *domain.XPAward
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		first, err := s.progress.MarkCompleted(txCtx, userID, lessonID, xp)
		if err != nil {
			return domain.NewInternalError("failed to mark lesson completed", err)
		}
		if !first {
			result.AlreadyDone = true
			return nil
		}
		award, err = s.profiles.AwardXP(txCtx, domain.XPEvent{
			UserID:   userID,
			Source:   domain.XPSourceLesson,
			SourceID: lessonID,
			Amount:   xp,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	if !result.AlreadyDone {
		result.XPAwarded = xp
		result.Promoted = s.profiles.NotifyPromotion(ctx, award)
		if streak, err := s.profiles.TouchActivity(ctx, userID, time.Now()); err != nil {
			logger.Get().Warn("Failed to update streak", zap.String("user_id", userID), zap.Error(err))
		} else {
			result.CurrentStreak = streak.CurrentStreak
		}
		unlocked, err := s.achievements.CheckAndUnlock(ctx, userID)
		if err != nil {
			logger.Get().Warn("Achievement check failed", zap.String("user_id", userID), zap.Error(err))
		}
		result.Unlocked = unlocked
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	result.TotalXP = profile.TotalXP
	result.Level = profile.Level()
	result.League = league.ForXP(profile.TotalXP).League
	if result.AlreadyDone {
		result.CurrentStreak = profile.CurrentStreak
	}

	logger.Get().Info("Lesson completed",
		zap.String("user_id", userID),
		zap.String("lesson_id", lessonID),
		zap.Int("xp_awarded", result.XPAwarded),
		zap.Bool("already_completed", result.AlreadyDone))
	return result, nil
}
