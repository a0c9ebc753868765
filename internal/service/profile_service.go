package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pylearn/internal/domain"
	"pylearn/internal/league"
	"pylearn/internal/logger"

	"go.uber.org/zap"
)

type ProfileService interface {
	CreateProfile(ctx context.Context, userID, username, displayName, avatarURL string) (*domain.Profile, error)
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	// AwardXP increments total_xp atomically. It is safe inside a transaction;
	// callers send promotion notices with NotifyPromotion after commit.
	AwardXP(ctx context.Context, event domain.XPEvent) (*domain.XPAward, error)
	// NotifyPromotion sends a league promotion notice when award crossed a band.
	NotifyPromotion(ctx context.Context, award *domain.XPAward) bool
	TouchActivity(ctx context.Context, userID string, at time.Time) (*domain.StreakUpdate, error)
}

type profileServiceImpl struct {
	repo     domain.ProfileRepository
	notifier NotificationService
}

func NewProfileService(repo domain.ProfileRepository, notifier NotificationService) ProfileService {
	return &profileServiceImpl{repo: repo, notifier: notifier}
}

func (s *profileServiceImpl) CreateProfile(ctx context.Context, userID, username, displayName, avatarURL string) (*domain.Profile, error) {
	existing, err := s.repo.GetProfileByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up profile", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError("profile already exists").WithContext("user_id", userID)
	}

	username = strings.TrimSpace(username)
	if displayName == "" {
		displayName = username
	}
	profile := domain.NewProfile(userID, username, displayName)
	profile.AvatarURL = avatarURL
	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		return nil, domain.NewInternalError("failed to create profile", err)
	}
	logger.Get().Info("Profile created", zap.String("user_id", userID), zap.String("username", username))
	return profile, nil
}

func (s *profileServiceImpl) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.repo.GetProfileByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load profile", err)
	}
	if profile == nil {
		return nil, domain.NewProfileNotFoundError(userID)
	}
	return profile, nil
}

func (s *profileServiceImpl) AwardXP(ctx context.Context, event domain.XPEvent) (*domain.XPAward, error) {
	if event.Amount < 0 {
		return nil, domain.NewInvalidInputError("xp amount must not be negative")
	}
	if event.Amount == 0 {
		profile, err := s.GetProfile(ctx, event.UserID)
		if err != nil {
			return nil, err
		}
		return &domain.XPAward{UserID: event.UserID, OldXP: profile.TotalXP, NewXP: profile.TotalXP}, nil
	}

	award, err := s.repo.IncrementXP(ctx, event)
	if err != nil {
		return nil, domain.NewInternalError("failed to award xp", err)
	}
	if award == nil {
		return nil, domain.NewProfileNotFoundError(event.UserID)
	}
	logger.Get().Info("XP awarded",
		zap.String("user_id", event.UserID),
		zap.String("source", event.Source),
		zap.String("source_id", event.SourceID),
		zap.Int("amount", event.Amount),
		zap.Int("total_xp", award.NewXP))
	return award, nil
}

func (s *profileServiceImpl) NotifyPromotion(ctx context.Context, award *domain.XPAward) bool {
	if award == nil {
		return false
	}
	promo, ok := league.CheckPromotion(award.OldXP, award.NewXP)
	if !ok {
		return false
	}
	band, _ := league.Lookup(promo.To)
	n := newNotification(award.UserID, domain.NotificationPromotion,
		"League Promotion!",
		fmt.Sprintf("Congratulations! You've been promoted to the %s.", band.Name),
		map[string]interface{}{
			"from_league": string(promo.From),
			"to_league":   string(promo.To),
			"total_xp":    award.NewXP,
		})
	if err := s.notifier.Notify(ctx, n); err != nil {
		logger.Get().Warn("Failed to send promotion notification", zap.String("user_id", award.UserID), zap.Error(err))
	}
	return true
}

func (s *profileServiceImpl) TouchActivity(ctx context.Context, userID string, at time.Time) (*domain.StreakUpdate, error) {
	upd, err := s.repo.TouchActivity(ctx, userID, at)
	if err != nil {
		return nil, domain.NewInternalError("failed to update streak", err)
	}
	if upd == nil {
		return nil, domain.NewProfileNotFoundError(userID)
	}
	return upd, nil
}
