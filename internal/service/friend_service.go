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

// FriendEntry pairs a friendship with the other participant's profile.
type FriendEntry struct {
	Friendship *domain.Friendship
	Friend     *domain.Profile
}

type FriendService interface {
	ListFriends(ctx context.Context, userID string) ([]FriendEntry, error)
	SendRequest(ctx context.Context, userID, friendID string) (*domain.Friendship, error)
	Accept(ctx context.Context, userID, friendshipID string) (*domain.Friendship, error)
	Remove(ctx context.Context, userID, friendshipID string) error
}

type friendServiceImpl struct {
	repo         domain.FriendRepository
	profiles     domain.ProfileRepository
	achievements AchievementService
	notifier     NotificationService
}

func NewFriendService(
	repo domain.FriendRepository,
	profiles domain.ProfileRepository,
	achievements AchievementService,
	notifier NotificationService,
) FriendService {
	return &friendServiceImpl{repo: repo, profiles: profiles, achievements: achievements, notifier: notifier}
}

func (s *friendServiceImpl) ListFriends(ctx context.Context, userID string) ([]FriendEntry, error) {
	friendships, err := s.repo.ListFriendships(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list friendships", err)
	}
	out := make([]FriendEntry, 0, len(friendships))
	for _, f := range friendships {
		other, err := s.profiles.GetProfileByID(ctx, f.Other(userID))
		if err != nil {
			return nil, domain.NewInternalError("failed to load friend profile", err)
		}
		if other == nil {
			continue
		}
		out = append(out, FriendEntry{Friendship: f, Friend: other})
	}
	return out, nil
}

func (s *friendServiceImpl) SendRequest(ctx context.Context, userID, friendID string) (*domain.Friendship, error) {
	if userID == friendID {
		return nil, domain.NewInvalidInputError("cannot send a friend request to yourself")
	}
	requester, err := s.profiles.GetProfileByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load profile", err)
	}
	if requester == nil {
		return nil, domain.NewProfileNotFoundError(userID)
	}
	target, err := s.profiles.GetProfileByID(ctx, friendID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load profile", err)
	}
	if target == nil {
		return nil, domain.NewProfileNotFoundError(friendID)
	}

	existing, err := s.repo.FindBetween(ctx, userID, friendID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up friendship", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError("friendship already exists").
			WithContext("friendship_id", existing.ID).
			WithContext("status", existing.Status)
	}

	f := &domain.Friendship{
		ID:          util.NewULID(),
		RequesterID: userID,
		AddresseeID: friendID,
		Status:      domain.FriendshipPending,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.CreateFriendship(ctx, f); err != nil {
		return nil, domain.NewInternalError("failed to create friendship", err)
	}

	n := newNotification(friendID, domain.NotificationFriend,
		"New Friend Request",
		fmt.Sprintf("%s wants to be your friend", requester.DisplayName),
		map[string]interface{}{
			"friendship_id": f.ID,
			"requester_id":  userID,
		})
	if err := s.notifier.Notify(ctx, n); err != nil {
		logger.Get().Warn("Failed to send friend request notification", zap.String("user_id", friendID), zap.Error(err))
	}
	return f, nil
}

func (s *friendServiceImpl) load(ctx context.Context, friendshipID string) (*domain.Friendship, error) {
	f, err := s.repo.GetFriendshipByID(ctx, friendshipID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load friendship", err)
	}
	if f == nil {
		return nil, domain.NewError(domain.CodeFriendshipNotFound, "friendship not found", nil).
			WithContext("friendship_id", friendshipID)
	}
	return f, nil
}

func (s *friendServiceImpl) Accept(ctx context.Context, userID, friendshipID string) (*domain.Friendship, error) {
	f, err := s.load(ctx, friendshipID)
	if err != nil {
		return nil, err
	}
	if f.AddresseeID != userID {
		return nil, domain.NewForbiddenError("only the addressee can accept a friend request")
	}
	if f.Status != domain.FriendshipPending {
		return nil, domain.NewConflictError("friend request is not pending").WithContext("status", f.Status)
	}
	if err := s.repo.UpdateStatus(ctx, f.ID, domain.FriendshipAccepted); err != nil {
		return nil, domain.NewInternalError("failed to accept friend request", err)
	}
	f.Status = domain.FriendshipAccepted

	for _, id := range []string{f.RequesterID, f.AddresseeID} {
		if _, err := s.achievements.CheckAndUnlock(ctx, id); err != nil {
			logger.Get().Warn("Achievement check failed", zap.String("user_id", id), zap.Error(err))
		}
	}
	return f, nil
}

func (s *friendServiceImpl) Remove(ctx context.Context, userID, friendshipID string) error {
	f, err := s.load(ctx, friendshipID)
	if err != nil {
		return err
	}
	if f.RequesterID != userID && f.AddresseeID != userID {
		return domain.NewForbiddenError("not a participant of this friendship")
	}
	if err := s.repo.DeleteFriendship(ctx, f.ID); err != nil {
		return domain.NewInternalError("failed to remove friendship", err)
	}
	return nil
}
