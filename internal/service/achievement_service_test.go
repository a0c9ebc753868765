package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"pylearn/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type achievementFixture struct {
	repo       *MockAchievementRepository
	profiles   *MockProfileRepository
	progress   *MockProgressRepository
	challenges *MockChallengeRepository
	friends    *MockFriendRepository
	notes      *MockNotificationRepository
	publisher  *MockNotificationPublisher
	tx         *fakeTxManager
	svc        AchievementService
}

func newAchievementFixture() *achievementFixture {
	f := &achievementFixture{
		repo:       new(MockAchievementRepository),
		profiles:   new(MockProfileRepository),
		progress:   new(MockProgressRepository),
		challenges: new(MockChallengeRepository),
		friends:    new(MockFriendRepository),
		notes:      new(MockNotificationRepository),
		publisher:  new(MockNotificationPublisher),
		tx:         &fakeTxManager{},
	}
	notifier := NewNotificationService(f.notes, f.publisher)
	profileSvc := NewProfileService(f.profiles, notifier)
	f.svc = NewAchievementService(f.repo, f.profiles, f.progress, f.challenges, f.friends,
		profileSvc, notifier, f.tx, nil, time.Minute)
	return f
}

var testCatalog = []*domain.Achievement{
	{ID: "first_lesson", Name: "First Steps", Icon: "🎯", Category: "learning", Type: domain.AchievementLessonsCompleted, TargetValue: 1, XPReward: 50, Rarity: "common"},
	{ID: "ten_lessons", Name: "Dedicated Learner", Icon: "📚", Category: "learning", Type: domain.AchievementLessonsCompleted, TargetValue: 10, XPReward: 200, Rarity: "rare"},
	{ID: "streak_3", Name: "On Fire", Icon: "🔥", Category: "streak", Type: domain.AchievementCurrentStreak, TargetValue: 3, XPReward: 75, Rarity: "common"},
}

func (f *achievementFixture) expectCounters(userID string, profile *domain.Profile, lessons int) {
	f.profiles.On("GetProfileByID", mock.Anything, userID).Return(profile, nil)
	f.progress.On("CountCompleted", mock.Anything, userID).Return(lessons, nil)
	f.progress.On("CountPerfect", mock.Anything, userID).Return(0, nil)
	f.progress.On("CountPassedCodeAttempts", mock.Anything, userID).Return(0, nil)
	f.challenges.On("CountCompletions", mock.Anything, userID).Return(0, nil)
	f.friends.On("CountAccepted", mock.Anything, userID).Return(0, nil)
}

func TestAchievementService_GetProgress_Sorted(t *testing.T) {
	f := newAchievementFixture()
	f.repo.On("ListAchievements", mock.Anything).Return(testCatalog, nil)
	f.repo.On("ListUserAchievements", mock.Anything, "u").Return([]*domain.UserAchievement{
		{UserID: "u", AchievementID: "first_lesson", UnlockedAt: time.Now()},
	}, nil)
	f.expectCounters("u", &domain.Profile{ID: "u", CurrentStreak: 2}, 5)

	progress, err := f.svc.GetProgress(context.Background(), "u")
	require.NoError(t, err)
	require.Len(t, progress, 3)
	// locked first, higher percentage first
	assert.Equal(t, "streak_3", progress[0].Achievement.ID)
	assert.Equal(t, 66, progress[0].Percentage)
	assert.Equal(t, "ten_lessons", progress[1].Achievement.ID)
	assert.Equal(t, 50, progress[1].Percentage)
	assert.Equal(t, "first_lesson", progress[2].Achievement.ID)
	assert.True(t, progress[2].IsUnlocked)
}

func TestAchievementService_GetProgress_CounterFailure(t *testing.T) {
	f := newAchievementFixture()
	f.repo.On("ListAchievements", mock.Anything).Return(testCatalog, nil)
	f.profiles.On("GetProfileByID", mock.Anything, "u").Return(&domain.Profile{ID: "u"}, nil)
	f.progress.On("CountCompleted", mock.Anything, "u").Return(0, errors.New("db down"))
	f.progress.On("CountPerfect", mock.Anything, "u").Return(0, nil).Maybe()
	f.progress.On("CountPassedCodeAttempts", mock.Anything, "u").Return(0, nil).Maybe()
	f.challenges.On("CountCompletions", mock.Anything, "u").Return(0, nil).Maybe()
	f.friends.On("CountAccepted", mock.Anything, "u").Return(0, nil).Maybe()

	_, err := f.svc.GetProgress(context.Background(), "u")
	assert.ErrorIs(t, err, domain.NewInternalError("", nil))
}

func TestAchievementService_GetStats(t *testing.T) {
	f := newAchievementFixture()
	f.repo.On("ListAchievements", mock.Anything).Return(testCatalog, nil)
	f.repo.On("ListUserAchievements", mock.Anything, "u").Return([]*domain.UserAchievement{
		{UserID: "u", AchievementID: "first_lesson", UnlockedAt: time.Now()},
		{UserID: "u", AchievementID: "streak_3", UnlockedAt: time.Now()},
	}, nil)

	stats, err := f.svc.GetStats(context.Background(), "u")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Unlocked)
	assert.Equal(t, 66, stats.CompletionRate)
	assert.Equal(t, 125, stats.XPFromAchievements)
	assert.Equal(t, domain.GroupCount{Total: 2, Unlocked: 1}, stats.ByCategory["learning"])
}

func TestAchievementService_CheckAndUnlock(t *testing.T) {
	f := newAchievementFixture()
	f.repo.On("ListAchievements", mock.Anything).Return(testCatalog, nil)
	f.repo.On("ListUserAchievements", mock.Anything, "u").Return([]*domain.UserAchievement{}, nil).Once()
	f.repo.On("ListUserAchievements", mock.Anything, "u").Return([]*domain.UserAchievement{
		{UserID: "u", AchievementID: "first_lesson", UnlockedAt: time.Now()},
	}, nil)
	f.expectCounters("u", &domain.Profile{ID: "u", TotalXP: 50}, 1)

	f.repo.On("InsertUserAchievement", mock.Anything, mock.MatchedBy(func(ua *domain.UserAchievement) bool {
		return ua.UserID == "u" && ua.AchievementID == "first_lesson"
	})).Return(true, nil).Once()
	f.profiles.On("IncrementXP", mock.Anything, domain.XPEvent{
		UserID: "u", Source: domain.XPSourceAchievement, SourceID: "first_lesson", Amount: 50,
	}).Return(&domain.XPAward{UserID: "u", OldXP: 50, NewXP: 100}, nil).Once()
	f.notes.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == domain.NotificationAchievement && n.Title == "Achievement Unlocked!" &&
			n.Metadata["achievement_id"] == "first_lesson"
	})).Return(nil).Once()
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	unlocked, err := f.svc.CheckAndUnlock(context.Background(), "u")
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	assert.Equal(t, "first_lesson", unlocked[0].ID)
	assert.Equal(t, 1, f.tx.calls)
	f.repo.AssertExpectations(t)
	f.notes.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestAchievementService_CheckAndUnlock_LostRace(t *testing.T) {
	f := newAchievementFixture()
	f.repo.On("ListAchievements", mock.Anything).Return(testCatalog[:1], nil)
	f.repo.On("ListUserAchievements", mock.Anything, "u").Return([]*domain.UserAchievement{}, nil).Once()
	f.repo.On("ListUserAchievements", mock.Anything, "u").Return([]*domain.UserAchievement{
		{UserID: "u", AchievementID: "first_lesson", UnlockedAt: time.Now()},
	}, nil)
	f.expectCounters("u", &domain.Profile{ID: "u"}, 1)
	f.repo.On("InsertUserAchievement", mock.Anything, mock.Anything).Return(false, nil).Once()

	unlocked, err := f.svc.CheckAndUnlock(context.Background(), "u")
	require.NoError(t, err)
	assert.Empty(t, unlocked)
	f.profiles.AssertNotCalled(t, "IncrementXP", mock.Anything, mock.Anything)
	f.notes.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
}
