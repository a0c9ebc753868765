package handler_test

import (
	"context"
	"errors"
	"time"

	"pylearn/internal/challenge"
	"pylearn/internal/domain"
	"pylearn/internal/dto"
	"pylearn/internal/league"
	"pylearn/internal/scoring"
	"pylearn/internal/service"

	"github.com/golang-jwt/jwt/v5"
)

// --- Manual Mocks ---

type MockAuthService struct{}

func (m *MockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if tokenString != "good" {
		return nil, errors.New("invalid token")
	}
	return &dto.AuthClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: testUserID}}, nil
}

func (m *MockAuthService) IssueToken(ctx context.Context, userID, email string, ttl time.Duration) (string, error) {
	panic("MockAuthService.IssueToken not implemented")
}

type MockLessonService struct {
	ListLessonsFunc     func(ctx context.Context) ([]*domain.Lesson, error)
	GetLessonFunc       func(ctx context.Context, lessonID string) (*domain.Lesson, error)
	ValidateAttemptFunc func(ctx context.Context, userID, lessonID string, attempt domain.LessonAttempt) (*domain.ValidationResult, error)
	RevealHintFunc      func(ctx context.Context, userID, lessonID string, index int) (string, error)
	CompleteLessonFunc  func(ctx context.Context, userID, lessonID string, usage scoring.Usage) (*domain.LessonCompletion, error)
}

func (m *MockLessonService) ListLessons(ctx context.Context) ([]*domain.Lesson, error) {
	if m.ListLessonsFunc != nil {
		return m.ListLessonsFunc(ctx)
	}
	panic("MockLessonService.ListLessonsFunc not implemented")
}
func (m *MockLessonService) GetLesson(ctx context.Context, lessonID string) (*domain.Lesson, error) {
	if m.GetLessonFunc != nil {
		return m.GetLessonFunc(ctx, lessonID)
	}
	panic("MockLessonService.GetLessonFunc not implemented")
}
func (m *MockLessonService) ValidateAttempt(ctx context.Context, userID, lessonID string, attempt domain.LessonAttempt) (*domain.ValidationResult, error) {
	if m.ValidateAttemptFunc != nil {
		return m.ValidateAttemptFunc(ctx, userID, lessonID, attempt)
	}
	panic("MockLessonService.ValidateAttemptFunc not implemented")
}
func (m *MockLessonService) RevealHint(ctx context.Context, userID, lessonID string, index int) (string, error) {
	if m.RevealHintFunc != nil {
		return m.RevealHintFunc(ctx, userID, lessonID, index)
	}
	panic("MockLessonService.RevealHintFunc not implemented")
}
func (m *MockLessonService) CompleteLesson(ctx context.Context, userID, lessonID string, usage scoring.Usage) (*domain.LessonCompletion, error) {
	if m.CompleteLessonFunc != nil {
		return m.CompleteLessonFunc(ctx, userID, lessonID, usage)
	}
	panic("MockLessonService.CompleteLessonFunc not implemented")
}

type MockProfileService struct {
	CreateProfileFunc func(ctx context.Context, userID, username, displayName, avatarURL string) (*domain.Profile, error)
	GetProfileFunc    func(ctx context.Context, userID string) (*domain.Profile, error)
}

func (m *MockProfileService) CreateProfile(ctx context.Context, userID, username, displayName, avatarURL string) (*domain.Profile, error) {
	if m.CreateProfileFunc != nil {
		return m.CreateProfileFunc(ctx, userID, username, displayName, avatarURL)
	}
	panic("MockProfileService.CreateProfileFunc not implemented")
}
func (m *MockProfileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	panic("MockProfileService.GetProfileFunc not implemented")
}
func (m *MockProfileService) AwardXP(ctx context.Context, event domain.XPEvent) (*domain.XPAward, error) {
	panic("MockProfileService.AwardXP not implemented")
}
func (m *MockProfileService) NotifyPromotion(ctx context.Context, award *domain.XPAward) bool {
	panic("MockProfileService.NotifyPromotion not implemented")
}
func (m *MockProfileService) TouchActivity(ctx context.Context, userID string, at time.Time) (*domain.StreakUpdate, error) {
	panic("MockProfileService.TouchActivity not implemented")
}

type MockAchievementService struct {
	GetProgressFunc    func(ctx context.Context, userID string) ([]domain.AchievementProgress, error)
	GetStatsFunc       func(ctx context.Context, userID string) (*domain.AchievementStats, error)
	CheckAndUnlockFunc func(ctx context.Context, userID string) ([]*domain.Achievement, error)
}

func (m *MockAchievementService) GetProgress(ctx context.Context, userID string) ([]domain.AchievementProgress, error) {
	if m.GetProgressFunc != nil {
		return m.GetProgressFunc(ctx, userID)
	}
	panic("MockAchievementService.GetProgressFunc not implemented")
}
func (m *MockAchievementService) GetStats(ctx context.Context, userID string) (*domain.AchievementStats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx, userID)
	}
	panic("MockAchievementService.GetStatsFunc not implemented")
}
func (m *MockAchievementService) CheckAndUnlock(ctx context.Context, userID string) ([]*domain.Achievement, error) {
	if m.CheckAndUnlockFunc != nil {
		return m.CheckAndUnlockFunc(ctx, userID)
	}
	panic("MockAchievementService.CheckAndUnlockFunc not implemented")
}

type MockLeagueService struct {
	GetStandingFunc    func(ctx context.Context, userID string) (*service.LeagueStanding, error)
	GetLeaderboardFunc func(ctx context.Context, l domain.League, limit int) ([]service.LeaderboardEntry, error)
}

func (m *MockLeagueService) Bands() []league.Band { return league.Bands() }
func (m *MockLeagueService) GetStanding(ctx context.Context, userID string) (*service.LeagueStanding, error) {
	if m.GetStandingFunc != nil {
		return m.GetStandingFunc(ctx, userID)
	}
	panic("MockLeagueService.GetStandingFunc not implemented")
}
func (m *MockLeagueService) GetLeaderboard(ctx context.Context, l domain.League, limit int) ([]service.LeaderboardEntry, error) {
	if m.GetLeaderboardFunc != nil {
		return m.GetLeaderboardFunc(ctx, l, limit)
	}
	panic("MockLeagueService.GetLeaderboardFunc not implemented")
}

type MockChallengeService struct {
	CompleteFunc          func(ctx context.Context, userID string, sub service.ChallengeSubmission, now time.Time) (*domain.ChallengeResult, error)
	StreakBonusReportFunc func(ctx context.Context, userID string, now time.Time) (*domain.StreakBonusReport, error)
}

func (m *MockChallengeService) Daily(now time.Time) []domain.DailyChallenge {
	return challenge.ForDay(now.Weekday())
}
func (m *MockChallengeService) Weekly(now time.Time) challenge.WeeklyRotation {
	return challenge.Rotation(now)
}
func (m *MockChallengeService) Complete(ctx context.Context, userID string, sub service.ChallengeSubmission, now time.Time) (*domain.ChallengeResult, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, userID, sub, now)
	}
	panic("MockChallengeService.CompleteFunc not implemented")
}
func (m *MockChallengeService) StreakBonusReport(ctx context.Context, userID string, now time.Time) (*domain.StreakBonusReport, error) {
	if m.StreakBonusReportFunc != nil {
		return m.StreakBonusReportFunc(ctx, userID, now)
	}
	panic("MockChallengeService.StreakBonusReportFunc not implemented")
}

type MockFriendService struct {
	ListFriendsFunc func(ctx context.Context, userID string) ([]service.FriendEntry, error)
	SendRequestFunc func(ctx context.Context, userID, friendID string) (*domain.Friendship, error)
	AcceptFunc      func(ctx context.Context, userID, friendshipID string) (*domain.Friendship, error)
	RemoveFunc      func(ctx context.Context, userID, friendshipID string) error
}

func (m *MockFriendService) ListFriends(ctx context.Context, userID string) ([]service.FriendEntry, error) {
	if m.ListFriendsFunc != nil {
		return m.ListFriendsFunc(ctx, userID)
	}
	panic("MockFriendService.ListFriendsFunc not implemented")
}
func (m *MockFriendService) SendRequest(ctx context.Context, userID, friendID string) (*domain.Friendship, error) {
	if m.SendRequestFunc != nil {
		return m.SendRequestFunc(ctx, userID, friendID)
	}
	panic("MockFriendService.SendRequestFunc not implemented")
}
func (m *MockFriendService) Accept(ctx context.Context, userID, friendshipID string) (*domain.Friendship, error) {
	if m.AcceptFunc != nil {
		return m.AcceptFunc(ctx, userID, friendshipID)
	}
	panic("MockFriendService.AcceptFunc not implemented")
}
func (m *MockFriendService) Remove(ctx context.Context, userID, friendshipID string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, userID, friendshipID)
	}
	panic("MockFriendService.RemoveFunc not implemented")
}

type MockNotificationService struct {
	ListFunc      func(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*domain.Notification, error)
	MarkReadFunc  func(ctx context.Context, userID, notificationID string) error
	SubscribeFunc func(ctx context.Context, userID string) (<-chan *domain.Notification, error)
}

func (m *MockNotificationService) Notify(ctx context.Context, n *domain.Notification) error {
	panic("MockNotificationService.Notify not implemented")
}
func (m *MockNotificationService) Store(ctx context.Context, n *domain.Notification) error {
	panic("MockNotificationService.Store not implemented")
}
func (m *MockNotificationService) Publish(ctx context.Context, n *domain.Notification) {
	panic("MockNotificationService.Publish not implemented")
}
func (m *MockNotificationService) List(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*domain.Notification, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, unreadOnly, limit)
	}
	panic("MockNotificationService.ListFunc not implemented")
}
func (m *MockNotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, userID, notificationID)
	}
	panic("MockNotificationService.MarkReadFunc not implemented")
}
func (m *MockNotificationService) Subscribe(ctx context.Context, userID string) (<-chan *domain.Notification, error) {
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(ctx, userID)
	}
	panic("MockNotificationService.SubscribeFunc not implemented")
}

type MockChatService struct {
	ChatFunc func(ctx context.Context, req domain.ChatRequest) (*domain.ChatReply, error)
}

func (m *MockChatService) Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatReply, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, req)
	}
	panic("MockChatService.ChatFunc not implemented")
}
