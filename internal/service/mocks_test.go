package service

import (
	"context"
	"time"

	"pylearn/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetProfileByID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) IncrementXP(ctx context.Context, event domain.XPEvent) (*domain.XPAward, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.XPAward), args.Error(1)
}

func (m *MockProfileRepository) TouchActivity(ctx context.Context, userID string, day time.Time) (*domain.StreakUpdate, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StreakUpdate), args.Error(1)
}

func (m *MockProfileRepository) CountRankInLeague(ctx context.Context, userID string, minXP, maxXP int) (int, int, error) {
	args := m.Called(ctx, userID, minXP, maxXP)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockProfileRepository) ListTopByXP(ctx context.Context, minXP, maxXP int, limit int) ([]*domain.Profile, error) {
	args := m.Called(ctx, minXP, maxXP, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) ResetInactiveStreaks(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// --- MockLessonRepository ---
type MockLessonRepository struct {
	mock.Mock
}

func (m *MockLessonRepository) ListLessons(ctx context.Context) ([]*domain.Lesson, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Lesson), args.Error(1)
}

func (m *MockLessonRepository) GetLessonByID(ctx context.Context, lessonID string) (*domain.Lesson, error) {
	args := m.Called(ctx, lessonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lesson), args.Error(1)
}

func (m *MockLessonRepository) UpsertLesson(ctx context.Context, l *domain.Lesson) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

// --- MockProgressRepository ---
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) GetProgress(ctx context.Context, userID, lessonID string) (*domain.LessonProgress, error) {
	args := m.Called(ctx, userID, lessonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LessonProgress), args.Error(1)
}

func (m *MockProgressRepository) RecordAttempt(ctx context.Context, userID, lessonID string, score int, passed bool) (*domain.LessonProgress, error) {
	args := m.Called(ctx, userID, lessonID, score, passed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LessonProgress), args.Error(1)
}

func (m *MockProgressRepository) RecordHint(ctx context.Context, userID, lessonID string, index int) (int, error) {
	args := m.Called(ctx, userID, lessonID, index)
	return args.Int(0), args.Error(1)
}

func (m *MockProgressRepository) MarkCompleted(ctx context.Context, userID, lessonID string, xpEarned int) (bool, error) {
	args := m.Called(ctx, userID, lessonID, xpEarned)
	return args.Bool(0), args.Error(1)
}

func (m *MockProgressRepository) RecordCodeAttempt(ctx context.Context, userID, lessonID string, passed bool) error {
	args := m.Called(ctx, userID, lessonID, passed)
	return args.Error(0)
}

func (m *MockProgressRepository) CountCompleted(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockProgressRepository) CountPerfect(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockProgressRepository) CountPassedCodeAttempts(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// --- MockAchievementRepository ---
type MockAchievementRepository struct {
	mock.Mock
}

func (m *MockAchievementRepository) ListAchievements(ctx context.Context) ([]*domain.Achievement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Achievement), args.Error(1)
}

func (m *MockAchievementRepository) ListUserAchievements(ctx context.Context, userID string) ([]*domain.UserAchievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserAchievement), args.Error(1)
}

func (m *MockAchievementRepository) InsertUserAchievement(ctx context.Context, ua *domain.UserAchievement) (bool, error) {
	args := m.Called(ctx, ua)
	return args.Bool(0), args.Error(1)
}

// --- MockChallengeRepository ---
type MockChallengeRepository struct {
	mock.Mock
}

func (m *MockChallengeRepository) InsertCompletion(ctx context.Context, c *domain.ChallengeCompletion) (bool, error) {
	args := m.Called(ctx, c)
	return args.Bool(0), args.Error(1)
}

func (m *MockChallengeRepository) ListCompletions(ctx context.Context, userID string, from, to time.Time) ([]*domain.ChallengeCompletion, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ChallengeCompletion), args.Error(1)
}

func (m *MockChallengeRepository) CountCompletions(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockChallengeRepository) ClaimStreakBonus(ctx context.Context, userID string, runStartedOn time.Time) (bool, error) {
	args := m.Called(ctx, userID, runStartedOn)
	return args.Bool(0), args.Error(1)
}

func (m *MockChallengeRepository) HasClaimedStreakBonus(ctx context.Context, userID string, runStartedOn time.Time) (bool, error) {
	args := m.Called(ctx, userID, runStartedOn)
	return args.Bool(0), args.Error(1)
}

// --- MockFriendRepository ---
type MockFriendRepository struct {
	mock.Mock
}

func (m *MockFriendRepository) CreateFriendship(ctx context.Context, f *domain.Friendship) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFriendRepository) GetFriendshipByID(ctx context.Context, id string) (*domain.Friendship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Friendship), args.Error(1)
}

func (m *MockFriendRepository) FindBetween(ctx context.Context, userA, userB string) (*domain.Friendship, error) {
	args := m.Called(ctx, userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Friendship), args.Error(1)
}

func (m *MockFriendRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockFriendRepository) DeleteFriendship(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFriendRepository) ListFriendships(ctx context.Context, userID string) ([]*domain.Friendship, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Friendship), args.Error(1)
}

func (m *MockFriendRepository) CountAccepted(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// --- MockNotificationRepository ---
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) CreateNotification(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*domain.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, userID, notificationID string) (bool, error) {
	args := m.Called(ctx, userID, notificationID)
	return args.Bool(0), args.Error(1)
}

// --- MockNotificationPublisher ---
type MockNotificationPublisher struct {
	mock.Mock
}

func (m *MockNotificationPublisher) Publish(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationPublisher) Subscribe(ctx context.Context, userID string) (<-chan *domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan *domain.Notification), args.Error(1)
}

// --- MockLeaderboardRepository ---
type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) SumWeeklyXP(ctx context.Context, from, to time.Time) ([]*domain.WeeklyEntry, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WeeklyEntry), args.Error(1)
}

func (m *MockLeaderboardRepository) SaveWeekly(ctx context.Context, weekStart time.Time, entries []*domain.WeeklyEntry) error {
	args := m.Called(ctx, weekStart, entries)
	return args.Error(0)
}

// --- MockChatRepository ---
type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) SaveMessage(ctx context.Context, msg *domain.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockChatRepository) RecentMessages(ctx context.Context, userID, conversationID string, limit int) ([]*domain.ChatMessage, error) {
	args := m.Called(ctx, userID, conversationID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ChatMessage), args.Error(1)
}

// --- MockChatModel ---
type MockChatModel struct {
	mock.Mock
	provider string
	model    string
}

func (m *MockChatModel) Name() string  { return m.provider }
func (m *MockChatModel) Model() string { return m.model }

func (m *MockChatModel) Generate(ctx context.Context, systemPrompt string, history []*domain.ChatMessage, message string) (string, error) {
	args := m.Called(ctx, systemPrompt, history, message)
	return args.String(0), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockAchievementService ---
type MockAchievementService struct {
	mock.Mock
}

func (m *MockAchievementService) GetProgress(ctx context.Context, userID string) ([]domain.AchievementProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AchievementProgress), args.Error(1)
}

func (m *MockAchievementService) GetStats(ctx context.Context, userID string) (*domain.AchievementStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AchievementStats), args.Error(1)
}

func (m *MockAchievementService) CheckAndUnlock(ctx context.Context, userID string) ([]*domain.Achievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Achievement), args.Error(1)
}

// --- MockCodeExecutor ---
type MockCodeExecutor struct {
	mock.Mock
}

func (m *MockCodeExecutor) Execute(ctx context.Context, code string, testCases []domain.TestCase) (*domain.ExecutionResult, error) {
	args := m.Called(ctx, code, testCases)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExecutionResult), args.Error(1)
}

// fakeTxManager runs fn inline and counts calls.
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}
