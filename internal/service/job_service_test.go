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

func TestPreviousWeekStart(t *testing.T) {
	tests := []struct {
		now      time.Time
		expected time.Time
	}{
		{time.Date(2024, 5, 13, 1, 0, 0, 0, time.UTC), time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, 5, 19, 23, 0, 0, 0, time.UTC), time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC), time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, PreviousWeekStart(tt.now), tt.now.String())
	}
}

func TestJobService_ResetStreaks(t *testing.T) {
	profiles := new(MockProfileRepository)
	svc := NewJobService(profiles, new(MockLeaderboardRepository), NewNotificationService(new(MockNotificationRepository), nil), &fakeTxManager{})

	now := time.Date(2024, 5, 10, 3, 0, 0, 0, time.UTC)
	profiles.On("ResetInactiveStreaks", mock.Anything, time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC)).Return(int64(4), nil)

	n, err := svc.ResetStreaks(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestJobService_RankWeek(t *testing.T) {
	board := new(MockLeaderboardRepository)
	notes := new(MockNotificationRepository)
	tx := &fakeTxManager{}
	svc := NewJobService(new(MockProfileRepository), board, NewNotificationService(notes, nil), tx)

	now := time.Date(2024, 5, 13, 1, 0, 0, 0, time.UTC)
	from := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	entries := []*domain.WeeklyEntry{
		{UserID: "a", WeeklyXP: 500, Rank: 1},
		{UserID: "b", WeeklyXP: 300, Rank: 2},
		{UserID: "c", WeeklyXP: 300, Rank: 2},
		{UserID: "d", WeeklyXP: 100, Rank: 4},
	}
	board.On("SumWeeklyXP", mock.Anything, from, from.AddDate(0, 0, 7)).Return(entries, nil)
	board.On("SaveWeekly", mock.Anything, from, entries).Return(nil)
	notes.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == domain.NotificationLeaderboard && n.UserID != "d"
	})).Return(nil).Times(3)

	report, err := svc.RankWeek(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Notified)
	assert.Equal(t, 1, tx.calls)
	notes.AssertExpectations(t)
}

func TestJobService_RankWeek_SaveFails(t *testing.T) {
	board := new(MockLeaderboardRepository)
	notes := new(MockNotificationRepository)
	svc := NewJobService(new(MockProfileRepository), board, NewNotificationService(notes, nil), &fakeTxManager{})

	board.On("SumWeeklyXP", mock.Anything, mock.Anything, mock.Anything).Return([]*domain.WeeklyEntry{{UserID: "a", Rank: 1}}, nil)
	board.On("SaveWeekly", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := svc.RankWeek(context.Background(), time.Now())
	assert.Error(t, err)
	notes.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
}
