package repository

import (
	"context"
	"testing"
	"time"

	"pylearn/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLXAchievementRepository_List(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXAchievementRepository(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`FROM achievements ORDER BY`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "description", "icon", "category", "type", "target_value", "xp_reward", "rarity"}).
			AddRow("first_lesson", "First Steps", "", "footprints", "learning", "lessons_completed", 1, 25, "common"))

	defs, err := repo.ListAchievements(ctx)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, domain.AchievementLessonsCompleted, defs[0].Type)

	mock.ExpectQuery(`FROM user_achievements WHERE user_id = \$1`).WithArgs("u1").WillReturnRows(
		sqlmock.NewRows([]string{"user_id", "achievement_id", "unlocked_at"}).AddRow("u1", "first_lesson", now))

	unlocked, err := repo.ListUserAchievements(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	assert.Equal(t, "first_lesson", unlocked[0].AchievementID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXAchievementRepository_InsertIsIdempotent(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXAchievementRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO user_achievements .+ ON CONFLICT \(user_id, achievement_id\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO user_achievements`).WillReturnResult(sqlmock.NewResult(0, 0))

	inserted, err := repo.InsertUserAchievement(ctx, &domain.UserAchievement{UserID: "u1", AchievementID: "streak_7"})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.InsertUserAchievement(ctx, &domain.UserAchievement{UserID: "u1", AchievementID: "streak_7"})
	require.NoError(t, err)
	assert.False(t, inserted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXChallengeRepository(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXChallengeRepository(db)
	ctx := context.Background()
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO daily_challenge_completions .+ DO NOTHING`).WillReturnResult(sqlmock.NewResult(0, 1))
	c := &domain.ChallengeCompletion{UserID: "u1", ChallengeID: "easy_1", ChallengeDate: day.Add(9 * time.Hour), XPEarned: 30}
	ok, err := repo.InsertCompletion(ctx, c)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, c.ID)

	mock.ExpectQuery(`FROM daily_challenge_completions\s+WHERE user_id = \$1 AND challenge_date BETWEEN`).
		WithArgs("u1", day.AddDate(0, 0, -6), day).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "challenge_id", "challenge_date", "xp_earned", "performance_score", "completed_at"}).
			AddRow(c.ID, "u1", "easy_1", day, 30, 90, day))
	list, err := repo.ListCompletions(ctx, "u1", day.AddDate(0, 0, -6), day)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 90, list[0].PerformanceScore)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM daily_challenge_completions`).WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	n, err := repo.CountCompletions(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	runStart := day.AddDate(0, 0, -6)
	mock.ExpectExec(`INSERT INTO streak_bonus_claims`).WithArgs("u1", runStart).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO streak_bonus_claims`).WithArgs("u1", runStart).WillReturnResult(sqlmock.NewResult(0, 0))
	claimed, err := repo.ClaimStreakBonus(ctx, "u1", runStart)
	require.NoError(t, err)
	assert.True(t, claimed)
	claimed, err = repo.ClaimStreakBonus(ctx, "u1", runStart)
	require.NoError(t, err)
	assert.False(t, claimed, "a run is only rewarded once")

	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("u1", runStart).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	has, err := repo.HasClaimedStreakBonus(ctx, "u1", runStart)
	require.NoError(t, err)
	assert.True(t, has)

	assert.NoError(t, mock.ExpectationsWereMet())
}
