package repository

import (
	"context"
	"fmt"
	"time"

	"pylearn/internal/domain"
	"pylearn/internal/repository/models"
	"pylearn/internal/util"

	"github.com/jmoiron/sqlx"
)

type sqlxAchievementRepository struct {
	db *sqlx.DB
}

func NewSQLXAchievementRepository(db *sqlx.DB) domain.AchievementRepository {
	return &sqlxAchievementRepository{db: db}
}

func toDomainAchievement(m *models.Achievement) *domain.Achievement {
	return &domain.Achievement{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Icon:        m.Icon,
		Category:    m.Category,
		Type:        domain.AchievementType(m.Type),
		TargetValue: m.TargetValue,
		XPReward:    m.XPReward,
		Rarity:      m.Rarity,
	}
}

func (r *sqlxAchievementRepository) ListAchievements(ctx context.Context) ([]*domain.Achievement, error) {
	var rows []models.Achievement
	query := `SELECT id, name, description, icon, category, type, target_value, xp_reward, rarity
	          FROM achievements ORDER BY category ASC, target_value ASC, id ASC`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	out := make([]*domain.Achievement, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainAchievement(&rows[i]))
	}
	return out, nil
}

func (r *sqlxAchievementRepository) ListUserAchievements(ctx context.Context, userID string) ([]*domain.UserAchievement, error) {
	var rows []models.UserAchievement
	query := `SELECT user_id, achievement_id, unlocked_at FROM user_achievements WHERE user_id = $1`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list user achievements: %w", err)
	}
	out := make([]*domain.UserAchievement, 0, len(rows))
	for _, row := range rows {
		out = append(out, &domain.UserAchievement{
			UserID:        row.UserID,
			AchievementID: row.AchievementID,
			UnlockedAt:    row.UnlockedAt,
		})
	}
	return out, nil
}

// InsertUserAchievement is idempotent: a second insert for the same pair reports false.
func (r *sqlxAchievementRepository) InsertUserAchievement(ctx context.Context, ua *domain.UserAchievement) (bool, error) {
	query := `INSERT INTO user_achievements (user_id, achievement_id, unlocked_at)
	          VALUES (:user_id, :achievement_id, :unlocked_at)
	          ON CONFLICT (user_id, achievement_id) DO NOTHING`

	if ua.UnlockedAt.IsZero() {
		ua.UnlockedAt = time.Now()
	}
	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, &models.UserAchievement{
		UserID:        ua.UserID,
		AchievementID: ua.AchievementID,
		UnlockedAt:    ua.UnlockedAt,
	})
	if err != nil {
		return false, fmt.Errorf("failed to insert user achievement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}

type sqlxChallengeRepository struct {
	db *sqlx.DB
}

func NewSQLXChallengeRepository(db *sqlx.DB) domain.ChallengeRepository {
	return &sqlxChallengeRepository{db: db}
}

func (r *sqlxChallengeRepository) InsertCompletion(ctx context.Context, c *domain.ChallengeCompletion) (bool, error) {
	query := `INSERT INTO daily_challenge_completions (id, user_id, challenge_id, challenge_date, xp_earned, performance_score, completed_at)
	          VALUES (:id, :user_id, :challenge_id, :challenge_date, :xp_earned, :performance_score, :completed_at)
	          ON CONFLICT (user_id, challenge_id, challenge_date) DO NOTHING`

	if c.ID == "" {
		c.ID = util.NewULID()
	}
	if c.CompletedAt.IsZero() {
		c.CompletedAt = time.Now()
	}
	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, &models.ChallengeCompletion{
		ID:               c.ID,
		UserID:           c.UserID,
		ChallengeID:      c.ChallengeID,
		ChallengeDate:    util.DateOnly(c.ChallengeDate),
		XPEarned:         c.XPEarned,
		PerformanceScore: c.PerformanceScore,
		CompletedAt:      c.CompletedAt,
	})
	if err != nil {
		return false, fmt.Errorf("failed to insert challenge completion: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}

// ListCompletions returns completions with challenge_date in [from, to].
func (r *sqlxChallengeRepository) ListCompletions(ctx context.Context, userID string, from, to time.Time) ([]*domain.ChallengeCompletion, error) {
	var rows []models.ChallengeCompletion
	query := `SELECT id, user_id, challenge_id, challenge_date, xp_earned, performance_score, completed_at
	          FROM daily_challenge_completions
	          WHERE user_id = $1 AND challenge_date BETWEEN $2::date AND $3::date
	          ORDER BY challenge_date ASC, completed_at ASC`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, userID, util.DateOnly(from), util.DateOnly(to)); err != nil {
		return nil, fmt.Errorf("failed to list challenge completions: %w", err)
	}
	out := make([]*domain.ChallengeCompletion, 0, len(rows))
	for _, row := range rows {
		out = append(out, &domain.ChallengeCompletion{
			ID:               row.ID,
			UserID:           row.UserID,
			ChallengeID:      row.ChallengeID,
			ChallengeDate:    row.ChallengeDate,
			XPEarned:         row.XPEarned,
			PerformanceScore: row.PerformanceScore,
			CompletedAt:      row.CompletedAt,
		})
	}
	return out, nil
}

func (r *sqlxChallengeRepository) CountCompletions(ctx context.Context, userID string) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM daily_challenge_completions WHERE user_id = $1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &n, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count challenge completions: %w", err)
	}
	return n, nil
}

func (r *sqlxChallengeRepository) ClaimStreakBonus(ctx context.Context, userID string, runStartedOn time.Time) (bool, error) {
	query := `INSERT INTO streak_bonus_claims (user_id, streak_started_on) VALUES ($1, $2::date)
	          ON CONFLICT (user_id, streak_started_on) DO NOTHING`

	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, userID, util.DateOnly(runStartedOn))
	if err != nil {
		return false, fmt.Errorf("failed to claim streak bonus: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}

func (r *sqlxChallengeRepository) HasClaimedStreakBonus(ctx context.Context, userID string, runStartedOn time.Time) (bool, error) {
	var claimed bool
	query := `SELECT EXISTS (SELECT 1 FROM streak_bonus_claims WHERE user_id = $1 AND streak_started_on = $2::date)`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &claimed, query, userID, util.DateOnly(runStartedOn)); err != nil {
		return false, fmt.Errorf("failed to check streak bonus claim: %w", err)
	}
	return claimed, nil
}
