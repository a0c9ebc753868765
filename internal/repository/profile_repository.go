package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pylearn/internal/domain"
	"pylearn/internal/repository/models"
	"pylearn/internal/util"

	"github.com/jmoiron/sqlx"
)

const profileColumns = `id, username, display_name, avatar_url, total_xp, current_streak, longest_streak, last_active_date, created_at, updated_at`

type sqlxProfileRepository struct {
	db *sqlx.DB
}

func NewSQLXProfileRepository(db *sqlx.DB) domain.ProfileRepository {
	return &sqlxProfileRepository{db: db}
}

func toDomainProfile(m *models.Profile) *domain.Profile {
	if m == nil {
		return nil
	}
	return &domain.Profile{
		ID:             m.ID,
		Username:       m.Username,
		DisplayName:    m.DisplayName.String,
		AvatarURL:      m.AvatarURL.String,
		TotalXP:        m.TotalXP,
		CurrentStreak:  m.CurrentStreak,
		LongestStreak:  m.LongestStreak,
		LastActiveDate: util.NullTimeToPtr(m.LastActiveDate),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func fromDomainProfile(p *domain.Profile) *models.Profile {
	if p == nil {
		return nil
	}
	return &models.Profile{
		ID:             p.ID,
		Username:       p.Username,
		DisplayName:    util.StringToNullString(p.DisplayName),
		AvatarURL:      util.StringToNullString(p.AvatarURL),
		TotalXP:        p.TotalXP,
		CurrentStreak:  p.CurrentStreak,
		LongestStreak:  p.LongestStreak,
		LastActiveDate: util.TimePtrToNullTime(p.LastActiveDate),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (r *sqlxProfileRepository) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	query := `INSERT INTO profiles (` + profileColumns + `)
	          VALUES (:id, :username, :display_name, :avatar_url, :total_xp, :current_streak, :longest_streak, :last_active_date, :created_at, :updated_at)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainProfile(profile)); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *sqlxProfileRepository) GetProfileByID(ctx context.Context, userID string) (*domain.Profile, error) {
	var m models.Profile
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile by id: %w", err)
	}
	return toDomainProfile(&m), nil
}

// IncrementXP updates the counter and writes the audit row in one statement,
// so concurrent awards never overwrite each other.
func (r *sqlxProfileRepository) IncrementXP(ctx context.Context, event domain.XPEvent) (*domain.XPAward, error) {
	query := `WITH updated AS (
	              UPDATE profiles SET total_xp = total_xp + $2, updated_at = now()
	              WHERE id = $1
	              RETURNING id, total_xp
	          ), audit AS (
	              INSERT INTO xp_events (user_id, source, source_id, amount)
	              SELECT id, $3, $4, $2 FROM updated
	          )
	          SELECT total_xp - $2 AS old_xp, total_xp AS new_xp FROM updated`

	var row struct {
		OldXP int `db:"old_xp"`
		NewXP int `db:"new_xp"`
	}
	err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, event.UserID, event.Amount, event.Source, event.SourceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to increment xp: %w", err)
	}
	return &domain.XPAward{UserID: event.UserID, OldXP: row.OldXP, NewXP: row.NewXP}, nil
}

// TouchActivity extends the streak when day follows the last active date,
// keeps it on a repeat visit and restarts it after a gap.
func (r *sqlxProfileRepository) TouchActivity(ctx context.Context, userID string, day time.Time) (*domain.StreakUpdate, error) {
	query := `UPDATE profiles SET
	              current_streak = CASE
	                  WHEN last_active_date >= $2::date THEN current_streak
	                  WHEN last_active_date = $2::date - 1 THEN current_streak + 1
	                  ELSE 1 END,
	              longest_streak = GREATEST(longest_streak, CASE
	                  WHEN last_active_date >= $2::date THEN current_streak
	                  WHEN last_active_date = $2::date - 1 THEN current_streak + 1
	                  ELSE 1 END),
	              last_active_date = GREATEST(COALESCE(last_active_date, $2::date), $2::date),
	              updated_at = now()
	          WHERE id = $1
	          RETURNING current_streak, longest_streak, last_active_date`

	var row struct {
		CurrentStreak  int       `db:"current_streak"`
		LongestStreak  int       `db:"longest_streak"`
		LastActiveDate time.Time `db:"last_active_date"`
	}
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, userID, util.DateOnly(day)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to touch activity: %w", err)
	}
	return &domain.StreakUpdate{
		CurrentStreak:  row.CurrentStreak,
		LongestStreak:  row.LongestStreak,
		LastActiveDate: row.LastActiveDate,
	}, nil
}

// CountRankInLeague ranks within [minXP, maxXP); a negative maxXP is unbounded.
func (r *sqlxProfileRepository) CountRankInLeague(ctx context.Context, userID string, minXP, maxXP int) (int, int, error) {
	query := `SELECT
	              (SELECT COUNT(*) FROM profiles o
	                WHERE o.total_xp > p.total_xp
	                  AND o.total_xp >= $2 AND ($3::int < 0 OR o.total_xp < $3)) + 1 AS rank,
	              (SELECT COUNT(*) FROM profiles o
	                WHERE o.total_xp >= $2 AND ($3::int < 0 OR o.total_xp < $3)) AS total
	          FROM profiles p
	          WHERE p.id = $1`

	var row struct {
		Rank  int `db:"rank"`
		Total int `db:"total"`
	}
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, userID, minXP, maxXP); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("failed to count league rank: %w", err)
	}
	return row.Rank, row.Total, nil
}

func (r *sqlxProfileRepository) ListTopByXP(ctx context.Context, minXP, maxXP int, limit int) ([]*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles
	          WHERE total_xp >= $1 AND ($2::int < 0 OR total_xp < $2)
	          ORDER BY total_xp DESC, username ASC
	          LIMIT $3`

	var rows []models.Profile
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, minXP, maxXP, limit); err != nil {
		return nil, fmt.Errorf("failed to list top profiles: %w", err)
	}
	out := make([]*domain.Profile, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainProfile(&rows[i]))
	}
	return out, nil
}

func (r *sqlxProfileRepository) ResetInactiveStreaks(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `UPDATE profiles SET current_streak = 0, updated_at = now()
	          WHERE current_streak > 0 AND (last_active_date IS NULL OR last_active_date < $1::date)`

	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, util.DateOnly(cutoff))
	if err != nil {
		return 0, fmt.Errorf("failed to reset inactive streaks: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

type sqlxLeaderboardRepository struct {
	db *sqlx.DB
}

func NewSQLXLeaderboardRepository(db *sqlx.DB) domain.LeaderboardRepository {
	return &sqlxLeaderboardRepository{db: db}
}

// SumWeeklyXP ranks users by XP earned in [from, to). Earlier weekly rewards are excluded.
func (r *sqlxLeaderboardRepository) SumWeeklyXP(ctx context.Context, from, to time.Time) ([]*domain.WeeklyEntry, error) {
	query := `SELECT $1::date AS week_start, e.user_id, p.username,
	                 SUM(e.amount)::int AS weekly_xp,
	                 RANK() OVER (ORDER BY SUM(e.amount) DESC)::int AS rank
	          FROM xp_events e
	          JOIN profiles p ON p.id = e.user_id
	          WHERE e.created_at >= $1 AND e.created_at < $2 AND e.source <> $3
	          GROUP BY e.user_id, p.username
	          ORDER BY weekly_xp DESC, p.username ASC`

	var rows []models.WeeklyEntry
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, from, to, domain.XPSourceWeeklyReward); err != nil {
		return nil, fmt.Errorf("failed to sum weekly xp: %w", err)
	}
	out := make([]*domain.WeeklyEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, &domain.WeeklyEntry{
			WeekStart: row.WeekStart,
			UserID:    row.UserID,
			Username:  row.Username,
			WeeklyXP:  row.WeeklyXP,
			Rank:      row.Rank,
		})
	}
	return out, nil
}

func (r *sqlxLeaderboardRepository) SaveWeekly(ctx context.Context, weekStart time.Time, entries []*domain.WeeklyEntry) error {
	query := `INSERT INTO weekly_leaderboards (week_start, user_id, weekly_xp, rank)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (week_start, user_id) DO UPDATE SET weekly_xp = EXCLUDED.weekly_xp, rank = EXCLUDED.rank`

	exec := GetExecutor(ctx, r.db)
	for _, e := range entries {
		if _, err := exec.ExecContext(ctx, query, util.DateOnly(weekStart), e.UserID, e.WeeklyXP, e.Rank); err != nil {
			return fmt.Errorf("failed to save weekly leaderboard for user %s: %w", e.UserID, err)
		}
	}
	return nil
}
