package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pylearn/internal/domain"
	"pylearn/internal/repository/models"
	"pylearn/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const lessonColumns = `id, title, description, type, difficulty, xp_reward, order_index, estimated_minutes, hints, content, created_at, updated_at`

type sqlxLessonRepository struct {
	db *sqlx.DB
}

func NewSQLXLessonRepository(db *sqlx.DB) domain.LessonRepository {
	return &sqlxLessonRepository{db: db}
}

func toDomainLesson(m *models.Lesson) *domain.Lesson {
	if m == nil {
		return nil
	}
	return &domain.Lesson{
		ID:               m.ID,
		Title:            m.Title,
		Description:      m.Description,
		Type:             domain.LessonType(m.Type),
		Difficulty:       m.Difficulty,
		XPReward:         m.XPReward,
		OrderIndex:       m.OrderIndex,
		EstimatedMinutes: m.EstimatedMinutes,
		Hints:            []string(m.Hints),
		Content:          domain.LessonContent(m.Content),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (r *sqlxLessonRepository) ListLessons(ctx context.Context) ([]*domain.Lesson, error) {
	var rows []models.Lesson
	query := `SELECT ` + lessonColumns + ` FROM lessons ORDER BY order_index ASC, id ASC`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	out := make([]*domain.Lesson, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainLesson(&rows[i]))
	}
	return out, nil
}

func (r *sqlxLessonRepository) GetLessonByID(ctx context.Context, lessonID string) (*domain.Lesson, error) {
	var m models.Lesson
	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE id = $1`
	if err := r.db.GetContext(ctx, &m, query, lessonID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lesson by id: %w", err)
	}
	return toDomainLesson(&m), nil
}

func (r *sqlxLessonRepository) UpsertLesson(ctx context.Context, l *domain.Lesson) error {
	m := models.Lesson{
		ID:               l.ID,
		Title:            l.Title,
		Description:      l.Description,
		Type:             string(l.Type),
		Difficulty:       l.Difficulty,
		XPReward:         l.XPReward,
		OrderIndex:       l.OrderIndex,
		EstimatedMinutes: l.EstimatedMinutes,
		Hints:            pq.StringArray(l.Hints),
		Content:          models.LessonContent(l.Content),
	}
	if m.Hints == nil {
		m.Hints = pq.StringArray{}
	}
	query := `INSERT INTO lessons (id, title, description, type, difficulty, xp_reward, order_index, estimated_minutes, hints, content)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			type = EXCLUDED.type,
			difficulty = EXCLUDED.difficulty,
			xp_reward = EXCLUDED.xp_reward,
			order_index = EXCLUDED.order_index,
			estimated_minutes = EXCLUDED.estimated_minutes,
			hints = EXCLUDED.hints,
			content = EXCLUDED.content,
			updated_at = now()`
	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		m.ID, m.Title, m.Description, m.Type, m.Difficulty, m.XPReward, m.OrderIndex, m.EstimatedMinutes, m.Hints, m.Content)
	if err != nil {
		return fmt.Errorf("failed to upsert lesson %s: %w", l.ID, err)
	}
	return nil
}

const progressColumns = `user_id, lesson_id, status, attempts, hints_used, best_score, passed, xp_earned, started_at, completed_at`

type sqlxProgressRepository struct {
	db *sqlx.DB
}

func NewSQLXProgressRepository(db *sqlx.DB) domain.ProgressRepository {
	return &sqlxProgressRepository{db: db}
}

func toDomainProgress(m *models.LessonProgress) *domain.LessonProgress {
	if m == nil {
		return nil
	}
	return &domain.LessonProgress{
		UserID:      m.UserID,
		LessonID:    m.LessonID,
		Status:      m.Status,
		Attempts:    m.Attempts,
		HintsUsed:   m.HintsUsed,
		BestScore:   m.BestScore,
		Passed:      m.Passed,
		XPEarned:    m.XPEarned,
		StartedAt:   m.StartedAt,
		CompletedAt: util.NullTimeToPtr(m.CompletedAt),
	}
}

func (r *sqlxProgressRepository) GetProgress(ctx context.Context, userID, lessonID string) (*domain.LessonProgress, error) {
	var m models.LessonProgress
	query := `SELECT ` + progressColumns + ` FROM user_lesson_progress WHERE user_id = $1 AND lesson_id = $2`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, userID, lessonID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lesson progress: %w", err)
	}
	return toDomainProgress(&m), nil
}

func (r *sqlxProgressRepository) RecordAttempt(ctx context.Context, userID, lessonID string, score int, passed bool) (*domain.LessonProgress, error) {
	query := `INSERT INTO user_lesson_progress (user_id, lesson_id, status, attempts, best_score, passed)
	          VALUES ($1, $2, 'in_progress', 1, $3, $4)
	          ON CONFLICT (user_id, lesson_id) DO UPDATE SET
	              attempts = user_lesson_progress.attempts + 1,
	              best_score = GREATEST(user_lesson_progress.best_score, EXCLUDED.best_score),
	              passed = user_lesson_progress.passed OR EXCLUDED.passed
	          RETURNING ` + progressColumns

	var m models.LessonProgress
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, userID, lessonID, score, passed); err != nil {
		return nil, fmt.Errorf("failed to record lesson attempt: %w", err)
	}
	return toDomainProgress(&m), nil
}

func (r *sqlxProgressRepository) RecordHint(ctx context.Context, userID, lessonID string, index int) (int, error) {
	query := `INSERT INTO user_lesson_progress (user_id, lesson_id, status, hints_used)
	          VALUES ($1, $2, 'in_progress', $3)
	          ON CONFLICT (user_id, lesson_id) DO UPDATE SET
	              hints_used = GREATEST(user_lesson_progress.hints_used, EXCLUDED.hints_used)
	          RETURNING hints_used`

	var hints int
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &hints, query, userID, lessonID, index+1); err != nil {
		return 0, fmt.Errorf("failed to record hint: %w", err)
	}
	return hints, nil
}

// MarkCompleted flips the row to completed exactly once.
func (r *sqlxProgressRepository) MarkCompleted(ctx context.Context, userID, lessonID string, xpEarned int) (bool, error) {
	query := `INSERT INTO user_lesson_progress (user_id, lesson_id, status, xp_earned, completed_at)
	          VALUES ($1, $2, 'completed', $3, now())
	          ON CONFLICT (user_id, lesson_id) DO UPDATE SET
	              status = 'completed',
	              xp_earned = EXCLUDED.xp_earned,
	              completed_at = EXCLUDED.completed_at
	          WHERE user_lesson_progress.status <> 'completed'`

	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, userID, lessonID, xpEarned)
	if err != nil {
		return false, fmt.Errorf("failed to mark lesson completed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}

func (r *sqlxProgressRepository) RecordCodeAttempt(ctx context.Context, userID, lessonID string, passed bool) error {
	query := `INSERT INTO user_code_attempts (user_id, lesson_id, passed) VALUES ($1, $2, $3)`
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, userID, lessonID, passed); err != nil {
		return fmt.Errorf("failed to record code attempt: %w", err)
	}
	return nil
}

func (r *sqlxProgressRepository) count(ctx context.Context, what, query string, args ...interface{}) (int, error) {
	var n int
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &n, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", what, err)
	}
	return n, nil
}

func (r *sqlxProgressRepository) CountCompleted(ctx context.Context, userID string) (int, error) {
	return r.count(ctx, "completed lessons",
		`SELECT COUNT(*) FROM user_lesson_progress WHERE user_id = $1 AND status = 'completed'`, userID)
}

func (r *sqlxProgressRepository) CountPerfect(ctx context.Context, userID string) (int, error) {
	return r.count(ctx, "perfect lessons",
		`SELECT COUNT(*) FROM user_lesson_progress WHERE user_id = $1 AND best_score = 100`, userID)
}

// CountPassedCodeAttempts counts distinct lessons with at least one passing run.
func (r *sqlxProgressRepository) CountPassedCodeAttempts(ctx context.Context, userID string) (int, error) {
	return r.count(ctx, "passed code attempts",
		`SELECT COUNT(DISTINCT lesson_id) FROM user_code_attempts WHERE user_id = $1 AND passed`, userID)
}
