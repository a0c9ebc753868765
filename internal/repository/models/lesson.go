package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type Lesson struct {
	ID               string         `db:"id"`
	Title            string         `db:"title"`
	Description      string         `db:"description"`
	Type             string         `db:"type"`
	Difficulty       string         `db:"difficulty"`
	XPReward         int            `db:"xp_reward"`
	OrderIndex       int            `db:"order_index"`
	EstimatedMinutes int            `db:"estimated_minutes"`
	Hints            pq.StringArray `db:"hints"`
	Content          LessonContent  `db:"content"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

// LessonProgress maps user_lesson_progress.
type LessonProgress struct {
	UserID      string       `db:"user_id"`
	LessonID    string       `db:"lesson_id"`
	Status      string       `db:"status"`
	Attempts    int          `db:"attempts"`
	HintsUsed   int          `db:"hints_used"`
	BestScore   int          `db:"best_score"`
	Passed      bool         `db:"passed"`
	XPEarned    int          `db:"xp_earned"`
	StartedAt   time.Time    `db:"started_at"`
	CompletedAt sql.NullTime `db:"completed_at"`
}
