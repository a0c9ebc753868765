package models

import (
	"database/sql"
	"time"
)

// Profile maps the profiles table.
type Profile struct {
	ID             string         `db:"id"`
	Username       string         `db:"username"`
	DisplayName    sql.NullString `db:"display_name"`
	AvatarURL      sql.NullString `db:"avatar_url"`
	TotalXP        int            `db:"total_xp"`
	CurrentStreak  int            `db:"current_streak"`
	LongestStreak  int            `db:"longest_streak"`
	LastActiveDate sql.NullTime   `db:"last_active_date"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

// WeeklyEntry is one aggregated row of a week's XP.
type WeeklyEntry struct {
	WeekStart time.Time `db:"week_start"`
	UserID    string    `db:"user_id"`
	Username  string    `db:"username"`
	WeeklyXP  int       `db:"weekly_xp"`
	Rank      int       `db:"rank"`
}
