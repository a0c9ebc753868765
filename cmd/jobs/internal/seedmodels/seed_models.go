package seedmodels

import "pylearn/internal/domain"

// SeedLesson defines the structure for a lesson in the JSON seed file.
// Content uses the same JSON layout as the lessons.content column.
type SeedLesson struct {
	ID               string               `json:"id"`
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	Type             string               `json:"type"`
	Difficulty       string               `json:"difficulty"`
	XPReward         int                  `json:"xp_reward"`
	OrderIndex       int                  `json:"order_index"`
	EstimatedMinutes int                  `json:"estimated_minutes"`
	Hints            []string             `json:"hints"`
	Content          domain.LessonContent `json:"content"`
}

// SeedFile is the top-level document of a seed file.
type SeedFile struct {
	Lessons []SeedLesson `json:"lessons"`
}

func (s SeedLesson) ToDomain() *domain.Lesson {
	difficulty := s.Difficulty
	if difficulty == "" {
		difficulty = "beginner"
	}
	minutes := s.EstimatedMinutes
	if minutes <= 0 {
		minutes = 5
	}
	return &domain.Lesson{
		ID:               s.ID,
		Title:            s.Title,
		Description:      s.Description,
		Type:             domain.LessonType(s.Type),
		Difficulty:       difficulty,
		XPReward:         s.XPReward,
		OrderIndex:       s.OrderIndex,
		EstimatedMinutes: minutes,
		Hints:            s.Hints,
		Content:          s.Content,
	}
}
