package domain

import (
	"context"
	"time"
)

// LessonType is the interaction modality of a lesson.
type LessonType string

const (
	LessonTypeMultipleChoice LessonType = "multiple_choice"
	LessonTypeCode           LessonType = "code"
	LessonTypeDragDrop       LessonType = "drag_drop"
	LessonTypePuzzle         LessonType = "puzzle"
	LessonTypeStory          LessonType = "story"
)

func (t LessonType) Valid() bool {
	switch t {
	case LessonTypeMultipleChoice, LessonTypeCode, LessonTypeDragDrop, LessonTypePuzzle, LessonTypeStory:
		return true
	}
	return false
}

// Lesson is a catalog entry together with its expected-answer data.
type Lesson struct {
	ID               string
	Title            string
	Description      string
	Type             LessonType
	Difficulty       string
	XPReward         int
	OrderIndex       int
	EstimatedMinutes int
	Hints            []string
	Content          LessonContent
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// LessonContent is stored as JSON alongside the lesson. Which fields are
// populated depends on the lesson type.
type LessonContent struct {
	Question          string           `json:"question,omitempty"`
	Options           []string         `json:"options,omitempty"`
	CorrectAnswer     string           `json:"correct_answer,omitempty"`
	Explanation       string           `json:"explanation,omitempty"`
	Questions         []Question       `json:"questions,omitempty"`
	CodeBlocks        []CodeBlock      `json:"code_blocks,omitempty"`
	CorrectOrder      []string         `json:"correct_order,omitempty"`
	AlternativeOrders [][]string       `json:"alternative_orders,omitempty"`
	StarterCode       string           `json:"starter_code,omitempty"`
	ExpectedOutput    string           `json:"expected_output,omitempty"`
	TestCases         []TestCase       `json:"test_cases,omitempty"`
	Challenges        []StoryChallenge `json:"challenges,omitempty"`
	PuzzleAnswers     []string         `json:"puzzle_answers,omitempty"`
}

type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

type CodeBlock struct {
	ID   string `json:"id"`
	Code string `json:"code"`
}

type StoryChallenge struct {
	ID            string   `json:"id"`
	Scenario      string   `json:"scenario"`
	Choices       []string `json:"choices"`
	CorrectChoice int      `json:"correct_choice"`
	Explanation   string   `json:"explanation,omitempty"`
}

// TestCase is a single input/expected-output pair for code exercises.
type TestCase struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
}

// LessonAttempt is the learner's input for one validation request.
type LessonAttempt struct {
	Answer        string
	Answers       map[string]string
	Code          string
	Order         []string
	StoryChoices  []int
	PuzzleAnswers []string
	HintsUsed     int
	Attempts      int
	Elapsed       time.Duration
}

// ValidationResult is the outcome of checking an attempt. Score is 0..100.
type ValidationResult struct {
	IsCorrect bool
	Feedback  string
	Score     int
}

const (
	ProgressStatusInProgress = "in_progress"
	ProgressStatusCompleted  = "completed"
)

// LessonProgress is the durable completion record for a (user, lesson) pair.
type LessonProgress struct {
	UserID      string
	LessonID    string
	Status      string
	Attempts    int
	HintsUsed   int
	BestScore   int
	Passed      bool // latched once any attempt is fully correct
	XPEarned    int
	StartedAt   time.Time
	CompletedAt *time.Time
}

func (p *LessonProgress) Completed() bool {
	return p != nil && p.Status == ProgressStatusCompleted
}

// LessonCompletion is returned after a lesson is completed.
type LessonCompletion struct {
	LessonID      string
	XPAwarded     int
	HintsUsed     int
	PenaltyPct    int
	TotalXP       int
	Level         int
	League        League
	Promoted      bool
	AlreadyDone   bool
	CurrentStreak int
	Unlocked      []*Achievement
}

type LessonRepository interface {
	ListLessons(ctx context.Context) ([]*Lesson, error)
	GetLessonByID(ctx context.Context, lessonID string) (*Lesson, error)
	// UpsertLesson inserts l or replaces the stored lesson with the same id.
	UpsertLesson(ctx context.Context, l *Lesson) error
}

type ProgressRepository interface {
	GetProgress(ctx context.Context, userID, lessonID string) (*LessonProgress, error)
	// RecordAttempt increments attempts, keeps the best score and latches passed.
	RecordAttempt(ctx context.Context, userID, lessonID string, score int, passed bool) (*LessonProgress, error)
	// RecordHint raises hints_used to index+1. Re-reading a revealed hint is free.
	RecordHint(ctx context.Context, userID, lessonID string, index int) (int, error)
	// MarkCompleted returns false when the lesson was already completed.
	MarkCompleted(ctx context.Context, userID, lessonID string, xpEarned int) (bool, error)
	RecordCodeAttempt(ctx context.Context, userID, lessonID string, passed bool) error
	CountCompleted(ctx context.Context, userID string) (int, error)
	CountPerfect(ctx context.Context, userID string) (int, error)
	CountPassedCodeAttempts(ctx context.Context, userID string) (int, error)
}
