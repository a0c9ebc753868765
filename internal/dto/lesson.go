package dto

import (
	"hash/fnv"
	"math/rand/v2"
	"slices"

	"pylearn/internal/domain"

	"github.com/samber/lo"
)

// LessonSummaryResponse is one entry of the lesson catalog.
// @Description Lesson catalog entry
type LessonSummaryResponse struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Type             string `json:"type"`
	Difficulty       string `json:"difficulty"`
	XPReward         int    `json:"xp_reward"`
	OrderIndex       int    `json:"order_index"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	HintCount        int    `json:"hint_count"`
}

// LessonResponse is a lesson with its answer data removed.
// @Description Lesson detail without answers
type LessonResponse struct {
	LessonSummaryResponse
	Content PublicLessonContent `json:"content"`
}

// PublicLessonContent mirrors domain.LessonContent minus every expected answer.
type PublicLessonContent struct {
	Question       string                 `json:"question,omitempty"`
	Options        []string               `json:"options,omitempty"`
	Questions      []PublicQuestion       `json:"questions,omitempty"`
	CodeBlocks     []domain.CodeBlock     `json:"code_blocks,omitempty"`
	StarterCode    string                 `json:"starter_code,omitempty"`
	ExpectedOutput string                 `json:"expected_output,omitempty"`
	TestInputs     []string               `json:"test_inputs,omitempty"`
	Challenges     []PublicStoryChallenge `json:"challenges,omitempty"`
	PuzzleSlots    int                    `json:"puzzle_slots,omitempty"`
}

type PublicQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
}

type PublicStoryChallenge struct {
	ID       string   `json:"id"`
	Scenario string   `json:"scenario"`
	Choices  []string `json:"choices"`
}

func NewLessonSummary(l *domain.Lesson) LessonSummaryResponse {
	return LessonSummaryResponse{
		ID:               l.ID,
		Title:            l.Title,
		Description:      l.Description,
		Type:             string(l.Type),
		Difficulty:       l.Difficulty,
		XPReward:         l.XPReward,
		OrderIndex:       l.OrderIndex,
		EstimatedMinutes: l.EstimatedMinutes,
		HintCount:        len(l.Hints),
	}
}

func NewLessonResponse(l *domain.Lesson) LessonResponse {
	c := l.Content
	return LessonResponse{
		LessonSummaryResponse: NewLessonSummary(l),
		Content: PublicLessonContent{
			Question: c.Question,
			Options:  c.Options,
			Questions: lo.Map(c.Questions, func(q domain.Question, _ int) PublicQuestion {
				return PublicQuestion{ID: q.ID, Question: q.Question, Options: q.Options}
			}),
			CodeBlocks:     scrambleBlocks(l.ID, c.CodeBlocks, c.CorrectOrder),
			StarterCode:    c.StarterCode,
			ExpectedOutput: c.ExpectedOutput,
			TestInputs:     lo.Map(c.TestCases, func(tc domain.TestCase, _ int) string { return tc.Input }),
			Challenges: lo.Map(c.Challenges, func(sc domain.StoryChallenge, _ int) PublicStoryChallenge {
				return PublicStoryChallenge{ID: sc.ID, Scenario: sc.Scenario, Choices: sc.Choices}
			}),
			PuzzleSlots: len(c.PuzzleAnswers),
		},
	}
}

// scrambleBlocks returns the blocks in a fixed per-lesson order that never
// matches correctOrder when there is more than one block.
func scrambleBlocks(lessonID string, blocks []domain.CodeBlock, correctOrder []string) []domain.CodeBlock {
	if len(blocks) == 0 {
		return nil
	}
	out := slices.Clone(blocks)
	if len(out) < 2 {
		return out
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(lessonID))
	seed := h.Sum64()
	r := rand.New(rand.NewPCG(seed, seed>>1))
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	ids := lo.Map(out, func(b domain.CodeBlock, _ int) string { return b.ID })
	if slices.Equal(ids, correctOrder) {
		out = append(out[1:], out[0])
	}
	return out
}

// ValidateLessonRequest carries an attempt. Which field is read depends on the lesson type.
// @Description Request body for validating a lesson attempt
type ValidateLessonRequest struct {
	Answer        string            `json:"answer,omitempty"`
	Answers       map[string]string `json:"answers,omitempty"`
	Code          string            `json:"code,omitempty"`
	Order         []string          `json:"order,omitempty"`
	StoryChoices  []int             `json:"story_choices,omitempty"`
	PuzzleAnswers []string          `json:"puzzle_answers,omitempty"`
}

// ValidationResponse is the outcome of a lesson attempt.
type ValidationResponse struct {
	IsCorrect bool   `json:"is_correct"`
	Feedback  string `json:"feedback"`
	Score     int    `json:"score"`
}

func NewValidationResponse(r *domain.ValidationResult) ValidationResponse {
	return ValidationResponse{IsCorrect: r.IsCorrect, Feedback: r.Feedback, Score: r.Score}
}

type HintRequest struct {
	Index int `json:"index"`
}

type HintResponse struct {
	Index int    `json:"index"`
	Hint  string `json:"hint"`
}

// CompleteLessonRequest reports the help used while solving.
// @Description Request body for completing a lesson
type CompleteLessonRequest struct {
	HintsUsed        int `json:"hints_used"`
	Attempts         int `json:"attempts"`
	TimeSpentSeconds int `json:"time_spent_seconds"`
}

type LessonCompletionResponse struct {
	LessonID         string                `json:"lesson_id"`
	XPAwarded        int                   `json:"xp_awarded"`
	HintsUsed        int                   `json:"hints_used"`
	PenaltyPercent   int                   `json:"penalty_percent"`
	TotalXP          int                   `json:"total_xp"`
	Level            int                   `json:"level"`
	League           string                `json:"league"`
	Promoted         bool                  `json:"promoted"`
	AlreadyCompleted bool                  `json:"already_completed"`
	CurrentStreak    int                   `json:"current_streak"`
	Unlocked         []AchievementResponse `json:"unlocked_achievements"`
}

func NewLessonCompletionResponse(c *domain.LessonCompletion) LessonCompletionResponse {
	return LessonCompletionResponse{
		LessonID:         c.LessonID,
		XPAwarded:        c.XPAwarded,
		HintsUsed:        c.HintsUsed,
		PenaltyPercent:   c.PenaltyPct,
		TotalXP:          c.TotalXP,
		Level:            c.Level,
		League:           string(c.League),
		Promoted:         c.Promoted,
		AlreadyCompleted: c.AlreadyDone,
		CurrentStreak:    c.CurrentStreak,
		Unlocked:         NewAchievementResponses(c.Unlocked),
	}
}
