// Package scoring decides whether a lesson attempt is correct and how many
// points it earns. Nothing here touches storage; callers persist the result.
package scoring

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"pylearn/internal/domain"
)

const (
	// PassingScore is the minimum score for a code attempt to count as correct.
	PassingScore = 80
	// StoryCompletionScore is the floor for a story played through to the end.
	StoryCompletionScore = 50

	feedbackEmpty       = "Please provide your answer before validating."
	expectedPreviewSize = 50
)

// Validator checks attempts for every lesson type.
type Validator struct {
	executor domain.CodeExecutor
}

func NewValidator(executor domain.CodeExecutor) *Validator {
	return &Validator{executor: executor}
}

// Validate dispatches on the lesson type. It never returns an error: execution
// failures become a failed result with a descriptive feedback message.
func (v *Validator) Validate(ctx context.Context, lesson *domain.Lesson, attempt domain.LessonAttempt) domain.ValidationResult {
	content := lesson.Content
	switch lesson.Type {
	case domain.LessonTypeMultipleChoice:
		if len(content.Questions) > 0 {
			return ValidateQuestionSet(content.Questions, attempt.Answers)
		}
		return ValidateMultipleChoice(attempt.Answer, content.CorrectAnswer)
	case domain.LessonTypeDragDrop:
		return ValidateDragDrop(attempt.Order, content)
	case domain.LessonTypeCode:
		return v.ValidateCode(ctx, attempt.Code, content)
	case domain.LessonTypeStory:
		return ValidateStory(attempt.StoryChoices, content.Challenges)
	case domain.LessonTypePuzzle:
		return ValidatePuzzle(attempt.PuzzleAnswers, content.PuzzleAnswers)
	default:
		return domain.ValidationResult{Feedback: fmt.Sprintf("Lesson type %q cannot be validated.", lesson.Type)}
	}
}

func emptyAnswer() domain.ValidationResult {
	return domain.ValidationResult{Feedback: feedbackEmpty}
}

func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}

// ValidateMultipleChoice is the simple single-answer path: 100 or 0.
func ValidateMultipleChoice(selected, correct string) domain.ValidationResult {
	if strings.TrimSpace(selected) == "" {
		return emptyAnswer()
	}
	if selected == correct {
		return domain.ValidationResult{IsCorrect: true, Score: 100, Feedback: "Correct! Well done."}
	}
	return domain.ValidationResult{
		Score:    0,
		Feedback: fmt.Sprintf("Not quite. The correct answer is %s.", correct),
	}
}

// ValidateQuestionSet gives proportional credit across several questions.
func ValidateQuestionSet(questions []domain.Question, answers map[string]string) domain.ValidationResult {
	if len(answers) == 0 {
		return emptyAnswer()
	}
	correct := 0
	for _, q := range questions {
		if a, ok := answers[q.ID]; ok && a == q.CorrectAnswer {
			correct++
		}
	}
	total := len(questions)
	if correct == total {
		return domain.ValidationResult{IsCorrect: true, Score: 100, Feedback: "Perfect! All answers are correct."}
	}
	return domain.ValidationResult{
		Score:    percent(correct, total),
		Feedback: fmt.Sprintf("You got %d out of %d correct. Review the explanations for the questions you missed.", correct, total),
	}
}

// ValidateDragDrop requires the exact correct order; otherwise it reports the
// first wrong position and a similarity-based partial score.
func ValidateDragDrop(order []string, content domain.LessonContent) domain.ValidationResult {
	if len(order) == 0 {
		return emptyAnswer()
	}
	if slices.Equal(order, content.CorrectOrder) {
		return domain.ValidationResult{
			IsCorrect: true,
			Score:     100,
			Feedback:  "Perfect! You arranged the code blocks in the correct order.",
		}
	}

	code := make(map[string]string, len(content.CodeBlocks))
	for _, b := range content.CodeBlocks {
		code[b.ID] = b.Code
	}

	candidates := make([]string, 0, 1+len(content.AlternativeOrders))
	candidates = append(candidates, joinBlocks(content.CorrectOrder, code))
	for _, alt := range content.AlternativeOrders {
		candidates = append(candidates, joinBlocks(alt, code))
	}

	return domain.ValidationResult{
		Score:    PartialScore(joinBlocks(order, code), candidates),
		Feedback: dragDropMismatch(order, content.CorrectOrder, code),
	}
}

// FirstMismatch returns the 1-based position of the first differing element, or 0 if equal.
func FirstMismatch(got, want []string) int {
	n := max(len(got), len(want))
	for i := 0; i < n; i++ {
		if i >= len(got) || i >= len(want) || got[i] != want[i] {
			return i + 1
		}
	}
	return 0
}

func dragDropMismatch(order, correct []string, code map[string]string) string {
	pos := FirstMismatch(order, correct)
	if pos > len(correct) {
		return fmt.Sprintf("Not quite right. The block at position %d is incorrect. Expected: no block here.", pos)
	}
	preview := code[correct[pos-1]]
	if r := []rune(preview); len(r) > expectedPreviewSize {
		preview = string(r[:expectedPreviewSize])
	}
	return fmt.Sprintf("Not quite right. The block at position %d is incorrect. Expected: %q...", pos, preview)
}

// ValidateCode runs the code through the executor and compares either the
// trimmed output or the test-case pass ratio.
func (v *Validator) ValidateCode(ctx context.Context, code string, content domain.LessonContent) domain.ValidationResult {
	if strings.TrimSpace(code) == "" {
		return emptyAnswer()
	}

	var tests []domain.TestCase
	if content.ExpectedOutput == "" {
		tests = content.TestCases
	}

	result, err := v.executor.Execute(ctx, code, tests)
	if err != nil {
		return executionFailed(err.Error())
	}
	if !result.Success && result.Error != "" && len(result.TestResults) == 0 {
		return executionFailed(result.Error)
	}

	if content.ExpectedOutput != "" {
		expected := strings.TrimSpace(content.ExpectedOutput)
		actual := strings.TrimSpace(result.Output)
		if expected == actual {
			return domain.ValidationResult{IsCorrect: true, Score: 100, Feedback: "Excellent! Your code produces the expected output."}
		}
		return domain.ValidationResult{
			Score:    0,
			Feedback: fmt.Sprintf("Your code output is incorrect. Expected: %q, Got: %q", expected, actual),
		}
	}

	total := len(result.TestResults)
	if total == 0 {
		return domain.ValidationResult{IsCorrect: true, Score: 100, Feedback: "Code executed successfully."}
	}
	passed := result.PassedCount()
	score := percent(passed, total)
	res := domain.ValidationResult{IsCorrect: score >= PassingScore, Score: score}
	if passed == total {
		res.Feedback = "Excellent! Your code passes all the test cases."
	} else {
		res.Feedback = fmt.Sprintf("Your code passes %d out of %d test cases. Keep trying!", passed, total)
	}
	return res
}

func executionFailed(msg string) domain.ValidationResult {
	return domain.ValidationResult{Score: 0, Feedback: "Error executing code: " + msg}
}

// ValidateStory compares each choice with the challenge's correct choice. A
// story played through to the end earns at least StoryCompletionScore.
func ValidateStory(choices []int, challenges []domain.StoryChallenge) domain.ValidationResult {
	if len(choices) == 0 {
		return emptyAnswer()
	}
	total := len(challenges)
	correct := 0
	completed := len(choices) >= total
	for i, ch := range challenges {
		if i >= len(choices) || choices[i] < 0 {
			completed = false
			continue
		}
		if choices[i] == ch.CorrectChoice {
			correct++
		}
	}

	if total > 0 && correct == total {
		return domain.ValidationResult{IsCorrect: true, Score: 100, Feedback: "Amazing! You made all the right choices in the story."}
	}

	score := percent(correct, total)
	if completed && score < StoryCompletionScore {
		score = StoryCompletionScore
	}
	return domain.ValidationResult{
		Score:    score,
		Feedback: fmt.Sprintf("You made %d correct choices out of %d. Think about the Python concepts involved and try again!", correct, total),
	}
}

// ValidatePuzzle is all-or-nothing.
func ValidatePuzzle(answers, expected []string) domain.ValidationResult {
	if len(answers) == 0 {
		return emptyAnswer()
	}
	correct := 0
	for i, want := range expected {
		if i < len(answers) && strings.TrimSpace(answers[i]) == strings.TrimSpace(want) {
			correct++
		}
	}
	if correct == len(expected) && len(answers) == len(expected) {
		return domain.ValidationResult{IsCorrect: true, Score: 100, Feedback: "Perfect! You solved the puzzle."}
	}
	return domain.ValidationResult{
		Score:    0,
		Feedback: fmt.Sprintf("Not quite. %d of %d pieces are in the right place. Try again!", correct, len(expected)),
	}
}
