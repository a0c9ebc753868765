package dto

import (
	"encoding/json"
	"testing"

	"pylearn/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLessonResponse_HidesAnswers(t *testing.T) {
	lesson := &domain.Lesson{
		ID:    "mixed",
		Type:  domain.LessonTypeStory,
		Hints: []string{"one", "two"},
		Content: domain.LessonContent{
			Question:      "Pick one",
			Options:       []string{"a", "b"},
			CorrectAnswer: "SECRET-ANSWER",
			Questions:     []domain.Question{{ID: "q1", Question: "?", CorrectAnswer: "SECRET-Q", Explanation: "SECRET-EXPL"}},
			CorrectOrder:  []string{"SECRET-ORDER"},
			TestCases:     []domain.TestCase{{Input: "2", Expected: "SECRET-TC"}},
			Challenges:    []domain.StoryChallenge{{ID: "c1", Scenario: "bug", Choices: []string{"x", "y"}, CorrectChoice: 1, Explanation: "SECRET-STORY"}},
			PuzzleAnswers: []string{"SECRET-P1", "SECRET-P2"},
		},
	}

	resp := NewLessonResponse(lesson)
	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "SECRET")
	assert.NotContains(t, string(raw), "correct_choice")
	assert.Equal(t, 2, resp.HintCount)
	assert.Equal(t, 2, resp.Content.PuzzleSlots)
	assert.Equal(t, []string{"2"}, resp.Content.TestInputs)
	assert.Equal(t, "q1", resp.Content.Questions[0].ID)
}

func TestNewLessonResponse_ScramblesDragDropBlocks(t *testing.T) {
	lesson := &domain.Lesson{
		ID:   "loops-order",
		Type: domain.LessonTypeDragDrop,
		Content: domain.LessonContent{
			CodeBlocks: []domain.CodeBlock{
				{ID: "b1", Code: "total = 0"},
				{ID: "b2", Code: "for n in nums:"},
				{ID: "b3", Code: "    total += n"},
				{ID: "b4", Code: "print(total)"},
			},
			CorrectOrder: []string{"b1", "b2", "b3", "b4"},
		},
	}

	blockIDs := func(r LessonResponse) []string {
		ids := make([]string, 0, len(r.Content.CodeBlocks))
		for _, b := range r.Content.CodeBlocks {
			ids = append(ids, b.ID)
		}
		return ids
	}

	first := blockIDs(NewLessonResponse(lesson))
	assert.NotEqual(t, lesson.Content.CorrectOrder, first)
	assert.ElementsMatch(t, lesson.Content.CorrectOrder, first)
	assert.Equal(t, first, blockIDs(NewLessonResponse(lesson)), "order is stable per lesson")
	assert.Equal(t, "b1", lesson.Content.CodeBlocks[0].ID, "stored content is untouched")
}

func TestScrambleBlocks_NeverMatchesCorrectOrder(t *testing.T) {
	blocks := []domain.CodeBlock{{ID: "a"}, {ID: "b"}}
	correct := []string{"a", "b"}
	for _, id := range []string{"l1", "l2", "l3", "l4", "l5", "l6", "l7", "l8"} {
		got := scrambleBlocks(id, blocks, correct)
		assert.Equal(t, []domain.CodeBlock{{ID: "b"}, {ID: "a"}}, got, "lesson %s", id)
	}

	assert.Nil(t, scrambleBlocks("x", nil, nil))
	assert.Equal(t, []domain.CodeBlock{{ID: "only"}}, scrambleBlocks("x", []domain.CodeBlock{{ID: "only"}}, []string{"only"}))
}
