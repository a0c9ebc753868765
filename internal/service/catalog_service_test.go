package service

import (
	"context"
	"errors"
	"testing"

	"pylearn/internal/cache"
	"pylearn/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func importableLessons() []*domain.Lesson {
	return []*domain.Lesson{
		{
			ID: "variables-101", Title: "Variables", Type: domain.LessonTypeMultipleChoice, XPReward: 50,
			Content: domain.LessonContent{Question: "Pick one", CorrectAnswer: "x = 5"},
		},
		{
			ID: "loops-order", Title: "Build a Loop", Type: domain.LessonTypeDragDrop, XPReward: 80,
			Content: domain.LessonContent{CorrectOrder: []string{"b1", "b2"}},
		},
	}
}

func TestCatalogService_ImportLessons(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLessonRepository)
	c := new(MockCache)
	tx := &fakeTxManager{}
	svc := NewCatalogService(repo, tx, c)

	lessons := importableLessons()
	repo.On("UpsertLesson", ctx, lessons[0]).Return(nil).Once()
	repo.On("UpsertLesson", ctx, lessons[1]).Return(nil).Once()
	c.On("Delete", ctx, cache.LessonKey("variables-101")).Return(nil).Once()
	c.On("Delete", ctx, cache.LessonKey("loops-order")).Return(nil).Once()
	c.On("Delete", ctx, cache.LessonCatalogKey()).Return(nil).Once()

	n, err := svc.ImportLessons(ctx, lessons)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, tx.calls)
	repo.AssertExpectations(t)
	c.AssertExpectations(t)
}

func TestCatalogService_ImportLessons_Rejects(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(ls []*domain.Lesson) []*domain.Lesson
	}{
		{"empty", func(ls []*domain.Lesson) []*domain.Lesson { return nil }},
		{"missing id", func(ls []*domain.Lesson) []*domain.Lesson { ls[0].ID = ""; return ls }},
		{"bad type", func(ls []*domain.Lesson) []*domain.Lesson { ls[0].Type = "video"; return ls }},
		{"duplicate", func(ls []*domain.Lesson) []*domain.Lesson { ls[1].ID = ls[0].ID; return ls }},
		{"drag drop without order", func(ls []*domain.Lesson) []*domain.Lesson {
			ls[1].Content.CorrectOrder = nil
			return ls
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockLessonRepository)
			tx := &fakeTxManager{}
			svc := NewCatalogService(repo, tx, nil)

			_, err := svc.ImportLessons(ctx, tt.mutate(importableLessons()))
			assert.ErrorIs(t, err, domain.NewInvalidInputError(""))
			assert.Zero(t, tx.calls)
			repo.AssertNotCalled(t, "UpsertLesson", mock.Anything, mock.Anything)
		})
	}
}

func TestCatalogService_ImportLessons_RepoError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLessonRepository)
	svc := NewCatalogService(repo, &fakeTxManager{}, nil)

	repo.On("UpsertLesson", ctx, mock.Anything).Return(errors.New("db down")).Once()

	_, err := svc.ImportLessons(ctx, importableLessons())
	assert.ErrorIs(t, err, domain.NewInternalError("", nil))
	repo.AssertNumberOfCalls(t, "UpsertLesson", 1)
}
