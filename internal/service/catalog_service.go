package service

import (
	"context"
	"fmt"

	"pylearn/internal/cache"
	"pylearn/internal/domain"
	"pylearn/internal/logger"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// CatalogService loads lesson content authored outside the migrations.
type CatalogService interface {
	// ImportLessons validates every lesson and upserts them in one transaction.
	ImportLessons(ctx context.Context, lessons []*domain.Lesson) (int, error)
}

type catalogServiceImpl struct {
	lessons domain.LessonRepository
	tx      domain.TransactionManager
	cache   domain.Cache
}

func NewCatalogService(lessons domain.LessonRepository, tx domain.TransactionManager, c domain.Cache) CatalogService {
	return &catalogServiceImpl{lessons: lessons, tx: tx, cache: c}
}

func (s *catalogServiceImpl) ImportLessons(ctx context.Context, lessons []*domain.Lesson) (int, error) {
	if len(lessons) == 0 {
		return 0, domain.NewInvalidInputError("no lessons to import")
	}

	seen := make(map[string]struct{}, len(lessons))
	for i, l := range lessons {
		if err := checkImportedLesson(l); err != nil {
			return 0, domain.NewInvalidInputError(fmt.Sprintf("lesson #%d: %s", i+1, err))
		}
		if _, dup := seen[l.ID]; dup {
			return 0, domain.NewInvalidInputError(fmt.Sprintf("lesson #%d: duplicate id %q", i+1, l.ID))
		}
		seen[l.ID] = struct{}{}
	}

	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, l := range lessons {
			if err := s.lessons.UpsertLesson(txCtx, l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, domain.NewInternalError("failed to import lessons", err)
	}

	keys := append(lo.Map(lessons, func(l *domain.Lesson, _ int) string { return cache.LessonKey(l.ID) }), cache.LessonCatalogKey())
	cache.Invalidate(ctx, s.cache, keys...)

	logger.Get().Info("Lessons imported", zap.Int("count", len(lessons)))
	return len(lessons), nil
}

func checkImportedLesson(l *domain.Lesson) error {
	switch {
	case l == nil:
		return fmt.Errorf("empty entry")
	case l.ID == "":
		return fmt.Errorf("id is required")
	case l.Title == "":
		return fmt.Errorf("title is required")
	case !l.Type.Valid():
		return fmt.Errorf("unsupported type %q", l.Type)
	case l.XPReward < 0:
		return fmt.Errorf("xp_reward must not be negative")
	}

	c := l.Content
	switch l.Type {
	case domain.LessonTypeMultipleChoice:
		if c.CorrectAnswer == "" && len(c.Questions) == 0 {
			return fmt.Errorf("multiple choice lesson needs correct_answer or questions")
		}
	case domain.LessonTypeDragDrop:
		if len(c.CorrectOrder) == 0 {
			return fmt.Errorf("drag and drop lesson needs correct_order")
		}
	case domain.LessonTypePuzzle:
		if len(c.PuzzleAnswers) == 0 {
			return fmt.Errorf("puzzle lesson needs puzzle_answers")
		}
	case domain.LessonTypeStory:
		if len(c.Challenges) == 0 {
			return fmt.Errorf("story lesson needs challenges")
		}
	}
	return nil
}
