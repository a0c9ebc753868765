package main

import (
	"encoding/json"
	"fmt"
	"os"

	"pylearn/cmd/jobs/internal/seedmodels"
	"pylearn/internal/adapter"
	"pylearn/internal/domain"
	"pylearn/internal/logger"
	"pylearn/internal/repository"
	"pylearn/internal/service"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultSeedFile = "configs/seed_data/lessons.json"

var importCmd = &cobra.Command{
	Use:   "import-lessons",
	Short: "Upsert lessons from a JSON seed file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		lessons, err := readSeedFile(path)
		if err != nil {
			return err
		}

		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		var c domain.Cache
		if rt.redis != nil {
			c = adapter.NewRedisCacheAdapter(rt.redis)
		}
		catalog := service.NewCatalogService(
			repository.NewSQLXLessonRepository(rt.db),
			repository.NewTransactionManagerAdapter(rt.db),
			c,
		)
		n, err := catalog.ImportLessons(cmd.Context(), lessons)
		if err != nil {
			return err
		}
		logger.Get().Info("Lesson import finished", zap.String("file", path), zap.Int("lessons", n))
		return nil
	},
}

func init() {
	importCmd.Flags().String("file", defaultSeedFile, "path to the lesson seed file")
	rootCmd.AddCommand(importCmd)
}

func readSeedFile(path string) ([]*domain.Lesson, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	var file seedmodels.SeedFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return lo.Map(file.Lessons, func(s seedmodels.SeedLesson, _ int) *domain.Lesson {
		return s.ToDomain()
	}), nil
}
