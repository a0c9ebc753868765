package main

import (
	"time"

	"pylearn/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var streakCmd = &cobra.Command{
	Use:   "streak-maintenance",
	Short: "Reset the streak of every learner who missed a day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		reset, err := rt.jobs.ResetStreaks(cmd.Context(), time.Now())
		if err != nil {
			return err
		}
		logger.Get().Info("Streak maintenance finished", zap.Int64("streaks_reset", reset))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
}
