package main

import (
	"fmt"
	"time"

	"pylearn/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var weeklyCmd = &cobra.Command{
	Use:   "weekly-leaderboard",
	Short: "Rank last week's XP and notify the top three",
	Long:  "Ranks the XP earned during the last complete Monday-to-Sunday week. Re-running for the same week overwrites the stored ranking.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		at := time.Now()
		if s, _ := cmd.Flags().GetString("at"); s != "" {
			parsed, err := time.ParseInLocation(time.DateOnly, s, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --at date %q: %w", s, err)
			}
			at = parsed
		}

		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		report, err := rt.jobs.RankWeek(cmd.Context(), at)
		if err != nil {
			return err
		}
		logger.Get().Info("Weekly leaderboard finished",
			zap.Time("week_start", report.WeekStart),
			zap.Int("ranked", len(report.Entries)),
			zap.Int("notified", report.Notified),
		)
		return nil
	},
}

func init() {
	weeklyCmd.Flags().String("at", "", "rank the week before this date (YYYY-MM-DD) instead of today")
	rootCmd.AddCommand(weeklyCmd)
}
