package main

import (
	"fmt"
	"time"

	"pylearn/internal/config"
	"pylearn/internal/service"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "issue-token <user-id>",
	Short: "Sign an access token with the configured secret, for local testing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		auth, err := service.NewAuthService(cfg.Auth)
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		ttl, _ := cmd.Flags().GetDuration("ttl")
		token, err := auth.IssueToken(cmd.Context(), args[0], email, ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("email", "", "email claim")
	tokenCmd.Flags().Duration("ttl", time.Hour, "token lifetime")
	rootCmd.AddCommand(tokenCmd)
}
