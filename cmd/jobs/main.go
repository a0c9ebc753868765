// Command jobs runs PyLearn's scheduled maintenance tasks. Each subcommand is
// meant to be invoked by an external scheduler such as cron.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Printf("jobs: %v", err)
		os.Exit(1)
	}
}
