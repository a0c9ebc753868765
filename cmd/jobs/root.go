package main

import (
	"context"
	"fmt"
	"time"

	"pylearn/internal/adapter"
	"pylearn/internal/cache"
	"pylearn/internal/config"
	"pylearn/internal/database"
	"pylearn/internal/domain"
	"pylearn/internal/logger"
	"pylearn/internal/repository"
	"pylearn/internal/service"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "jobs",
	Short:         "PyLearn maintenance jobs",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// jobRuntime holds what a job needs. close releases it.
type jobRuntime struct {
	cfg   *config.Config
	db    *sqlx.DB
	redis *redis.Client
	jobs  service.JobService
}

func newRuntime(ctx context.Context) (*jobRuntime, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, err
	}

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	db, err := database.NewPostgresDB(connectCtx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	rt := &jobRuntime{cfg: cfg, db: db}
	var publisher domain.NotificationPublisher
	if client, err := cache.NewRedisClient(connectCtx, cfg.Redis); err != nil {
		logger.Get().Warn("Redis unavailable, notifications will not be pushed live", zap.Error(err))
	} else {
		rt.redis = client
		publisher = adapter.NewRedisNotificationPublisher(client)
	}

	notifier := service.NewNotificationService(repository.NewSQLXNotificationRepository(db), publisher)
	rt.jobs = service.NewJobService(
		repository.NewSQLXProfileRepository(db),
		repository.NewSQLXLeaderboardRepository(db),
		notifier,
		repository.NewTransactionManagerAdapter(db),
	)
	return rt, nil
}

func (rt *jobRuntime) close() {
	if rt.redis != nil {
		_ = rt.redis.Close()
	}
	_ = rt.db.Close()
	_ = logger.Sync()
}
