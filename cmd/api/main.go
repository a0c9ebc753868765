// @title PyLearn API
// @version 1.0
// @description Gamified Python learning backend: lessons, XP, leagues, achievements, daily challenges and an AI tutor.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "pylearn/cmd/api/docs"
	"pylearn/internal/adapter"
	"pylearn/internal/cache"
	"pylearn/internal/config"
	"pylearn/internal/database"
	"pylearn/internal/domain"
	"pylearn/internal/handler"
	"pylearn/internal/logger"
	"pylearn/internal/middleware"
	"pylearn/internal/repository"
	"pylearn/internal/sandbox"
	"pylearn/internal/scoring"
	"pylearn/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStartup()

	// Connect to database
	db, err := database.NewPostgresDB(startupCtx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Redis backs the cache and live notifications. Both degrade when it is down.
	var (
		cacheAdapter domain.Cache
		publisher    domain.NotificationPublisher
	)
	redisClient, err := cache.NewRedisClient(startupCtx, cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, running without cache and live notifications", zap.Error(err))
	} else {
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		publisher = adapter.NewRedisNotificationPublisher(redisClient)
		appLogger.Info("Successfully connected to Redis")
	}

	policy, err := scoring.PolicyByName(cfg.Scoring.PenaltyPolicy)
	if err != nil {
		appLogger.Fatal("Invalid scoring configuration", zap.Error(err))
	}
	if policy.Name() == "linear" {
		appLogger.Warn("The linear penalty policy is deprecated; set scoring.penalty_policy to \"bands\"")
	}

	// Initialize repositories
	profileRepo := repository.NewSQLXProfileRepository(db)
	lessonRepo := repository.NewSQLXLessonRepository(db)
	progressRepo := repository.NewSQLXProgressRepository(db)
	achievementRepo := repository.NewSQLXAchievementRepository(db)
	challengeRepo := repository.NewSQLXChallengeRepository(db)
	friendRepo := repository.NewSQLXFriendRepository(db)
	notificationRepo := repository.NewSQLXNotificationRepository(db)
	chatRepo := repository.NewSQLXChatRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Initialize services
	authService, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	executor := sandbox.NewSimulator(sandbox.Options{
		Timeout:       cfg.Sandbox.Timeout,
		MaxDelay:      cfg.Sandbox.MaxDelay,
		MemoryLimitMB: cfg.Sandbox.MemoryLimitMB,
	})
	validator := scoring.NewValidator(executor)

	notificationService := service.NewNotificationService(notificationRepo, publisher)
	profileService := service.NewProfileService(profileRepo, notificationService)
	achievementService := service.NewAchievementService(
		achievementRepo, profileRepo, progressRepo, challengeRepo, friendRepo,
		profileService, notificationService, txManager, cacheAdapter, cfg.CacheTTLs.Achievements,
	)
	lessonService := service.NewLessonService(
		lessonRepo, progressRepo, profileService, achievementService, txManager,
		validator, policy, cacheAdapter, cfg.CacheTTLs.Lesson,
	)
	leagueService := service.NewLeagueService(profileRepo, cacheAdapter, cfg.CacheTTLs.Leaderboard)
	challengeService := service.NewChallengeService(
		challengeRepo, profileService, achievementService, notificationService, txManager, validator, policy,
	)
	friendService := service.NewFriendService(friendRepo, profileRepo, achievementService, notificationService)
	chatService := service.NewChatService(chatRepo, chatModels(cfg.LLM)...)
	appLogger.Info("Services initialized", zap.String("penalty_policy", policy.Name()))

	// Streams opened by the notification handler end when this is cancelled.
	streamCtx, cancelStreams := context.WithCancel(context.Background())
	defer cancelStreams()

	handlers := handler.Handlers{
		Lessons:       handler.NewLessonHandler(lessonService),
		Profiles:      handler.NewProfileHandler(profileService),
		Achievements:  handler.NewAchievementHandler(achievementService),
		Leagues:       handler.NewLeagueHandler(leagueService),
		Challenges:    handler.NewChallengeHandler(challengeService),
		Friends:       handler.NewFriendHandler(friendService),
		Notifications: handler.NewNotificationHandler(streamCtx, notificationService),
		Chat:          handler.NewChatHandler(chatService),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, authService, handlers)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	cancelStreams()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

// chatModels returns the configured providers in preference order.
func chatModels(cfg config.LLMConfig) []domain.ChatModel {
	appLogger := logger.Get()
	var models []domain.ChatModel

	if cfg.OpenAIAPIKey != "" {
		m, err := adapter.NewOpenAIChatModel(cfg)
		if err != nil {
			appLogger.Warn("OpenAI chat model disabled", zap.Error(err))
		} else {
			models = append(models, m)
		}
	}
	if cfg.OllamaServer != "" {
		m, err := adapter.NewOllamaChatModel(cfg)
		if err != nil {
			appLogger.Warn("Ollama chat model disabled", zap.Error(err))
		} else {
			models = append(models, m)
		}
	}
	if len(models) == 0 {
		appLogger.Warn("No chat model configured, the tutor will answer with canned replies")
	}
	return models
}
