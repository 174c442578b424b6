package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/alhafizh-api/internal/config"
	"github.com/noah-isme/alhafizh-api/internal/database"
	"github.com/noah-isme/alhafizh-api/internal/handler"
	"github.com/noah-isme/alhafizh-api/internal/middleware"
	"github.com/noah-isme/alhafizh-api/internal/models"
	"github.com/noah-isme/alhafizh-api/internal/repository"
	"github.com/noah-isme/alhafizh-api/internal/router"
	"github.com/noah-isme/alhafizh-api/internal/service"
	"github.com/noah-isme/alhafizh-api/pkg/equran"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", cfg.AppName).Logger()

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	kv, err := openStore(cfg, redisClient)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	var natsConn *nats.Conn
	if cfg.NATSURL != "" {
		natsConn, err = database.ConnectNATS(cfg.NATSURL, cfg.AppName)
		if err != nil {
			log.Fatalf("failed to connect to nats: %v", err)
		}
		defer natsConn.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	validate := validator.New(validator.WithRequiredStructEnabled())

	notifications := service.NewNotificationService(service.NotificationConfig{
		TTL:     cfg.NotificationTTL,
		Channel: cfg.NotificationChannel,
		Redis:   redisClient,
		NATS:    natsConn,
	}, logger)
	notifications.Start(ctx)
	defer notifications.Close()

	confirmations := service.NewConfirmationService(cfg.ConfirmationTTL, logger)
	stateRepo := repository.NewStateRepository(kv, logger)
	tracker := service.NewTrackerService(stateRepo, notifications, confirmations, validate, logger)
	tracker.Load(ctx)

	quranClient := equran.NewClient(equran.Config{
		BaseURL: cfg.QuranAPIBaseURL,
		Timeout: cfg.QuranAPITimeout,
		Logger:  logger,
	})
	contentService := service.NewContentService(quranClient, logger)
	quizService := service.NewQuizService(quranClient, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		BodyLimit:    cfg.ImportMaxBytes + 64*1024,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		ClassHandler:        handler.NewClassHandler(tracker, logger),
		StudentHandler:      handler.NewStudentHandler(tracker, logger),
		AssessmentHandler:   handler.NewAssessmentHandler(tracker),
		ConfirmationHandler: handler.NewConfirmationHandler(confirmations, logger),
		ProgressHandler:     handler.NewProgressHandler(tracker),
		DataHandler: handler.NewDataHandler(tracker, logger, cfg.ImportMaxBytes,
			middleware.RateLimit("import", cfg.ImportRateLimit, cfg.ImportRateLimitEvery)),
		ChapterHandler:      handler.NewChapterHandler(contentService, logger),
		QuizHandler:         handler.NewQuizHandler(quizService, logger),
		NotificationHandler: handler.NewNotificationHandler(notifications, logger, 30*time.Second),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

// openStore picks the key-value backend for the configured storage driver.
func openStore(cfg config.Config, redisClient *redis.Client) (repository.KVRepository, error) {
	if cfg.StorageDriver == config.StorageRedis {
		return repository.NewRedisKVRepository(redisClient, cfg.RedisPrefix), nil
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err = database.ConnectPostgres(cfg.DatabaseURL)
	default:
		db, err = database.ConnectSQLite(cfg.DatabaseURL)
	}
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		return nil, err
	}

	return repository.NewGormKVRepository(db), nil
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
