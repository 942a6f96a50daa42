package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"festtix/api/routes"
	"festtix/internal/notifications"
	"festtix/internal/orders"
	"festtix/internal/shared/config"
	"festtix/internal/shared/database"
	"festtix/pkg/logger"
	"festtix/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	appLogger = logger.NewWithWriter(os.Stdout, cfg.LogLevel)
	logger.SetDefault(appLogger)

	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("Failed to initialize databases", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && db.GetRedisClient() != nil {
		rateLimiter = ratelimit.NewRateLimiter(db.GetRedisClient(), ratelimit.ConfigFrom(cfg.RateLimit))
		appLogger.Info("Rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
			slog.Int("checkout_requests", cfg.RateLimit.CheckoutRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled", slog.Bool("configured", cfg.RateLimit.Enabled))
	}

	publisher := newTicketEmailPublisher(cfg)
	defer func() {
		if err := publisher.Close(); err != nil {
			appLogger.Error("Error closing ticket email publisher", slog.Any("error", err))
		}
	}()

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	if consumer := startTicketEmailWorkers(workerCtx, cfg); consumer != nil {
		defer func() {
			appLogger.Info("Stopping ticket email workers...")
			if err := consumer.Stop(); err != nil {
				appLogger.Error("Error stopping ticket email workers", slog.Any("error", err))
			}
		}()
	}

	appRouter := routes.NewRouter(cfg, db, publisher)
	engine := setupRouter(cfg, appRouter, rateLimiter)

	jobs := orders.NewJobProcessor(appRouter.OrderService, &orders.JobConfig{
		CleanupInterval: cfg.Festival.CleanupInterval,
		UnpaidOrderTTL:  cfg.Festival.UnpaidOrderTTL,
	})
	jobs.Start(workerCtx)
	defer jobs.Stop()

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        engine,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("version", Version),
			slog.String("commit", GitCommit),
			slog.String("built", BuildTime),
			slog.Bool("redis_cache", db.GetRedisClient() != nil),
			slog.Bool("rate_limiting", cfg.RateLimit.Enabled),
			slog.Bool("kafka", cfg.Kafka.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func newTicketEmailPublisher(cfg *config.Config) notifications.TicketEmailPublisher {
	if !cfg.Kafka.Enabled {
		logger.GetDefault().Info("Kafka disabled, ticket emails will only be logged")
		return notifications.NewNoopPublisher()
	}

	publisher, err := notifications.NewKafkaPublisher(notifications.DefaultProducerConfig(cfg.Kafka.Brokers, cfg.Kafka.TicketEmailTopic))
	if err != nil {
		logger.GetDefault().Error("Failed to connect Kafka producer, falling back to log-only", slog.Any("error", err))
		return notifications.NewNoopPublisher()
	}
	return publisher
}

// startTicketEmailWorkers runs the in-process mail workers when configured.
func startTicketEmailWorkers(ctx context.Context, cfg *config.Config) *notifications.TicketEmailConsumer {
	if !cfg.Kafka.Enabled || cfg.Kafka.EmailWorkers <= 0 {
		return nil
	}

	var mailer notifications.Mailer = notifications.LogMailer{}
	if cfg.SMTP.Configured() {
		smtpMailer, err := notifications.NewSMTPMailer(cfg.SMTP)
		if err != nil {
			logger.GetDefault().Error("Invalid SMTP configuration, logging emails instead", slog.Any("error", err))
		} else {
			mailer = smtpMailer
		}
	}

	consumer, err := notifications.NewTicketEmailConsumer(
		notifications.DefaultConsumerConfig(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup, cfg.Kafka.TicketEmailTopic),
		notifications.NewTicketEmailRenderer(cfg.Festival.Name),
		mailer,
	)
	if err != nil {
		logger.GetDefault().Error("Failed to start ticket email workers", slog.Any("error", err))
		return nil
	}

	consumer.Start(ctx, cfg.Kafka.EmailWorkers)
	return consumer
}

func setupRouter(cfg *config.Config, appRouter *routes.Router, rateLimiter *ratelimit.RateLimiter) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	engine.Use(RequestLoggerMiddleware(appLogger), gin.Recovery())

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 || (len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*") {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	engine.Use(cors.New(corsConfig))

	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
	}

	appRouter.SetupRoutes(engine)
	return engine
}

func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.LogHTTPRequest(c, time.Since(start))
	}
}
