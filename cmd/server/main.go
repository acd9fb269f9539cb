package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/redis/go-redis/v9"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/config"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/database"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/logging"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/repository"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/routes"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	db, err := database.Open(cfg.DSN())
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// ERROR+ records are also batched into system_logs.
	pgLogHandler := logging.NewPGHandler(db)
	logging.WithSink(pgLogHandler)

	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cfg.LogRetentionDays, cleanupDone)

	// Shared limiter storage when Redis is configured.
	var limitStore fiber.Storage
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		limitStore = middleware.NewRedisStorage(client, "ratelimit:")
		slog.Info("rate limiter using redis", "addr", cfg.RedisAddr)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	// Services
	creds := services.NewCredentialService(cfg.JWTSecret, cfg.JWTAccessExpiry)
	authService := services.NewAuthService(userRepo, creds)
	authorizer := services.NewAuthorizer(jobRepo)
	audit := services.NewAuditTrail(historyRepo)
	jobService := services.NewJobService(jobRepo, userRepo, authorizer)
	candidateService := services.NewCandidateService(candidateRepo, jobRepo, audit, authorizer)
	userService := services.NewUserService(userRepo, jobRepo, creds)
	dashboardService := services.NewDashboardService(userRepo, jobRepo, candidateRepo)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	routes.Setup(app, cfg, authService, authorizer, routes.Handlers{
		Auth:   handlers.NewAuthHandler(authService),
		Admin:  handlers.NewAdminHandler(jobService, candidateService, userService, dashboardService),
		HR:     handlers.NewHRHandler(jobService, candidateService, dashboardService),
		Shared: handlers.NewSharedHandler(jobService, candidateService, audit, cfg.StrictSharedStatusOwnership),
		Health: handlers.NewHealthHandler(db),
	}, limitStore)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if limitStore != nil {
		if err := limitStore.Close(); err != nil {
			slog.Error("redis close error", "error", err)
		}
	}
	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}
