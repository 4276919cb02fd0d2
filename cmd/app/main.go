package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tradeacademy/configs"
	delivery "tradeacademy/internal/delivery/http"
	"tradeacademy/internal/infra"
	"tradeacademy/internal/logger"
	"tradeacademy/internal/middleware"
	"tradeacademy/internal/repository"
	"tradeacademy/internal/service"
	"tradeacademy/internal/utils"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	// Load configuration
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if envErr != nil {
		zl.Info(".env file not found, using environment variables")
	}

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *configs.Config, zl *zap.Logger) error {
	if cfg.Session.Secret == "" {
		return errors.New("SESSION_SECRET is required outside development")
	}

	if err := utils.SetDisplayTimezone(cfg.Display.Timezone); err != nil {
		zl.Warn("unknown display timezone, using UTC",
			zap.String("timezone", cfg.Display.Timezone),
			zap.Error(err),
		)
	}

	// Initialize repositories; a malformed seasonal table is an authoring defect
	userRepo := repository.NewUserRepository(repository.SeedUser)
	seasonalRepo, err := repository.NewSeasonalRepository(repository.SeedSeasonalTable())
	if err != nil {
		return fmt.Errorf("failed to load seasonal table: %w", err)
	}

	// Initialize services
	profileSvc := service.NewProfileService(userRepo)
	seasonalSvc := service.NewSeasonalService(seasonalRepo)

	// Sessions and the idle sweep
	sessions := infra.NewSessionStore(userRepo, seasonalRepo, zl)
	scheduler := infra.NewScheduler(sessions, cfg.Session.Sweep, cfg.Session.TTL, zl)
	if err := scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer scheduler.Stop()

	templates, err := delivery.ParseTemplates()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	delivery.SetupRoutes(e, &delivery.RouterConfig{
		WebHandler: delivery.NewWebHandler(templates, seasonalSvc, zl),
		APIHandler: delivery.NewAPIHandler(profileSvc, seasonalSvc),
		SessionMiddleware: middleware.Session(middleware.SessionConfig{
			Secret:     cfg.Session.Secret,
			CookieName: cfg.Session.CookieName,
			TTL:        cfg.Session.TTL,
			Secure:     cfg.Session.Secure,
		}, sessions, zl),
		Sessions: sessions,
		Logger:   zl,
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zl.Info("trade academy starting",
		zap.String("addr", addr),
		zap.String("env", cfg.Server.Env),
		zap.String("timezone", utils.GetLocation().String()),
	)

	// Run server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	zl.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	zl.Info("server exited gracefully")
	return nil
}
