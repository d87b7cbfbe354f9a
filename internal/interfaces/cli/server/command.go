package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/config"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/database"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/migration"
	httpRouter "github.com/anisurarzu/FTB-Server-Demo/internal/interfaces/http"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/biztime"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
)

var (
	configFile  string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the booking back-office HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to config file (optional, environment variables apply on top)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", true, "Run database schema migration on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Booking numbers are derived from the business-timezone calendar day.
	if err := biztime.Init("Asia/Dhaka"); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	logger.Info("starting server", "auto_migrate", autoMigrate)

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	gin.DefaultWriter = io.Discard

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if autoMigrate {
		if err := migration.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info("database migration completed")
	}

	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warn("redis unavailable, rate limiting disabled", "error", err)
			redisClient = nil
		}
	}

	router := httpRouter.NewRouter(db, redisClient, cfg, logger.NewLogger())
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("failed to close redis client", "error", err)
		}
	}

	logger.Info("server exited gracefully")
	return nil
}
