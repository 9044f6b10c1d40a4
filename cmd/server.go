package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	config "todo-list-api.com/todo-list-api/internal/configs"
	httpapi "todo-list-api.com/todo-list-api/internal/http"
	middleware "todo-list-api.com/todo-list-api/internal/http/middlewares"
	"todo-list-api.com/todo-list-api/internal/limiter"
	repository "todo-list-api.com/todo-list-api/internal/repositories"
	"todo-list-api.com/todo-list-api/internal/security"
	"todo-list-api.com/todo-list-api/internal/services"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Long:  "Starts the ToDo list HTTP API backed by SQLite or PostgreSQL",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		log, err := config.NewLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		db, err := config.NewDatabase(cfg.DatabaseDriver, cfg.DatabaseDSN, log)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("get sql db: %w", err)
		}
		defer sqlDB.Close()

		if cfg.AutoMigrate {
			if err := config.Migrate(db); err != nil {
				return err
			}
		}

		store, closeStore, err := rateLimitStore(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		categoryRepo := repository.NewCategoryRepository(db)
		projectRepo := repository.NewProjectRepository(db)

		handler := httpapi.NewHandler(
			services.NewUserService(repository.NewUserRepository(db), security.NewBcryptHasher(cfg.BcryptCost)),
			services.NewCategoryService(categoryRepo),
			services.NewProjectService(projectRepo),
			services.NewTaskService(repository.NewTaskRepository(db), categoryRepo, projectRepo),
		)

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		e.HTTPErrorHandler = httpapi.NewErrorHandler(log)
		e.Use(echomw.Recover())
		e.Use(echomw.RequestID())
		e.Use(middleware.RequestLogger(log))
		e.Use(middleware.RateLimiter(store, cfg.RateLimit, time.Minute, log))
		httpapi.Register(e, handler, sqlDB)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Info("HTTP server listening",
				zap.String("addr", cfg.AppURL),
				zap.String("driver", cfg.DatabaseDriver),
				zap.String("rate_limit_backend", cfg.RateLimitBackend),
			)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("http server: %w", err)
			}
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}

		log.Info("HTTP server shut down gracefully")
		return nil
	},
}

func rateLimitStore(cfg config.Config) (limiter.Store, func(), error) {
	if cfg.RateLimitBackend != config.RateLimitRedis {
		return limiter.NewMemoryStore(), func() {}, nil
	}

	client, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}
	return limiter.NewRedisStore(client, cfg.RedisKeyPrefix), client.Close, nil
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
