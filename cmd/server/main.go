package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/Kyle5427/web-data-management-system/internal/app"
	"github.com/Kyle5427/web-data-management-system/internal/auth"
	"github.com/Kyle5427/web-data-management-system/internal/config"
	"github.com/Kyle5427/web-data-management-system/internal/database"
	"github.com/Kyle5427/web-data-management-system/internal/domain"
	"github.com/Kyle5427/web-data-management-system/internal/logging"
	"github.com/Kyle5427/web-data-management-system/internal/memory"
	"github.com/Kyle5427/web-data-management-system/internal/redis"
	"github.com/Kyle5427/web-data-management-system/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	var healthChecks []server.HealthChecker

	var users domain.UserRepository
	var products domain.ProductRepository
	if cfg.DatabaseURL != "" {
		pool := setupDB(cfg)
		defer pool.Close()

		users = database.NewUserRepository(pool)
		products = database.NewProductRepository(pool)
		healthChecks = append(healthChecks, database.Health{Pool: pool})
		slog.Info("Using PostgreSQL-backed repositories")
	} else {
		users = memory.NewUserRepository()
		products = memory.NewProductRepository()
		slog.Info("Using in-memory repositories")
	}

	var sessions domain.SessionRepository
	if cfg.RedisURL != "" {
		client := setupRedis(cfg)
		defer client.Close()

		sessions = redis.NewSessionRepository(client, cfg.SessionTTL)
		healthChecks = append(healthChecks, client)
		slog.Info("Using Redis-backed session store")
	} else {
		sessions = memory.NewSessionRepository(clockwork.NewRealClock(), cfg.SessionTTL)
		slog.Info("Using in-memory session store")
	}

	svc := app.New(users, products, sessions, auth.NewBcryptHasher())

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := svc.SeedProducts(seedCtx); err != nil {
		slog.Error("Failed to seed product catalog", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(cfg, svc, healthChecks...)
	done := runGracefulShutdown(srv)

	slog.Info("Starting server", "port", cfg.Port, "env", cfg.AppEnv)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
	slog.Info("Server stopped")
}

func setupDB(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return pool
}

func setupRedis(cfg *config.Config) *redis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	return client
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}
