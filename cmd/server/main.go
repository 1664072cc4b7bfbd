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

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/futbol-stats-service/internal/config"
	"github.com/maxviazov/futbol-stats-service/internal/handler"
	"github.com/maxviazov/futbol-stats-service/internal/logger"
	"github.com/maxviazov/futbol-stats-service/internal/repository"
	"github.com/maxviazov/futbol-stats-service/internal/repository/postgres"
	"github.com/maxviazov/futbol-stats-service/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load application config
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}

	// Bring the schema up to date before opening the pool.
	if err := repository.Migrate(repository.DSN(&cfg.Postgres), &appLogger); err != nil {
		appLogger.Fatal().Err(err).Msg("schema synchronization failed")
	}

	repo, err := repository.New(context.Background(), cfg, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer repo.Close()

	pool := repo.Pool()
	players := postgres.NewPlayerRepository(pool)
	matches := postgres.NewMatchRepository(pool)
	goals := postgres.NewGoalRepository(pool)
	tx := postgres.NewTxManager(pool)

	playerSvc := service.NewPlayerService(players, goals, appLogger)
	matchSvc := service.NewMatchService(matches, goals, appLogger)
	goalSvc := service.NewGoalService(goals, players, matches, tx, appLogger)
	tokenSvc := service.NewTokenService(cfg.Auth, appLogger)

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	handler.Register(engine, postgres.NewPinger(pool), playerSvc, matchSvc, goalSvc, tokenSvc)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.Info().Int("port", cfg.App.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
