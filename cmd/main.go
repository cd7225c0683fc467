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

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/winzz-app/tournament-server/config"
	"github.com/winzz-app/tournament-server/db"
	"github.com/winzz-app/tournament-server/engine"
	"github.com/winzz-app/tournament-server/handlers"
	"github.com/winzz-app/tournament-server/live"
	"github.com/winzz-app/tournament-server/repositories"
	api "github.com/winzz-app/tournament-server/routes"
	"github.com/winzz-app/tournament-server/services"
	"github.com/winzz-app/tournament-server/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStartup()

	// Storage backend: Postgres in production, SQLite for a single-node
	// setup, in-memory for throwaway runs.
	var tournamentRepo repositories.TournamentRepository
	switch {
	case cfg.DatabaseURL != "":
		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			logger.Error("failed to connect to database", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := dbConn.Close(); err != nil {
				logger.Error("failed to close database connection", slog.Any("error", err))
			}
		}()
		tournamentRepo, err = repositories.NewPostgresTournamentRepository(startupCtx, dbConn)
		if err != nil {
			logger.Error("failed to initialize postgres repository", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("using postgres storage")
	case cfg.SQLitePath != "":
		tournamentRepo, err = repositories.NewSQLiteTournamentRepository(startupCtx, cfg.SQLitePath)
		if err != nil {
			logger.Error("failed to initialize sqlite repository", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("using sqlite storage", slog.String("path", cfg.SQLitePath))
	default:
		tournamentRepo = repositories.NewMemoryTournamentRepository()
		logger.Warn("using in-memory storage, tournaments will not survive a restart")
	}

	var archiver storage.SnapshotArchiver
	if cfg.ArchiveEnabled() {
		archiver, err = storage.NewCloudflareR2Archiver(storage.CloudflareR2ArchiverConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize snapshot archiver", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("snapshot archiver initialized")
	}

	wsHub := live.NewHub(logger)
	go wsHub.Run()
	logger.Info("websocket hub started")

	scoring := engine.Scoring{WinPoints: cfg.WinPoints, LossPoints: cfg.LossPoints}
	sportService := services.NewSportService()
	tournamentService := services.NewTournamentService(tournamentRepo, wsHub, archiver, scoring, nil, logger)
	logger.Info("services initialized")

	sportHandler := handlers.NewSportHandler(sportService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, tournamentService, logger)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(router, sportHandler, tournamentHandler, webSocketHandler)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
