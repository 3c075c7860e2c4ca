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

	"github.com/arvind407/EasyPickle/config"
	"github.com/arvind407/EasyPickle/handlers"
	"github.com/arvind407/EasyPickle/live"
	"github.com/arvind407/EasyPickle/remote"
	api "github.com/arvind407/EasyPickle/routes"
	"github.com/go-chi/chi/v5"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("remote_api", cfg.RemoteAPIURL))

	apiClient := remote.NewClient(cfg.RemoteAPIURL, cfg.HTTPTimeout)
	logger.Info("tournament API client initialized")

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	hub := live.NewHub(logger)
	go hub.Run(hubCtx)
	logger.Info("live score hub started")

	authHandler := handlers.NewAuthHandler(apiClient)
	tournamentHandler := handlers.NewTournamentHandler(apiClient)
	teamHandler := handlers.NewTeamHandler(apiClient)
	playerHandler := handlers.NewPlayerHandler(apiClient)
	matchHandler := handlers.NewMatchHandler(apiClient)
	groupHandler := handlers.NewGroupHandler(apiClient)
	scoreHandler := handlers.NewScoreHandler(apiClient, hub, logger)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		authHandler,
		tournamentHandler,
		teamHandler,
		playerHandler,
		matchHandler,
		groupHandler,
		scoreHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // websocket score sessions are long-lived
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

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	stopHub()
	logger.Info("application exited")
}
