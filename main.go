package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ddevcap/movielist/api"
	"github.com/ddevcap/movielist/api/middleware"
	"github.com/ddevcap/movielist/config"
	"github.com/ddevcap/movielist/store"
	"github.com/ddevcap/movielist/tmdb"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("failed to read .env file", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	client, err := store.Open(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to open database", "dialect", cfg.DatabaseDialect, "error", err)
		os.Exit(1)
	}
	defer func() { _ = client.Close() }()

	searcher, err := tmdb.New(cfg.APIToken, cfg.TMDBBaseURL, tmdb.WithTimeout(cfg.SearchTimeout))
	if err != nil {
		slog.Error("failed to create search client", "error", err)
		os.Exit(1)
	}

	sessionStore, err := middleware.NewSessionStore(cfg.SecretKey, cfg.SecureCookies)
	if err != nil {
		slog.Error("failed to create session store", "error", err)
		os.Exit(1)
	}

	h, err := api.NewRouter(store.New(client), searcher, cfg, sessionStore)
	if err != nil {
		slog.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MiB
	}

	go func() {
		slog.Info("movielist listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}
	slog.Info("server stopped")
}
