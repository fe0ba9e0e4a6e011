package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ht5play/internal/auth"
	"ht5play/internal/config"
	"ht5play/internal/models"
	"ht5play/internal/routes"
	"ht5play/internal/storage"
	"ht5play/internal/storage/database"
	"ht5play/internal/storage/memory"
	"ht5play/internal/storage/uploads"

	_ "ht5play/internal/controllers"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting portal", slog.String("env", cfg.Env))

	store, err := setupStorage(cfg, log)
	if err != nil {
		log.Error("failed to create storage", slog.String("error", err.Error()))
		panic("storage-err")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	log.Info("storage init", slog.String("driver", cfg.Database.Driver))

	maxBytes := int64(models.DefaultSettings().MaxFileSizeMB) << 20
	if doc, err := store.Settings().Load(context.Background()); err == nil && doc.MaxFileSizeMB > 0 {
		maxBytes = int64(doc.MaxFileSizeMB) << 20
	}

	uploadsStorage, err := uploads.NewUploads(cfg.UploadsPath, maxBytes)
	if err != nil {
		log.Error("failed to create uploads storage", slog.String("error", err.Error()))
		panic("uploads-err")
	}

	provider := auth.NewJWTProvider(cfg.Auth)

	r := routes.SetupRouter(log, store, uploadsStorage, provider, cfg.Import, cfg.Cors)

	log.Info("routes init")

	server := &http.Server{
		Addr:         cfg.Address,
		Handler:      r,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info("starting server", slog.String("address", cfg.Address))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		log.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)

	case sig := <-shutdown:
		log.Info("shutting down", slog.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown error", slog.String("error", err.Error()))
			if err := server.Close(); err != nil {
				log.Error("force shutdown error", slog.String("error", err.Error()))
			}
		}
		close(shutdown)
		close(serverErrors)
	}
	log.Info("server stopped")
}

// setupStorage picks the backend by config: the in-memory store ships
// with demo fixtures, the database store migrates its schema on boot.
func setupStorage(cfg *config.Config, log *slog.Logger) (storage.Storage, error) {
	if cfg.Database.Driver == "memory" {
		store := memory.New()
		if err := store.Seed(context.Background()); err != nil {
			return nil, err
		}
		return store, nil
	}

	store, err := database.New(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(); err != nil {
		return nil, err
	}
	log.Info("database migrated")
	return store, nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}

// @title HT5Play Portal API
// @version 1.0
// @description API for the HT5Play browser games portal and its admin back office

// @host https://ht5play.com
// @BasePath /api
