package main

import (
	"activityBoard/internal/config"
	"activityBoard/internal/github"
	"activityBoard/internal/http-server/router"
	"activityBoard/internal/lib/logger"
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/storage/memory"
	"activityBoard/internal/storage/postgres"
	"activityBoard/internal/storage/sqlite"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type store interface {
	router.ActivityStore
	Close() error
}

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Env, os.Stdout)

	log.Info("Starting activity board", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := openStorage(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err), slog.String("driver", cfg.Storage.Driver))
		os.Exit(1)
	}

	searcher := github.New(log, cfg.GitHub)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router.New(log, cfg.HTTPServer, storage, searcher),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.GitHub.Timeout + cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func openStorage(cfg *config.Config) (store, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return memory.NewSeeded(), nil
	case config.StorageSQLite:
		return sqlite.New(cfg.Storage.SQLitePath)
	case config.StoragePostgres:
		return postgres.InitDB(&cfg.Database)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
