package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alphav1/to-do-list/internal/config"
	"github.com/alphav1/to-do-list/internal/handler"
	"github.com/alphav1/to-do-list/internal/repository/jsonfile"
	"github.com/alphav1/to-do-list/internal/service"
)

func main() {
	cfg, err := config.Load(os.Getenv("TODOAPI_CONFIG"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logOpts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var logHandler slog.Handler = slog.NewTextHandler(os.Stdout, logOpts)
	if cfg.LogFormat == "json" {
		logHandler = slog.NewJSONHandler(os.Stdout, logOpts)
	}
	slog.SetDefault(slog.New(logHandler))

	// Opens the document store, seeding the sample dataset on first run.
	store, err := jsonfile.New(cfg.Database)
	if err != nil {
		slog.Error("failed to open document store", "error", err)
		os.Exit(1)
	}
	slog.Info("document store ready", "path", cfg.Database)

	userService := service.NewUserService(store)
	todoService := service.NewTodoService(store)

	schema, err := handler.NewSchema(userService, todoService)
	if err != nil {
		slog.Error("failed to build GraphQL schema", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, schema)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler.SecurityHeaders(handler.RequestLogger(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
