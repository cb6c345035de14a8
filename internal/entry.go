// Package internal provides the main application initialization and runtime logic.
package internal

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
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/vishesh-baghel/portfolio-sub000/internal/api"
	"github.com/vishesh-baghel/portfolio-sub000/internal/assemble"
	"github.com/vishesh-baghel/portfolio-sub000/internal/catalog"
	"github.com/vishesh-baghel/portfolio-sub000/internal/docstore"
	"github.com/vishesh-baghel/portfolio-sub000/internal/mcpserver"
	"github.com/vishesh-baghel/portfolio-sub000/internal/sse"
	"github.com/vishesh-baghel/portfolio-sub000/internal/storage"
)

// Run starts the HTTP content API with the given options and blocks until
// shutdown. The content watcher and SSE broker run alongside the server.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("content_dir", cfg.Content.Dir),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Ensure the content directory exists.
	if err := os.MkdirAll(cfg.Content.Dir, 0o755); err != nil {
		return fmt.Errorf("create content dir: %w", err)
	}

	store, err := buildStore(cfg, logger)
	if err != nil {
		return err
	}

	// SSE broker for content-change notifications.
	broker := sse.NewBroker()
	defer broker.Close()

	// Build API service and router.
	svc := api.NewService(store)
	apiRouter := api.NewRouter(svc, cfg.Auth.AuthEnabled(), cfg.Auth.Token, http.HandlerFunc(broker.ServeHTTP))

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the content directory and invalidate caches on change.
	g.Go(func() error {
		if err := docstore.Watch(gCtx, store, cfg.Content.Dir, logger, func(kind, name string) {
			broker.PublishContentChanged(kind, name)
		}); err != nil {
			logger.Warn("watcher failed", slog.String("error", err.Error()))
		}
		return nil
	})

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// RunMCP starts the stdio MCP server. Logs go to stderr because stdout
// carries the protocol.
func RunMCP(cfg *Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	store, err := buildStore(cfg, logger)
	if err != nil {
		return err
	}

	svc := catalog.NewService(store, logger)
	logger.Info("MCP server starting on stdio", slog.String("content_dir", cfg.Content.Dir))
	return mcpserver.New(svc).ServeStdio()
}

func buildStore(cfg *Config, logger *slog.Logger) (*docstore.Store, error) {
	files, err := storage.NewDir(cfg.Content.Dir)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	asm := assemble.New(cfg.Attribution.Links())
	return docstore.New(files, asm, logger), nil
}
