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

	"github.com/studypal/engine/internal/classify"
	"github.com/studypal/engine/internal/feedback"
	"github.com/studypal/engine/internal/platform/cache"
	"github.com/studypal/engine/internal/platform/config"
	"github.com/studypal/engine/internal/platform/database"
	"github.com/studypal/engine/internal/progress"
	"github.com/studypal/engine/internal/quiz"
	"github.com/studypal/engine/internal/resources"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app, cleanup, err := buildApp(ctx, cfg)
	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	mux := newMux(app)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// app bundles the engine's service objects. Everything is constructed once
// at startup, in dependency order, and shared read-only by requests.
type app struct {
	classifier *classify.Service
	generator  *quiz.Generator
	suggester  *resources.Suggester
	progress   *progress.Service
	hub        *progress.Hub
	feedback   *feedback.Generator
}

// buildApp constructs all services: vectorizer/model before the generator
// that uses it, catalog before the clusterer, database before the progress
// store. Training runs to completion here, before traffic is accepted.
func buildApp(ctx context.Context, cfg *config.Config) (*app, func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	classifier := classify.NewService(classify.ServiceConfig{
		ArtifactPath: cfg.Classifier.ArtifactPath,
		DatasetPath:  cfg.Classifier.DatasetPath,
		Seed:         cfg.Classifier.Seed,
	})
	if err := classifier.EnsureTrained(ctx); err != nil {
		// Degraded but serviceable: every question reads easy.
		slog.Warn("serving without a trained difficulty model", "error", err)
	}

	generator := quiz.NewGenerator(quiz.GeneratorConfig{
		Classifier: classifier,
	})

	catalog, err := resources.LoadCatalog(cfg.Catalog.Dir)
	if err != nil {
		slog.Warn("resource catalog unavailable, suggestions disabled", "dir", cfg.Catalog.Dir, "error", err)
	}
	suggester, err := resources.Build(catalog, cfg.Catalog.Clusters, cfg.Catalog.Seed)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("build resource clusterer: %w", err)
	}

	var store progress.Store
	if cfg.Database.URL != "" {
		db, err := newDB(ctx, cfg)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		cleanups = append(cleanups, db.Close)
		store, err = progress.NewPostgresStore(ctx, db.Pool)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("init progress store: %w", err)
		}
	} else {
		slog.Info("no database configured, progress store runs in memory")
		store = progress.NewMemoryStore()
	}

	var profileCache progress.ProfileCache
	if cfg.Cache.URL != "" {
		c, err := cache.New(ctx, cfg.Cache.URL)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("connect cache: %w", err)
		}
		cleanups = append(cleanups, func() { c.Close() })
		profileCache = progress.NewRedisProfileCache(c)
	}

	hub := progress.NewHub()
	progressSvc := progress.NewService(progress.ServiceConfig{
		Store: store,
		Cache: profileCache,
		Hub:   hub,
	})

	return &app{
		classifier: classifier,
		generator:  generator,
		suggester:  suggester,
		progress:   progressSvc,
		hub:        hub,
		feedback:   feedback.NewGenerator(nil),
	}, cleanup, nil
}

func newDB(ctx context.Context, cfg *config.Config) (*database.DB, error) {
	db, err := database.New(ctx, cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}
