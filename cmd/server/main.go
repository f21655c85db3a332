package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/palemoky/chinese-pinyin-api/internal/api/rest"
	"github.com/palemoky/chinese-pinyin-api/internal/config"
	"github.com/palemoky/chinese-pinyin-api/internal/database"
	"github.com/palemoky/chinese-pinyin-api/internal/dict"
	"github.com/palemoky/chinese-pinyin-api/internal/logger"
)

func main() {
	// Initialize logger
	debug := os.Getenv("GIN_MODE") != "release"
	logger.Init(debug)
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		logger.Warn("Failed to load config file, using defaults", zap.Error(err))
		cfg, _ = config.Load("")
	}

	logger.Info("Starting Chinese Pinyin API server",
		zap.String("database", cfg.Database.Path),
		zap.Int("port", cfg.Server.Port),
		zap.Bool("preload", cfg.Dictionary.Preload),
	)

	// Open database
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	// Migration is idempotent, so a fresh install serves empty tables
	// instead of failing until the importer has run
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Create repository
	repo := database.NewRepository(db)

	// The embedded dictionary is always available. Preloading merges
	// the database rows on top, so readings imported by the processor
	// take effect without a rebuild of the binary.
	reg := dict.NewRegistry()
	if cfg.Dictionary.Preload {
		snap, err := repo.LoadSnapshot()
		if err != nil {
			logger.Warn("Failed to preload dictionary from database, serving embedded data only",
				zap.Error(err))
		} else {
			reg.Merge(snap)
			stats := reg.Stats()
			logger.Info("Dictionary preloaded",
				zap.Int("chars", stats.Chars),
				zap.Int("phrases", stats.Phrases),
				zap.Int("surnames", stats.Surnames),
			)
		}
	}

	// Setup Gin router
	router := rest.SetupRouter(cfg, db, repo, reg)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Server started",
			zap.Int("port", cfg.Server.Port),
			zap.String("rest_api", fmt.Sprintf("http://localhost:%d/api/v1", cfg.Server.Port)),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
