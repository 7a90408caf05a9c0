package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"intent-classifier/config"
	_ "intent-classifier/docs" // Swagger docs
	"intent-classifier/internal/classifier"
	"intent-classifier/internal/httpserver"
	fileRepo "intent-classifier/internal/intent/repository/file"
	"intent-classifier/internal/model"
	"intent-classifier/internal/registry"
	"intent-classifier/internal/validation"
	"intent-classifier/pkg/gsheets"
	"intent-classifier/pkg/log"
)

// @title       Intent Classification API
// @description Intent registry with validated uploads, versioned snapshots, and rule-based utterance classification.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Intent Classifier...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Registry store: %s", cfg.Registry.StorePath)

	// 3. Registry: persisted store, validation engine, snapshot manager
	store := fileRepo.New(cfg.Registry.StorePath, logger)

	validator := validation.New(validation.Config{
		MinTrainingUtterances: cfg.Registry.MinTrainingUtterances,
		SimilarityWarnFloor:   cfg.Registry.SimilarityWarnFloor,
	}, logger)

	registryManager := registry.New(registry.Config{
		DefaultThreshold: cfg.Registry.DefaultThreshold,
	}, validator, store, logger)

	// Bootstrap from the persisted registry, falling back to the seed file.
	// The server must not come up without an active snapshot.
	var seed []model.IntentRecord
	if cfg.Registry.SeedPath != "" {
		seed, err = registry.LoadSeedFile(cfg.Registry.SeedPath)
		if err != nil {
			logger.Warnf(ctx, "Seed file not usable (optional): %v", err)
		}
	}
	if err := registryManager.Bootstrap(ctx, seed); err != nil {
		logger.Error(ctx, "Failed to bootstrap registry: ", err)
		return
	}
	snap := registryManager.Current()
	logger.Infof(ctx, "Registry bootstrapped: version=%d intents=%d", snap.Version, snap.Count())

	// 4. Classification engine
	engine := classifier.New(classifier.Config{
		AmbiguityMargin:    cfg.Classifier.AmbiguityMargin,
		ConsiderationFloor: cfg.Classifier.ConsiderationFloor,
		TopCandidates:      cfg.Classifier.TopCandidates,
	}, logger)

	// 5. Google Sheets import (optional)
	var sheetsClient gsheets.ISheets
	if cfg.Sheets.CredentialsPath != "" {
		client, gsErr := gsheets.NewClientFromCredentialsFile(ctx, cfg.Sheets.CredentialsPath)
		if gsErr != nil {
			logger.Warnf(ctx, "Google Sheets not available (optional): %v", gsErr)
			logger.Warn(ctx, "→ Run `go run scripts/sheets-auth/main.go` to generate token.json")
		} else {
			sheetsClient = client
			logger.Info(ctx, "Google Sheets import enabled")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Registry:        registryManager,
		Validator:       validator,
		Engine:          engine,
		Sheets:          sheetsClient,
		RateLimitPerMin: cfg.Classifier.RateLimitPerMin,
		CacheSize:       cfg.Classifier.CacheSize,
		CacheTTL:        cfg.Classifier.CacheTTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
