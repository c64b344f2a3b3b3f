// Package main is the entry point for textquest.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/textquest/internal/config"
	"github.com/samdwyer/textquest/internal/game"
	"github.com/samdwyer/textquest/internal/gamedata"
	"github.com/samdwyer/textquest/internal/logging"
	"github.com/samdwyer/textquest/internal/shop"
	"github.com/samdwyer/textquest/internal/telemetry"
	"github.com/samdwyer/textquest/internal/ui"
	"github.com/samdwyer/textquest/internal/world"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}
	setupOTelEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(logging.Config{
		Level:      cfg.LogLevel,
		Encoding:   cfg.LogEncoding,
		OutputPath: cfg.LogOutput,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, cfg.TelemetryEnabled)
	if err != nil {
		// Game still works without observability
		logger.Warn("telemetry setup failed", zap.Error(err))
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("telemetry shutdown failed", zap.Error(err))
			}
		}()
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("game stopped with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "textquest: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	enemies, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return fmt.Errorf("load enemies: %w", err)
	}
	dispatcher, err := world.LoadDispatcher()
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}
	catalog, err := gamedata.LoadItemCatalog()
	if err != nil {
		return fmt.Errorf("load shop: %w", err)
	}

	g, err := game.New(game.Options{
		Enemies:    enemies,
		Dispatcher: dispatcher,
		Ledger:     shop.NewLedger(catalog),
		Rand:       rand.New(rand.NewSource(seed)),
		Config: game.Config{
			Difficulty:    game.Difficulty(cfg.Difficulty),
			SpeedModifier: cfg.SpeedModifier,
			CheatsEnabled: cfg.Cheats,
		},
		EventInterval: cfg.EventInterval,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	for _, e := range enemies.All() {
		logger.Debug("enemy loaded",
			zap.String("id", e.ID),
			zap.Int("health", e.Health),
			zap.Int("damage", e.Damage),
			zap.Int("spawn_weight", e.SpawnWeight),
		)
	}
	logger.Info("game created",
		zap.Int64("seed", seed),
		zap.Int("enemies", enemies.Count()),
		zap.Int("events", len(dispatcher.Events())),
		zap.Int("items", catalog.Count()),
	)

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Close()

	return ui.NewFrontend(screen, g, cfg.TickInterval, logger).Run(ctx)
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_TEXTQUEST_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_TEXTQUEST_DATASET")
	if dataset == "" {
		dataset = "textquest"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
