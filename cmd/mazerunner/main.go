// Package main is the entry point for Maze Runner.
package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/mazerunner/internal/config"
	"github.com/samdwyer/mazerunner/internal/game"
	"github.com/samdwyer/mazerunner/internal/telemetry"
	"github.com/samdwyer/mazerunner/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	switch {
	case errors.Is(err, telemetry.ErrNoAPIKey):
		telemetry.Disable()
	case err != nil:
		// Not fatal - the game works without tracing.
		logger.WithError(err).Warn("telemetry setup failed")
		telemetry.Disable()
	default:
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.WithError(err).Warn("telemetry shutdown failed")
			}
		}()
	}

	session, err := game.NewSession(ctx, cfg.Game, cfg.Game.NewRand())
	if err != nil {
		log.Fatalf("Failed to generate maze: %v", err)
	}

	styles, err := cfg.Theme.Styles()
	if err != nil {
		log.Fatalf("Invalid theme: %v", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"size":             cfg.Game.Size,
		"wall_probability": cfg.Game.WallProbability,
		"seed":             cfg.Game.Seed,
	}).Info("starting maze runner")

	if err := ui.NewApp(screen, styles, session, logger).Run(ctx); err != nil {
		logger.WithError(err).Error("game error")
		os.Exit(1)
	}
}

// newLogger returns a logger writing to the configured file.
// An empty file name discards log output, since the terminal belongs to the game.
func newLogger(cfg config.Config) (*logrus.Logger, func(), error) {
	logger := logrus.New()
	logger.SetLevel(cfg.LogLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	if cfg.LogFile == "" {
		logger.SetOutput(io.Discard)
		return logger, func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger.SetOutput(f)
	return logger, func() { _ = f.Close() }, nil
}
