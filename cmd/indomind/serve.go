package main

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

	"github.com/spf13/cobra"

	"github.com/indomind-ai/indomind/pkg/config"
	"github.com/indomind-ai/indomind/pkg/gateway"
	"github.com/indomind-ai/indomind/pkg/history"
	"github.com/indomind-ai/indomind/pkg/models"
	"github.com/indomind-ai/indomind/pkg/registry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Indomind gateway server",
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := newLogger(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := history.Open(ctx, cfg.HistoryDSN, cfg.HistoryRetention)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close(context.Background())

	gemini, err := models.NewGeminiLLM(ctx, models.GeminiOptions{
		APIKey:          cfg.APIKey,
		Model:           cfg.Model,
		PollInterval:    cfg.VideoPollInterval,
		MaxPollAttempts: cfg.VideoMaxPollAttempts,
	})
	if err != nil {
		return fmt.Errorf("init gemini: %w", err)
	}

	var text models.TextModel = gemini
	if cfg.Provider != "" && cfg.Provider != "gemini" && cfg.Provider != "google" {
		text, err = models.NewTextModel(ctx, cfg.Provider, cfg.Model)
		if err != nil {
			return fmt.Errorf("init text provider: %w", err)
		}
	}

	server := gateway.NewServer(gateway.Options{
		Text:     text,
		Media:    gemini,
		Admin:    gemini,
		Registry: registry.NewDefault(),
		History:  store,
		Log:      log,
	})

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("gateway listening", "addr", cfg.ListenAddr, "provider", cfg.Provider)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
