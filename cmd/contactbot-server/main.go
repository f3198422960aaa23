// Package main provides the directory REST server for contactbot.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raphaelgruber/contactbot-go/internal/assistant"
	"github.com/raphaelgruber/contactbot-go/internal/config"
	"github.com/raphaelgruber/contactbot-go/internal/metrics"
	"github.com/raphaelgruber/contactbot-go/internal/server"
	"github.com/raphaelgruber/contactbot-go/internal/store"
)

var version = "0.1.0"

func main() {
	wipeDB := flag.Bool("wipe", false, "wipe all data from database on startup (testing only)")
	flag.Parse()

	cfg := config.Load()

	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer func() {
		_ = cleanup()
	}()
	slog.SetDefault(logger)

	logger.Info("starting contactbot-server", "port", cfg.ServerPort, "version", version)

	collector := metrics.NewCollector()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := store.NewClient(ctx, store.Config{
		URL:       cfg.SurrealDBURL,
		Namespace: cfg.SurrealDBNamespace,
		Database:  cfg.SurrealDBDatabase,
		Username:  cfg.SurrealDBUser,
		Password:  cfg.SurrealDBPass,
		AuthLevel: cfg.SurrealDBAuthLevel,
	}, collector, logger)
	if err != nil {
		cancel()
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := db.InitSchema(ctx); err != nil {
		cancel()
		logger.Error("failed to initialize schema", "error", err)
		os.Exit(1)
	}
	if *wipeDB || os.Getenv("CONTACTBOT_WIPE_DB") == "true" {
		if err := db.WipeData(ctx); err != nil {
			cancel()
			logger.Error("failed to wipe database", "error", err)
			os.Exit(1)
		}
	}
	cancel()
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// The assistant is optional; the directory works without an LLM.
	var chatService server.Assistant
	model, err := assistant.NewModel(cfg)
	if err != nil {
		logger.Warn("assistant disabled", "error", err)
	} else {
		chatService = assistant.NewService(model, logger)
		logger.Info("assistant enabled", "provider", cfg.LLMProvider, "model", model.Model())
	}

	srv := server.New(db, chatService, collector, logger, version)

	httpServer := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      srv.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second, // Long for LLM responses
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("REST API available", "url", "http://localhost:"+cfg.ServerPort+"/")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
