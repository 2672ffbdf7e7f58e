package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MikeSquared-Agency/VendorEval/internal/api"
	"github.com/MikeSquared-Agency/VendorEval/internal/catalog"
	"github.com/MikeSquared-Agency/VendorEval/internal/config"
	"github.com/MikeSquared-Agency/VendorEval/internal/evaluation"
	"github.com/MikeSquared-Agency/VendorEval/internal/hermes"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logging.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Vendor catalog and evaluation template, loaded once
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Error("failed to load vendor catalog", "error", err)
		os.Exit(1)
	}
	tmpl, err := evaluation.LoadTemplate(cfg.Template.Path)
	if err != nil {
		logger.Error("failed to load evaluation template", "error", err)
		os.Exit(1)
	}
	logger.Info("catalog loaded", "vendors", len(cat.Names()), "sections", len(tmpl.Sections))

	// Hermes (optional)
	var hermesClient hermes.Client
	if cfg.Hermes.URL != "" {
		hc, err := hermes.NewNATSClient(ctx, cfg.Hermes.URL, logger, hermes.WithMaxAge(cfg.Hermes.MaxAge))
		if err != nil {
			logger.Warn("failed to connect to hermes, running without events", "error", err)
		} else {
			hermesClient = hc
			defer hc.Close()
			logger.Info("connected to hermes")
		}
	}

	// API server
	router := api.NewRouter(cat, tmpl, hermesClient, cfg, logger)
	apiServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Metrics server
	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler:           api.NewMetricsRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}
