// Package main - Entry point for the margin-suggest HTTP service
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"margin-suggest/api"
	"margin-suggest/core/engine"
	"margin-suggest/internal/config"
	"margin-suggest/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "margin-suggest server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgFile := flag.String("config", "", "config file (JSON)")
	envFile := flag.String("env-file", ".env", "dotenv file with MARGIN_* overrides")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg := config.ServerDefault()
	if *cfgFile != "" {
		loaded, err := config.LoadFrom(*cfgFile, cfg)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.LoadEnv(*envFile); err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Address = *addr
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	defer logging.Sync()

	eng, err := engine.NewFromConfig(cfg, logging.Named("engine"))
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	srv := api.NewServer(eng, cfg.Server, logging.Named("api")).HTTPServer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info("server listening",
			zap.String("address", cfg.Server.Address),
			zap.String("version", engine.Version),
			zap.Bool("metrics", cfg.Server.EnableMetrics),
			zap.String("catalog", cfg.Engine.CatalogPath),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
