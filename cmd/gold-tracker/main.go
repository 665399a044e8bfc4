package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ntuan2502/gold-tracker/internal/config"
	"github.com/ntuan2502/gold-tracker/internal/platform/sqlite"
	"github.com/ntuan2502/gold-tracker/internal/provider/giavang"
	"github.com/ntuan2502/gold-tracker/internal/quote"
	quoterepo "github.com/ntuan2502/gold-tracker/internal/repository/quote"
	"github.com/ntuan2502/gold-tracker/internal/server"
	"github.com/ntuan2502/gold-tracker/internal/syncer"
)

func main() {
	cfg := config.Load()

	// Root context: cancelled on SIGINT/SIGTERM so in-flight reconciliations
	// wind down during graceful shutdown.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		slog.Error("invalid timezone", "timezone", cfg.Timezone, "error", err)
		os.Exit(1)
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	repo := quoterepo.NewRepository(db.DB)

	providerOpts := []giavang.Option{giavang.WithWorkers(cfg.Workers)}
	if cfg.ProviderURL != "" {
		providerOpts = append(providerOpts, giavang.WithEndpoint(cfg.ProviderURL))
	}
	provider := giavang.New(providerOpts...)

	quoteSvc := quote.NewService(repo, provider, quote.WithLocation(loc))

	// Background cache warmer for the trailing window.
	warmer := syncer.New(quoteSvc, cfg.SyncInterval, cfg.SyncWindow, loc)
	warmerDone := make(chan struct{})
	go func() {
		warmer.Run(rootCtx)
		close(warmerDone)
	}()

	// HTTP server — rootCtx is the BaseContext so request contexts are
	// cancelled on shutdown.
	srv := server.New(rootCtx, cfg.Port, quoteSvc)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("server started", "port", cfg.Port)
	<-done

	rootCancel()
	<-warmerDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
