package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"agora/internal/platform/config"
	"agora/internal/platform/httpserver"
	"agora/internal/platform/logger"
	id "agora/pkg/domain"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.IsProduction())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	infra, err := openInfra(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer infra.Close()

	app, err := buildApp(cfg, infra, log)
	if err != nil {
		return err
	}

	if cfg.BootstrapAdmin != "" {
		adminID, err := id.ParseUserID(cfg.BootstrapAdmin)
		if err != nil {
			return fmt.Errorf("AGORA_BOOTSTRAP_ADMIN: %w", err)
		}
		if err := app.members.SeedSystemAdmin(ctx, adminID); err != nil {
			return fmt.Errorf("seed system admin: %w", err)
		}
	}

	srv := httpserver.New(cfg.Addr, app.router)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting agora", "addr", cfg.Addr, "environment", cfg.Environment)
		return httpserver.Run(ctx, srv)
	})
	if infra.consume != nil {
		g.Go(func() error {
			return infra.consume(ctx)
		})
	}
	if cfg.Payout.BatchEnabled {
		g.Go(func() error {
			runPayoutBatches(ctx, app, cfg.Payout.BatchInterval, log)
			return nil
		})
	}
	return g.Wait()
}

// runPayoutBatches pays out every territory on a fixed interval. A failed run
// is logged and retried on the next tick.
func runPayoutBatches(ctx context.Context, app *application, interval time.Duration, log *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := app.payouts.RunScheduled(ctx)
			if err != nil {
				log.ErrorContext(ctx, "scheduled payout run failed", "processed", n, "error", err)
				continue
			}
			log.InfoContext(ctx, "scheduled payout run finished", "processed", n)
		}
	}
}
