package main

import (
	"context"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/oggyb/interview-match/internal/app"
	"github.com/oggyb/interview-match/internal/config"
	"github.com/oggyb/interview-match/internal/db"
	"github.com/oggyb/interview-match/internal/logger"
	"github.com/oggyb/interview-match/internal/server"
	"github.com/oggyb/interview-match/internal/service/allowance"
	"github.com/oggyb/interview-match/internal/service/explore"
	"github.com/oggyb/interview-match/internal/service/interview"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L() // slog.Logger pointer

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appCtx, closer, err := app.Open(ctx, cfg, log)
	if err != nil {
		log.Error("failed to init dependencies", "err", err)
		return
	}
	defer closer.Close()

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(appCtx.DB); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	registrars := []server.Registrar{
		explore.NewRegistrar(appCtx),
		allowance.NewRegistrar(appCtx),
		interview.NewRegistrar(appCtx),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting gRPC server", "addr", cfg.GRPC.Host+":"+cfg.GRPC.Port)
		return server.StartGRPCServer(ctx, cfg, registrars...)
	})
	g.Go(func() error {
		log.Info("starting health endpoint", "addr", cfg.HTTP.Addr)
		return server.StartHTTPServer(ctx, cfg.HTTP.Addr, server.NewHealthHTTP(appCtx.DB, appCtx.RedisCache))
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", "err", err)
	}
}
