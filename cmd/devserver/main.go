package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/studentdiary/internal/buildinfo"
	"github.com/dmitrijs2005/studentdiary/internal/devserver"
	"github.com/dmitrijs2005/studentdiary/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := devserver.LoadConfig(os.Args[1:])

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	store := devserver.NewStore()
	if cfg.Seed {
		if err := devserver.Seed(store); err != nil {
			log.Fatalf("seed: %v", err)
		}
		logger.Info(ctx, "demo data loaded", "password", devserver.SeedPassword)
	}

	srv := devserver.NewServer(cfg, store, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}

}
