package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-content-keeper/internal/adapter"
	"github.com/MKhiriev/go-content-keeper/internal/client"
	"github.com/MKhiriev/go-content-keeper/internal/config"
	"github.com/MKhiriev/go-content-keeper/internal/logger"
	"github.com/MKhiriev/go-content-keeper/internal/service"
	"github.com/MKhiriev/go-content-keeper/internal/store"
	"github.com/MKhiriev/go-content-keeper/internal/tui"
	"github.com/MKhiriev/go-content-keeper/internal/workers"
	"github.com/MKhiriev/go-content-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, args, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	log, err := logger.NewClientLogger("content-keeper", cfg.App.LogFile).WithLevel(cfg.App.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating storages")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer storages.Close()

	graphQLClient := adapter.NewGraphQLClient(cfg.Adapter, cfg.App, log)
	services := service.NewContentServices(storages, adapter.NewRemotes(graphQLClient), log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(services, buildInfo, log)
	bgWorkers := workers.NewWorkers(
		workers.NewRefreshWorker(services.Loaders(), cfg.Workers.RefreshInterval, log),
	)

	app, err := client.NewApp(services, ui, bgWorkers, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return 1
	}
	defer app.Close()

	if err = app.Run(ctx, args); err != nil {
		return 1
	}
	return 0
}
