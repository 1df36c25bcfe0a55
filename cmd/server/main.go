package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-bookmark-merger/internal/app"
	"github.com/MKhiriev/go-bookmark-merger/internal/config"
	"github.com/MKhiriev/go-bookmark-merger/internal/handler"
	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/internal/server"
	"github.com/MKhiriev/go-bookmark-merger/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("bookmark-merger-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	application, err := app.New(ctx, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}
	defer application.Close()

	if err = application.Services.InitialSyncService.Restore(ctx); err != nil {
		log.Fatal().Err(err).Msg("error restoring bookmarks")
	}

	handlers, err := handler.NewHandlers(application.Services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, application.Workers, application.Services.FaviconQueue.Close, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
