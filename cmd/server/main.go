package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/handler"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/server"
	"github.com/MKhiriev/go-lost-found/internal/service"
	"github.com/MKhiriev/go-lost-found/internal/store"
	"github.com/MKhiriev/go-lost-found/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("lost-found-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = logger.NewLoggerWithLevel("lost-found-server", cfg.App.LogLevel)
	if buildVersion != "" && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	uploads, err := store.NewUploadStorage(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating upload storage")
	}

	storages := store.NewStorages(db, uploads)

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
