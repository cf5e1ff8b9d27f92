package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/college-organizer/internal/app"
	"github.com/MKhiriev/college-organizer/internal/config"
	"github.com/MKhiriev/college-organizer/internal/logger"
	"github.com/MKhiriev/college-organizer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = "college-organizer-server"

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger(role)
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log, err = logger.New(role, os.Stdout, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log = logger.NewLogger(role)
		log.Fatal().Err(err).Msg("error creating logger")
	}

	log.Debug().
		Str("port", cfg.Server.Port).
		Bool("serverless", cfg.Server.IsServerless()).
		Bool("database", cfg.Storage.DB.DSN != "").
		Msg("received configs")

	application, err := app.New(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating app")
	}

	runErr := application.Run()
	if err = application.Close(); err != nil {
		log.Error().Err(err).Msg("error closing app")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("server run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
