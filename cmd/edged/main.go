package main

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-edge-daemon/internal/config"
	"github.com/MKhiriev/go-edge-daemon/internal/docker"
	httphandler "github.com/MKhiriev/go-edge-daemon/internal/handler/http"
	"github.com/MKhiriev/go-edge-daemon/internal/logger"
	"github.com/MKhiriev/go-edge-daemon/internal/server"
	"github.com/MKhiriev/go-edge-daemon/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("edged")

	settingsPath, err := resolveSettingsPath()
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving settings path")
	}

	settings, err := config.Load[docker.Config](settingsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading settings")
	}

	// patch workload identity before anything launches the module
	runtime := settings.Runtime()
	runtime.SetEnv("IOTEDGE_MODULEID", runtime.Name)
	runtime.SetEnv("IOTEDGE_INSTANCEID", uuid.NewString())

	log.Info().
		Str("hostname", settings.Hostname()).
		Str("provisioning", settings.Provisioning().Source()).
		Str("module", runtime.Name).
		Str("docker_uri", settings.DockerURI().String()).
		Msg("settings loaded")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	handlers := httphandler.NewHandler(settings, buildInfo, log)

	srv, err := server.NewServer(handlers.Init(), settings.ManagementURI(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating management server")
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
