package main

import (
	"fmt"

	"github.com/MKhiriev/go-fakts/internal/config"
	handlerhttp "github.com/MKhiriev/go-fakts/internal/handler/http"
	"github.com/MKhiriev/go-fakts/internal/logger"
	"github.com/MKhiriev/go-fakts/internal/server"
	"github.com/MKhiriev/go-fakts/internal/service"
	"github.com/MKhiriev/go-fakts/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-fakts-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.HTTPAddress).
		Str("name", cfg.Name).
		Int("clients", len(cfg.Clients)).
		Int("groups", len(cfg.Groups)).
		Msg("received configs")

	services := service.NewServices(cfg, log)
	handler := handlerhttp.NewHandler(services, cfg, log)

	var background *workers.Workers
	if cfg.AdvertiseURL != "" {
		background = workers.NewWorkers(
			workers.NewAdvertiser(cfg.Binding, cfg.AdvertiseURL, cfg.AdvertiseInterval, log),
		)
	}

	srv, err := server.NewServer(handler.Init(), background, cfg, log)
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
