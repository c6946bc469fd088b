package http

import (
	"github.com/MKhiriev/go-fakts/internal/config"
	"github.com/MKhiriev/go-fakts/internal/logger"
	"github.com/MKhiriev/go-fakts/internal/service"
	"github.com/MKhiriev/go-fakts/models"
)

type Handler struct {
	services *service.Services

	// endpoint is the metadata document served at the well-known path.
	endpoint models.Endpoint

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		endpoint: models.Endpoint{
			Name:        cfg.Name,
			Description: "go-fakts development configuration endpoint",
			Version:     cfg.Version,
		},
		logger: logger,
	}
}
