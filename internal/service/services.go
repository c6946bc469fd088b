package service

import (
	"github.com/MKhiriev/go-fakts/internal/config"
	"github.com/MKhiriev/go-fakts/internal/logger"
	"github.com/MKhiriev/go-fakts/internal/utils"
)

type Services struct {
	TokenService     TokenService
	ChallengeService ChallengeService
	GroupService     GroupService
}

func NewServices(cfg *config.ServerConfig, logger *logger.Logger) *Services {
	tokenService := NewTokenService(cfg, logger)

	return &Services{
		TokenService:     tokenService,
		ChallengeService: NewChallengeService(tokenService, utils.NewUUIDGenerator(), logger),
		GroupService:     NewGroupService(cfg.Groups, logger),
	}
}
