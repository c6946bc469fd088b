package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-fakts/models"
)

// ServerConfig is the dev-server configuration view assembled from
// [StructuredConfig].
type ServerConfig struct {
	// HTTPAddress is the listen address of the HTTP server.
	HTTPAddress string
	// Name is the endpoint name served in the metadata document.
	Name string
	// Version is the protocol version served in the metadata document.
	Version string
	// TokenSignKey signs issued claim tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string
	// TokenDuration is the validity window of issued tokens.
	TokenDuration time.Duration
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
	// AdvertiseURL is the base URL broadcast in beacons; empty disables
	// the advertiser.
	AdvertiseURL string
	// AdvertiseInterval is the delay between beacon broadcasts.
	AdvertiseInterval time.Duration
	// Binding carries the UDP port and magic phrase for beacon frames.
	Binding models.ListenBinding
	// Clients maps client IDs to bcrypt hashes of their secrets.
	Clients map[string]string
	// Groups maps group names to the configuration mappings served on claim.
	Groups map[string]map[string]any
}

// GetServerConfig builds and validates the dev-server config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewServerConfig(cfg)
}

// NewServerConfig maps an already loaded structured config into the server
// view, filling wire and lifecycle defaults.
func NewServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	binding := models.DefaultListenBinding()
	if cfg.Server.BroadcastPort != 0 {
		binding.Port = cfg.Server.BroadcastPort
	}
	if cfg.Server.MagicPhrase != "" {
		binding.MagicPhrase = cfg.Server.MagicPhrase
	}

	serverCfg := &ServerConfig{
		HTTPAddress:       cfg.Server.HTTPAddress,
		Name:              cfg.Server.Name,
		Version:           cfg.App.Version,
		TokenSignKey:      cfg.App.TokenSignKey,
		TokenIssuer:       cfg.App.TokenIssuer,
		TokenDuration:     cfg.App.TokenDuration,
		RequestTimeout:    cfg.Server.RequestTimeout,
		AdvertiseURL:      cfg.Server.AdvertiseURL,
		AdvertiseInterval: cfg.Server.AdvertiseInterval,
		Binding:           binding,
		Clients:           cfg.Server.Clients,
		Groups:            cfg.Server.Groups,
	}

	if serverCfg.Name == "" {
		serverCfg.Name = "go-fakts dev server"
	}
	if serverCfg.TokenIssuer == "" {
		serverCfg.TokenIssuer = "go-fakts"
	}
	if serverCfg.TokenDuration == 0 {
		serverCfg.TokenDuration = time.Hour
	}
	if serverCfg.AdvertiseInterval == 0 {
		serverCfg.AdvertiseInterval = 2 * time.Second
	}
	if serverCfg.RequestTimeout == 0 {
		serverCfg.RequestTimeout = 30 * time.Second
	}

	return serverCfg, serverCfg.validate()
}
