package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-fakts/internal/beacon"
	"github.com/MKhiriev/go-fakts/internal/config"
	"github.com/MKhiriev/go-fakts/internal/discovery"
	"github.com/MKhiriev/go-fakts/internal/fakts"
	"github.com/MKhiriev/go-fakts/internal/grant"
	"github.com/MKhiriev/go-fakts/internal/logger"
	"github.com/MKhiriev/go-fakts/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-fakts-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if len(cfg.Grant.Scopes) == 0 {
		log.Fatal().Msg("no configuration groups requested, pass -group or GRANT_SCOPES")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	facade := fakts.New(
		newDiscovery(cfg, log),
		grant.NewProtocol(newDemander(cfg, log), grant.NewRemoteClaimer(cfg.Grant.RequestTimeout), log),
		cfg.Grant.ClientID,
		log,
	)

	resolved := make(map[string]models.ConfigMapping, len(cfg.Grant.Scopes))
	for _, group := range cfg.Grant.Scopes {
		mapping, err := facade.Resolve(ctx, group, false)
		if err != nil {
			log.Fatal().Err(err).Str("group", group).Msg("configuration resolve failed")
		}
		resolved[group] = mapping
	}

	out, err := json.MarshalIndent(resolved, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("error encoding resolved configuration")
	}

	// resolved configuration goes to stdout, logs go to stderr
	fmt.Println(string(out))
}

// newDiscovery picks static discovery when an endpoint URL is configured and
// beacon-advertised discovery otherwise.
func newDiscovery(cfg *config.ClientConfig, log *logger.Logger) fakts.Discoverer {
	if cfg.Discovery.EndpointURL != "" {
		return discovery.NewStaticDiscovery(models.Endpoint{BaseURL: cfg.Discovery.EndpointURL})
	}

	return discovery.NewAdvertisedDiscovery(
		cfg.Discovery.Binding,
		cfg.Discovery.Strict,
		cfg.Discovery.ProbeTimeout,
		discovery.NewBeaconSource(beacon.NewListener(log)),
		discovery.NewHTTPProber(cfg.Discovery.ProbeTimeout),
		log,
	)
}

// newDemander picks the grant mode: pre-issued token, device-code flow, or
// the client-credentials exchange.
func newDemander(cfg *config.ClientConfig, log *logger.Logger) grant.Demander {
	switch {
	case cfg.Grant.Token != "":
		return grant.NewStaticDemander(cfg.Grant.Token)
	case cfg.Grant.DeviceFlow:
		return grant.NewDeviceCodeDemander(cfg.Grant.RequestTimeout, log)
	default:
		return grant.NewRemoteDemander(cfg.Grant.ClientSecret, cfg.Grant.RequestTimeout)
	}
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
