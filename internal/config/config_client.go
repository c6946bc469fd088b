package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-fakts/models"
)

// ClientDiscovery holds the settings the client engine needs to locate an
// endpoint.
type ClientDiscovery struct {
	// EndpointURL selects static discovery when non-empty.
	EndpointURL string
	// Binding is the UDP listen binding for advertised discovery.
	Binding models.ListenBinding
	// Strict makes malformed beacon payloads terminate the listen session.
	Strict bool
	// ProbeTimeout bounds a single endpoint metadata probe.
	ProbeTimeout time.Duration
}

// ClientGrant holds the settings the client engine needs to demand and claim.
type ClientGrant struct {
	// ClientID identifies this application to the endpoint.
	ClientID string
	// ClientSecret is the pre-shared demand secret.
	ClientSecret string
	// Token is a pre-issued claim token (static demander).
	Token string
	// DeviceFlow selects the device-code demander.
	DeviceFlow bool
	// Scopes lists the configuration groups to resolve.
	Scopes []string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientConfig is the client-side configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Discovery contains endpoint location settings.
	Discovery ClientDiscovery
	// Grant contains demand/claim settings.
	Grant ClientGrant
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills wire defaults for the listen
// binding, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps an already loaded structured config into the client
// view. Split from [GetClientConfig] so tests can feed a config directly.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	binding := models.DefaultListenBinding()
	binding.Address = cfg.Discovery.BindAddress
	if cfg.Discovery.BroadcastPort != 0 {
		binding.Port = cfg.Discovery.BroadcastPort
	}
	if cfg.Discovery.MagicPhrase != "" {
		binding.MagicPhrase = cfg.Discovery.MagicPhrase
	}

	clientCfg := &ClientConfig{
		Discovery: ClientDiscovery{
			EndpointURL:  cfg.Discovery.EndpointURL,
			Binding:      binding,
			Strict:       cfg.Discovery.Strict,
			ProbeTimeout: cfg.Discovery.ProbeTimeout,
		},
		Grant: ClientGrant{
			ClientID:       cfg.Grant.ClientID,
			ClientSecret:   cfg.Grant.ClientSecret,
			Token:          cfg.Grant.Token,
			DeviceFlow:     cfg.Grant.DeviceFlow,
			Scopes:         cfg.Grant.Scopes,
			RequestTimeout: cfg.Grant.RequestTimeout,
		},
	}

	if clientCfg.Discovery.ProbeTimeout == 0 {
		clientCfg.Discovery.ProbeTimeout = 5 * time.Second
	}
	if clientCfg.Grant.RequestTimeout == 0 {
		clientCfg.Grant.RequestTimeout = 15 * time.Second
	}

	return clientCfg, clientCfg.validate()
}
