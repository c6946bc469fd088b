// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for go-fakts.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token signing
	// parameters and the application version.
	App App `envPrefix:"APP_"`

	// Discovery holds the beacon listening and endpoint probing settings
	// used by the client engine.
	Discovery Discovery `envPrefix:"DISCOVERY_"`

	// Grant holds the demand/claim settings: client identity, grant mode,
	// and the requested configuration scopes.
	Grant Grant `envPrefix:"GRANT_"`

	// Server holds the dev configuration server settings, including the
	// beacon advertiser and the served configuration groups.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify issued JWT
	// tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// validated on every claim.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an issued token remains valid
	// (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Served in the endpoint metadata document.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Discovery holds settings for locating a configuration endpoint.
//
// When EndpointURL is set, discovery is static and no network listening
// happens. Otherwise beacons are awaited on BindAddress:BroadcastPort.
type Discovery struct {
	// EndpointURL, when non-empty, selects static discovery: the endpoint
	// is fully known and no beacon listening is performed.
	// Env: DISCOVERY_ENDPOINT_URL
	EndpointURL string `env:"ENDPOINT_URL"`

	// BindAddress is the local address the discovery socket binds to.
	// Empty means all interfaces.
	// Env: DISCOVERY_BIND_ADDRESS
	BindAddress string `env:"BIND_ADDRESS"`

	// BroadcastPort is the UDP port beacons are expected on.
	// Env: DISCOVERY_BROADCAST_PORT
	BroadcastPort int `env:"BROADCAST_PORT"`

	// MagicPhrase is the prefix a datagram must carry to count as a beacon.
	// Env: DISCOVERY_MAGIC_PHRASE
	MagicPhrase string `env:"MAGIC_PHRASE"`

	// Strict makes malformed beacon payloads terminate the listen session
	// instead of being skipped.
	// Env: DISCOVERY_STRICT
	Strict bool `env:"STRICT"`

	// ProbeTimeout bounds a single endpoint metadata probe. It is advisory
	// to the probe only; the listen loop itself has no deadline.
	// Env: DISCOVERY_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`
}

// Grant holds the client-side demand/claim settings.
type Grant struct {
	// ClientID identifies this application to the configuration endpoint.
	// Env: GRANT_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// ClientSecret is the pre-shared secret for the client-credentials
	// demand exchange. Must be kept confidential.
	// Env: GRANT_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`

	// Token is a pre-issued claim token. When set, the static demander is
	// used and no demand exchange happens. Must be kept confidential.
	// Env: GRANT_TOKEN
	Token string `env:"TOKEN"`

	// DeviceFlow selects the device-code demander instead of the
	// client-credentials exchange.
	// Env: GRANT_DEVICE_FLOW
	DeviceFlow bool `env:"DEVICE_FLOW"`

	// Scopes lists the configuration groups the client resolves.
	// Env: GRANT_SCOPES (comma separated)
	Scopes []string `env:"SCOPES" envSeparator:","`

	// RequestTimeout is the default timeout for outbound demand and claim
	// requests.
	// Env: GRANT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds the dev configuration server settings.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Name is the human readable endpoint name served in the metadata
	// document.
	// Env: SERVER_NAME
	Name string `env:"NAME"`

	// AdvertiseURL is the endpoint base URL broadcast in beacon frames.
	// When empty the advertiser is disabled.
	// Env: SERVER_ADVERTISE_URL
	AdvertiseURL string `env:"ADVERTISE_URL"`

	// AdvertiseInterval is the delay between beacon broadcasts.
	// Env: SERVER_ADVERTISE_INTERVAL
	AdvertiseInterval time.Duration `env:"ADVERTISE_INTERVAL"`

	// BroadcastPort is the UDP port beacon frames are sent to.
	// Env: SERVER_BROADCAST_PORT
	BroadcastPort int `env:"BROADCAST_PORT"`

	// MagicPhrase is the prefix prepended to every broadcast beacon frame.
	// Env: SERVER_MAGIC_PHRASE
	MagicPhrase string `env:"MAGIC_PHRASE"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Clients maps client identifiers to bcrypt hashes of their secrets.
	// Only populated from the JSON config file.
	Clients map[string]string

	// Groups maps configuration group names to the key/value mappings
	// served on claim. Only populated from the JSON config file.
	Groups map[string]map[string]any
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
