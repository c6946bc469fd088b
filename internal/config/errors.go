package config

import "errors"

// Validation errors returned by the config views when required configuration
// groups are incomplete or invalid.
var (
	// ErrInvalidDiscoveryConfigs indicates invalid discovery settings
	// (for example, an out-of-range broadcast port or empty magic phrase).
	ErrInvalidDiscoveryConfigs = errors.New("invalid discovery configuration")
	// ErrInvalidGrantConfigs indicates invalid demand/claim settings
	// (for example, missing client identity).
	ErrInvalidGrantConfigs = errors.New("invalid grant configuration")
	// ErrInvalidServerConfigs indicates invalid dev-server settings
	// (for example, missing listen address or token sign key).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
