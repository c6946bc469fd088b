// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The merged config intentionally allows partial population: the client and
// server views perform the role-specific checks.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Discovery.Binding.Port < 1 || cfg.Discovery.Binding.Port > 65535 {
		return ErrInvalidDiscoveryConfigs
	}

	if cfg.Discovery.Binding.MagicPhrase == "" {
		return ErrInvalidDiscoveryConfigs
	}

	if cfg.Grant.ClientID == "" {
		return ErrInvalidGrantConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.TokenSignKey == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Binding.Port < 1 || cfg.Binding.Port > 65535 || cfg.Binding.MagicPhrase == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
