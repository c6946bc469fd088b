// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ListenBinding identifies one UDP discovery session. It is immutable once a
// listen session has started.
type ListenBinding struct {
	// Address is the local address to bind to. Empty means all interfaces.
	Address string `json:"address"`

	// Port is the UDP port beacons are broadcast on (1–65535).
	Port int `json:"port"`

	// MagicPhrase is the prefix every valid beacon frame must carry.
	// Datagrams without it are treated as unrelated broadcast traffic.
	MagicPhrase string `json:"magic_phrase"`
}

// Default wire parameters for beacon discovery.
const (
	DefaultBroadcastPort = 45678
	DefaultMagicPhrase   = "beacon-fakts"
)

// DefaultListenBinding returns the binding used when no discovery
// configuration is provided: all interfaces, port 45678, phrase
// "beacon-fakts".
func DefaultListenBinding() ListenBinding {
	return ListenBinding{
		Address:     "",
		Port:        DefaultBroadcastPort,
		MagicPhrase: DefaultMagicPhrase,
	}
}

// Beacon is one decoded broadcast datagram advertising a candidate
// configuration endpoint. Deduplication key is URL.
type Beacon struct {
	// URL points at the advertised endpoint's base address.
	URL string `json:"url"`
}
