// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package discovery locates a configuration endpoint for the grant
// protocol.
//
// Two interchangeable variants implement the Discovery capability:
// StaticDiscovery returns a pre-configured endpoint without touching the
// network, and AdvertisedDiscovery listens for UDP beacons and commits to
// the first advertised endpoint that answers a metadata probe.
package discovery
