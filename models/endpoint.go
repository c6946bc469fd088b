// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Endpoint describes a resolved, reachable configuration service.
//
// An Endpoint is only ever constructed from a successful metadata probe or
// from static configuration; a partially populated Endpoint is never handed
// to the grant protocol. The JSON tags match the wire shape served by the
// endpoint's well-known metadata document.
type Endpoint struct {
	// BaseURL is the root address of the configuration service.
	BaseURL string `json:"base_url"`

	// Name is a human readable name for the endpoint.
	Name string `json:"name"`

	// Description is an optional human readable description.
	Description string `json:"description,omitempty"`

	// RetrieveURL is the optional address tokens are demanded at. When
	// empty, callers derive it from BaseURL.
	RetrieveURL string `json:"retrieve_url,omitempty"`

	// ClaimURL is the optional address tokens are exchanged for
	// configuration values at. When empty, callers derive it from BaseURL.
	ClaimURL string `json:"claim_url,omitempty"`

	// Version is the protocol version advertised by the endpoint.
	Version string `json:"version,omitempty"`
}
