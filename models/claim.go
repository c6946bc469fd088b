// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ClaimRequest is the opaque context threaded through the demand and claim
// phases. The protocol engine passes it by pointer and never mutates it.
type ClaimRequest struct {
	// ClientID identifies the requesting application to the endpoint.
	ClientID string `json:"client_id"`

	// Scopes lists the configuration groups the caller wants to claim.
	Scopes []string `json:"scopes"`

	// Context carries free-form key/value hints for demanders that need
	// extra input (for example a pre-shared secret for the demand exchange).
	Context map[string]string `json:"-"`
}

// ContextValue returns the named hint from Context, or "" when absent.
func (r *ClaimRequest) ContextValue(key string) string {
	if r == nil || r.Context == nil {
		return ""
	}
	return r.Context[key]
}

// ConfigMapping is the final artifact of a claim: configuration keys mapped
// to scalar or structured values. A mapping is only ever exposed as a
// completed snapshot and is replaced wholesale on the next successful claim.
type ConfigMapping map[string]any

// Clone returns a shallow copy so cached mappings cannot be mutated through
// a caller's reference.
func (m ConfigMapping) Clone() ConfigMapping {
	if m == nil {
		return nil
	}
	out := make(ConfigMapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// DemandRequest is the wire body of the client-credentials demand exchange.
type DemandRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// DemandResponse is the wire body returned by a successful demand exchange.
// Token is a secret and must never be logged.
type DemandResponse struct {
	Token string `json:"token"`
}

// ClaimBody is the wire body posted to an endpoint's claim URL.
type ClaimBody struct {
	Token  string   `json:"token"`
	Scopes []string `json:"scopes"`
}

// Device-flow challenge states reported by the token poll endpoint.
const (
	ChallengeStatusPending = "pending"
	ChallengeStatusGranted = "granted"
)

// ChallengeRequest starts a device-code authorization flow.
type ChallengeRequest struct {
	ClientID string   `json:"client_id"`
	Scopes   []string `json:"scopes"`
}

// ChallengeResponse describes a started device-code flow.
type ChallengeResponse struct {
	// DeviceCode is the secret polling handle for this challenge.
	DeviceCode string `json:"device_code"`

	// UserCode is the short code a human approves out of band.
	UserCode string `json:"user_code"`

	// Interval is the suggested polling interval in seconds.
	Interval int `json:"interval"`
}

// ChallengeApproveRequest approves a device-code flow by its user code.
type ChallengeApproveRequest struct {
	UserCode string `json:"user_code"`
}

// ChallengePollRequest polls a started device-code flow for its outcome.
type ChallengePollRequest struct {
	DeviceCode string `json:"device_code"`
}

// ChallengePollResponse reports the current state of a device-code flow.
// Token is only set when Status is ChallengeStatusGranted.
type ChallengePollResponse struct {
	Status string `json:"status"`
	Token  string `json:"token,omitempty"`
}
