package discovery

import "errors"

var (
	// ErrProbe indicates an endpoint metadata fetch failed: transport
	// error, timeout, non-2xx status, or a malformed metadata body.
	// Recoverable for discovery as a whole; the orchestrator moves on to
	// the next beacon.
	ErrProbe = errors.New("endpoint probe failed")

	// ErrDiscovery indicates no endpoint could be resolved: the beacon
	// stream terminated without a successful probe. Fatal to the current
	// resolve cycle.
	ErrDiscovery = errors.New("no endpoint found")
)
