package grant

import "errors"

var (
	// ErrDemand indicates the authorization token could not be obtained.
	// Fatal to the current resolve cycle; never retried by the protocol.
	ErrDemand = errors.New("token demand failed")

	// ErrClaim indicates the token could not be exchanged for
	// configuration values. Fatal to the current resolve cycle; never
	// retried by the protocol.
	ErrClaim = errors.New("configuration claim failed")
)
