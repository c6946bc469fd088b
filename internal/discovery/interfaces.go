package discovery

import (
	"context"

	"github.com/MKhiriev/go-fakts/internal/beacon"
	"github.com/MKhiriev/go-fakts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/discovery_mock.go -package=mock

// Discovery locates a configuration endpoint for a claim request.
//
// Implementations either already know the endpoint (static) or find one on
// the network (advertised broadcast). On failure they return an error
// wrapping ErrDiscovery.
type Discovery interface {
	// Discover resolves an endpoint for the given request. The request is
	// passed by pointer and never mutated.
	Discover(ctx context.Context, req *models.ClaimRequest) (models.Endpoint, error)
}

// EndpointProber materializes an Endpoint descriptor from a candidate URL.
//
// A probe performs exactly one outbound metadata fetch and never retries;
// retry policy belongs to the discovery orchestrator.
type EndpointProber interface {
	// Probe fetches the endpoint metadata document behind url. Failures
	// (network, timeout, malformed response) wrap ErrProbe.
	Probe(ctx context.Context, url string) (models.Endpoint, error)
}

// BeaconSession is one live beacon listen session, pulled one beacon at a
// time and released with Close. Satisfied by *beacon.Session.
type BeaconSession interface {
	Next(ctx context.Context) (models.Beacon, error)
	Close() error
}

// BeaconSource opens deduplicated beacon listen sessions. The production
// source wraps *beacon.Listener; tests substitute scripted sessions.
type BeaconSource interface {
	ListenDeduplicated(ctx context.Context, binding models.ListenBinding, strict bool) (BeaconSession, error)
}

// listenerSource adapts *beacon.Listener to the BeaconSource interface.
type listenerSource struct {
	listener *beacon.Listener
}

// NewBeaconSource wraps a beacon listener for use by AdvertisedDiscovery.
func NewBeaconSource(l *beacon.Listener) BeaconSource {
	return listenerSource{listener: l}
}

func (s listenerSource) ListenDeduplicated(ctx context.Context, binding models.ListenBinding, strict bool) (BeaconSession, error) {
	session, err := s.listener.ListenDeduplicated(ctx, binding, strict)
	if err != nil {
		return nil, err
	}

	return session, nil
}
