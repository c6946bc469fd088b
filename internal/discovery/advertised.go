package discovery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fakts/internal/logger"
	"github.com/MKhiriev/go-fakts/models"
)

// AdvertisedDiscovery resolves an endpoint by listening for broadcast
// beacons and committing to the first one that answers a metadata probe.
//
// Beacons are probed strictly sequentially in arrival order; there is no
// scoring and no concurrent probing. A failed probe is logged and the next
// beacon is awaited. The listen loop itself has no deadline and runs until
// a probe succeeds or the caller cancels.
type AdvertisedDiscovery struct {
	binding      models.ListenBinding
	strict       bool
	probeTimeout time.Duration

	source BeaconSource
	prober EndpointProber
	logger *logger.Logger
}

// NewAdvertisedDiscovery wires a beacon source and a prober into a
// first-advertised discovery for the given binding.
func NewAdvertisedDiscovery(
	binding models.ListenBinding,
	strict bool,
	probeTimeout time.Duration,
	source BeaconSource,
	prober EndpointProber,
	log *logger.Logger,
) *AdvertisedDiscovery {
	if probeTimeout <= 0 {
		probeTimeout = 5 * time.Second
	}

	return &AdvertisedDiscovery{
		binding:      binding,
		strict:       strict,
		probeTimeout: probeTimeout,
		source:       source,
		prober:       prober,
		logger:       log,
	}
}

// Discover implements Discovery. First probe success wins: the listen
// session is torn down before the winning endpoint is returned. When the
// beacon stream terminates without any successful probe, the error wraps
// ErrDiscovery.
func (d *AdvertisedDiscovery) Discover(ctx context.Context, _ *models.ClaimRequest) (models.Endpoint, error) {
	session, err := d.source.ListenDeduplicated(ctx, d.binding, d.strict)
	if err != nil {
		return models.Endpoint{}, fmt.Errorf("%w: %s", ErrDiscovery, err)
	}
	defer session.Close()

	for {
		b, err := session.Next(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return models.Endpoint{}, err
			}
			return models.Endpoint{}, fmt.Errorf("%w: %s", ErrDiscovery, err)
		}

		endpoint, err := d.probe(ctx, b.URL)
		switch {
		case err == nil:
			d.logger.Info().
				Str("url", b.URL).
				Str("endpoint", endpoint.Name).
				Msg("endpoint resolved from beacon")
			return endpoint, nil
		case errors.Is(err, ErrProbe):
			// recoverable: the beacon pointed at a dead or bogus endpoint
			d.logger.Warn().Err(err).Str("url", b.URL).Msg("beacon endpoint not reachable, waiting for next beacon")
		default:
			return models.Endpoint{}, err
		}
	}
}

// probe runs one metadata fetch under the per-probe timeout. A timeout of
// the probe itself is recoverable; only the parent context's cancellation
// aborts discovery.
func (d *AdvertisedDiscovery) probe(ctx context.Context, url string) (models.Endpoint, error) {
	probeCtx, cancel := context.WithTimeout(ctx, d.probeTimeout)
	defer cancel()

	endpoint, err := d.prober.Probe(probeCtx, url)
	if err != nil && ctx.Err() == nil && probeCtx.Err() != nil {
		return models.Endpoint{}, fmt.Errorf("%w: timeout after %s", ErrProbe, d.probeTimeout)
	}

	return endpoint, err
}
