package discovery

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fakts/models"
)

// StaticDiscovery returns one fixed, pre-configured endpoint and never
// touches the network. Used when the configuration service address is known
// up front.
type StaticDiscovery struct {
	endpoint models.Endpoint
}

// NewStaticDiscovery builds a static discovery for the given endpoint. When
// only a base URL is known the remaining metadata fields stay empty; the
// endpoint is considered fully known and is not probed.
func NewStaticDiscovery(endpoint models.Endpoint) *StaticDiscovery {
	return &StaticDiscovery{endpoint: endpoint}
}

// Discover implements Discovery. It fails only when no base URL was
// configured.
func (d *StaticDiscovery) Discover(_ context.Context, _ *models.ClaimRequest) (models.Endpoint, error) {
	if d.endpoint.BaseURL == "" {
		return models.Endpoint{}, fmt.Errorf("%w: static discovery without base url", ErrDiscovery)
	}

	return d.endpoint, nil
}
