package fakts

import (
	"context"

	"github.com/MKhiriev/go-fakts/models"
)

// Discoverer resolves a configuration endpoint for a claim request.
// Satisfied by the discovery package's implementations.
type Discoverer interface {
	Discover(ctx context.Context, req *models.ClaimRequest) (models.Endpoint, error)
}

// Runner executes the two-phase claim exchange against a resolved endpoint.
// Satisfied by *grant.Protocol.
type Runner interface {
	Run(ctx context.Context, endpoint models.Endpoint, req *models.ClaimRequest) (models.ConfigMapping, error)
}
