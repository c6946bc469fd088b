package grant

import (
	"context"

	"github.com/MKhiriev/go-fakts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/grant_mock.go -package=mock

// Demander obtains an authorization token for a resolved endpoint.
//
// A Demander may perform interactive or network I/O (an out-of-band
// authorization flow); the protocol treats it as one opaque suspending
// operation with a single success or failure outcome. There are no partial
// tokens. The returned token is a secret and must never be logged.
type Demander interface {
	Demand(ctx context.Context, endpoint models.Endpoint, req *models.ClaimRequest) (string, error)
}

// Claimer exchanges a token for the configuration mapping, typically with
// one HTTP exchange against the endpoint's claim URL.
type Claimer interface {
	Claim(ctx context.Context, token string, endpoint models.Endpoint, req *models.ClaimRequest) (models.ConfigMapping, error)
}
