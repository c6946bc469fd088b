package grant

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fakts/models"
)

// StaticDemander hands out a pre-issued token without any exchange. Used
// when the operator already holds a valid claim token.
type StaticDemander struct {
	token string
}

// NewStaticDemander builds a demander around a pre-issued token.
func NewStaticDemander(token string) *StaticDemander {
	return &StaticDemander{token: token}
}

// Demand implements Demander.
func (d *StaticDemander) Demand(_ context.Context, _ models.Endpoint, _ *models.ClaimRequest) (string, error) {
	if d.token == "" {
		return "", fmt.Errorf("no pre-issued token configured")
	}

	return d.token, nil
}
