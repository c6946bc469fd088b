package grant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-fakts/models"
)

// RemoteClaimer exchanges a token for configuration values with one POST
// against the endpoint's claim URL.
type RemoteClaimer struct {
	client *resty.Client
}

// NewRemoteClaimer builds the HTTP claimer. timeout bounds the exchange
// (zero means 15s); TLS configuration comes from the transport defaults.
func NewRemoteClaimer(timeout time.Duration) *RemoteClaimer {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &RemoteClaimer{client: resty.New().SetTimeout(timeout)}
}

// Claim implements Claimer. The returned mapping is decoded whole; a
// malformed body fails the claim rather than producing a partial snapshot.
func (c *RemoteClaimer) Claim(ctx context.Context, token string, endpoint models.Endpoint, req *models.ClaimRequest) (models.ConfigMapping, error) {
	var scopes []string
	if req != nil {
		scopes = req.Scopes
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ClaimBody{Token: token, Scopes: scopes}).
		Post(endpointURL(endpoint, endpoint.ClaimURL, claimPath))
	if err != nil {
		return nil, fmt.Errorf("claim request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var mapping models.ConfigMapping
	if err = json.Unmarshal(resp.Body(), &mapping); err != nil {
		return nil, fmt.Errorf("decode claim response: %w", err)
	}

	return mapping, nil
}
