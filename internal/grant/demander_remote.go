package grant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-fakts/models"
)

// Demand/claim sub-paths relative to an endpoint's base URL, used when the
// endpoint metadata does not carry explicit URLs.
const (
	demandPath    = "f/demand"
	claimPath     = "f/claim"
	challengePath = "f/challenge"
	tokenPath     = "f/token"
)

// RemoteDemander exchanges pre-shared client credentials for a token with
// one POST against the endpoint's demand URL.
type RemoteDemander struct {
	client *resty.Client
	secret string
}

// NewRemoteDemander builds a client-credentials demander. secret is the
// pre-shared demand secret; timeout bounds the exchange (zero means 15s).
func NewRemoteDemander(secret string, timeout time.Duration) *RemoteDemander {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &RemoteDemander{
		client: resty.New().SetTimeout(timeout),
		secret: secret,
	}
}

// Demand implements Demander.
func (d *RemoteDemander) Demand(ctx context.Context, endpoint models.Endpoint, req *models.ClaimRequest) (string, error) {
	if req == nil || req.ClientID == "" {
		return "", errors.New("demand without client id")
	}

	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DemandRequest{ClientID: req.ClientID, ClientSecret: d.secret}).
		Post(endpointURL(endpoint, endpoint.RetrieveURL, demandPath))
	if err != nil {
		return "", fmt.Errorf("demand request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var body models.DemandResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("decode demand response: %w", err)
	}
	if body.Token == "" {
		return "", errors.New("demand response without token")
	}

	return body.Token, nil
}

// endpointURL picks the explicit URL from the endpoint metadata when set,
// falling back to base URL + sub-path.
func endpointURL(endpoint models.Endpoint, explicit, subPath string) string {
	if explicit != "" {
		return explicit
	}

	base := endpoint.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + subPath
}

// mapHTTPError converts a non-2xx response into an error carrying the
// status and trimmed body.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
