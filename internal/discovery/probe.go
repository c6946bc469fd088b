package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-fakts/models"
)

// WellKnownPath is the sub-path of the endpoint metadata document.
const WellKnownPath = ".well-known/fakts"

// httpProber fetches endpoint metadata documents over HTTP.
type httpProber struct {
	client *resty.Client
}

// NewHTTPProber returns an EndpointProber performing one GET of
// <url>/.well-known/fakts per probe. timeout bounds the whole exchange;
// zero means 5 seconds. TLS configuration comes from the transport defaults.
func NewHTTPProber(timeout time.Duration) EndpointProber {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	cli := resty.New().
		SetTimeout(timeout)

	return &httpProber{client: cli}
}

// Probe implements EndpointProber. All failure modes wrap ErrProbe except a
// cancelled context, which propagates so callers can distinguish their own
// cancellation from a dead endpoint.
func (p *httpProber) Probe(ctx context.Context, url string) (models.Endpoint, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		Get(WellKnownURL(url))
	if err != nil {
		if ctx.Err() != nil {
			return models.Endpoint{}, ctx.Err()
		}
		return models.Endpoint{}, fmt.Errorf("%w: %s", ErrProbe, err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return models.Endpoint{}, fmt.Errorf("%w: http %d", ErrProbe, resp.StatusCode())
	}

	var endpoint models.Endpoint
	if err = json.Unmarshal(resp.Body(), &endpoint); err != nil {
		return models.Endpoint{}, fmt.Errorf("%w: decode metadata: %s", ErrProbe, err)
	}

	if endpoint.BaseURL == "" {
		endpoint.BaseURL = url
	}
	if endpoint.Name == "" {
		return models.Endpoint{}, fmt.Errorf("%w: metadata without endpoint name", ErrProbe)
	}

	return endpoint, nil
}

// WellKnownURL derives the metadata document address from a beacon URL,
// appending a slash to the base when missing.
func WellKnownURL(base string) string {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + WellKnownPath
}
