package grant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-fakts/internal/logger"
	"github.com/MKhiriev/go-fakts/models"
)

// DeviceCodeDemander obtains a token through a device-code flow: it starts
// a challenge at the endpoint, surfaces the user code through the log, and
// polls the token endpoint until the challenge is approved out of band or
// the caller's context ends.
type DeviceCodeDemander struct {
	client *resty.Client
	logger *logger.Logger
}

// NewDeviceCodeDemander builds a device-code demander. timeout bounds a
// single HTTP exchange, not the overall wait for approval; that wait is
// bounded only by the caller's context.
func NewDeviceCodeDemander(timeout time.Duration, log *logger.Logger) *DeviceCodeDemander {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &DeviceCodeDemander{
		client: resty.New().SetTimeout(timeout),
		logger: log,
	}
}

// Demand implements Demander.
func (d *DeviceCodeDemander) Demand(ctx context.Context, endpoint models.Endpoint, req *models.ClaimRequest) (string, error) {
	if req == nil || req.ClientID == "" {
		return "", errors.New("demand without client id")
	}

	challenge, err := d.startChallenge(ctx, endpoint, req)
	if err != nil {
		return "", err
	}

	// the user code is not a secret; it is meant to be shown to a human
	d.logger.Info().
		Str("endpoint", endpoint.Name).
		Str("user_code", challenge.UserCode).
		Msg("waiting for device challenge approval")

	interval := time.Duration(challenge.Interval) * time.Second
	if interval <= 0 {
		interval = 2 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
			token, granted, err := d.poll(ctx, endpoint, challenge.DeviceCode)
			if err != nil {
				return "", err
			}
			if granted {
				return token, nil
			}
		}
	}
}

func (d *DeviceCodeDemander) startChallenge(ctx context.Context, endpoint models.Endpoint, req *models.ClaimRequest) (models.ChallengeResponse, error) {
	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ChallengeRequest{ClientID: req.ClientID, Scopes: req.Scopes}).
		Post(endpointURL(endpoint, "", challengePath))
	if err != nil {
		return models.ChallengeResponse{}, fmt.Errorf("start challenge request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChallengeResponse{}, err
	}

	var challenge models.ChallengeResponse
	if err = json.Unmarshal(resp.Body(), &challenge); err != nil {
		return models.ChallengeResponse{}, fmt.Errorf("decode challenge response: %w", err)
	}
	if challenge.DeviceCode == "" {
		return models.ChallengeResponse{}, errors.New("challenge response without device code")
	}

	return challenge, nil
}

func (d *DeviceCodeDemander) poll(ctx context.Context, endpoint models.Endpoint, deviceCode string) (token string, granted bool, err error) {
	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ChallengePollRequest{DeviceCode: deviceCode}).
		Post(endpointURL(endpoint, "", tokenPath))
	if err != nil {
		return "", false, fmt.Errorf("poll challenge request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", false, err
	}

	var body models.ChallengePollResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", false, fmt.Errorf("decode challenge poll response: %w", err)
	}

	switch body.Status {
	case models.ChallengeStatusGranted:
		if body.Token == "" {
			return "", false, errors.New("granted challenge without token")
		}
		return body.Token, true, nil
	case models.ChallengeStatusPending:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("unexpected challenge status %q", body.Status)
	}
}
