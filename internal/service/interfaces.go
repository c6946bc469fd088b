package service

import (
	"context"

	"github.com/MKhiriev/go-fakts/models"
)

type TokenService interface {
	// IssueToken verifies the client's demand secret and issues a claim token.
	IssueToken(ctx context.Context, clientID, clientSecret string) (models.Token, error)

	// IssueApprovedToken issues a claim token for a client whose device
	// challenge was already approved. No secret check is performed.
	IssueApprovedToken(ctx context.Context, clientID string) (models.Token, error)

	// ParseToken validates a presented claim token and extracts its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ChallengeService interface {
	StartChallenge(ctx context.Context, clientID string, scopes []string) (models.ChallengeResponse, error)
	ApproveChallenge(ctx context.Context, userCode string) error
	PollChallenge(ctx context.Context, deviceCode string) (models.ChallengePollResponse, error)
}

type GroupService interface {
	// ClaimGroups assembles the configuration mapping for the requested
	// scopes, keyed by scope name. An empty scope list claims every
	// configured group.
	ClaimGroups(ctx context.Context, clientID string, scopes []string) (models.ConfigMapping, error)
}
