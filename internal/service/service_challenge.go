package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-fakts/internal/logger"
	"github.com/MKhiriev/go-fakts/internal/utils"
	"github.com/MKhiriev/go-fakts/models"
)

const (
	// challengeTTL bounds how long a started challenge stays approvable.
	challengeTTL = 10 * time.Minute

	// challengePollInterval is the polling interval suggested to clients,
	// in seconds.
	challengePollInterval = 2
)

// challenge is one pending device-code flow.
type challenge struct {
	clientID  string
	scopes    []string
	userCode  string
	approved  bool
	expiresAt time.Time
}

// challengeService is the concrete implementation of ChallengeService.
// Challenges live in memory only; a restart voids all pending approvals.
type challengeService struct {
	tokens TokenService
	uuid   *utils.UUIDGenerator
	logger *logger.Logger

	mu       sync.Mutex
	byDevice map[string]*challenge
	byUser   map[string]string // user code -> device code
}

// NewChallengeService constructs an in-memory ChallengeService issuing
// tokens through the given TokenService once a challenge is approved.
func NewChallengeService(tokens TokenService, uuid *utils.UUIDGenerator, logger *logger.Logger) ChallengeService {
	return &challengeService{
		tokens:   tokens,
		uuid:     uuid,
		logger:   logger,
		byDevice: make(map[string]*challenge),
		byUser:   make(map[string]string),
	}
}

// StartChallenge opens a device-code flow for clientID and returns the
// device code to poll with and the user code a human approves out of band.
func (s *challengeService) StartChallenge(ctx context.Context, clientID string, scopes []string) (models.ChallengeResponse, error) {
	log := logger.FromContext(ctx)

	if clientID == "" {
		log.Error().Msg("challenge start without client id")
		return models.ChallengeResponse{}, ErrInvalidDataProvided
	}

	deviceCode := s.uuid.Generate()
	userCode := formatUserCode(s.uuid.Generate())

	s.mu.Lock()
	s.byDevice[deviceCode] = &challenge{
		clientID:  clientID,
		scopes:    scopes,
		userCode:  userCode,
		expiresAt: time.Now().Add(challengeTTL),
	}
	s.byUser[userCode] = deviceCode
	s.mu.Unlock()

	log.Info().
		Str("client_id", clientID).
		Str("user_code", userCode).
		Msg("device challenge started")

	return models.ChallengeResponse{
		DeviceCode: deviceCode,
		UserCode:   userCode,
		Interval:   challengePollInterval,
	}, nil
}

// ApproveChallenge marks the challenge behind userCode as granted.
func (s *challengeService) ApproveChallenge(ctx context.Context, userCode string) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	deviceCode, ok := s.byUser[userCode]
	if !ok {
		log.Error().Str("user_code", userCode).Msg("approval for unknown challenge")
		return ErrUnknownChallenge
	}

	ch := s.byDevice[deviceCode]
	if time.Now().After(ch.expiresAt) {
		s.drop(deviceCode, ch.userCode)
		log.Error().Str("user_code", userCode).Msg("approval for expired challenge")
		return ErrChallengeExpired
	}

	ch.approved = true
	log.Info().Str("client_id", ch.clientID).Msg("device challenge approved")

	return nil
}

// PollChallenge reports the state of the challenge behind deviceCode. Once
// approved, the challenge is consumed and a claim token is issued.
func (s *challengeService) PollChallenge(ctx context.Context, deviceCode string) (models.ChallengePollResponse, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	ch, ok := s.byDevice[deviceCode]
	if !ok {
		s.mu.Unlock()
		log.Error().Msg("poll for unknown challenge")
		return models.ChallengePollResponse{}, ErrUnknownChallenge
	}

	if time.Now().After(ch.expiresAt) {
		s.drop(deviceCode, ch.userCode)
		s.mu.Unlock()
		log.Error().Str("client_id", ch.clientID).Msg("poll for expired challenge")
		return models.ChallengePollResponse{}, ErrChallengeExpired
	}

	if !ch.approved {
		s.mu.Unlock()
		return models.ChallengePollResponse{Status: models.ChallengeStatusPending}, nil
	}

	// approved: consume the challenge before issuing the token
	s.drop(deviceCode, ch.userCode)
	s.mu.Unlock()

	token, err := s.tokens.IssueApprovedToken(ctx, ch.clientID)
	if err != nil {
		return models.ChallengePollResponse{}, fmt.Errorf("issuing token for approved challenge: %w", err)
	}

	return models.ChallengePollResponse{
		Status: models.ChallengeStatusGranted,
		Token:  token.SignedString,
	}, nil
}

// drop removes a challenge from both indexes. Caller holds s.mu.
func (s *challengeService) drop(deviceCode, userCode string) {
	delete(s.byDevice, deviceCode)
	delete(s.byUser, userCode)
}

// formatUserCode shortens a UUID into the XXXX-XXXX form shown to humans.
// The trailing characters are used; the leading ones are a timestamp in v7
// UUIDs and would collide across concurrent challenges.
func formatUserCode(id string) string {
	compact := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(compact) < 8 {
		return compact
	}
	tail := compact[len(compact)-8:]
	return tail[:4] + "-" + tail[4:]
}
