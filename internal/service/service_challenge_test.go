package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fakts/internal/config"
	"github.com/MKhiriev/go-fakts/internal/logger"
	"github.com/MKhiriev/go-fakts/internal/utils"
	"github.com/MKhiriev/go-fakts/models"
)

func newTestChallengeService(t *testing.T) (ChallengeService, TokenService) {
	t.Helper()

	cfg := &config.ServerConfig{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "test-issuer",
		TokenDuration: time.Hour,
	}
	tokens := NewTokenService(cfg, logger.Nop())

	return NewChallengeService(tokens, utils.NewUUIDGenerator(), logger.Nop()), tokens
}

func TestChallengeService_FullFlow(t *testing.T) {
	s, tokens := newTestChallengeService(t)
	ctx := context.Background()

	started, err := s.StartChallenge(ctx, "client-1", []string{"app"})
	require.NoError(t, err)
	assert.NotEmpty(t, started.DeviceCode)
	assert.NotEmpty(t, started.UserCode)
	assert.Positive(t, started.Interval)

	// unapproved polls report pending without a token
	poll, err := s.PollChallenge(ctx, started.DeviceCode)
	require.NoError(t, err)
	assert.Equal(t, models.ChallengeStatusPending, poll.Status)
	assert.Empty(t, poll.Token)

	require.NoError(t, s.ApproveChallenge(ctx, started.UserCode))

	poll, err = s.PollChallenge(ctx, started.DeviceCode)
	require.NoError(t, err)
	assert.Equal(t, models.ChallengeStatusGranted, poll.Status)
	require.NotEmpty(t, poll.Token)

	// the issued token parses back to the challenge's client
	parsed, err := tokens.ParseToken(ctx, poll.Token)
	require.NoError(t, err)
	assert.Equal(t, "client-1", parsed.ClientID)
}

func TestChallengeService_ChallengeConsumedAfterGrant(t *testing.T) {
	s, _ := newTestChallengeService(t)
	ctx := context.Background()

	started, err := s.StartChallenge(ctx, "client-1", nil)
	require.NoError(t, err)
	require.NoError(t, s.ApproveChallenge(ctx, started.UserCode))

	_, err = s.PollChallenge(ctx, started.DeviceCode)
	require.NoError(t, err)

	// a granted challenge cannot be polled or approved again
	_, err = s.PollChallenge(ctx, started.DeviceCode)
	assert.ErrorIs(t, err, ErrUnknownChallenge)
	assert.ErrorIs(t, s.ApproveChallenge(ctx, started.UserCode), ErrUnknownChallenge)
}

func TestChallengeService_UnknownCodes(t *testing.T) {
	s, _ := newTestChallengeService(t)
	ctx := context.Background()

	_, err := s.PollChallenge(ctx, "no-such-device-code")
	assert.ErrorIs(t, err, ErrUnknownChallenge)

	assert.ErrorIs(t, s.ApproveChallenge(ctx, "XXXX-XXXX"), ErrUnknownChallenge)
}

func TestChallengeService_StartWithoutClientID(t *testing.T) {
	s, _ := newTestChallengeService(t)

	_, err := s.StartChallenge(context.Background(), "", nil)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestChallengeService_DistinctCodes(t *testing.T) {
	s, _ := newTestChallengeService(t)
	ctx := context.Background()

	first, err := s.StartChallenge(ctx, "client-1", nil)
	require.NoError(t, err)
	second, err := s.StartChallenge(ctx, "client-2", nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.DeviceCode, second.DeviceCode)
	assert.NotEqual(t, first.UserCode, second.UserCode)
}

func TestFormatUserCode(t *testing.T) {
	code := formatUserCode("0190163d-8694-739b-aea5-966c26f8ad27")
	assert.Len(t, code, 9)
	assert.Equal(t, byte('-'), code[4])
}
