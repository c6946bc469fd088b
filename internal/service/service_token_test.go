// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-fakts/internal/config"
	"github.com/MKhiriev/go-fakts/internal/logger"
)

func newTestTokenService(t *testing.T) TokenService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.ServerConfig{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "test-issuer",
		TokenDuration: time.Hour,
		Clients:       map[string]string{"client-1": string(hash)},
	}

	return NewTokenService(cfg, logger.Nop())
}

func TestTokenService_IssueToken(t *testing.T) {
	s := newTestTokenService(t)

	token, err := s.IssueToken(context.Background(), "client-1", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "client-1", token.ClientID)
}

func TestTokenService_IssueToken_Failures(t *testing.T) {
	s := newTestTokenService(t)

	tests := []struct {
		name     string
		clientID string
		secret   string
		wantErr  error
	}{
		{"empty client id", "", "hunter2", ErrInvalidDataProvided},
		{"empty secret", "client-1", "", ErrInvalidDataProvided},
		{"unknown client", "nobody", "hunter2", ErrUnknownClient},
		{"wrong secret", "client-1", "letmein", ErrWrongSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.IssueToken(context.Background(), tt.clientID, tt.secret)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTokenService_ParseToken(t *testing.T) {
	s := newTestTokenService(t)

	issued, err := s.IssueToken(context.Background(), "client-1", "hunter2")
	require.NoError(t, err)

	parsed, err := s.ParseToken(context.Background(), issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "client-1", parsed.ClientID)
}

func TestTokenService_ParseToken_Expired(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.ServerConfig{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "test-issuer",
		TokenDuration: -time.Second,
		Clients:       map[string]string{"client-1": string(hash)},
	}
	s := NewTokenService(cfg, logger.Nop())

	issued, err := s.IssueToken(context.Background(), "client-1", "hunter2")
	require.NoError(t, err)

	_, err = s.ParseToken(context.Background(), issued.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestTokenService_ParseToken_TamperedSignature(t *testing.T) {
	s := newTestTokenService(t)

	issued, err := s.IssueToken(context.Background(), "client-1", "hunter2")
	require.NoError(t, err)

	_, err = s.ParseToken(context.Background(), issued.SignedString+"x")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrTokenIsExpired)
}
