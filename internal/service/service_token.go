// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-fakts/internal/config"
	"github.com/MKhiriev/go-fakts/internal/logger"
	"github.com/MKhiriev/go-fakts/internal/utils"
	"github.com/MKhiriev/go-fakts/models"
)

// tokenService is the concrete implementation of TokenService.
// It verifies demand secrets against bcrypt hashes from the server config
// and handles the JWT token lifecycle for claim exchanges.
type tokenService struct {
	// clients maps client IDs to bcrypt hashes of their demand secrets.
	clients map[string]string

	// tokenSignKey is the HMAC secret used to sign and verify claim tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewTokenService constructs a TokenService populated with the registered
// clients and security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewTokenService(cfg *config.ServerConfig, logger *logger.Logger) TokenService {
	return &tokenService{
		clients:       cfg.Clients,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// IssueToken verifies the client's demand secret and issues a claim token.
//
// Returns:
//   - ErrInvalidDataProvided if clientID or clientSecret is empty.
//   - ErrUnknownClient if the client is not registered.
//   - ErrWrongSecret if the secret does not match the stored bcrypt hash.
func (s *tokenService) IssueToken(ctx context.Context, clientID, clientSecret string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if clientID == "" || clientSecret == "" {
		log.Error().Str("client_id", clientID).Msg("invalid demand data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	hash, ok := s.clients[clientID]
	if !ok {
		log.Error().Str("client_id", clientID).Msg("demand from unregistered client")
		return models.Token{}, ErrUnknownClient
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(clientSecret)); err != nil {
		log.Error().Str("client_id", clientID).Msg("demand secret mismatch")
		return models.Token{}, ErrWrongSecret
	}

	return s.IssueApprovedToken(ctx, clientID)
}

// IssueApprovedToken issues a claim token without a secret check. Used for
// device challenges that a human already approved.
func (s *tokenService) IssueApprovedToken(ctx context.Context, clientID string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(s.tokenIssuer, clientID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Str("client_id", clientID).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("token generation failed: %w", err)
	}

	log.Info().Str("client_id", clientID).Msg("claim token issued")

	return token, nil
}

// ParseToken validates a presented claim token and extracts its claims.
//
// Returns ErrTokenIsExpired when the token's expiry has passed, or a
// wrapped validation error for any other defect.
func (s *tokenService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Error().Msg("expired claim token presented")
			return models.Token{}, ErrTokenIsExpired
		}
		log.Err(err).Msg("claim token validation failed")
		return models.Token{}, fmt.Errorf("claim token validation failed: %w", err)
	}

	return token, nil
}
