package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fakts/internal/logger"
	"github.com/MKhiriev/go-fakts/models"
)

// groupService is the concrete implementation of GroupService. It serves
// configuration groups loaded from the server config file.
type groupService struct {
	groups map[string]map[string]any
	logger *logger.Logger
}

// NewGroupService constructs a GroupService over the configured groups.
// The group mappings are read-only after construction.
func NewGroupService(groups map[string]map[string]any, logger *logger.Logger) GroupService {
	return &groupService{
		groups: groups,
		logger: logger,
	}
}

// ClaimGroups assembles the claimed configuration keyed by scope name.
//
// An empty scope list claims every configured group. An unknown scope fails
// the whole claim with ErrUnknownGroup; no partial mapping is returned.
func (s *groupService) ClaimGroups(ctx context.Context, clientID string, scopes []string) (models.ConfigMapping, error) {
	log := logger.FromContext(ctx)

	if len(scopes) == 0 {
		mapping := make(models.ConfigMapping, len(s.groups))
		for name, group := range s.groups {
			mapping[name] = group
		}

		log.Info().
			Str("client_id", clientID).
			Int("groups", len(mapping)).
			Msg("all configuration groups claimed")

		return mapping, nil
	}

	mapping := make(models.ConfigMapping, len(scopes))
	for _, scope := range scopes {
		group, ok := s.groups[scope]
		if !ok {
			log.Error().
				Str("client_id", clientID).
				Str("scope", scope).
				Msg("claim for unknown configuration group")
			return nil, fmt.Errorf("%w: %s", ErrUnknownGroup, scope)
		}
		mapping[scope] = group
	}

	log.Info().
		Str("client_id", clientID).
		Int("groups", len(mapping)).
		Msg("configuration groups claimed")

	return mapping, nil
}
