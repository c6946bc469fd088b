package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fakts/internal/logger"
)

func newTestGroupService() GroupService {
	return NewGroupService(map[string]map[string]any{
		"app": {"host": "localhost", "port": 8080},
		"db":  {"dsn": "postgres://localhost/app"},
	}, logger.Nop())
}

func TestGroupService_ClaimGroups(t *testing.T) {
	s := newTestGroupService()

	mapping, err := s.ClaimGroups(context.Background(), "client-1", []string{"app"})
	require.NoError(t, err)
	require.Len(t, mapping, 1)
	assert.Equal(t, map[string]any{"host": "localhost", "port": 8080}, mapping["app"])
}

func TestGroupService_ClaimAllGroups(t *testing.T) {
	s := newTestGroupService()

	mapping, err := s.ClaimGroups(context.Background(), "client-1", nil)
	require.NoError(t, err)
	assert.Len(t, mapping, 2)
	assert.Contains(t, mapping, "app")
	assert.Contains(t, mapping, "db")
}

func TestGroupService_UnknownGroup(t *testing.T) {
	s := newTestGroupService()

	mapping, err := s.ClaimGroups(context.Background(), "client-1", []string{"app", "cache"})
	assert.ErrorIs(t, err, ErrUnknownGroup)
	assert.Nil(t, mapping)
}
