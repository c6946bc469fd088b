package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fakts/models"
)

// TestNewClientConfig_Defaults verifies that wire defaults are filled when
// the structured config leaves discovery settings empty.
func TestNewClientConfig_Defaults(t *testing.T) {
	cfg := &StructuredConfig{
		Grant: Grant{ClientID: "app-1"},
	}

	clientCfg, err := NewClientConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, models.DefaultBroadcastPort, clientCfg.Discovery.Binding.Port)
	assert.Equal(t, models.DefaultMagicPhrase, clientCfg.Discovery.Binding.MagicPhrase)
	assert.Equal(t, 5*time.Second, clientCfg.Discovery.ProbeTimeout)
	assert.Equal(t, 15*time.Second, clientCfg.Grant.RequestTimeout)
}

// TestNewClientConfig_Overrides verifies that explicit discovery settings
// replace the defaults.
func TestNewClientConfig_Overrides(t *testing.T) {
	cfg := &StructuredConfig{
		Discovery: Discovery{
			BindAddress:   "127.0.0.1",
			BroadcastPort: 50000,
			MagicPhrase:   "beacon-test",
			Strict:        true,
			ProbeTimeout:  2 * time.Second,
		},
		Grant: Grant{ClientID: "app-1"},
	}

	clientCfg, err := NewClientConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", clientCfg.Discovery.Binding.Address)
	assert.Equal(t, 50000, clientCfg.Discovery.Binding.Port)
	assert.Equal(t, "beacon-test", clientCfg.Discovery.Binding.MagicPhrase)
	assert.True(t, clientCfg.Discovery.Strict)
}

// TestNewClientConfig_MissingClientID verifies the grant validation error.
func TestNewClientConfig_MissingClientID(t *testing.T) {
	_, err := NewClientConfig(&StructuredConfig{})
	require.ErrorIs(t, err, ErrInvalidGrantConfigs)
}

// TestNewClientConfig_BadPort verifies the discovery validation error.
func TestNewClientConfig_BadPort(t *testing.T) {
	cfg := &StructuredConfig{
		Discovery: Discovery{BroadcastPort: 70000},
		Grant:     Grant{ClientID: "app-1"},
	}
	_, err := NewClientConfig(cfg)
	require.ErrorIs(t, err, ErrInvalidDiscoveryConfigs)
}

// TestNewServerConfig_DefaultsAndValidation verifies server view defaults
// and the required-field checks.
func TestNewServerConfig_DefaultsAndValidation(t *testing.T) {
	cfg := &StructuredConfig{
		App:    App{TokenSignKey: "key"},
		Server: Server{HTTPAddress: "localhost:8000"},
	}

	serverCfg, err := NewServerConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "go-fakts dev server", serverCfg.Name)
	assert.Equal(t, "go-fakts", serverCfg.TokenIssuer)
	assert.Equal(t, time.Hour, serverCfg.TokenDuration)
	assert.Equal(t, 2*time.Second, serverCfg.AdvertiseInterval)
	assert.Equal(t, models.DefaultMagicPhrase, serverCfg.Binding.MagicPhrase)

	_, err = NewServerConfig(&StructuredConfig{Server: Server{HTTPAddress: "localhost:8000"}})
	require.ErrorIs(t, err, ErrInvalidServerConfigs, "missing sign key must fail")

	_, err = NewServerConfig(&StructuredConfig{App: App{TokenSignKey: "key"}})
	require.ErrorIs(t, err, ErrInvalidServerConfigs, "missing address must fail")
}

// TestNetAddress_SetAndString covers the flag.Value implementation.
func TestNetAddress_SetAndString(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:8000"))
	assert.Equal(t, "localhost:8000", a.String())

	require.Error(t, a.Set("no-port"))
	require.Error(t, a.Set("localhost:zero"))
	require.Error(t, a.Set("localhost:-1"))
	require.Error(t, a.Set("256.1.1.1:80"))

	var empty NetAddress
	assert.Equal(t, "", empty.String())
}

// TestSplitGroups verifies comma-list parsing with whitespace and empties.
func TestSplitGroups(t *testing.T) {
	assert.Nil(t, SplitGroups(""))
	assert.Equal(t, []string{"a", "b"}, SplitGroups("a, b"))
	assert.Equal(t, []string{"mikro"}, SplitGroups("mikro,"))
}
