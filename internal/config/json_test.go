package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

// TestParseJSON_FullConfig verifies that every section of a JSON config file
// is mapped into the structured config, including duration strings and the
// server's clients/groups maps.
func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"app": {"token_sign_key": "key", "token_issuer": "iss", "token_duration": "30m", "version": "1.2.3"},
		"discovery": {"endpoint_url": "", "broadcast_port": 45678, "magic_phrase": "beacon-fakts", "strict": true, "probe_timeout": "5s"},
		"grant": {"client_id": "app-1", "client_secret": "shh", "request_timeout": "10s"},
		"server": {
			"http_address": "localhost:8000",
			"name": "dev",
			"advertise_url": "http://localhost:8000",
			"advertise_interval": "2s",
			"clients": {"app-1": "$2a$10$hash"},
			"groups": {"mikro": {"endpoint_url": "http://mikro", "port": 1234}}
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, 30*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.True(t, cfg.Discovery.Strict)
	assert.Equal(t, 5*time.Second, cfg.Discovery.ProbeTimeout)
	assert.Equal(t, "app-1", cfg.Grant.ClientID)
	assert.Equal(t, "localhost:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Server.AdvertiseInterval)
	assert.Equal(t, "$2a$10$hash", cfg.Server.Clients["app-1"])
	require.Contains(t, cfg.Server.Groups, "mikro")
	assert.Equal(t, "http://mikro", cfg.Server.Groups["mikro"]["endpoint_url"])
}

// TestParseJSON_MissingFile verifies the error path for a nonexistent path.
func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

// TestParseJSON_MalformedJSON verifies the error path for invalid JSON.
func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempConfig(t, `{"app": `)
	_, err := parseJSON(path)
	require.Error(t, err)
}

// TestDuration_UnmarshalJSON covers the string, numeric, and invalid forms.
func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string form", input: `"90s"`, want: 90 * time.Second},
		{name: "numeric nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"ninety"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

// TestDuration_MarshalJSON verifies the round-trip of the string form.
func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
