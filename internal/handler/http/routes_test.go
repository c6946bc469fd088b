package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-fakts/internal/config"
	"github.com/MKhiriev/go-fakts/internal/logger"
	"github.com/MKhiriev/go-fakts/internal/service"
	"github.com/MKhiriev/go-fakts/models"
)

// newTestServer spins up the full router over real services with one
// registered client and two configuration groups.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.ServerConfig{
		Name:          "test-endpoint",
		Version:       "1.0.0",
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "test-issuer",
		TokenDuration: time.Hour,
		Clients:       map[string]string{"client-1": string(hash)},
		Groups: map[string]map[string]any{
			"app": {"host": "localhost"},
			"db":  {"dsn": "postgres://localhost/app"},
		},
	}

	handler := NewHandler(service.NewServices(cfg, logger.Nop()), cfg, logger.Nop())
	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)

	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)

	return resp
}

func demandToken(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	resp := postJSON(t, srv.URL+"/f/demand", models.DemandRequest{
		ClientID:     "client-1",
		ClientSecret: "hunter2",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.DemandResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)

	return body.Token
}

func TestWellKnown(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/.well-known/fakts")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var endpoint models.Endpoint
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&endpoint))
	assert.Equal(t, "test-endpoint", endpoint.Name)
	assert.Equal(t, "1.0.0", endpoint.Version)
}

func TestDemand(t *testing.T) {
	srv := newTestServer(t)

	token := demandToken(t, srv)
	assert.NotEmpty(t, token)
}

func TestDemand_Rejections(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		body       models.DemandRequest
		wantStatus int
	}{
		{"wrong secret", models.DemandRequest{ClientID: "client-1", ClientSecret: "letmein"}, http.StatusUnauthorized},
		{"unknown client", models.DemandRequest{ClientID: "nobody", ClientSecret: "hunter2"}, http.StatusUnauthorized},
		{"missing client id", models.DemandRequest{ClientSecret: "hunter2"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/f/demand", tt.body)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestClaim(t *testing.T) {
	srv := newTestServer(t)
	token := demandToken(t, srv)

	resp := postJSON(t, srv.URL+"/f/claim", models.ClaimBody{Token: token, Scopes: []string{"app"}})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var mapping models.ConfigMapping
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&mapping))
	assert.Equal(t, map[string]any{"host": "localhost"}, mapping["app"])
}

func TestClaim_AllGroups(t *testing.T) {
	srv := newTestServer(t)
	token := demandToken(t, srv)

	resp := postJSON(t, srv.URL+"/f/claim", models.ClaimBody{Token: token})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var mapping models.ConfigMapping
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&mapping))
	assert.Len(t, mapping, 2)
}

func TestClaim_Rejections(t *testing.T) {
	srv := newTestServer(t)
	token := demandToken(t, srv)

	t.Run("invalid token", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/f/claim", models.ClaimBody{Token: "garbage", Scopes: []string{"app"}})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown group", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/f/claim", models.ClaimBody{Token: token, Scopes: []string{"cache"}})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeviceFlowOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/f/challenge", models.ChallengeRequest{ClientID: "client-1", Scopes: []string{"app"}})
	var challenge models.ChallengeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&challenge))
	resp.Body.Close()
	require.NotEmpty(t, challenge.DeviceCode)

	// pending before approval
	resp = postJSON(t, srv.URL+"/f/token", models.ChallengePollRequest{DeviceCode: challenge.DeviceCode})
	var poll models.ChallengePollResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&poll))
	resp.Body.Close()
	assert.Equal(t, models.ChallengeStatusPending, poll.Status)

	resp = postJSON(t, srv.URL+"/f/approve", models.ChallengeApproveRequest{UserCode: challenge.UserCode})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/f/token", models.ChallengePollRequest{DeviceCode: challenge.DeviceCode})
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&poll))
	resp.Body.Close()
	require.Equal(t, models.ChallengeStatusGranted, poll.Status)
	require.NotEmpty(t, poll.Token)

	// the granted token is accepted by the claim endpoint
	resp = postJSON(t, srv.URL+"/f/claim", models.ClaimBody{Token: poll.Token, Scopes: []string{"db"}})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUnsupportedMethodHidesRoute(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/f/demand")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
