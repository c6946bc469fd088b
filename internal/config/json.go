package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string-friendly [Duration] type, so config files can write durations as
// "30s" instead of nanosecond integers.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Discovery struct {
		EndpointURL   string   `json:"endpoint_url"`
		BindAddress   string   `json:"bind_address"`
		BroadcastPort int      `json:"broadcast_port"`
		MagicPhrase   string   `json:"magic_phrase"`
		Strict        bool     `json:"strict"`
		ProbeTimeout  Duration `json:"probe_timeout"`
	} `json:"discovery,omitempty"`

	Grant struct {
		ClientID       string   `json:"client_id"`
		ClientSecret   string   `json:"client_secret"`
		Token          string   `json:"token"`
		DeviceFlow     bool     `json:"device_flow"`
		Scopes         []string `json:"scopes"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"grant,omitempty"`

	Server struct {
		HTTPAddress       string                    `json:"http_address"`
		Name              string                    `json:"name"`
		AdvertiseURL      string                    `json:"advertise_url"`
		AdvertiseInterval Duration                  `json:"advertise_interval"`
		BroadcastPort     int                       `json:"broadcast_port"`
		MagicPhrase       string                    `json:"magic_phrase"`
		RequestTimeout    Duration                  `json:"request_timeout"`
		Clients           map[string]string         `json:"clients"`
		Groups            map[string]map[string]any `json:"groups"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Discovery: Discovery{
			EndpointURL:   jsonCfg.Discovery.EndpointURL,
			BindAddress:   jsonCfg.Discovery.BindAddress,
			BroadcastPort: jsonCfg.Discovery.BroadcastPort,
			MagicPhrase:   jsonCfg.Discovery.MagicPhrase,
			Strict:        jsonCfg.Discovery.Strict,
			ProbeTimeout:  time.Duration(jsonCfg.Discovery.ProbeTimeout),
		},
		Grant: Grant{
			ClientID:       jsonCfg.Grant.ClientID,
			ClientSecret:   jsonCfg.Grant.ClientSecret,
			Token:          jsonCfg.Grant.Token,
			DeviceFlow:     jsonCfg.Grant.DeviceFlow,
			Scopes:         jsonCfg.Grant.Scopes,
			RequestTimeout: time.Duration(jsonCfg.Grant.RequestTimeout),
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			Name:              jsonCfg.Server.Name,
			AdvertiseURL:      jsonCfg.Server.AdvertiseURL,
			AdvertiseInterval: time.Duration(jsonCfg.Server.AdvertiseInterval),
			BroadcastPort:     jsonCfg.Server.BroadcastPort,
			MagicPhrase:       jsonCfg.Server.MagicPhrase,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			Clients:           jsonCfg.Server.Clients,
			Groups:            jsonCfg.Server.Groups,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
