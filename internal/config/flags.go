package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-endpoint-url static endpoint base URL (disables beacon discovery)
//	-bind-address local address for the discovery socket
//	-broadcast-port UDP port beacons are expected on
//	-magic-phrase beacon frame prefix
//	-strict fail the listen session on malformed beacon payloads
//	-probe-timeout per-probe timeout (e.g., "5s")
//	-client-id client identifier for demand/claim
//	-group requested configuration scope (repeatable via comma list)
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-advertise-url endpoint URL broadcast in beacon frames
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var endpointURL string
	var bindAddress string
	var broadcastPort int
	var magicPhrase string
	var strict bool
	var probeTimeout time.Duration
	var clientID string
	var groups string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var advertiseURL string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&endpointURL, "endpoint-url", "", "Static endpoint base URL")
	flag.StringVar(&bindAddress, "bind-address", "", "Discovery socket bind address")
	flag.IntVar(&broadcastPort, "broadcast-port", 0, "Beacon broadcast UDP port")
	flag.StringVar(&magicPhrase, "magic-phrase", "", "Beacon frame magic phrase")
	flag.BoolVar(&strict, "strict", false, "Fail listen session on malformed beacons")
	flag.DurationVar(&probeTimeout, "probe-timeout", 0, "Per-probe timeout (e.g., 5s)")
	flag.StringVar(&clientID, "client-id", "", "Client identifier")
	flag.StringVar(&groups, "group", "", "Requested configuration groups (comma separated)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.StringVar(&advertiseURL, "advertise-url", "", "Endpoint URL broadcast in beacons")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Discovery: Discovery{
			EndpointURL:   endpointURL,
			BindAddress:   bindAddress,
			BroadcastPort: broadcastPort,
			MagicPhrase:   magicPhrase,
			Strict:        strict,
			ProbeTimeout:  probeTimeout,
		},
		Grant: Grant{
			ClientID: clientID,
			Scopes:   SplitGroups(groups),
		},
		Server: Server{
			HTTPAddress:  serverAddress.String(),
			AdvertiseURL: advertiseURL,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// SplitGroups parses a comma separated group list into individual scope
// names, dropping empty entries.
func SplitGroups(list string) []string {
	if list == "" {
		return nil
	}

	var out []string
	for _, g := range strings.Split(list, ",") {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
