package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

const (
	DefaultClientAddress        = "http://localhost:5001"
	DefaultClientRequestTimeout = 10 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the gateway.
	// Env: CLIENT_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the ad-hoc subject client.
type ClientConfig struct {
	// Adapter contains the gateway address and request timeout.
	Adapter ClientAdapter
	// Token is the bearer token copied from the browser session. The client
	// prints instructions and exits when it is empty.
	// Env: CLIENT_TOKEN
	Token string `env:"TOKEN"`
}

type clientEnvConfig struct {
	Client ClientConfig `envPrefix:"CLIENT_"`
}

// GetClientConfig builds and validates the client configuration from flags
// (args), environment variables, and defaults, in that priority order.
func GetClientConfig(args []string) (*ClientConfig, error) {
	flagsCfg, err := parseClientFlags(args)
	if err != nil {
		return nil, err
	}

	var envCfg clientEnvConfig
	if err = parseEnv(&envCfg); err != nil {
		return nil, err
	}

	defaults := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    DefaultClientAddress,
			RequestTimeout: DefaultClientRequestTimeout,
		},
	}

	clientCfg := new(ClientConfig)
	for _, src := range []*ClientConfig{flagsCfg, &envCfg.Client, defaults} {
		if err = mergo.Merge(clientCfg, src); err != nil {
			return nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	return clientCfg, clientCfg.validate()
}

func parseClientFlags(args []string) (*ClientConfig, error) {
	var address string
	var token string
	var requestTimeout time.Duration

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&address, "a", "", "Gateway base URL")
	fs.StringVar(&token, "token", "", "Bearer token")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Token: token,
	}, nil
}
