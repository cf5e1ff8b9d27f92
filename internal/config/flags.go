package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"time"
)

// PortFlag holds a TCP port given on the command line.
// It implements the flag.Value interface.
type PortFlag struct {
	Port int
}

// ParseFlags parses the gateway configuration flags from args.
//
// Flags:
//
//	-p port to listen on
//	-c/-config json file path with configs
//	-d database DSN used by the readiness probe
//	-request-timeout per-request timeout (e.g., "30s", "1m")
//	-log-level zerolog level name
//	-log-format console or json
func ParseFlags(args []string) (*StructuredConfig, error) {
	var port PortFlag
	var jsonConfigPath string
	var databaseDSN string
	var requestTimeout time.Duration
	var logLevel string
	var logFormat string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.Var(&port, "p", "Port to listen on")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFormat, "log-format", "", "Log format: console or json")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Server: Server{
			Port:           port.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Log: Log{
			Level:  logLevel,
			Format: logFormat,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the port as a decimal string, or "" when it was not set.
func (p *PortFlag) String() string {
	if p.Port == 0 {
		return ""
	}

	return strconv.Itoa(p.Port)
}

// Set parses s as a TCP port number in the range 1-65535.
func (p *PortFlag) Set(s string) error {
	port, err := strconv.Atoi(s)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	p.Port = port
	return nil
}
