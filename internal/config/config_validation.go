// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var logLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// The port must be numeric and in range, the origin pattern must compile,
// every configured upstream must be an absolute http(s) URL, and the log
// settings must name a known level and format.
func (cfg *StructuredConfig) validate() error {
	port, err := strconv.Atoi(cfg.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Server.JSONBodyLimit <= 0 {
		return fmt.Errorf("%w: json body limit must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.CORS.AllowedOriginPattern != "" {
		if _, err = regexp.Compile(cfg.CORS.AllowedOriginPattern); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCORSConfigs, err)
		}
	}

	for _, u := range cfg.Routes.Upstreams() {
		if u.URL == "" {
			continue
		}
		if err = validateUpstreamURL(u.URL); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidRoutesConfigs, u.Group, err)
		}
	}

	if !slices.Contains(logLevels, strings.ToLower(cfg.Log.Level)) {
		return fmt.Errorf("%w: unknown level %q", ErrInvalidLogConfigs, cfg.Log.Level)
	}

	if cfg.Log.Format != LogFormatConsole && cfg.Log.Format != LogFormatJSON {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidLogConfigs, cfg.Log.Format)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func validateUpstreamURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}

	return nil
}
