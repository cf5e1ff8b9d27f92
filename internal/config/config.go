// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// college-organizer gateway. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment variables
// (optionally seeded from a dotenv file), an optional JSON file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the listening port, the serverless host marker and the
	// timeouts of the HTTP server. Its variables are not prefixed because
	// PORT and VERCEL are set by hosting platforms.
	Server Server

	// CORS holds the cross-origin allow-list.
	CORS CORS `envPrefix:"CORS_"`

	// Routes holds the upstream base URLs of the route-group collaborators.
	Routes Routes `envPrefix:"ROUTES_"`

	// Storage holds the optional backing-store connection used by the
	// readiness probe.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds log level and output format.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Port is the TCP port the gateway binds to (e.g. "5001").
	// Env: PORT
	Port string `env:"PORT"`

	// Vercel is set to "1" by the Vercel platform. Any other value, including
	// "true", means the gateway binds its own port.
	// Env: VERCEL
	Vercel string `env:"VERCEL"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the gateway cancels it. Zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`

	// ReadHeaderTimeout bounds the time spent reading request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"SERVER_READ_HEADER_TIMEOUT"`

	// IdleTimeout bounds how long a keep-alive connection may stay idle.
	// Env: SERVER_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`

	// JSONBodyLimit is the maximum accepted size of a JSON request body in
	// bytes. Larger bodies are rejected with 413.
	// Env: SERVER_JSON_BODY_LIMIT
	JSONBodyLimit int64 `env:"SERVER_JSON_BODY_LIMIT"`
}

// Address returns the listen address in ":port" form.
func (s Server) Address() string {
	return ":" + s.Port
}

// IsServerless reports whether the process runs inside the Vercel
// serverless host, in which case the gateway must not bind a port.
func (s Server) IsServerless() bool {
	return s.Vercel == "1"
}

// CORS holds the cross-origin allow-list.
type CORS struct {
	// AllowedOrigins are origins echoed back verbatim when they match exactly.
	// Env: CORS_ALLOWED_ORIGINS (comma-separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// AllowedOriginPattern is a regular expression evaluated after the
	// literal origins (e.g. `\.vercel\.app$` for preview deployments).
	// Env: CORS_ALLOWED_ORIGIN_PATTERN
	AllowedOriginPattern string `env:"ALLOWED_ORIGIN_PATTERN"`
}

// Routes holds the base URL of the service implementing each route group.
// An empty URL leaves the group unmounted.
type Routes struct {
	Auth        string `env:"AUTH_URL"`
	Habits      string `env:"HABITS_URL"`
	Attendance  string `env:"ATTENDANCE_URL"`
	Schedule    string `env:"SCHEDULE_URL"`
	Users       string `env:"USERS_URL"`
	Assignments string `env:"ASSIGNMENTS_URL"`
	Exams       string `env:"EXAMS_URL"`
	Seed        string `env:"SEED_URL"`
}

// RouteUpstream pairs a route group with its configured upstream URL.
type RouteUpstream struct {
	Group string
	URL   string
}

// Upstreams returns every route group in mount order, configured or not.
// Each group is served under "/api/<Group>".
func (r Routes) Upstreams() []RouteUpstream {
	return []RouteUpstream{
		{Group: "auth", URL: r.Auth},
		{Group: "habits", URL: r.Habits},
		{Group: "attendance", URL: r.Attendance},
		{Group: "schedule", URL: r.Schedule},
		{Group: "users", URL: r.Users},
		{Group: "assignments", URL: r.Assignments},
		{Group: "exams", URL: r.Exams},
		{Group: "seed", URL: r.Seed},
	}
}

// URL returns the configured upstream for the named route group, or an
// empty string when the group is unknown or not configured.
func (r Routes) URL(group string) string {
	for _, u := range r.Upstreams() {
		if u.Group == group {
			return u.URL
		}
	}
	return ""
}

// Storage groups the configuration for the backing store.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the Postgres database behind Supabase.
type DB struct {
	// DSN is the PostgreSQL Data Source Name. When empty the readiness probe
	// reports the database as disabled.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// Format is either "console" (human-readable, colored) or "json".
	// Env: LOG_FORMAT
	Format string `env:"FORMAT"`
}

// GetStructuredConfig loads, merges, and validates the gateway configuration
// from all available sources. Earlier sources win for non-zero fields:
//  1. Command-line flags (args, usually os.Args[1:]; nil skips flags)
//  2. Environment variables, seeded from a dotenv file when present
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withDotEnv().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
