package models

// RootResponse is the payload of GET /. Status is a fixed label, not the
// result of a connectivity check.
type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// TestLogsResponse is the payload of GET /api/test-logs.
type TestLogsResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	Instructions string `json:"instructions"`
	// Timestamp is the server time in UTC with millisecond precision,
	// e.g. "2026-03-01T09:00:00.000Z".
	Timestamp string `json:"timestamp"`
}

// HealthResponse is the payload of GET /healthz.
type HealthResponse struct {
	// Status is "ok" or "degraded".
	Status string `json:"status"`
	// Database is "disabled", "up" or "down".
	Database string `json:"database"`
	// Version is the build version of the running binary.
	Version string `json:"version,omitempty"`
}

// ErrorResponse is written by the gateway itself when an upstream route
// group cannot be reached.
type ErrorResponse struct {
	Error string `json:"error"`
}
