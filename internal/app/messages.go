// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// Log messages written by the composition root.
const (
	// MsgServerlessDetected is logged instead of binding a port when the
	// process runs inside the Vercel serverless host.
	MsgServerlessDetected = "serverless host detected, not binding a port"

	// MsgDatabaseDisabled is logged when no DSN is configured and the
	// readiness probe reports the database as disabled.
	MsgDatabaseDisabled = "no database configured, readiness reports it as disabled"

	// MsgStopSignal is logged when a stop signal starts the graceful shutdown.
	MsgStopSignal = "stop signal received"
)
