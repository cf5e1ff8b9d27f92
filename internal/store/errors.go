package store

import "errors"

// Sentinel errors returned by [DB.Ping]. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrDatabaseUnavailable is returned when the database cannot be reached
	// or does not answer before the context expires.
	ErrDatabaseUnavailable = errors.New("database unavailable")

	// ErrDatabaseRejected is returned when the database answers but refuses
	// the session (bad credentials, unknown database, too many clients).
	// Retrying does not help until the configuration changes.
	ErrDatabaseRejected = errors.New("database rejected connection")
)
