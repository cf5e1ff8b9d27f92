package http

import "context"

//go:generate mockgen -source=interfaces.go -destination=../../mock/pinger_mock.go -package=mock

// Pinger reports whether the backing database accepts connections.
type Pinger interface {
	Ping(ctx context.Context) error
}
