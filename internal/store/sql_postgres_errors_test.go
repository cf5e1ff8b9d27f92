package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "dial error", err: errors.New("connection refused"), want: Retryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "unable to establish", err: pgError(pgerrcode.SQLClientUnableToEstablishSQLConnection), want: Retryable},
		{name: "too many connections", err: pgError(pgerrcode.TooManyConnections), want: Retryable},
		{name: "admin shutdown", err: pgError(pgerrcode.AdminShutdown), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "wrapped cannot connect now", err: fmt.Errorf("ping: %w", pgError(pgerrcode.CannotConnectNow)), want: Retryable},
		{name: "invalid password", err: pgError(pgerrcode.InvalidPassword), want: NonRetryable},
		{name: "unknown database", err: pgError(pgerrcode.InvalidCatalogName), want: NonRetryable},
	}

	c := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPgErrorCode(t *testing.T) {
	assert.Equal(t, pgerrcode.InvalidPassword, pgErrorCode(fmt.Errorf("x: %w", pgError(pgerrcode.InvalidPassword))))
	assert.Empty(t, pgErrorCode(errors.New("plain")))
}
