package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrEmptyToken      = errors.New("empty bearer token")
	ErrInvalidSubject  = errors.New("invalid subject")
	ErrInvalidAddress  = errors.New("invalid address")
	ErrInvalidUpstream = errors.New("invalid upstream url")
)

// StatusError is a non-2xx response. It unwraps to the sentinel matching
// StatusCode, or ErrUnexpectedStatus.
type StatusError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%v: http %d %s", e.Err, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body == "" {
		return msg
	}
	return msg + ": " + e.Body
}

func (e *StatusError) Unwrap() error {
	return e.Err
}
