// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound HTTP side of the college-organizer
// gateway.
//
// [NewProxy] builds the reverse proxy that serves a route group from its
// collaborator service. [SubjectCreator] is the client used by cmd/client to
// create a subject through the gateway, with an HTTP/REST implementation
// returned by [NewHTTPSubjectClient].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401) and [errors.As] with [*StatusError] to read the status and body.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/college-organizer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/subject_creator_mock.go -package=mock

// SubjectCreator creates attendance subjects on behalf of a signed-in user.
type SubjectCreator interface {
	// CreateSubject validates subject and POSTs it to
	// /api/attendance/subject with token as the bearer credential. It returns
	// the raw JSON body of a 2xx response.
	CreateSubject(ctx context.Context, token string, subject models.SubjectRequest) (json.RawMessage, error)
}
