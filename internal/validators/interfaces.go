// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks outbound payloads before the subject client
// sends them to the gateway.
//
// Field rules live in `validate` tags on the models and are evaluated with
// go-playground/validator. Rules spanning several fields of one value, such
// as a schedule slot ending after it starts, are checked by hand.
package validators

import "context"

// Validator validates a value. When fields are given, only those top-level
// fields are checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
