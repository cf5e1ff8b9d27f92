// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the JSON body parser. They are logged and
// mapped to a status code by statusForBodyError; clients only see the
// plain status text.
var (
	// ErrUnsupportedCharset is returned when a JSON body declares a charset
	// other than utf-8.
	ErrUnsupportedCharset = errors.New("unsupported charset")

	// ErrBodyTooLarge is returned when a JSON body exceeds the configured limit.
	ErrBodyTooLarge = errors.New("request entity too large")

	// ErrNotJSONObjectOrArray is returned when the first non-whitespace byte of
	// a JSON body is neither '{' nor '['.
	ErrNotJSONObjectOrArray = errors.New("json body must be an object or an array")

	// ErrMalformedJSON is returned when a JSON body cannot be decoded.
	ErrMalformedJSON = errors.New("malformed json body")
)
