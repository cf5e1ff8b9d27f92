// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errInvalidCORSPolicy is returned by NewHandlers when the configured origin
// pattern does not compile. The gateway cannot answer cross-origin requests
// safely without it, so the application fails at startup.
var errInvalidCORSPolicy = errors.New("invalid cors policy")
