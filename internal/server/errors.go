// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNilHandler = errors.New("nil http handler")
	errListen     = errors.New("error listening")
	errShutdown   = errors.New("error shutting down http server")
)
