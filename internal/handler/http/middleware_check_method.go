// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// notFound is registered as both the NotFound and the MethodNotAllowed
// handler of the router.
//
// Chi's default behaviour is to respond with 405 Method Not Allowed whenever
// a path matches a registered route but the method is not handled. The
// gateway answers 404 instead, with the same plain-text body as an unknown
// path, so callers cannot tell the two cases apart.
func notFound(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}
