// Package http implements the HTTP transport layer of the gateway.
//
// It wires the request pipeline (trace ids, access logging, panic recovery,
// CORS pre-flight and actual-request handling, JSON body parsing) in front of
// the route groups and serves the root, diagnostic and readiness endpoints.
// Route groups themselves are opaque [net/http.Handler] values supplied by
// the caller.
package http
