package http

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

const (
	headerAllowOrigin      = "Access-Control-Allow-Origin"
	headerAllowMethods     = "Access-Control-Allow-Methods"
	headerAllowHeaders     = "Access-Control-Allow-Headers"
	headerAllowCredentials = "Access-Control-Allow-Credentials"
)

var (
	preflightMethods = []string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
	}
	preflightHeaders = []string{"Content-Type", "Authorization"}

	// actualRequestMethods may receive CORS headers on actual requests.
	actualRequestMethods = []string{
		http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete,
	}
)

// withPreflight answers every OPTIONS request, on any path, with 200 and a
// fixed set of CORS headers. The request never reaches the route groups.
//
// The Origin is echoed without consulting the allow-list.
func (h *Handler) withPreflight(next http.Handler) http.Handler {
	allowMethods := strings.Join(preflightMethods, ", ")
	allowHeaders := strings.Join(preflightHeaders, ", ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		origin := r.Header.Get("Origin")
		if origin == "" {
			// TODO: ask the product owner whether to drop the wildcard; browsers
			// reject "*" when credentials are allowed.
			origin = "*"
		}

		headers := w.Header()
		headers.Set(headerAllowOrigin, origin)
		headers.Set(headerAllowMethods, allowMethods)
		headers.Set(headerAllowHeaders, allowHeaders)
		headers.Set(headerAllowCredentials, "true")
		headers.Add("Vary", "Origin")

		w.WriteHeader(http.StatusOK)
	})
}

// withCORS evaluates actual (non pre-flight) cross-origin requests against
// the policy. An allowed Origin is echoed back; any other Origin gets no
// Allow-Origin header. Allow-Credentials is sent on every response.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowOriginFunc:  h.policy.Allowed,
		AllowedMethods:   actualRequestMethods,
		AllowCredentials: true,
	})

	return func(next http.Handler) http.Handler {
		corsHandler := c.Handler(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(headerAllowCredentials, "true")
			corsHandler.ServeHTTP(w, r)
		})
	}
}
