package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/MKhiriev/college-organizer/internal/logger"
	"github.com/MKhiriev/college-organizer/internal/utils"
	"github.com/MKhiriev/college-organizer/models"
)

// NewProxy returns a handler that forwards every request of a route group to
// the collaborator at target.
//
// The incoming path and query are appended to target's path, so a group
// mounted at "/api/habits" with target "http://habits:8082" sends
// "/api/habits/3?x=1" to "http://habits:8082/api/habits/3?x=1". Headers,
// including Authorization, and the body are forwarded as received.
// X-Forwarded-For, X-Forwarded-Host and X-Forwarded-Proto are set.
//
// The gateway owns CORS: Access-Control-Allow-* headers sent by the
// collaborator are dropped so the browser sees the gateway's single value.
//
// When the collaborator cannot be reached the proxy answers 502 with a JSON
// error body.
func NewProxy(group, target string, log *logger.Logger) (http.Handler, error) {
	upstream, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("%w %q for %s: %w", ErrInvalidUpstream, target, group, err)
	}
	if upstream.Scheme == "" || upstream.Host == "" {
		return nil, fmt.Errorf("%w %q for %s: scheme and host are required", ErrInvalidUpstream, target, group)
	}

	log.Info().
		Str("group", group).
		Str("upstream", upstream.Redacted()).
		Msg("route group proxied")

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(upstream)
			pr.SetXForwarded()
		},
		ModifyResponse: stripCORSHeaders,
		ErrorHandler:   proxyErrorHandler(group, upstream.Redacted()),
	}, nil
}

const corsAllowHeaderPrefix = "Access-Control-Allow-"

// stripCORSHeaders removes the collaborator's CORS response headers.
// ReverseProxy adds upstream headers to those already set on the writer, so
// keeping them would give the browser two values per header.
func stripCORSHeaders(resp *http.Response) error {
	for key := range resp.Header {
		if strings.HasPrefix(http.CanonicalHeaderKey(key), corsAllowHeaderPrefix) {
			resp.Header.Del(key)
		}
	}
	return nil
}

func proxyErrorHandler(group, upstream string) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		log := logger.FromRequest(r)

		// the caller went away; nobody reads the response
		if errors.Is(err, context.Canceled) {
			log.Debug().Err(err).Str("group", group).Msg("proxied request canceled")
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		log.Error().
			Err(err).
			Str("group", group).
			Str("upstream", upstream).
			Msg("upstream request failed")

		resp := models.ErrorResponse{Error: group + " service unavailable"}
		if _, werr := utils.WriteJSON(w, resp, http.StatusBadGateway); werr != nil {
			log.Err(werr).Msg("error writing response")
		}
	}
}
