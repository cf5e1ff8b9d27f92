// Package cors decides which browser origins may call the gateway.
//
// A [Policy] accepts an origin when it equals one of the configured literal
// origins or, failing that, matches the configured origin pattern. The same
// decision is used for actual cross-origin requests; pre-flight requests are
// answered separately by the HTTP handler.
package cors

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/MKhiriev/college-organizer/internal/config"
)

// Policy is an immutable origin allow-list. It is safe for concurrent use.
type Policy struct {
	origins []string
	pattern *regexp.Regexp
}

// NewPolicy builds a Policy from cfg. An empty pattern matches nothing.
func NewPolicy(cfg config.CORS) (*Policy, error) {
	p := &Policy{
		origins: slices.Clone(cfg.AllowedOrigins),
	}

	if cfg.AllowedOriginPattern != "" {
		re, err := regexp.Compile(cfg.AllowedOriginPattern)
		if err != nil {
			return nil, fmt.Errorf("error compiling origin pattern: %w", err)
		}
		p.pattern = re
	}

	return p, nil
}

// Allowed reports whether origin may receive CORS headers. Literal origins
// are compared exactly and case-sensitively before the pattern is tried.
// The empty origin is never allowed.
func (p *Policy) Allowed(origin string) bool {
	if origin == "" {
		return false
	}

	if slices.Contains(p.origins, origin) {
		return true
	}

	return p.pattern != nil && p.pattern.MatchString(origin)
}
