package handler

import (
	"fmt"

	"github.com/MKhiriev/college-organizer/internal/adapter"
	"github.com/MKhiriev/college-organizer/internal/config"
	"github.com/MKhiriev/college-organizer/internal/cors"
	"github.com/MKhiriev/college-organizer/internal/handler/http"
	"github.com/MKhiriev/college-organizer/internal/logger"
	"github.com/MKhiriev/college-organizer/models"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the gateway handler from cfg. Every route group with a
// configured upstream is served by a reverse proxy; the others are left
// unmounted. pinger may be nil when no database is configured.
func NewHandlers(cfg *config.StructuredConfig, pinger http.Pinger, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	policy, err := cors.NewPolicy(cfg.CORS)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidCORSPolicy, err)
	}

	routes, err := newRouteGroups(cfg.Routes, logger)
	if err != nil {
		return nil, err
	}

	return &Handlers{
		HTTP: http.NewHandler(http.Options{
			Policy:         policy,
			Routes:         routes,
			Pinger:         pinger,
			JSONBodyLimit:  cfg.Server.JSONBodyLimit,
			RequestTimeout: cfg.Server.RequestTimeout,
			BuildInfo:      buildInfo,
		}, logger),
	}, nil
}

func newRouteGroups(routes config.Routes, logger *logger.Logger) ([]http.RouteGroup, error) {
	upstreams := routes.Upstreams()
	groups := make([]http.RouteGroup, 0, len(upstreams))

	for _, u := range upstreams {
		group := http.RouteGroup{Prefix: "/api/" + u.Group}

		if u.URL == "" {
			logger.Warn().Str("group", u.Group).Msg("route group has no upstream and is not mounted")
			groups = append(groups, group)
			continue
		}

		proxy, err := adapter.NewProxy(u.Group, u.URL, logger)
		if err != nil {
			return nil, err
		}
		group.Handler = proxy
		groups = append(groups, group)
	}

	return groups, nil
}
