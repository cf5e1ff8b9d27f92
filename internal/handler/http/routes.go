package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the gateway router. Middleware order matters: the access log
// wraps everything below it so pre-flights, parse failures and panics are
// logged too.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.withPreflight)
	router.Use(h.withCORS())
	router.Use(h.withJSONBody)
	router.Use(middleware.GetHead)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	for _, group := range h.routes {
		if group.Handler == nil {
			continue
		}
		router.Mount(group.Prefix, group.Handler)
	}

	router.Get("/api/test-logs", h.testLogs)
	router.Get("/", h.root)
	router.Get("/healthz", h.healthz)

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
