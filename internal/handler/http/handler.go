package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/college-organizer/internal/cors"
	"github.com/MKhiriev/college-organizer/internal/logger"
	"github.com/MKhiriev/college-organizer/models"
)

// RouteGroup binds a path prefix such as "/api/habits" to the handler that
// serves every request below it.
type RouteGroup struct {
	Prefix  string
	Handler http.Handler
}

// Options carries everything the gateway pipeline needs. Zero values are
// valid.
type Options struct {
	// Policy decides which origins receive CORS headers on actual requests.
	// Nil allows none.
	Policy *cors.Policy
	// Routes are mounted in order. Entries with a nil Handler are skipped.
	Routes []RouteGroup
	// Pinger backs GET /healthz. Nil reports the database as disabled.
	Pinger Pinger
	// JSONBodyLimit caps parsed JSON bodies in bytes. Zero means 100 KiB.
	JSONBodyLimit int64
	// RequestTimeout cancels slow requests when positive.
	RequestTimeout time.Duration
	// HealthTimeout bounds the database ping. Zero means 2s.
	HealthTimeout time.Duration
	BuildInfo     models.AppBuildInfo
}

type Handler struct {
	policy         *cors.Policy
	routes         []RouteGroup
	pinger         Pinger
	jsonBodyLimit  int64
	requestTimeout time.Duration
	healthTimeout  time.Duration
	buildInfo      models.AppBuildInfo

	now    func() time.Time
	logger *logger.Logger
}

const (
	defaultJSONBodyLimit = 100 << 10
	defaultHealthTimeout = 2 * time.Second
)

func NewHandler(opts Options, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		policy:         opts.Policy,
		routes:         opts.Routes,
		pinger:         opts.Pinger,
		jsonBodyLimit:  opts.JSONBodyLimit,
		requestTimeout: opts.RequestTimeout,
		healthTimeout:  opts.HealthTimeout,
		buildInfo:      opts.BuildInfo,
		now:            time.Now,
		logger:         logger,
	}

	if h.policy == nil {
		h.policy = &cors.Policy{}
	}
	if h.jsonBodyLimit <= 0 {
		h.jsonBodyLimit = defaultJSONBodyLimit
	}
	if h.healthTimeout <= 0 {
		h.healthTimeout = defaultHealthTimeout
	}

	return h
}
