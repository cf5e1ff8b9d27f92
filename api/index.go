// Package handler is the serverless entry point of the gateway. The Vercel Go
// runtime invokes [Handler] for every request routed to /api.
package handler

import (
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/MKhiriev/college-organizer/internal/app"
	"github.com/MKhiriev/college-organizer/internal/config"
	"github.com/MKhiriev/college-organizer/internal/logger"
	"github.com/MKhiriev/college-organizer/models"
)

var (
	initOnce sync.Once
	gateway  http.Handler
	initErr  error
)

// Handler serves r through the same pipeline as cmd/server. The app is built
// on the first call from environment-only configuration and reused by warm
// invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(initGateway)

	if initErr != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	gateway.ServeHTTP(w, r)
}

const role = "college-organizer-serverless"

func initGateway() {
	log := logger.NewLogger(role)

	cfg, err := config.GetStructuredConfig(nil)
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		initErr = err
		return
	}

	log = configuredLogger(cfg.Log, os.Stdout, log)

	a, err := app.New(cfg, models.NewAppBuildInfo("", "", os.Getenv("VERCEL_GIT_COMMIT_SHA")), log)
	if err != nil {
		log.Error().Err(err).Msg("error creating app")
		initErr = err
		return
	}

	gateway = a.Handler()
}

// configuredLogger builds the logger described by cfg. When that fails the
// error is reported on fallback, which keeps serving.
func configuredLogger(cfg config.Log, w io.Writer, fallback *logger.Logger) *logger.Logger {
	l, err := logger.New(role, w, cfg.Level, cfg.Format)
	if err != nil {
		fallback.Error().Err(err).Msg("error creating logger, keeping default")
		return fallback
	}
	return l
}
