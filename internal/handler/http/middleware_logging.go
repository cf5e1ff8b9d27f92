package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/college-organizer/internal/logger"
	"github.com/MKhiriev/college-organizer/internal/utils"
)

// withLogging writes one access-log line per request, in the spirit of
// morgan's "dev" format: "GET /api/habits 200 3.125 ms - 52".
//
// The user field carries the unverified "sub" claim of a bearer token and
// is for correlation only.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := h.now()

		uri := r.RequestURI
		method := r.Method
		user := utils.SubjectFromAuthorization(r.Header.Get("Authorization"))

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := h.now().Sub(start)
		status := lw.Status()

		event := levelForStatus(log, status).
			Str("uri", uri).
			Str("method", method).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size)
		if user != "" {
			event = event.Str("user", user)
		}

		event.Msgf("%s %s %d %.3f ms - %d", method, uri, status, float64(duration)/float64(time.Millisecond), lw.size)
	})
}

func levelForStatus(log *logger.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}
