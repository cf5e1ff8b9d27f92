package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/college-organizer/internal/logger"
	"github.com/MKhiriev/college-organizer/internal/utils"
	"github.com/MKhiriev/college-organizer/models"
)

const (
	rootMessage = "College Organizer Backend (Supabase)"
	rootStatus  = "✅ Connected to Supabase"

	testLogsMessage      = "Check your BACKEND TERMINAL (not browser console) for log messages with 🧪"
	testLogsInstructions = "Look for the PowerShell/CMD window running on port 5001"

	// testLogsTimeLayout is ISO 8601 in UTC with milliseconds.
	testLogsTimeLayout = "2006-01-02T15:04:05.000Z"

	healthOK       = "ok"
	healthDegraded = "degraded"
	databaseOff    = "disabled"
	databaseUp     = "up"
	databaseDown   = "down"
)

var testLogsLines = []string{
	"🧪 ========================================",
	"🧪 TEST ENDPOINT HIT!",
	"🧪 If you see this message, your backend terminal logging is working!",
	"🧪 Now try creating a subject and look for 📝 CREATE SUBJECT logs",
	"🧪 ========================================",
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, models.RootResponse{
		Message: rootMessage,
		Status:  rootStatus,
	}, http.StatusOK)
}

// testLogs lets an operator confirm that server-side logging is visible.
func (h *Handler) testLogs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	for _, line := range testLogsLines {
		log.Info().Msg(line)
	}

	h.writeJSON(w, r, models.TestLogsResponse{
		Success:      true,
		Message:      testLogsMessage,
		Instructions: testLogsInstructions,
		Timestamp:    h.now().UTC().Format(testLogsTimeLayout),
	}, http.StatusOK)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Status:   healthOK,
		Database: databaseOff,
		Version:  h.buildInfo.BuildVersion(),
	}

	if h.pinger == nil {
		h.writeJSON(w, r, resp, http.StatusOK)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.healthTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		logger.FromRequest(r).Err(err).Msg("database ping failed")
		resp.Status = healthDegraded
		resp.Database = databaseDown
		h.writeJSON(w, r, resp, http.StatusServiceUnavailable)
		return
	}

	resp.Database = databaseUp
	h.writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
