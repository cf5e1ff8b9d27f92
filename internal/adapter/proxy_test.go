package adapter

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/college-organizer/internal/logger"
	"github.com/MKhiriev/college-organizer/models"
)

type seenRequest struct {
	method   string
	path     string
	rawQuery string
	auth     string
	body     string
	xff      string
	host     string
}

func newUpstream(t *testing.T, seen *seenRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*seen = seenRequest{
			method:   r.Method,
			path:     r.URL.Path,
			rawQuery: r.URL.RawQuery,
			auth:     r.Header.Get("Authorization"),
			body:     string(body),
			xff:      r.Header.Get("X-Forwarded-For"),
			host:     r.Host,
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Upstream", "habits")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"h-1"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewProxy_ForwardsRequest(t *testing.T) {
	var seen seenRequest
	upstream := newUpstream(t, &seen)

	proxy, err := NewProxy("habits", upstream.URL, logger.Nop())
	require.NoError(t, err)

	body := `{"title":"Read 10 pages"}`
	req := httptest.NewRequest(http.MethodPost, "http://gateway.test/api/habits/3/log?day=Mon", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer abc")
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	proxy.ServeHTTP(rr, req)

	assert.Equal(t, http.MethodPost, seen.method)
	assert.Equal(t, "/api/habits/3/log", seen.path)
	assert.Equal(t, "day=Mon", seen.rawQuery)
	assert.Equal(t, "Bearer abc", seen.auth)
	assert.Equal(t, body, seen.body)
	assert.NotEmpty(t, seen.xff)
	assert.Equal(t, strings.TrimPrefix(upstream.URL, "http://"), seen.host)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "habits", rr.Header().Get("X-Upstream"))
	assert.JSONEq(t, `{"id":"h-1"}`, rr.Body.String())
}

func TestNewProxy_JoinsUpstreamBasePath(t *testing.T) {
	var seen seenRequest
	upstream := newUpstream(t, &seen)

	proxy, err := NewProxy("exams", upstream.URL+"/v1", logger.Nop())
	require.NoError(t, err)

	proxy.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/exams", nil))

	assert.Equal(t, "/v1/api/exams", seen.path)
}

func TestNewProxy_UpstreamUnavailable(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	target := upstream.URL
	upstream.Close()

	proxy, err := NewProxy("habits", target, logger.Nop())
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	proxy.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/habits", nil))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "habits service unavailable", resp.Error)
}

func TestNewProxy_InvalidTarget(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "empty", target: ""},
		{name: "no scheme", target: "habits:8082"},
		{name: "no host", target: "http://"},
		{name: "unparsable", target: "http://[::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proxy, err := NewProxy("habits", tt.target, logger.Nop())

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidUpstream)
			assert.Nil(t, proxy)
		})
	}
}

func TestNewProxy_DropsUpstreamCORSHeaders(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("access-control-allow-methods", "GET")
		w.Header().Set("X-Upstream", "habits")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(upstream.Close)

	proxy, err := NewProxy("habits", upstream.URL, logger.Nop())
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	rr.Header().Set("Access-Control-Allow-Origin", "http://localhost:3000")
	rr.Header().Set("Access-Control-Allow-Credentials", "true")

	proxy.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/habits/1", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"http://localhost:3000"}, rr.Header().Values("Access-Control-Allow-Origin"))
	assert.Equal(t, []string{"true"}, rr.Header().Values("Access-Control-Allow-Credentials"))
	assert.Empty(t, rr.Header().Values("Access-Control-Allow-Methods"))
	assert.Equal(t, "habits", rr.Header().Get("X-Upstream"))
}

func TestStripCORSHeaders(t *testing.T) {
	resp := &http.Response{Header: http.Header{
		"Access-Control-Allow-Origin":   {"*"},
		"Access-Control-Allow-Headers":  {"Content-Type"},
		"Access-Control-Expose-Headers": {"X-Total"},
		"Content-Type":                  {"application/json"},
	}}

	require.NoError(t, stripCORSHeaders(resp))

	assert.Equal(t, http.Header{
		"Access-Control-Expose-Headers": {"X-Total"},
		"Content-Type":                  {"application/json"},
	}, resp.Header)
}
