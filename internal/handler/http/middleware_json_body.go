package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/college-organizer/internal/logger"
	"github.com/MKhiriev/college-organizer/internal/utils"
)

const jsonMediaType = "application/json"

// withJSONBody parses application/json request bodies up front so malformed
// input is rejected before it reaches a route group.
//
// Only non-empty bodies with media type application/json are read. The
// decoded value is stored in the request context (see
// [utils.GetJSONBodyFromContext]) and the raw bytes are put back on r.Body
// so proxied requests are forwarded unchanged.
//
// Failures are answered with the plain status text:
//   - 415 for a charset other than utf-8;
//   - 413 when the body exceeds the configured limit;
//   - 400 when the body is not a JSON object or array, or is not valid JSON.
func (h *Handler) withJSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params, ok := jsonBodyParams(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		body, value, err := h.readJSONBody(w, r, params)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("rejected request body")
			status := statusForBodyError(err)
			http.Error(w, http.StatusText(status), status)
			return
		}

		// empty body: nothing to parse
		if body == nil {
			next.ServeHTTP(w, r)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		r.ContentLength = int64(len(body))
		next.ServeHTTP(w, r.WithContext(utils.WithJSONBody(r.Context(), value)))
	})
}

// jsonBodyParams reports whether r carries a body declared as JSON and
// returns its media type parameters.
func jsonBodyParams(r *http.Request) (map[string]string, bool) {
	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return nil, false
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, false
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != jsonMediaType {
		return nil, false
	}

	return params, true
}

// readJSONBody returns a nil body when the request turned out to be empty.
func (h *Handler) readJSONBody(w http.ResponseWriter, r *http.Request, params map[string]string) ([]byte, any, error) {
	if charset, ok := params["charset"]; ok && !strings.EqualFold(charset, "utf-8") {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedCharset, charset)
	}

	if r.ContentLength > h.jsonBodyLimit {
		return nil, nil, fmt.Errorf("%w: content-length %d", ErrBodyTooLarge, r.ContentLength)
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.jsonBodyLimit))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, nil, fmt.Errorf("%w: limit %d", ErrBodyTooLarge, maxBytesErr.Limit)
		}
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}

	if len(body) == 0 {
		return nil, nil, nil
	}

	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return nil, nil, ErrNotJSONObjectOrArray
	}

	var value any
	if err = json.Unmarshal(body, &value); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}

	return body, value, nil
}

func statusForBodyError(err error) int {
	switch {
	case errors.Is(err, ErrUnsupportedCharset):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusBadRequest
	}
}
