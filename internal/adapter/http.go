package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/college-organizer/internal/config"
	"github.com/MKhiriev/college-organizer/internal/logger"
	"github.com/MKhiriev/college-organizer/internal/utils"
	"github.com/MKhiriev/college-organizer/internal/validators"
	"github.com/MKhiriev/college-organizer/models"
)

const createSubjectPath = "/api/attendance/subject"

type httpSubjectClient struct {
	client    *utils.HTTPClient
	validator validators.Validator

	logger *logger.Logger
}

// NewHTTPSubjectClient constructs an HTTP/REST implementation of
// [SubjectCreator]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error wrapping [ErrInvalidAddress] if cfg.HTTPAddress is empty or
// cannot be parsed as a valid URL.
func NewHTTPSubjectClient(cfg config.ClientAdapter, logger *logger.Logger) (SubjectCreator, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpSubjectClient{
		client:    utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		validator: validators.NewSubjectValidator(),
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateSubject implements [SubjectCreator].
func (c *httpSubjectClient) CreateSubject(ctx context.Context, token string, subject models.SubjectRequest) (json.RawMessage, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrEmptyToken
	}

	if err := c.validator.Validate(ctx, subject); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSubject, err)
	}

	c.logger.Debug().
		Str("path", createSubjectPath).
		Str("name", subject.Name).
		Int("slots", len(subject.Schedule)).
		Msg("creating subject")

	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(subject).
		Post(createSubjectPath)
	if err != nil {
		return nil, fmt.Errorf("create subject request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := resp.Body()
	if len(body) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("decode create subject response: invalid json %q", body)
	}

	return json.RawMessage(body), nil
}
