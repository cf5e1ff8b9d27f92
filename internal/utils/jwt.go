package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned when the Authorization header is
// not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// ParseBearerToken extracts the token from an Authorization header value of
// the form "Bearer <token>". The scheme is matched case-insensitively.
//
// Example usage:
//
//	token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// ParseSubjectFromJWT returns the "sub" claim of tokenString WITHOUT
// verifying its signature or expiry. The result must only be used for
// observability (e.g. access logs), never for authorization decisions.
//
// Supabase access tokens carry the user UUID in "sub".
func ParseSubjectFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("error parsing token: %w", err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error getting subject from token: %w", err)
	}
	if sub == "" {
		return "", errors.New("empty subject")
	}

	return sub, nil
}

// SubjectFromAuthorization combines ParseBearerToken and ParseSubjectFromJWT.
// It returns an empty string when either step fails.
func SubjectFromAuthorization(authorizationHeader string) string {
	if authorizationHeader == "" {
		return ""
	}

	token, err := ParseBearerToken(authorizationHeader)
	if err != nil {
		return ""
	}

	sub, err := ParseSubjectFromJWT(token)
	if err != nil {
		return ""
	}

	return sub
}
