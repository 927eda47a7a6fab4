package musicbrainz

import (
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors for configuration failures. All of them are reported
// before any network I/O takes place.
var (
	// ErrNoUserAgent is returned when no application identity was configured.
	// The MusicBrainz service requires a meaningful User-Agent on every
	// request.
	ErrNoUserAgent = errors.New("musicbrainz: no user agent configured")

	// ErrNoCredentials is returned when an operation requiring
	// authentication is called without credentials configured.
	ErrNoCredentials = errors.New("musicbrainz: no credentials configured")

	// ErrInvalidRateLimit is returned when the rate limit interval or
	// request quota is not positive.
	ErrInvalidRateLimit = errors.New("musicbrainz: invalid rate limit configuration")
)

// ValidationError indicates a request that was rejected client-side, before
// any network I/O: an unknown include, an unsupported filter, conflicting
// browse parameters or an empty identifier.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("musicbrainz: validation error: %s", e.Message)
}

// ResponseError represents a non-success HTTP response from the web service.
// Message carries the service's own error text when it could be parsed from
// the body.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("musicbrainz: response error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("musicbrainz: response error %d", e.StatusCode)
}

// AuthenticationError indicates rejected or missing credentials (401/403).
type AuthenticationError struct {
	ResponseError
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("musicbrainz: authentication failed: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *ResponseError.
func (e *AuthenticationError) As(target any) bool {
	if t, ok := target.(**ResponseError); ok {
		*t = &e.ResponseError
		return true
	}
	return false
}

// NotFoundError indicates the requested entity does not exist (404).
type NotFoundError struct {
	ResponseError
	Entity string
	MBID   string
}

func (e *NotFoundError) Error() string {
	if e.Entity != "" && e.MBID != "" {
		return fmt.Sprintf("musicbrainz: %s not found: %s", e.Entity, e.MBID)
	}
	return fmt.Sprintf("musicbrainz: resource not found: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *ResponseError.
func (e *NotFoundError) As(target any) bool {
	if t, ok := target.(**ResponseError); ok {
		*t = &e.ResponseError
		return true
	}
	return false
}

// NetworkError wraps a transport-level failure (connection refused, timeout,
// DNS failure). Requests are never retried; the failure surfaces directly.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("musicbrainz: network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// serviceError is the error document returned by the web service:
//
//	<error><text>...</text></error>
type serviceError struct {
	XMLName xml.Name `xml:"error"`
	Text    []string `xml:"text"`
}

// parseError converts a non-success HTTP response into the appropriate
// error type, extracting the service's error text when the body parses.
func parseError(statusCode int, body []byte) error {
	base := ResponseError{StatusCode: statusCode}

	var svcErr serviceError
	if err := xml.Unmarshal(body, &svcErr); err == nil && len(svcErr.Text) > 0 {
		base.Message = strings.Join(svcErr.Text, "; ")
	} else if len(body) > 0 {
		base.Message = strings.TrimSpace(string(body))
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &AuthenticationError{ResponseError: base}
	case statusCode == http.StatusNotFound:
		return &NotFoundError{ResponseError: base}
	default:
		return &base
	}
}
