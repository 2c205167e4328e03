// Package apperr defines the error taxonomy shared by the fetchers, the extractor and the
// HTTP handlers.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidInput marks a missing or malformed request before any upstream call is made.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUpstreamFetch marks a network failure or non-success status from an external source.
	ErrUpstreamFetch = errors.New("upstream fetch failed")
	// ErrParse marks a malformed external payload.
	ErrParse = errors.New("parse error")
)

// UpstreamError describes a failed outbound request.
type UpstreamError struct {
	Source     string // logical source, e.g. "catalog", "mediator", "wol"
	URL        string
	StatusCode int // 0 when the request never got a response
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: GET %s returned status %d", e.Source, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s: GET %s failed: %v", e.Source, e.URL, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstreamFetch }

// ParseError describes an undecodable external payload. Line is 1-based and zero when the
// payload is not line oriented.
type ParseError struct {
	Source string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: malformed record on line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: malformed payload: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// InvalidInput returns an error wrapping ErrInvalidInput with a message.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// HTTPStatus maps an error onto the response status used by the handlers.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
