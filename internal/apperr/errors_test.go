package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpstreamError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("catalog E: %w", &UpstreamError{Source: "catalog", URL: "http://x", StatusCode: 404})

	require.ErrorIs(t, err, ErrUpstreamFetch)
	assert.NotErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "returned status 404")

	var up *UpstreamError
	require.ErrorAs(t, err, &up)
	assert.Equal(t, "catalog", up.Source)
}

func TestUpstreamError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := &UpstreamError{Source: "wol", URL: "http://x", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestParseError_LineNumber(t *testing.T) {
	err := &ParseError{Source: "catalog", Line: 3, Err: errors.New("unexpected EOF")}

	assert.ErrorIs(t, err, ErrParse)
	assert.Equal(t, "catalog: malformed record on line 3: unexpected EOF", err.Error())
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, HTTPStatus(nil))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(InvalidInput("no html")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(&UpstreamError{Source: "wol"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(&ParseError{Source: "catalog"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
