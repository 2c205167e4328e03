package upstream

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"wol-api/internal/apperr"
)

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), nil)
	resp, err := c.Get(context.Background(), "test", srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
}

func TestGet_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	core, logs := observer.New(zap.WarnLevel)
	c := NewClient(srv.Client(), zap.New(core))

	resp, err := c.Get(context.Background(), "catalog", srv.URL+"/E.json.gz")
	require.Nil(t, resp)
	require.ErrorIs(t, err, apperr.ErrUpstreamFetch)

	var up *apperr.UpstreamError
	require.ErrorAs(t, err, &up)
	assert.Equal(t, http.StatusNotFound, up.StatusCode)
	assert.Equal(t, "catalog", up.Source)

	require.Equal(t, 1, logs.FilterMessage("upstream returned non-success status").Len())
}

func TestGet_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(&http.Client{}, nil)
	_, err := c.Get(context.Background(), "wol", url)
	require.ErrorIs(t, err, apperr.ErrUpstreamFetch)

	var up *apperr.UpstreamError
	require.ErrorAs(t, err, &up)
	assert.Zero(t, up.StatusCode)
}
