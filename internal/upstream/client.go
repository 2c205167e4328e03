package upstream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"wol-api/internal/apperr"
	"wol-api/internal/metrics"
)

// maxErrorBody bounds how much of a failed response is read for the log line.
const maxErrorBody = 512

type Client struct {
	http   *http.Client
	logger *zap.Logger
}

func NewClient(httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

// Get issues a GET and returns the response only when the status is 2xx. The caller owns
// the body. Any other outcome is reported as *apperr.UpstreamError.
func (c *Client) Get(ctx context.Context, source, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &apperr.UpstreamError{Source: source, URL: rawURL, Err: err}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveUpstream(source, "network", time.Since(start))
		c.logger.Warn("upstream request failed",
			zap.String("source", source),
			zap.String("url", rawURL),
			zap.Error(err))
		return nil, &apperr.UpstreamError{Source: source, URL: rawURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		metrics.ObserveUpstream(source, "status", time.Since(start))
		c.logger.Warn("upstream returned non-success status",
			zap.String("source", source),
			zap.String("url", rawURL),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", snippet))
		return nil, &apperr.UpstreamError{
			Source:     source,
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	metrics.ObserveUpstream(source, "success", time.Since(start))
	c.logger.Debug("upstream request ok",
		zap.String("source", source),
		zap.String("url", rawURL),
		zap.Duration("elapsed", time.Since(start)))

	return resp, nil
}
