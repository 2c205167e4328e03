package catalog

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"

	"wol-api/internal/apperr"
	"wol-api/internal/metrics"
	"wol-api/internal/upstream"
)

const source = "catalog"

type Fetcher struct {
	baseURL string
	up      *upstream.Client
	logger  *zap.Logger
}

func NewFetcher(baseURL string, up *upstream.Client, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Fetcher{
		baseURL: baseURL,
		up:      up,
		logger:  logger,
	}
}

// Fetch downloads the catalog for language and returns its video media items in catalog
// order. A single malformed line aborts the whole fetch.
func (f *Fetcher) Fetch(ctx context.Context, language string) ([]Item, error) {
	if language == "" {
		language = DefaultLanguage
	}
	u := URL(f.baseURL, language)

	resp, err := f.up.Get(ctx, source, u)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", language, err)
	}
	defer resp.Body.Close()

	var body io.Reader = resp.Body
	if !resp.Uncompressed {
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", language, &apperr.ParseError{Source: source, Err: err})
		}
		defer zr.Close()
		body = zr
	}

	items, err := Decode(body)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", language, err)
	}

	metrics.SetCatalogItems(language, len(items))
	f.logger.Info("catalog fetched",
		zap.String("language", language),
		zap.Int("videos", len(items)))

	return items, nil
}

// Decode reads an uncompressed NDJSON catalog and keeps the "o" object of every VIDEO
// media item.
func Decode(r io.Reader) ([]Item, error) {
	br := bufio.NewReader(r)
	items := make([]Item, 0)

	for lineNo := 1; ; lineNo++ {
		raw, readErr := br.ReadBytes('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, &apperr.ParseError{Source: source, Line: lineNo, Err: readErr}
		}

		if raw = bytes.TrimSpace(raw); len(raw) > 0 {
			item, keep, err := decodeLine(raw)
			if err != nil {
				return nil, &apperr.ParseError{Source: source, Line: lineNo, Err: err}
			}
			if keep {
				items = append(items, item)
			}
		}

		if errors.Is(readErr, io.EOF) {
			return items, nil
		}
	}
}

func decodeLine(raw []byte) (Item, bool, error) {
	var l line
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, false, err
	}
	if l.Type != typeMediaItem || len(l.O) == 0 {
		return nil, false, nil
	}

	var keys mediaItemKeys
	if err := json.Unmarshal(l.O, &keys); err != nil {
		return nil, false, err
	}
	if keys.KeyParts.FormatCode != formatCodeVideo {
		return nil, false, nil
	}
	return Item(l.O), true, nil
}

// URL example "https://app.jw-cdn.org/catalogs/media/E.json.gz"
func URL(baseURL, language string) string {
	return strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(language) + ".json.gz"
}
