package dailytext

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"wol-api/internal/apperr"
	"wol-api/internal/upstream"
)

const source = "wol"

type wolClient struct {
	baseURL string
	up      *upstream.Client
}

func NewWOLClient(baseURL string, up *upstream.Client) PageFetcher {
	return &wolClient{
		baseURL: baseURL,
		up:      up,
	}
}

// FetchDay downloads the daily-text page for day and parses it. The body is converted to
// UTF-8 from whatever charset the response declares before the tree is built.
func (c *wolClient) FetchDay(ctx context.Context, day time.Time) (*goquery.Document, error) {
	u := PageURL(c.baseURL, day)

	resp, err := c.up.Get(ctx, source, u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, &apperr.ParseError{Source: source, Err: err}
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &apperr.ParseError{Source: source, Err: err}
	}
	return doc, nil
}

// PageURL example "https://wol.jw.org/en/wol/dt/r1/lp-e/2026/10/19"
func PageURL(baseURL string, day time.Time) string {
	return strings.TrimRight(baseURL, "/") + "/" + day.Format("2006/01/02")
}
