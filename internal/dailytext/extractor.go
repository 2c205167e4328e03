package dailytext

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"wol-api/internal/apperr"
)

const isoMidnightLayout = "2006-01-02T15:04:05.000Z"

type Extractor struct {
	now func() time.Time
}

type Option func(*Extractor)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Extractor) Now() time.Time {
	return e.now()
}

// ExtractHTML parses r as HTML and runs Extract on it.
func (e *Extractor) ExtractHTML(r io.Reader, strategy Strategy) (Result, error) {
	if r == nil {
		return Result{}, apperr.InvalidInput("no HTML content provided")
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Result{}, &apperr.ParseError{Source: "html", Err: err}
	}
	return e.Extract(doc, strategy)
}

// Extract pulls the daily text out of doc. Absent nodes yield NotFound, never an error.
func (e *Extractor) Extract(doc *goquery.Document, strategy Strategy) (Result, error) {
	if doc == nil || doc.Selection == nil {
		return Result{}, apperr.InvalidInput("no document to extract from")
	}

	var date, theme, body *goquery.Selection
	switch strategy {
	case FirstMatch:
		date = doc.Find("h2").First()
		theme = doc.Find(".themeScrp").First()
		body = doc.Find(".bodyTxt").First()
	case DatedIndex:
		iso := IsoMidnight(e.now())
		date = doc.Find("h2").Eq(1)
		theme = doc.Find(".themeScrp").Eq(1)
		body = doc.Find(fmt.Sprintf("[data-date=%q]", iso)).First()
	default:
		return Result{}, apperr.InvalidInput("unknown strategy %v", strategy)
	}

	res := notFoundResult()
	res.DateText = textOf(date)
	res.ScriptureFull = textOf(theme)
	res.DailyText = textOf(body)
	if res.ScriptureFull != NotFound {
		res.ScriptureReference = ParseReference(res.ScriptureFull)
	}
	return res, nil
}

// IsoMidnight formats the calendar date of t as midnight UTC, the form the page uses in its
// data-date attributes.
func IsoMidnight(t time.Time) string {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Format(isoMidnightLayout)
}

func textOf(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return NotFound
	}
	return strings.TrimSpace(sel.Text())
}
