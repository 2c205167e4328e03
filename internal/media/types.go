package media

import (
	"fmt"
	"strings"
)

// MediatorResponse is the body of GET media-items/{language}/{id}.
type MediatorResponse struct {
	Media []MediatorItem `json:"media"`
}

type MediatorItem struct {
	GUID                       string  `json:"guid"`
	NaturalKey                 string  `json:"naturalKey"`
	LanguageAgnosticNaturalKey string  `json:"languageAgnosticNaturalKey"`
	Type                       string  `json:"type"`
	PrimaryCategory            string  `json:"primaryCategory"`
	Title                      string  `json:"title"`
	MediaCitation              string  `json:"mediaCitation"`
	FirstPublished             string  `json:"firstPublished"`
	Duration                   float64 `json:"duration"`

	Files []MediatorFile `json:"files"`

	// category (lsr, cvr, sqr, ...) -> size (xl, lg, md, ...) -> url
	Images map[string]map[string]string `json:"images"`
}

type MediatorFile struct {
	ProgressiveDownloadURL string             `json:"progressiveDownloadURL"`
	Filesize               int64              `json:"filesize"`
	Label                  string             `json:"label"`
	Mimetype               string             `json:"mimetype"`
	Subtitled              bool               `json:"subtitled"`
	Subtitles              *MediatorSubtitles `json:"subtitles,omitempty"`
}

type MediatorSubtitles struct {
	URL string `json:"url"`
}

// Record is the normalized form of one media item.
type Record struct {
	Title                      string  `json:"title"`
	PrimaryCategory            string  `json:"primaryCategory"`
	MediaCitation              string  `json:"mediaCitation"`
	LanguageAgnosticNaturalKey string  `json:"languageAgnosticNaturalKey"`
	FirstPublished             string  `json:"firstPublished"`
	Type                       string  `json:"type"`
	Duration                   float64 `json:"duration"`
	File                       string  `json:"file"`
	Subtitle                   string  `json:"subtitle,omitempty"`
	Image                      string  `json:"image,omitempty"`
}

type LanguageGroup struct {
	LanguageCode string   `json:"languageCode"`
	Media        []Record `json:"media"`
}

// Grouping decides which records land in each LanguageGroup.
type Grouping int

const (
	// GroupShared puts every collected record, whatever language it was fetched for,
	// into every group.
	GroupShared Grouping = iota
	// GroupPerLanguage puts a record only into the group of the language it was fetched for.
	GroupPerLanguage
)

func (g Grouping) String() string {
	switch g {
	case GroupShared:
		return "shared"
	case GroupPerLanguage:
		return "per-language"
	default:
		return fmt.Sprintf("grouping(%d)", int(g))
	}
}

func ParseGrouping(v string) (Grouping, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "shared":
		return GroupShared, nil
	case "per-language", "perlanguage":
		return GroupPerLanguage, nil
	default:
		return 0, fmt.Errorf("unknown media grouping %q", v)
	}
}

// AggregatedEvent is published after a successful aggregation.
type AggregatedEvent struct {
	Languages  []string `json:"languages"`
	MediaItems []string `json:"mediaItems"`
	Records    int      `json:"records"`
}

// ItemError identifies the (language, id) pair whose fetch aborted an aggregation.
type ItemError struct {
	Language string
	ID       string
	Err      error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("media item %s/%s: %v", e.Language, e.ID, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }
