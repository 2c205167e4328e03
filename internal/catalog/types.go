package catalog

import "encoding/json"

// DefaultLanguage is the English catalog.
const DefaultLanguage = "E"

// Item is a catalog object passed through to clients unchanged.
type Item = json.RawMessage

// line is one record of the NDJSON catalog. Only media-item records with a VIDEO format
// code are kept; categories, languages and the rest are discarded.
type line struct {
	Type string          `json:"type"`
	O    json.RawMessage `json:"o"`
}

type mediaItemKeys struct {
	KeyParts struct {
		FormatCode string `json:"formatCode"`
	} `json:"keyParts"`
}

const (
	typeMediaItem   = "media-item"
	formatCodeVideo = "VIDEO"
)
