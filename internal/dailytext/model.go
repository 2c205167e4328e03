package dailytext

import (
	"fmt"
	"strings"

	"wol-api/internal/apperr"
)

// NotFound is the value of every Result field whose source element is absent.
const NotFound = "Not Found"

type Result struct {
	DateText           string `json:"dateText"`
	ScriptureFull      string `json:"scriptureFull"`
	ScriptureReference string `json:"scriptureReference"`
	DailyText          string `json:"dailyText"`
}

func notFoundResult() Result {
	return Result{
		DateText:           NotFound,
		ScriptureFull:      NotFound,
		ScriptureReference: NotFound,
		DailyText:          NotFound,
	}
}

// Strategy selects which nodes of the page hold today's text.
type Strategy int

const (
	// FirstMatch reads the first h2, .themeScrp and .bodyTxt in the document.
	FirstMatch Strategy = iota
	// DatedIndex reads the second h2 and .themeScrp (the page lists yesterday, today and
	// tomorrow) and the body whose data-date equals today's midnight UTC instant.
	DatedIndex
)

func (s Strategy) String() string {
	switch s {
	case FirstMatch:
		return "first-match"
	case DatedIndex:
		return "dated-index"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

func ParseStrategy(v string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "first-match", "firstmatch":
		return FirstMatch, nil
	case "dated-index", "datedindex":
		return DatedIndex, nil
	default:
		return 0, apperr.InvalidInput("unknown strategy %q", v)
	}
}

// RetrievedEvent is published after today's text was fetched and extracted.
type RetrievedEvent struct {
	Strategy string `json:"strategy"`
	Date     string `json:"date"`
	Result   Result `json:"result"`
}
