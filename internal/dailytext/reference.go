package dailytext

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// An em-dash whose UTF-8 bytes (E2 80 94) were decoded one byte per rune.
var mojibakeDashes = []struct {
	marker  string
	charmap *charmap.Charmap
}{
	{"â€”", charmap.Windows1252},
	{"â\u0080\u0094", charmap.ISO8859_1},
}

var citationPattern = regexp.MustCompile(`\x{2014}\s*(.*? \d+:\d+)`)

// ParseReference returns the "Book Chapter:Verse" citation that follows the em-dash in a
// theme scripture, e.g. "Psalm 83:18" for "... name is Jehovah.—Psalm 83:18.".
func ParseReference(theme string) string {
	m := citationPattern.FindStringSubmatch(RepairMojibake(theme))
	if m == nil {
		return NotFound
	}
	return strings.TrimSpace(m[1])
}

// RepairMojibake undoes a UTF-8 mis-decode when a mangled em-dash is present. Text without
// the marker is returned untouched.
func RepairMojibake(s string) string {
	for _, d := range mojibakeDashes {
		if !strings.Contains(s, d.marker) {
			continue
		}

		raw, err := d.charmap.NewEncoder().String(s)
		if err == nil && utf8.ValidString(raw) {
			return raw
		}

		// mixed input: only the dash is known to be mangled
		s = strings.ReplaceAll(s, d.marker, "—")
	}
	return s
}
