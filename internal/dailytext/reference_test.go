package dailytext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReference(t *testing.T) {
	cases := []struct {
		name  string
		theme string
		want  string
	}{
		{"simple", "Some intro —Psalm 83:18", "Psalm 83:18"},
		{"trailing period", "You, whose name is Jehovah.—Ps. 83:18.", "Ps. 83:18"},
		{"numbered book", "God is love.—1 John 4:8", "1 John 4:8"},
		{"first of several", "Keep on the watch.—Matt. 24:42; 25:13", "Matt. 24:42"},
		{"no dash", "Psalm 83:18", NotFound},
		{"dash without verse", "Intro —Psalm", NotFound},
		{"empty", "", NotFound},
		{"windows-1252 mojibake", "Some intro â€”Psalm 83:18", "Psalm 83:18"},
		{"latin-1 mojibake", "Some intro â\u0080\u0094Psalm 83:18", "Psalm 83:18"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseReference(tc.theme))
		})
	}
}

func TestRepairMojibake(t *testing.T) {
	assert.Equal(t, "Be courageous.—Josh. 1:9", RepairMojibake("Be courageous.â€”Josh. 1:9"))
	// untouched without the marker
	assert.Equal(t, "café —Ps. 1:1", RepairMojibake("café —Ps. 1:1"))
	// a correct em-dash next to a mangled one cannot round trip, only the marker is fixed
	assert.Equal(t, "a — b — Ps. 1:1", RepairMojibake("a — b â€” Ps. 1:1"))
}
