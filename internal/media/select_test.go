package media

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectImage(t *testing.T) {
	cases := []struct {
		name   string
		images map[string]map[string]string
		want   string
	}{
		{
			name:   "first present category then first size",
			images: map[string]map[string]string{"cvr": {"xl": "A"}, "sqr": {"lg": "B"}},
			want:   "A",
		},
		{
			name:   "lsr preferred over cvr",
			images: map[string]map[string]string{"lsr": {"md": "L"}, "cvr": {"xl": "C"}},
			want:   "L",
		},
		{
			name:   "size order xl lg md",
			images: map[string]map[string]string{"sqr": {"md": "M", "lg": "G"}},
			want:   "G",
		},
		{
			name:   "first category with entries wins even without a usable size",
			images: map[string]map[string]string{"lsr": {"sm": "tiny"}, "cvr": {"xl": "C"}},
			want:   "",
		},
		{
			name:   "empty url does not count",
			images: map[string]map[string]string{"cvr": {"xl": "", "lg": "G"}},
			want:   "G",
		},
		{
			name:   "empty category map is skipped",
			images: map[string]map[string]string{"lsr": {}, "cvr": {"md": "C"}},
			want:   "C",
		},
		{
			name:   "unknown categories only",
			images: map[string]map[string]string{"pnr": {"xl": "P"}},
			want:   "",
		},
		{name: "nil", images: nil, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SelectImage(tc.images))
		})
	}
}

func TestSelectFile_PicksLargest(t *testing.T) {
	files := []MediatorFile{
		{ProgressiveDownloadURL: "small", Filesize: 10},
		{ProgressiveDownloadURL: "large", Filesize: 50},
		{ProgressiveDownloadURL: "medium", Filesize: 30},
	}

	f, ok := SelectFile(files)
	require.True(t, ok)
	assert.Equal(t, "large", f.ProgressiveDownloadURL)
}

func TestSelectFile_TieKeepsFirst(t *testing.T) {
	f, ok := SelectFile([]MediatorFile{
		{ProgressiveDownloadURL: "a", Filesize: 5},
		{ProgressiveDownloadURL: "b", Filesize: 5},
	})
	require.True(t, ok)
	assert.Equal(t, "a", f.ProgressiveDownloadURL)
}

func TestSelectFile_Empty(t *testing.T) {
	_, ok := SelectFile(nil)
	assert.False(t, ok)
}

func TestMapMediatorItem(t *testing.T) {
	raw := `{
	  "guid": "g-1",
	  "languageAgnosticNaturalKey": "pub-jwb_201812_1_VIDEO",
	  "naturalKey": "pub-jwb_201812_1_VIDEO_E",
	  "type": "video",
	  "primaryCategory": "VODProgramsEvents",
	  "title": "JW Broadcasting",
	  "firstPublished": "2018-12-01T00:00:00.000Z",
	  "duration": 1834.5,
	  "files": [
	    {"progressiveDownloadURL": "https://cdn/240.mp4", "filesize": 10, "label": "240p"},
	    {"progressiveDownloadURL": "https://cdn/720.mp4", "filesize": 50, "label": "720p",
	     "subtitles": {"url": "https://cdn/720.vtt"}},
	    {"progressiveDownloadURL": "https://cdn/480.mp4", "filesize": 30, "label": "480p"}
	  ],
	  "images": {"cvr": {"xl": "A"}, "sqr": {"lg": "B"}}
	}`

	var item MediatorItem
	require.NoError(t, json.Unmarshal([]byte(raw), &item))

	rec := MapMediatorItem(item)
	assert.Equal(t, Record{
		Title:                      "JW Broadcasting",
		PrimaryCategory:            "VODProgramsEvents",
		LanguageAgnosticNaturalKey: "pub-jwb_201812_1_VIDEO",
		FirstPublished:             "2018-12-01T00:00:00.000Z",
		Type:                       "video",
		Duration:                   1834.5,
		File:                       "https://cdn/720.mp4",
		Subtitle:                   "https://cdn/720.vtt",
		Image:                      "A",
	}, rec)
}

func TestRecordJSON_OmitsOptionalFields(t *testing.T) {
	rec := MapMediatorItem(MediatorItem{
		Title: "No extras",
		Files: []MediatorFile{{ProgressiveDownloadURL: "f", Filesize: 1}},
	})

	b, err := json.Marshal(rec)
	require.NoError(t, err)

	assert.NotContains(t, string(b), `"subtitle"`)
	assert.NotContains(t, string(b), `"image"`)
	assert.Contains(t, string(b), `"file":"f"`)
}
