package media

func MapMediatorItem(m MediatorItem) Record {
	rec := Record{
		Title:                      m.Title,
		PrimaryCategory:            m.PrimaryCategory,
		MediaCitation:              m.MediaCitation,
		LanguageAgnosticNaturalKey: m.LanguageAgnosticNaturalKey,
		FirstPublished:             m.FirstPublished,
		Type:                       m.Type,
		Duration:                   m.Duration,
		Image:                      SelectImage(m.Images),
	}

	if f, ok := SelectFile(m.Files); ok {
		rec.File = f.ProgressiveDownloadURL
		if f.Subtitles != nil {
			rec.Subtitle = f.Subtitles.URL
		}
	}

	return rec
}
