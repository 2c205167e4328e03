package media

var (
	// ImageCategories in order of preference.
	ImageCategories = []string{"lsr", "cvr", "sqr"}
	// ImageSizes in order of preference.
	ImageSizes = []string{"xl", "lg", "md"}
)

// SelectImage returns the preferred image URL. The first category with any entry wins;
// when none of its sizes has a URL the result is empty and later categories are not
// consulted.
func SelectImage(images map[string]map[string]string) string {
	for _, category := range ImageCategories {
		sizes := images[category]
		if len(sizes) == 0 {
			continue
		}

		for _, size := range ImageSizes {
			if u := sizes[size]; u != "" {
				return u
			}
		}
		return ""
	}
	return ""
}

// SelectFile returns the largest file variant; the earliest one wins a tie.
func SelectFile(files []MediatorFile) (MediatorFile, bool) {
	if len(files) == 0 {
		return MediatorFile{}, false
	}

	best := files[0]
	for _, f := range files[1:] {
		if f.Filesize > best.Filesize {
			best = f
		}
	}
	return best, true
}
