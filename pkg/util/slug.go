package util

import (
	"path/filepath"
	"strings"
)

const maxSlugLength = 64

// Slugify converts a file name into a storage-safe object name: lowercase,
// alphanumerics and hyphens only, capped at 64 characters. The file extension
// is normalized and preserved outside the cap.
func Slugify(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	base := strings.TrimSuffix(name, filepath.Ext(name))

	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(base) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if len(slug) > maxSlugLength {
		slug = strings.Trim(slug[:maxSlugLength], "-")
	}
	if slug == "" {
		slug = "file"
	}

	return slug + ext
}
