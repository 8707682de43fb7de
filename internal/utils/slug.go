package utils

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Slugify lower-cases s and joins its letter and digit runs with dashes.
//
//	Slugify("  Lost & Found: Guide ") == "lost-found-guide"
func Slugify(s string) string {
	var b strings.Builder
	dash := false

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}

	return b.String()
}

// UniqueSlug returns Slugify(title) followed by a dash and the first eight
// characters of a random UUID.
func UniqueSlug(title string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	slug := Slugify(title)
	if slug == "" {
		return suffix
	}
	return slug + "-" + suffix
}
