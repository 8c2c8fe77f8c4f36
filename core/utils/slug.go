package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"
)

// Slugify converts a display name into a URL-safe slug: lowercase ASCII
// letters, digits and single hyphens. Uniqueness is the caller's concern;
// the persistence layer re-checks the result against existing rows.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r), r == '-', r == '_', r == '/':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
		// Everything else (punctuation, non-ASCII) is dropped.
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "menu"
	}
	return slug
}

// SlugWithSuffix appends a short random suffix for collision retries.
func SlugWithSuffix(slug string) string {
	return fmt.Sprintf("%s-%04d", slug, rand.Intn(10000))
}
