package domain

import "strings"

// Slugify derives a URL-safe slug from a human-readable name:
//   - lowercases the input
//   - turns whitespace runs into a single hyphen
//   - strips everything except [a-z0-9_-]
//   - collapses repeated hyphens and trims them from both ends
//
// The result may be empty when the name has no word characters.
func Slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(name))
	pendingHyphen := false
	for _, r := range name {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-':
			pendingHyphen = true
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		}
	}
	return b.String()
}

// reservedPageSlugs are reader routes that sit beside /docs/{project}/{page}.
var reservedPageSlugs = map[string]bool{
	"search": true,
}

// IsReservedPageSlug reports whether a page may not use slug s.
func IsReservedPageSlug(s string) bool {
	return reservedPageSlugs[s]
}

// IsValidSlug reports whether s is already in canonical slug form.
func IsValidSlug(s string) bool {
	return s != "" && Slugify(s) == s
}
