package domain

import (
	"strings"
	"unicode"
)

// illegalNameChars are characters illegal on common filesystems
// (Windows being the strictest), stripped outright during sanitization.
const illegalNameChars = `<>:"|?*`

// SanitizeName converts a region or territory name into a safe single
// path segment: path separators and runs of whitespace collapse to one
// underscore, characters illegal on common filesystems are stripped,
// non-ASCII letters are preserved. SanitizeName is idempotent and its
// result never contains a path separator. An empty result becomes
// "unnamed".
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingSep := false
	for _, r := range name {
		switch {
		case r == '/' || r == '\\' || unicode.IsSpace(r):
			pendingSep = true
		case strings.ContainsRune(illegalNameChars, r) || unicode.IsControl(r):
			// dropped
		default:
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		}
	}

	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "unnamed"
	}
	return out
}
