package slug

import (
	"strings"
	"unicode"
)

// Make turns a title into a URL slug: lowercase, spaces to hyphens,
// everything outside [a-z0-9-] dropped.
func Make(title string) string {
	var b strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevHyphen = false
		case r == ' ' || r == '-' || r == '_':
			if !prevHyphen && b.Len() > 0 {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
