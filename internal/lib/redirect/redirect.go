package redirect

import "strings"

const fallbackPath = "/admin"

// SanitizeNext validates the "next" path carried through the auth callback.
// Only same-site absolute paths are allowed: the value must start with a
// single "/" (a "//" prefix is a protocol-relative URL and would leave the
// site). Anything else falls back to /admin.
func SanitizeNext(next string) string {
	if next == "" {
		return fallbackPath
	}
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return fallbackPath
	}
	return next
}
