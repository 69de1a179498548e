package utils

import (
	"regexp"
	"strings"
)

var (
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugInvalid  = regexp.MustCompile(`[^a-z0-9-]`)
	slugCollapse = regexp.MustCompile(`-+`)
)

// NormalizeSlug turns a title or user-entered slug into a URL-safe path
// segment: lowercase, hyphen-separated, alphanumeric only. Applying it to an
// already-normalized slug returns the same string.
func NormalizeSlug(value string) string {
	s := strings.ToLower(strings.TrimSpace(value))
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
