// Package slug derives URL-safe identifiers from human-readable names.
package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make creates a URL-friendly slug from a name.
// Converts to lowercase, replaces runs of spaces and special characters
// with a single hyphen, and trims leading/trailing hyphens, so output is
// always within [a-z0-9-]. Make is idempotent: Make(Make(x)) == Make(x).
func Make(name string) string {
	s := strings.ToLower(name)
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}
