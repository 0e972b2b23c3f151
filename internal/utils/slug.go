package utils

import (
	"regexp"
	"strings"
)

var subdomainPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// NormalizeSubdomain lowercases and trims a subdomain candidate. Stored
// slugs are always in this normalized form, so lookups are exact matches.
func NormalizeSubdomain(candidate string) string {
	return strings.ToLower(strings.TrimSpace(candidate))
}

// ValidSubdomain reports whether a normalized slug contains only lowercase
// letters, numbers and hyphens.
func ValidSubdomain(slug string) bool {
	return subdomainPattern.MatchString(slug)
}
