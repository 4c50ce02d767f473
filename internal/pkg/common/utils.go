package common

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID generates a UUID.
func GenerateUUID() string {
	return uuid.New().String()
}

// RandomSuffix returns a short random id fragment.
func RandomSuffix(n int) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	if n > len(id) {
		n = len(id)
	}
	return id[:n]
}

var nonSlugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and collapses runs of non-alphanumerics into single
// hyphens, trimming any leading or trailing hyphen.
func Slugify(s string) string {
	slug := nonSlugPattern.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// CollapseWhitespace folds internal whitespace runs into single spaces and
// trims the ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
