// Package sanitizer provides input normalization for record fields.
//
// All functions are idempotent and handle invalid input gracefully,
// returning empty strings or empty slices rather than errors.
package sanitizer

import "strings"

// Label collapses internal whitespace runs and trims the result.
func Label(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FeatureTag normalizes a feature key: lowercase, spaces and hyphens
// become underscores. "Sound System" and "sound-system" both map to
// "sound_system".
func FeatureTag(s string) string {
	s = strings.ToLower(Label(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Features normalizes every tag and removes duplicates and empties,
// preserving first-seen order.
func Features(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = FeatureTag(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
