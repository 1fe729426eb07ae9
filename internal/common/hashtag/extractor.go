// Package hashtag extracts hashtag tokens from free-form article text.
package hashtag

import "regexp"

// A tag is '#' followed by one or more word characters. Anything else,
// including a hyphen, terminates the token, so "#spring-boot" yields "#spring".
var tagPattern = regexp.MustCompile(`#\w+`)

// Extract scans text for hashtag tokens and returns them deduplicated, in
// first-appearance order, each keeping its leading '#' and original case.
// Empty input yields an empty slice. A bare '#' is not a tag.
func Extract(text string) []string {
	tags := make([]string, 0)
	if text == "" {
		return tags
	}

	seen := make(map[string]struct{})
	for _, m := range tagPattern.FindAllString(text, -1) {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		tags = append(tags, m)
	}
	return tags
}

// Merge combines several extracted tag sets into one deduplicated set,
// preserving first-appearance order across the inputs.
func Merge(sets ...[]string) []string {
	merged := make([]string, 0)
	seen := make(map[string]struct{})
	for _, set := range sets {
		for _, tag := range set {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			merged = append(merged, tag)
		}
	}
	return merged
}
