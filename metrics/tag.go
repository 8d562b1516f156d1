package metrics

import (
	"strings"

	"github.com/bitrise-steplib/steps-test-metrics/report"
)

const tagAnnotationType = "tag"

// NormalizeTag trims whitespace, drops leading '@' characters and lowercases the tag.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(tag), "@")))
}

// MatchesTag reports whether any tag annotation carries the expected tag.
func MatchesTag(annotations []report.Annotation, expectedTag string) bool {
	expected := NormalizeTag(expectedTag)
	for _, annotation := range annotations {
		if !strings.EqualFold(string(annotation.Type), tagAnnotationType) {
			continue
		}
		if NormalizeTag(string(annotation.Description)) == expected {
			return true
		}
	}
	return false
}
