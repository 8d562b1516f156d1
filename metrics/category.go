package metrics

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// CategoryMode decides whether an item may be counted in more than one category.
type CategoryMode string

// Category modes ...
const (
	CategoryModeMulti     CategoryMode = "multi"
	CategoryModeExclusive CategoryMode = "exclusive"
)

// CategoryDefinition is a named bucket. Each rule list is optional; an empty list never matches.
type CategoryDefinition struct {
	Name            string   `yaml:"name" json:"name"`
	Tags            []string `yaml:"tags" json:"tags,omitempty"`
	ProjectPatterns []string `yaml:"projectPatterns" json:"projectPatterns,omitempty"`
	FilePatterns    []string `yaml:"filePatterns" json:"filePatterns,omitempty"`
	FileGlobs       []string `yaml:"fileGlobs" json:"fileGlobs,omitempty"`
}

// CategoryConfig holds the category definitions in precedence order.
type CategoryConfig struct {
	Mode       CategoryMode         `yaml:"categoryMode" json:"categoryMode,omitempty"`
	Categories []CategoryDefinition `yaml:"categories" json:"categories"`
}

// CategoryMetrics ...
type CategoryMetrics struct {
	Total    int `json:"total"`
	Passed   int `json:"passed"`
	Failed   int `json:"failed"`
	Skipped  int `json:"skipped"`
	TimedOut int `json:"timedOut"`
	PassRate int `json:"passRate"`
}

// MatchesCategory reports whether the item satisfies any of the definition's rules.
func MatchesCategory(item Item, def CategoryDefinition) bool {
	return matchesAnyTag(item, def.Tags) ||
		containsAnyFold(item.ProjectName, def.ProjectPatterns) ||
		containsAnyFold(item.File, def.FilePatterns) ||
		matchesAnyGlob(item.File, def.FileGlobs)
}

// BuildCategoryMetrics counts items per category. It returns nil when no categories are configured.
// In exclusive mode an item is only counted in the first matching category.
func BuildCategoryMetrics(items []Item, cfg *CategoryConfig) map[string]CategoryMetrics {
	if cfg == nil || len(cfg.Categories) == 0 {
		return nil
	}

	exclusive := cfg.Mode == CategoryModeExclusive

	metrics := make(map[string]CategoryMetrics, len(cfg.Categories))
	for _, def := range cfg.Categories {
		metrics[def.Name] = CategoryMetrics{}
	}

	for _, item := range items {
		outcome := item.Outcome()

		for _, def := range cfg.Categories {
			if !MatchesCategory(item, def) {
				continue
			}

			m := metrics[def.Name]
			m.Total++
			switch outcome {
			case OutcomePassed:
				m.Passed++
			case OutcomeFailed:
				m.Failed++
			case OutcomeSkipped:
				m.Skipped++
			case OutcomeTimedOut:
				m.TimedOut++
			}
			metrics[def.Name] = m

			if exclusive {
				break
			}
		}
	}

	for name, m := range metrics {
		m.PassRate = PassRate(m.Passed, m.Failed)
		metrics[name] = m
	}

	return metrics
}

func matchesAnyTag(item Item, tags []string) bool {
	for _, tag := range tags {
		if MatchesTag(item.Annotations, tag) {
			return true
		}
	}
	return false
}

func containsAnyFold(value string, patterns []string) bool {
	value = strings.ToLower(value)
	for _, pattern := range patterns {
		if strings.Contains(value, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

// matchesAnyGlob ignores malformed patterns.
func matchesAnyGlob(file string, globs []string) bool {
	if file == "" {
		return false
	}
	file = strings.ToLower(file)
	for _, glob := range globs {
		if ok, err := doublestar.Match(strings.ToLower(glob), file); err == nil && ok {
			return true
		}
	}
	return false
}
