package metrics

import (
	"testing"

	"github.com/bitrise-steplib/steps-test-metrics/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesCategory(t *testing.T) {
	item := Item{
		Annotations: []report.Annotation{tag("@Security")},
		ProjectName: "Chromium-API",
		File:        "tests/Checkout/payment.spec.ts",
	}

	tests := []struct {
		name string
		def  CategoryDefinition
		want bool
	}{
		{name: "tag", def: CategoryDefinition{Tags: []string{"security"}}, want: true},
		{name: "tag with at sign", def: CategoryDefinition{Tags: []string{"@SECURITY"}}, want: true},
		{name: "project substring", def: CategoryDefinition{ProjectPatterns: []string{"api"}}, want: true},
		{name: "file substring", def: CategoryDefinition{FilePatterns: []string{"checkout/"}}, want: true},
		{name: "file glob", def: CategoryDefinition{FileGlobs: []string{"tests/**/*.spec.ts"}}, want: true},
		{name: "malformed glob", def: CategoryDefinition{FileGlobs: []string{"tests/[*.ts"}}, want: false},
		{name: "one of several rules", def: CategoryDefinition{Tags: []string{"smoke"}, FilePatterns: []string{"payment"}}, want: true},
		{name: "nothing matches", def: CategoryDefinition{Tags: []string{"smoke"}, ProjectPatterns: []string{"firefox"}, FilePatterns: []string{"login"}}, want: false},
		{name: "no rules", def: CategoryDefinition{Name: "empty"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesCategory(item, tt.def))
		})
	}
}

func Test_GivenNoCategories_WhenBuildingMetrics_ThenReturnsNil(t *testing.T) {
	items := []Item{{Test: report.Test{Status: "passed"}}}

	assert.Nil(t, BuildCategoryMetrics(items, nil))
	assert.Nil(t, BuildCategoryMetrics(items, &CategoryConfig{}))
}

func Test_GivenItemMatchingTwoCategories_WhenMultiMode_ThenBothAreIncremented(t *testing.T) {
	// Given
	items := []Item{
		{Annotations: []report.Annotation{tag("@smoke")}, ProjectName: "api", Test: report.Test{Status: "passed"}},
	}
	cfg := &CategoryConfig{Categories: []CategoryDefinition{
		{Name: "A", Tags: []string{"smoke"}},
		{Name: "B", ProjectPatterns: []string{"api"}},
	}}

	// When
	metrics := BuildCategoryMetrics(items, cfg)

	// Then
	assert.Equal(t, map[string]CategoryMetrics{
		"A": {Total: 1, Passed: 1, PassRate: 100},
		"B": {Total: 1, Passed: 1, PassRate: 100},
	}, metrics)
}

func Test_GivenItemMatchingTwoCategories_WhenExclusiveMode_ThenOnlyTheFirstDefinitionCounts(t *testing.T) {
	// Given
	items := []Item{
		{Annotations: []report.Annotation{tag("@smoke")}, ProjectName: "api", Test: report.Test{Status: "failed"}},
		{ProjectName: "api", Test: report.Test{Status: "passed"}},
	}
	cfg := &CategoryConfig{
		Mode: CategoryModeExclusive,
		Categories: []CategoryDefinition{
			{Name: "A", Tags: []string{"smoke"}},
			{Name: "B", ProjectPatterns: []string{"api"}},
		},
	}

	// When
	metrics := BuildCategoryMetrics(items, cfg)

	// Then
	assert.Equal(t, CategoryMetrics{Total: 1, Failed: 1, PassRate: 0}, metrics["A"])
	assert.Equal(t, CategoryMetrics{Total: 1, Passed: 1, PassRate: 100}, metrics["B"])
}

func Test_GivenEveryOutcome_WhenBuildingMetrics_ThenUnknownStatusesOnlyCountTowardsTotal(t *testing.T) {
	// Given
	var items []Item
	for _, status := range []string{"expected", "unexpected", "unexpected", "skipped", "timedOut", "interrupted", "flaky"} {
		items = append(items, Item{ProjectName: "chromium", Test: report.Test{Status: report.LooseString(status)}})
	}
	cfg := &CategoryConfig{Categories: []CategoryDefinition{
		{Name: "all", ProjectPatterns: []string{"chrom"}},
		{Name: "unused", Tags: []string{"never"}},
	}}

	// When
	metrics := BuildCategoryMetrics(items, cfg)

	// Then
	require.Len(t, metrics, 2)
	assert.Equal(t, CategoryMetrics{Total: 7, Passed: 1, Failed: 2, Skipped: 1, TimedOut: 1, PassRate: 33}, metrics["all"])
	assert.Equal(t, CategoryMetrics{}, metrics["unused"])
}
