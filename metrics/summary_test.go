package metrics

import (
	"strings"
	"sync"
	"testing"

	"github.com/bitrise-steplib/steps-test-metrics/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `{
  "config": {"version": "1.44.0"},
  "suites": [
    {
      "title": "security.spec.ts",
      "file": "security.spec.ts",
      "specs": [
        {
          "title": "rejects anonymous access",
          "annotations": [{"type": "tag", "description": "@security"}],
          "tests": [
            {"projectName": "chromium", "status": "passed"},
            {"projectName": "chromium", "status": "failed"}
          ]
        }
      ]
    }
  ]
}`

func Test_GivenSecuritySpecWithTwoTests_WhenBuildingSummary_ThenCountsBoth(t *testing.T) {
	// Given
	r := parse(t, sampleReport)

	// When
	summary := BuildSummary(r, DefaultOptions("dev"))

	// Then
	assert.Equal(t, "DEV", summary.Env)
	assert.Equal(t, Totals{All: 2, Passed: 1, Failed: 1}, summary.Totals)
	assert.Equal(t, 50, summary.PassRate)
	assert.Nil(t, summary.Categories)
}

func Test_GivenGlobalSetupSpec_WhenExcluded_ThenItContributesNothing(t *testing.T) {
	// Given
	r := parse(t, `{
	  "suites": [
	    {
	      "title": "global.setup.ts",
	      "specs": [
	        {
	          "title": "authenticate",
	          "location": {"file": "tests/global.setup.ts"},
	          "tests": [{"status": "failed"}, {"status": "passed"}, {"status": "timedOut"}]
	        }
	      ]
	    },
	    {
	      "title": "home.spec.ts",
	      "specs": [{"title": "renders", "tests": [{"status": "passed"}, {"status": "skipped"}]}]
	    }
	  ]
	}`)

	// When
	excluded := BuildSummary(r, DefaultOptions("uat"))
	included := BuildSummary(r, Options{EnvironmentName: "uat"})

	// Then
	assert.Equal(t, Totals{All: 1, Passed: 1}, excluded.Totals)
	assert.Equal(t, 100, excluded.PassRate)
	assert.Equal(t, Totals{All: 5, Passed: 2, Failed: 1, Skipped: 1, TimedOut: 1}, included.Totals)
	assert.Equal(t, 67, included.PassRate)
}

func Test_GivenCategoryConfig_WhenBuildingSummary_ThenCategoriesAreCounted(t *testing.T) {
	// Given
	r := parse(t, sampleReport)
	opts := DefaultOptions("dev")
	opts.Categories = &CategoryConfig{Categories: []CategoryDefinition{
		{Name: "Security", Tags: []string{"security"}},
		{Name: "Functional", Tags: []string{"functional"}},
	}}

	// When
	summary := BuildSummary(r, opts)

	// Then
	assert.Equal(t, map[string]CategoryMetrics{
		"Security":   {Total: 2, Passed: 1, Failed: 1, PassRate: 50},
		"Functional": {},
	}, summary.Categories)
}

func Test_GivenEmptyReport_WhenBuildingSummary_ThenPassRateIsZero(t *testing.T) {
	summary := BuildSummary(report.Report{}, DefaultOptions("prod"))

	assert.Equal(t, Summary{Env: "PROD"}, summary)
}

func Test_GivenSameInput_WhenBuildingSummaryTwice_ThenOutputsAreEqual(t *testing.T) {
	// Given
	r := parse(t, sampleReport)
	opts := DefaultOptions("dev")
	opts.Categories = &CategoryConfig{Categories: []CategoryDefinition{{Name: "Security", Tags: []string{"security"}}}}

	// When
	first := BuildSummary(r, opts)
	second := BuildSummary(r, opts)

	// Then
	assert.Equal(t, first, second)
}

func Test_GivenSeveralEnvironments_WhenBuildingConcurrently_ThenResultsDoNotInterfere(t *testing.T) {
	// Given
	r := parse(t, sampleReport)
	envs := []string{"dev", "sit", "uat", "prod"}
	summaries := make([]Summary, len(envs))

	// When
	var wg sync.WaitGroup
	for i, env := range envs {
		wg.Add(1)
		go func(i int, env string) {
			defer wg.Done()
			summaries[i] = BuildSummary(r, DefaultOptions(env))
		}(i, env)
	}
	wg.Wait()

	// Then
	for i, env := range envs {
		assert.Equal(t, strings.ToUpper(env), summaries[i].Env)
		assert.Equal(t, 2, summaries[i].Totals.All)
	}
}

// Helpers

func parse(t *testing.T, content string) report.Report {
	r, err := report.Parse([]byte(content))
	require.NoError(t, err)
	return r
}
