package categories

import (
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-steplib/steps-test-metrics/metrics"
	"github.com/bitrise-steplib/steps-test-metrics/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GivenYAMLConfig_WhenLoading_ThenDecodesDefinitionsInOrder(t *testing.T) {
	// Given
	pth := filepath.Join(t.TempDir(), "categories.yml")
	content := `categoryMode: exclusive
categories:
  - name: Security
    tags: ["@security"]
    projectPatterns: [security]
  - name: Checkout
    filePatterns: [checkout/]
    fileGlobs: ["tests/checkout/**"]
`
	require.NoError(t, fileutil.NewFileManager().Write(pth, content, 0600))

	// When
	cfg, err := Load(pth)

	// Then
	require.NoError(t, err)
	assert.Equal(t, &metrics.CategoryConfig{
		Mode: metrics.CategoryModeExclusive,
		Categories: []metrics.CategoryDefinition{
			{Name: "Security", Tags: []string{"@security"}, ProjectPatterns: []string{"security"}},
			{Name: "Checkout", FilePatterns: []string{"checkout/"}, FileGlobs: []string{"tests/checkout/**"}},
		},
	}, cfg)
}

func Test_GivenJSONConfigWithoutMode_WhenParsing_ThenDefaultsToMulti(t *testing.T) {
	// When
	cfg, err := Parse([]byte(`{"categories": [{"name": "Smoke", "tags": ["smoke"]}]}`))

	// Then
	require.NoError(t, err)
	assert.Equal(t, metrics.CategoryModeMulti, cfg.Mode)
	require.Len(t, cfg.Categories, 1)
	assert.Equal(t, []string{"smoke"}, cfg.Categories[0].Tags)
}

func Test_GivenInvalidConfig_WhenParsing_ThenFails(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown mode", content: `{"categoryMode": "first", "categories": []}`},
		{name: "missing name", content: `{"categories": [{"tags": ["smoke"]}]}`},
		{name: "unknown key", content: `{"categories": [{"name": "A", "labels": ["x"]}]}`},
		{name: "empty pattern", content: `{"categories": [{"name": "A", "filePatterns": [""]}]}`},
		{name: "duplicate names", content: `{"categories": [{"name": "A"}, {"name": "A"}]}`},
		{name: "empty document", content: ``},
		{name: "not yaml", content: `categories: [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			assert.Error(t, err)
		})
	}
}

func Test_GivenMissingFile_WhenLoading_ThenFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

	assert.Error(t, err)
}

func Test_GivenSecurityFunctionalExample_WhenClassifying_ThenCountsByTagOrProject(t *testing.T) {
	// Given
	cfg, err := Load(filepath.Join("..", "examples", "security-functional.yml"))
	require.NoError(t, err)

	r, err := report.Parse([]byte(`{
	  "suites": [{
	    "title": "auth.spec.ts",
	    "specs": [
	      {"title": "tagged", "tests": [{"projectName": "chromium", "status": "expected", "annotations": [{"type": "tag", "description": "@security"}]}]},
	      {"title": "by project", "tests": [{"projectName": "api-security", "status": "unexpected"}]},
	      {"title": "functional", "tests": [{"projectName": "chromium-functional", "status": "expected"}]},
	      {"title": "neither", "tests": [{"projectName": "chromium", "status": "expected"}]}
	    ]
	  }]
	}`))
	require.NoError(t, err)

	// When
	categoryMetrics := metrics.BuildCategoryMetrics(metrics.FlattenReport(r), cfg)

	// Then
	assert.Equal(t, metrics.CategoryMetrics{Total: 2, Passed: 1, Failed: 1, PassRate: 50}, categoryMetrics["Security"])
	assert.Equal(t, metrics.CategoryMetrics{Total: 1, Passed: 1, PassRate: 100}, categoryMetrics["Functional"])
}
