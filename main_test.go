package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-test-metrics/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GivenMissingReport_WhenMappingExitCode_ThenReturnsTwo(t *testing.T) {
	err := fmt.Errorf("failed to load: %w", report.ErrReportNotFound)

	assert.Equal(t, exitCodeReportNotFound, exitCode(err))
}

func Test_GivenOtherError_WhenMappingExitCode_ThenReturnsOne(t *testing.T) {
	assert.Equal(t, exitCodeFailure, exitCode(errors.New("invalid JSON")))
}

func Test_GivenResultsFileAndEnvInputs_WhenStepIsCreated_ThenParsesResults(t *testing.T) {
	// Given
	resultsPath := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, fileutil.NewFileManager().Write(resultsPath, `{"suites": [{"title": "a.spec.ts", "specs": [{"title": "works", "tests": [{"status": "expected"}]}]}]}`, 0600))

	t.Setenv("command", "parse_results")
	t.Setenv("results_json", resultsPath)
	t.Setenv("environment", "qa")

	configParser, runner := createStep(log.NewLogger())

	// When
	config, err := configParser.ProcessConfig()
	require.NoError(t, err)
	result, err := runner.Run(config)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "QA", result.Summary.Env)
	assert.Equal(t, 1, result.Summary.Totals.Passed)
	assert.Equal(t, 100, result.Summary.PassRate)
}
