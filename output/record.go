package output

import (
	"strings"
	"time"

	"github.com/bitrise-steplib/steps-test-metrics/buildinfo"
	"github.com/bitrise-steplib/steps-test-metrics/metrics"
)

// timestampLayout matches the ISO-8601 form with millisecond precision used by dashboards.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Record is the persisted form of one metrics run.
type Record struct {
	Env           string                             `json:"env"`
	RunID         string                             `json:"runId"`
	GitSHA        *string                            `json:"gitSha"`
	Branch        *string                            `json:"branch"`
	RunNumber     *string                            `json:"runNumber"`
	TimestampISO  string                             `json:"timestampISO"`
	Totals        metrics.Totals                     `json:"totals"`
	PassRate      int                                `json:"passRate"`
	ReportURL     string                             `json:"reportUrl"`
	Categories    map[string]metrics.CategoryMetrics `json:"categories,omitempty"`
	RunnerVersion string                             `json:"runnerVersion,omitempty"`
}

// RecordParams ...
type RecordParams struct {
	Summary       metrics.Summary
	BuildInfo     buildinfo.Info
	Now           time.Time
	RunID         string
	ReportURL     string
	RunnerVersion string
}

// NewRecord merges the summary with the run metadata. An empty RunID is replaced by DefaultRunID.
func NewRecord(params RecordParams) Record {
	timestamp := FormatTimestamp(params.Now)

	runID := params.RunID
	if runID == "" {
		runID = DefaultRunID(timestamp, params.BuildInfo.GitSHA)
	}

	return Record{
		Env:           params.Summary.Env,
		RunID:         runID,
		GitSHA:        params.BuildInfo.GitSHA,
		Branch:        params.BuildInfo.Branch,
		RunNumber:     params.BuildInfo.RunNumber,
		TimestampISO:  timestamp,
		Totals:        params.Summary.Totals,
		PassRate:      params.Summary.PassRate,
		ReportURL:     params.ReportURL,
		Categories:    params.Summary.Categories,
		RunnerVersion: params.RunnerVersion,
	}
}

// FormatTimestamp ...
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// DefaultRunID makes the timestamp path safe and appends the git revision when known.
func DefaultRunID(timestamp string, gitSHA *string) string {
	runID := strings.NewReplacer(":", "-", ".", "-").Replace(timestamp)
	if gitSHA != nil && *gitSHA != "" {
		runID += "-" + *gitSHA
	}
	return runID
}
