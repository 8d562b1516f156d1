// Package metrics reduces a report tree to flat, classified counters.
//
// Everything in this package is a pure function of its arguments: no I/O, no logging and no
// shared state, so summaries for several reports can be built concurrently.
package metrics

import (
	"strings"

	"github.com/bitrise-steplib/steps-test-metrics/report"
)

// Options ...
type Options struct {
	EnvironmentName    string
	ExcludeGlobalSetup bool
	ExcludeSkipped     bool
	// Categories is optional; nil disables category metrics.
	Categories *CategoryConfig
}

// DefaultOptions excludes both global setup and skipped tests.
func DefaultOptions(environmentName string) Options {
	return Options{
		EnvironmentName:    environmentName,
		ExcludeGlobalSetup: true,
		ExcludeSkipped:     true,
	}
}

// Totals ...
type Totals struct {
	All      int `json:"all"`
	Passed   int `json:"passed"`
	Failed   int `json:"failed"`
	Skipped  int `json:"skipped"`
	TimedOut int `json:"timedOut"`
}

// Summary is the terminal output of the metrics engine.
type Summary struct {
	Env        string                     `json:"env"`
	Totals     Totals                     `json:"totals"`
	PassRate   int                        `json:"passRate"`
	Statuses   StatusCounts               `json:"statuses"`
	Categories map[string]CategoryMetrics `json:"categories,omitempty"`
}

// BuildSummary flattens the report, drops noise, and counts what is left.
func BuildSummary(r report.Report, opts Options) Summary {
	items := Filter(FlattenReport(r), FilterOptions{
		ExcludeGlobalSetup: opts.ExcludeGlobalSetup,
		ExcludeSkipped:     opts.ExcludeSkipped,
	})

	counts := CountStatuses(items)

	return Summary{
		Env: strings.ToUpper(opts.EnvironmentName),
		Totals: Totals{
			All:      len(items),
			Passed:   counts.Passed,
			Failed:   counts.Failed,
			Skipped:  counts.Skipped,
			TimedOut: counts.TimedOut,
		},
		PassRate:   PassRate(counts.Passed, counts.Failed),
		Statuses:   counts,
		Categories: BuildCategoryMetrics(items, opts.Categories),
	}
}
