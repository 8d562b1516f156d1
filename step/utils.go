package step

import (
	"fmt"
	"strings"

	"github.com/bitrise-io/go-utils/colorstring"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-test-metrics/metrics"
)

// Keys accepted in metrics_options and on the command line.
const (
	jsonOption      = "json"
	envOption       = "env"
	reportURLOption = "reportUrl"
	runIDOption     = "runId"
	outDirOption    = "outDir"
	latestOption    = "latest"
)

var knownOptions = map[string]bool{
	jsonOption:      true,
	envOption:       true,
	reportURLOption: true,
	runIDOption:     true,
	outDirOption:    true,
	latestOption:    true,
}

// parseOptions turns `--key=value` arguments into a map. A bare `--key` is set to "true"
// and everything after the first `=` belongs to the value.
func parseOptions(args []string) map[string]string {
	options := map[string]string{}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		key = strings.TrimPrefix(key, "--")
		if key == "" {
			continue
		}
		if !found {
			value = "true"
		}
		options[key] = value
	}
	return options
}

// parseYesNo reads a yes/no input; an empty value is the default.
func parseYesNo(input, value string, defaultValue bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return defaultValue, nil
	case "yes", "true":
		return true, nil
	case "no", "false":
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s (%s), should be one of: yes, no", input, value)
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func printSummary(logger log.Logger, summary metrics.Summary, categories *metrics.CategoryConfig) {
	logger.Println()
	logger.Infof("Test metrics (%s)", summary.Env)
	logger.Printf("- total: %d", summary.Totals.All)
	logger.Printf("- passed: %d", summary.Totals.Passed)
	logger.Printf("- failed: %d", summary.Totals.Failed)
	logger.Printf("- skipped: %d", summary.Totals.Skipped)
	logger.Printf("- timed out: %d", summary.Totals.TimedOut)
	logger.Printf("- pass rate: %s", colorPassRate(summary.PassRate, summary.Totals.Failed))

	if categories == nil || len(summary.Categories) == 0 {
		return
	}

	logger.Println()
	logger.Infof("Categories (%s)", categories.Mode)
	for _, def := range categories.Categories {
		m := summary.Categories[def.Name]
		logger.Printf("- %s: %d total, %d passed, %d failed, pass rate: %s", def.Name, m.Total, m.Passed, m.Failed, colorPassRate(m.PassRate, m.Failed))
	}
}

func colorPassRate(passRate, failed int) string {
	s := fmt.Sprintf("%d%%", passRate)
	if failed > 0 {
		return colorstring.Red(s)
	}
	return colorstring.Green(s)
}
