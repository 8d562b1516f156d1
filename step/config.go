package step

import (
	"fmt"
	"strings"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-test-metrics/categories"
	"github.com/bitrise-steplib/steps-test-metrics/metrics"
	shellquote "github.com/kballard/go-shellquote"
)

// Commands ...
const (
	GenerateMetricsCommand = "generate_metrics"
	ParseResultsCommand    = "parse_results"
)

const (
	defaultResultsJSON = "test-results/results.json"
	defaultEnvironment = "DEV"
	defaultReportURL   = "playwright-report/index.html"
	defaultOutDir      = "artifacts"
	defaultLatestFile  = "site/metrics-latest.json"

	environmentEnvKey = "ENV"
)

// Input holds the raw step inputs. Enumerated inputs are plain strings so that an unset
// input falls back to its default instead of failing the option check.
type Input struct {
	Command string `env:"command"`

	// Report
	ResultsJSON string `env:"results_json"`
	Environment string `env:"environment"`
	ReportURL   string `env:"report_url"`
	RunID       string `env:"run_id"`

	// Output
	OutDir     string `env:"out_dir"`
	LatestFile string `env:"latest_file"`

	// Filtering and classification
	ExcludeGlobalSetup string `env:"exclude_global_setup"`
	ExcludeSkipped     string `env:"exclude_skipped"`
	CategoriesConfig   string `env:"categories_config"`
	CategoryMode       string `env:"category_mode"`

	MetricsOptions string `env:"metrics_options"`

	// Debug
	Verbose string `env:"verbose"`

	// Output export
	DeployDir string `env:"BITRISE_DEPLOY_DIR"`
}

// Config ...
type Config struct {
	Command string

	ResultsPath string
	Environment string
	ReportURL   string
	RunID       string

	OutDir     string
	LatestPath string

	ExcludeGlobalSetup bool
	ExcludeSkipped     bool
	Categories         *metrics.CategoryConfig

	DeployDir string
}

// MetricsConfigParser ...
type MetricsConfigParser struct {
	inputParser    stepconf.InputParser
	envRepository  env.Repository
	logger         log.Logger
	categoryLoader categories.Loader
	args           []string
}

// NewMetricsConfigParser creates a parser. args are the process arguments without the
// program name; they take precedence over the metrics_options input.
func NewMetricsConfigParser(inputParser stepconf.InputParser, envRepository env.Repository, logger log.Logger, categoryLoader categories.Loader, args []string) MetricsConfigParser {
	return MetricsConfigParser{
		inputParser:    inputParser,
		envRepository:  envRepository,
		logger:         logger,
		categoryLoader: categoryLoader,
		args:           args,
	}
}

// ProcessConfig ...
func (p MetricsConfigParser) ProcessConfig() (Config, error) {
	var input Input
	if err := p.inputParser.Parse(&input); err != nil {
		return Config{}, err
	}

	stepconf.Print(input)
	p.logger.Println()

	verbose, err := parseYesNo("verbose", input.Verbose, false)
	if err != nil {
		return Config{}, err
	}
	p.logger.EnableDebugLog(verbose)

	command := firstNonEmpty(input.Command, GenerateMetricsCommand)
	if command != GenerateMetricsCommand && command != ParseResultsCommand {
		return Config{}, fmt.Errorf("invalid command (%s), should be one of: %s, %s", input.Command, GenerateMetricsCommand, ParseResultsCommand)
	}

	excludeGlobalSetup, err := parseYesNo("exclude_global_setup", input.ExcludeGlobalSetup, true)
	if err != nil {
		return Config{}, err
	}
	excludeSkipped, err := parseYesNo("exclude_skipped", input.ExcludeSkipped, true)
	if err != nil {
		return Config{}, err
	}

	optionArgs, err := shellquote.Split(input.MetricsOptions)
	if err != nil {
		return Config{}, fmt.Errorf("provided metrics_options (%s) are not valid CLI parameters: %w", input.MetricsOptions, err)
	}

	options := parseOptions(optionArgs)
	for key, value := range parseOptions(p.args) {
		options[key] = value
	}
	for key := range options {
		if !knownOptions[key] {
			p.logger.Warnf("Unknown metrics option (--%s), ignoring it", key)
		}
	}

	environment := firstNonEmpty(options[envOption], input.Environment, p.envRepository.Get(environmentEnvKey), defaultEnvironment)

	cfg := Config{
		Command: command,

		ResultsPath: firstNonEmpty(options[jsonOption], input.ResultsJSON, defaultResultsJSON),
		Environment: strings.ToUpper(environment),
		ReportURL:   firstNonEmpty(options[reportURLOption], input.ReportURL, defaultReportURL),
		RunID:       firstNonEmpty(options[runIDOption], input.RunID),

		OutDir:     firstNonEmpty(options[outDirOption], input.OutDir, defaultOutDir),
		LatestPath: firstNonEmpty(options[latestOption], input.LatestFile, defaultLatestFile),

		ExcludeGlobalSetup: excludeGlobalSetup,
		ExcludeSkipped:     excludeSkipped,

		DeployDir: input.DeployDir,
	}

	if input.CategoriesConfig != "" {
		categoryConfig, err := p.categoryLoader.Load(input.CategoriesConfig)
		if err != nil {
			return Config{}, err
		}
		cfg.Categories = categoryConfig
	}

	if input.CategoryMode != "" {
		mode := metrics.CategoryMode(input.CategoryMode)
		if mode != metrics.CategoryModeMulti && mode != metrics.CategoryModeExclusive {
			return Config{}, fmt.Errorf("invalid category_mode (%s), should be one of: %s, %s", input.CategoryMode, metrics.CategoryModeMulti, metrics.CategoryModeExclusive)
		}

		if cfg.Categories == nil {
			p.logger.Warnf("Category mode (category_mode) is set but no category config (categories_config) is provided, ignoring it")
		} else {
			cfg.Categories.Mode = mode
		}
	}

	return cfg, nil
}
