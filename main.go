package main

import (
	"errors"
	"os"
	"time"

	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-steputils/v2/stepenv"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-test-metrics/buildinfo"
	"github.com/bitrise-steplib/steps-test-metrics/categories"
	"github.com/bitrise-steplib/steps-test-metrics/output"
	"github.com/bitrise-steplib/steps-test-metrics/report"
	"github.com/bitrise-steplib/steps-test-metrics/step"
	"github.com/bitrise-steplib/steps-test-metrics/testaddon"
)

const (
	exitCodeFailure        = 1
	exitCodeReportNotFound = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.NewLogger()
	configParser, runner := createStep(logger)

	config, err := configParser.ProcessConfig()
	if err != nil {
		logger.Errorf("Process config: %s", err)
		return exitCodeFailure
	}

	result, err := runner.Run(config)
	if err != nil {
		logger.Errorf("Run: %s", err)
		return exitCode(err)
	}

	if err := runner.Export(result); err != nil {
		logger.Errorf("Export outputs: %s", err)
		return exitCodeFailure
	}

	return 0
}

func exitCode(err error) int {
	if errors.Is(err, report.ErrReportNotFound) {
		return exitCodeReportNotFound
	}
	return exitCodeFailure
}

func createStep(logger log.Logger) (step.MetricsConfigParser, step.MetricsRunner) {
	osEnvRepository := env.NewRepository()
	envRepository := stepenv.NewRepository(osEnvRepository)
	inputParser := stepconf.NewInputParser(osEnvRepository)
	commandFactory := command.NewFactory(osEnvRepository)
	fileManager := fileutil.NewFileManager()
	pathChecker := pathutil.NewPathChecker()
	pathModifier := pathutil.NewPathModifier()

	configParser := step.NewMetricsConfigParser(inputParser, osEnvRepository, logger, categories.NewLoader(), os.Args[1:])

	fileExporter := export.NewExporter(commandFactory, export.NewFileManager())
	testAddonExporter := testaddon.NewExporter(testaddon.NewTestAddon(logger, commandFactory, fileManager), pathChecker)
	outputExporter := output.NewExporter(envRepository, logger, fileManager, pathChecker, pathModifier, &fileExporter, testAddonExporter)

	runner := step.NewMetricsRunner(logger, report.NewLoader(pathChecker), buildinfo.NewDetector(osEnvRepository, commandFactory, logger), outputExporter, time.Now)

	return configParser, runner
}
