package step

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/bitrise-io/go-utils/pretty"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-test-metrics/buildinfo"
	"github.com/bitrise-steplib/steps-test-metrics/metrics"
	"github.com/bitrise-steplib/steps-test-metrics/output"
	"github.com/bitrise-steplib/steps-test-metrics/report"
	version "github.com/hashicorp/go-version"
)

// Tag annotations are only written to the JSON report from this runner version on.
var minTagAnnotationVersion = version.Must(version.NewVersion("1.42.0"))

// Result ...
type Result struct {
	Summary   metrics.Summary
	DeployDir string

	// Set by the generate_metrics command only.
	Record        *output.Record
	RunRecordPath string
	LatestPath    string
}

// MetricsRunner ...
type MetricsRunner struct {
	logger         log.Logger
	reportLoader   report.Loader
	detector       buildinfo.Detector
	outputExporter output.Exporter
	now            func() time.Time
}

// NewMetricsRunner ...
func NewMetricsRunner(logger log.Logger, reportLoader report.Loader, detector buildinfo.Detector, outputExporter output.Exporter, now func() time.Time) MetricsRunner {
	return MetricsRunner{
		logger:         logger,
		reportLoader:   reportLoader,
		detector:       detector,
		outputExporter: outputExporter,
		now:            now,
	}
}

// Run ...
func (s MetricsRunner) Run(cfg Config) (Result, error) {
	s.logger.Infof("Reading test results from %s", cfg.ResultsPath)

	rep, err := s.reportLoader.Load(cfg.ResultsPath)
	if err != nil {
		return Result{}, err
	}

	runnerVersion := rep.RunnerVersion()
	if runnerVersion == nil {
		s.logger.Debugf("Runner version is not available in the report")
	} else if runnerVersion.LessThan(minTagAnnotationVersion) {
		s.logger.Warnf("The report was generated by runner version %s, tag annotations require %s or newer; tag based categories may be empty", runnerVersion.Original(), minTagAnnotationVersion.Original())
	}

	summary := metrics.BuildSummary(rep, metrics.Options{
		EnvironmentName:    cfg.Environment,
		ExcludeGlobalSetup: cfg.ExcludeGlobalSetup,
		ExcludeSkipped:     cfg.ExcludeSkipped,
		Categories:         cfg.Categories,
	})
	printSummary(s.logger, summary, cfg.Categories)

	result := Result{
		Summary:   summary,
		DeployDir: cfg.DeployDir,
	}

	if cfg.Command == ParseResultsCommand {
		s.logger.Println()
		s.logger.Printf("%s", pretty.Object(summary))
		return result, nil
	}

	s.logger.Println()
	s.logger.Infof("Generating run record")

	info := s.detector.Detect()

	var runnerVersionString string
	if runnerVersion != nil {
		runnerVersionString = runnerVersion.Original()
	}

	record := output.NewRecord(output.RecordParams{
		Summary:       summary,
		BuildInfo:     info,
		Now:           s.now(),
		RunID:         cfg.RunID,
		ReportURL:     cfg.ReportURL,
		RunnerVersion: runnerVersionString,
	})

	runRecordPath, err := s.outputExporter.WriteRunRecord(cfg.OutDir, record)
	if err != nil {
		return Result{}, fmt.Errorf("failed to write run record: %w", err)
	}

	latestPath, err := s.outputExporter.UpdateLatest(cfg.LatestPath, record)
	if err != nil {
		return Result{}, fmt.Errorf("failed to update latest metrics: %w", err)
	}

	result.Record = &record
	result.RunRecordPath = runRecordPath
	result.LatestPath = latestPath

	return result, nil
}

// Export ...
func (s MetricsRunner) Export(result Result) error {
	s.logger.Println()
	s.logger.Infof("Exporting outputs")

	s.outputExporter.ExportSummary(result.Summary)

	if result.Record == nil {
		return nil
	}

	if err := s.outputExporter.ExportRunRecord(result.DeployDir, result.RunRecordPath, result.LatestPath, result.Record.RunID); err != nil {
		return err
	}

	s.outputExporter.ExportTestResults(filepath.Dir(result.RunRecordPath), result.Record.Env)

	return nil
}
