package output

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bitrise-io/bitrise/configs"
	"github.com/bitrise-io/go-utils/fileutil"
	"github.com/bitrise-io/go-utils/v2/env"
	v2fileutil "github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-test-metrics/metrics"
	"github.com/bitrise-steplib/steps-test-metrics/testaddon"
)

// Exported env var keys.
const (
	EnvKey        = "TEST_METRICS_ENV"
	PassRateKey   = "TEST_METRICS_PASS_RATE"
	TotalKey      = "TEST_METRICS_TOTAL"
	PassedKey     = "TEST_METRICS_PASSED"
	FailedKey     = "TEST_METRICS_FAILED"
	RunIDKey      = "TEST_METRICS_RUN_ID"
	JSONPathKey   = "TEST_METRICS_JSON_PATH"
	LatestPathKey = "TEST_METRICS_LATEST_PATH"
)

const runRecordFileName = "metrics.json"

// FileExporter exposes files to subsequent steps.
type FileExporter interface {
	ExportOutputFile(key, sourcePath, destinationPath string) error
}

// Exporter ...
type Exporter interface {
	ExportSummary(summary metrics.Summary)
	WriteRunRecord(outDir string, record Record) (string, error)
	UpdateLatest(latestPath string, record Record) (string, error)
	ExportRunRecord(deployDir, runRecordPath, latestPath, runID string) error
	ExportTestResults(runDir, bundleName string)
}

type exporter struct {
	envRepository     env.Repository
	logger            log.Logger
	fileManager       v2fileutil.FileManager
	pathChecker       pathutil.PathChecker
	pathModifier      pathutil.PathModifier
	outputExporter    FileExporter
	testAddonExporter testaddon.Exporter
}

// NewExporter ...
func NewExporter(envRepository env.Repository, logger log.Logger, fileManager v2fileutil.FileManager, pathChecker pathutil.PathChecker, pathModifier pathutil.PathModifier, outputExporter FileExporter, testAddonExporter testaddon.Exporter) Exporter {
	return &exporter{
		envRepository:     envRepository,
		logger:            logger,
		fileManager:       fileManager,
		pathChecker:       pathChecker,
		pathModifier:      pathModifier,
		outputExporter:    outputExporter,
		testAddonExporter: testAddonExporter,
	}
}

func (e exporter) ExportSummary(summary metrics.Summary) {
	e.set(EnvKey, summary.Env)
	e.set(PassRateKey, strconv.Itoa(summary.PassRate))
	e.set(TotalKey, strconv.Itoa(summary.Totals.All))
	e.set(PassedKey, strconv.Itoa(summary.Totals.Passed))
	e.set(FailedKey, strconv.Itoa(summary.Totals.Failed))
}

// WriteRunRecord writes <outDir>/<env>/<runId>/metrics.json and returns its absolute path.
func (e exporter) WriteRunRecord(outDir string, record Record) (string, error) {
	pth, err := e.pathModifier.AbsPath(filepath.Join(outDir, strings.ToLower(record.Env), record.RunID, runRecordFileName))
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path of the run record: %w", err)
	}

	if err := e.writePrettyJSON(pth, record); err != nil {
		return "", err
	}
	e.logger.Donef("[metrics] wrote %s", pth)

	return pth, nil
}

// UpdateLatest stores the record in the rollup file under its environment key. Other
// environments' entries are kept as they are; an unreadable rollup starts over.
func (e exporter) UpdateLatest(latestPath string, record Record) (string, error) {
	pth, err := e.pathModifier.AbsPath(latestPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path of the rollup file: %w", err)
	}

	latest := e.readLatest(pth)

	entry, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to encode run record: %w", err)
	}
	latest[record.Env] = entry

	if err := e.writePrettyJSON(pth, latest); err != nil {
		return "", err
	}
	e.logger.Donef("[metrics] wrote %s", pth)

	return pth, nil
}

func (e exporter) ExportRunRecord(deployDir, runRecordPath, latestPath, runID string) error {
	e.set(RunIDKey, runID)
	e.set(LatestPathKey, latestPath)

	destination := runRecordPath
	if deployDir != "" {
		destination = filepath.Join(deployDir, "test-metrics-"+runID+".json")
	}

	if err := e.outputExporter.ExportOutputFile(JSONPathKey, runRecordPath, destination); err != nil {
		return fmt.Errorf("failed to export %s: %w", JSONPathKey, err)
	}

	return nil
}

func (e exporter) ExportTestResults(runDir, bundleName string) {
	addonResultPath := e.envRepository.Get(configs.BitrisePerStepTestResultDirEnvKey)
	if addonResultPath == "" {
		return
	}

	e.logger.Println()
	e.logger.Infof("Exporting metrics to the test results directory")

	bundleDir, err := e.testAddonExporter.ExportRun(addonResultPath, testaddon.Run{
		Dir:  runDir,
		Name: bundleName,
	})
	if err != nil {
		e.logger.Warnf("Failed to export test results: %s", err)
		return
	}
	e.logger.Donef("[metrics] exported %s", bundleDir)
}

func (e exporter) set(key, value string) {
	if err := e.envRepository.Set(key, value); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", key, err)
	}
}

func (e exporter) readLatest(pth string) map[string]json.RawMessage {
	latest := map[string]json.RawMessage{}

	exists, err := e.pathChecker.IsPathExists(pth)
	if err != nil || !exists {
		return latest
	}

	content, err := fileutil.ReadBytesFromFile(pth)
	if err != nil {
		e.logger.Warnf("Failed to read %s, starting a new one: %s", pth, err)
		return latest
	}

	if err := json.Unmarshal(content, &latest); err != nil || latest == nil {
		e.logger.Warnf("Invalid JSON in %s, starting a new one", pth)
		return map[string]json.RawMessage{}
	}

	return latest
}

func (e exporter) writePrettyJSON(pth string, payload interface{}) error {
	content, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", pth, err)
	}

	if err := e.fileManager.Write(pth, string(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", pth, err)
	}

	return nil
}
