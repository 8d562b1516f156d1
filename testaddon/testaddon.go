// Package testaddon places metrics runs into the per-step test result directory picked up by
// the test reports add-on.
package testaddon

import (
	"fmt"
	"path/filepath"

	"github.com/bitrise-io/go-utils/v2/pathutil"
)

// Run is a metrics run directory together with the name it is listed under in the add-on.
type Run struct {
	Dir  string
	Name string
}

// Exporter ...
type Exporter interface {
	ExportRun(resultDir string, run Run) (string, error)
}

type exporter struct {
	testAddon   TestAddon
	pathChecker pathutil.PathChecker
}

// NewExporter ...
func NewExporter(testAddon TestAddon, pathChecker pathutil.PathChecker) Exporter {
	return &exporter{
		testAddon:   testAddon,
		pathChecker: pathChecker,
	}
}

// ExportRun copies the run directory into <resultDir>/<bundle> next to a test-info.json naming
// the bundle, and returns the bundle directory.
func (e exporter) ExportRun(resultDir string, run Run) (string, error) {
	exists, err := e.pathChecker.IsPathExists(run.Dir)
	if err != nil {
		return "", fmt.Errorf("failed to check run directory (%s): %w", run.Dir, err)
	}
	if !exists {
		return "", fmt.Errorf("run directory does not exist: %s", run.Dir)
	}

	bundleName := e.testAddon.ReplaceUnsupportedFilenameCharacters(run.Name)
	if bundleName == "" {
		bundleName = filepath.Base(run.Dir)
	}
	bundleDir := filepath.Join(resultDir, bundleName)

	if err := e.testAddon.CopyDirectory(run.Dir, bundleDir); err != nil {
		return "", err
	}
	if err := e.testAddon.SaveBundleMetadata(bundleDir, bundleName); err != nil {
		return "", err
	}

	return bundleDir, nil
}
