package report

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bitrise-io/go-utils/fileutil"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	version "github.com/hashicorp/go-version"
)

// ErrReportNotFound is returned when the results file does not exist.
var ErrReportNotFound = errors.New("results file not found")

// Loader reads a report from disk.
type Loader interface {
	Load(pth string) (Report, error)
}

type loader struct {
	pathChecker pathutil.PathChecker
}

// NewLoader ...
func NewLoader(pathChecker pathutil.PathChecker) Loader {
	return loader{pathChecker: pathChecker}
}

func (l loader) Load(pth string) (Report, error) {
	exists, err := l.pathChecker.IsPathExists(pth)
	if err != nil {
		return Report{}, fmt.Errorf("failed to check results file (%s): %w", pth, err)
	}
	if !exists {
		return Report{}, fmt.Errorf("%w: %s", ErrReportNotFound, pth)
	}

	content, err := fileutil.ReadBytesFromFile(pth)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read results file (%s): %w", pth, err)
	}

	return Parse(content)
}

// Parse decodes a report from its JSON representation.
func Parse(content []byte) (Report, error) {
	var r Report
	if err := json.Unmarshal(content, &r); err != nil {
		return Report{}, fmt.Errorf("failed to parse results JSON: %w", err)
	}
	return r, nil
}

// RunnerVersion returns the version of the runner that produced the report, or nil if it is
// missing or not a valid version.
func (r Report) RunnerVersion() *version.Version {
	if r.Config.Version == "" {
		return nil
	}
	v, err := version.NewVersion(string(r.Config.Version))
	if err != nil {
		return nil
	}
	return v
}
