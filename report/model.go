package report

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Report is the root of a Playwright JSON report.
type Report struct {
	Config Config  `json:"config"`
	Suites []Suite `json:"suites"`
}

// Config holds the runner level fields of the report we care about.
type Config struct {
	Version LooseString `json:"version"`
}

// Location ...
type Location struct {
	File   LooseString `json:"file"`
	Line   int         `json:"line"`
	Column int         `json:"column"`
}

// Annotation is a {type, description} pair attached to a suite, spec or test.
type Annotation struct {
	Type        LooseString `json:"type"`
	Description LooseString `json:"description"`
}

// Suite is a file or describe block. Suites nest arbitrarily.
type Suite struct {
	Title       LooseString  `json:"title"`
	File        LooseString  `json:"file"`
	Location    *Location    `json:"location"`
	Annotations []Annotation `json:"annotations"`
	Suites      []Suite      `json:"suites"`
	Specs       []Spec       `json:"specs"`
}

// Spec is a single test() declaration, run once per project.
type Spec struct {
	Title       LooseString  `json:"title"`
	File        LooseString  `json:"file"`
	Location    *Location    `json:"location"`
	Annotations []Annotation `json:"annotations"`
	Tests       []Test       `json:"tests"`
}

// Test is one execution of a spec under one project.
type Test struct {
	ProjectName LooseString  `json:"projectName"`
	Location    *Location    `json:"location"`
	Annotations []Annotation `json:"annotations"`
	Outcome     LooseString  `json:"outcome"`
	Status      LooseString  `json:"status"`
}

// FilePath returns the suite's own file, preferring location.file over the top level file field.
func (s Suite) FilePath() string {
	return firstNonEmpty(locationFile(s.Location), string(s.File))
}

// FilePath ...
func (s Spec) FilePath() string {
	return firstNonEmpty(locationFile(s.Location), string(s.File))
}

// FilePath ...
func (t Test) FilePath() string {
	return locationFile(t.Location)
}

// RawOutcome returns the outcome field, falling back to status when outcome is not set.
func (t Test) RawOutcome() string {
	return firstNonEmpty(string(t.Outcome), string(t.Status))
}

func locationFile(l *Location) string {
	if l == nil {
		return ""
	}
	return string(l.File)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// LooseString decodes any JSON scalar into its string form; null becomes the empty string.
// Report files are produced by third party reporters, so a number where a string is
// expected must not fail the whole document.
type LooseString string

// UnmarshalJSON ...
func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	switch data[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = LooseString(str)
	case '{', '[':
		*s = ""
	default:
		if b, err := strconv.ParseBool(string(data)); err == nil {
			*s = LooseString(strconv.FormatBool(b))
			return nil
		}
		*s = LooseString(data)
	}

	return nil
}
