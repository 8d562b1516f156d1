// Package categories loads category definitions from a YAML or JSON file.
package categories

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/bitrise-io/go-utils/fileutil"
	"github.com/bitrise-steplib/steps-test-metrics/metrics"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed categories.schema.json
var schemaData []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

func compileSchema() error {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaData))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal categories schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("categories.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add categories schema resource: %w", err)
			return
		}

		compiledSchema, err = compiler.Compile("categories.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile categories schema: %w", err)
		}
	})

	return compileErr
}

// Loader ...
type Loader interface {
	Load(pth string) (*metrics.CategoryConfig, error)
}

type fileLoader struct{}

// NewLoader returns a Loader backed by Load.
func NewLoader() Loader {
	return fileLoader{}
}

func (fileLoader) Load(pth string) (*metrics.CategoryConfig, error) {
	return Load(pth)
}

// Load reads a category configuration file. YAML is a superset of JSON, so both formats are accepted.
func Load(pth string) (*metrics.CategoryConfig, error) {
	content, err := fileutil.ReadBytesFromFile(pth)
	if err != nil {
		return nil, fmt.Errorf("failed to read category config (%s): %w", pth, err)
	}

	cfg, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("invalid category config (%s): %w", pth, err)
	}
	return cfg, nil
}

// Parse validates the document against the embedded schema and decodes it.
func Parse(content []byte) (*metrics.CategoryConfig, error) {
	if err := compileSchema(); err != nil {
		return nil, err
	}

	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}
	if doc == nil {
		return nil, errors.New("empty document")
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var cfg metrics.CategoryConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode: %w", err)
	}

	seen := map[string]bool{}
	for _, def := range cfg.Categories {
		if seen[def.Name] {
			return nil, fmt.Errorf("duplicate category name: %s", def.Name)
		}
		seen[def.Name] = true
	}

	if cfg.Mode == "" {
		cfg.Mode = metrics.CategoryModeMulti
	}

	return &cfg, nil
}
