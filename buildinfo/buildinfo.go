// Package buildinfo detects the identity of the current build (revision, branch, run number)
// from git and the env vars set by common CI providers.
package buildinfo

import (
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
)

const shortSHALength = 7

// Env vars are listed in lookup order: Azure Pipelines, GitHub Actions, Bitrise.
var (
	revisionEnvKeys  = []string{"BUILD_SOURCEVERSION", "GITHUB_SHA", "BITRISE_GIT_COMMIT"}
	runNumberEnvKeys = []string{"BUILD_BUILDNUMBER", "GITHUB_RUN_NUMBER", "BITRISE_BUILD_NUMBER"}
	branchEnvKeys    = []string{"BUILD_SOURCEBRANCHNAME", "GITHUB_REF_NAME", "BUILD_SOURCEBRANCH", "BITRISE_GIT_BRANCH"}
)

// Info is the identity of a build. Nil fields are unknown.
type Info struct {
	GitSHA    *string
	Branch    *string
	RunNumber *string
}

// Detector ...
type Detector interface {
	GitSHA() *string
	RunNumber() *string
	Branch() *string
	Detect() Info
}

type detector struct {
	envRepository  env.Repository
	commandFactory command.Factory
	logger         log.Logger
}

// NewDetector ...
func NewDetector(envRepository env.Repository, commandFactory command.Factory, logger log.Logger) Detector {
	return detector{
		envRepository:  envRepository,
		commandFactory: commandFactory,
		logger:         logger,
	}
}

// GitSHA asks git for the short revision and falls back to the CI provided commit hash.
func (d detector) GitSHA() *string {
	cmd := d.commandFactory.Create("git", []string{"rev-parse", "--short", "HEAD"}, nil)
	out, err := cmd.RunAndReturnTrimmedOutput()
	if err == nil && out != "" {
		return &out
	}
	d.logger.Debugf("$ %s failed, falling back to env vars: %s", cmd.PrintableCommandArgs(), err)

	for _, key := range revisionEnvKeys {
		if value := d.envRepository.Get(key); value != "" {
			if len(value) > shortSHALength {
				value = value[:shortSHALength]
			}
			return &value
		}
	}
	return nil
}

// RunNumber ...
func (d detector) RunNumber() *string {
	return d.firstSet(runNumberEnvKeys)
}

// Branch ...
func (d detector) Branch() *string {
	return d.firstSet(branchEnvKeys)
}

// Detect ...
func (d detector) Detect() Info {
	return Info{
		GitSHA:    d.GitSHA(),
		Branch:    d.Branch(),
		RunNumber: d.RunNumber(),
	}
}

func (d detector) firstSet(keys []string) *string {
	for _, key := range keys {
		if value := d.envRepository.Get(key); value != "" {
			return &value
		}
	}
	return nil
}
