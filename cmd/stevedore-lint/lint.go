package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/artpar/stevedore/internal/core/account"
	"github.com/artpar/stevedore/internal/core/description"
	"github.com/artpar/stevedore/internal/core/lint"
	"github.com/artpar/stevedore/internal/core/validation"
)

// =============================================================================
// Load Error
// =============================================================================

// LoadError reports a description or accounts file that could not be
// read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// =============================================================================
// Linting
// =============================================================================

// lintFiles validates every file and returns one report per file, in
// argument order. Unreadable files become decode-failure reports rather
// than aborting the run, so one bad file never hides findings in the
// others.
func lintFiles(v *validation.ServerGroupValidator, paths []string) []lint.FileReport {
	reports := make([]lint.FileReport, 0, len(paths))
	for _, path := range paths {
		desc, err := readDescription(path)
		if err != nil {
			reports = append(reports, lint.NewDecodeFailure(path, err))
			continue
		}
		reports = append(reports, lint.NewReport(path, v.Validate(desc)))
	}
	return reports
}

// readDescription loads one description file using the format its
// extension implies.
func readDescription(path string) (*description.CreateServerGroup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	desc, err := lint.DecodeDescription(data, lint.DetectFormat(path))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return desc, nil
}

// =============================================================================
// Accounts File
// =============================================================================

// accountsFile mirrors the accounts section of the service config, so
// the same file can back both the server and offline linting.
type accountsFile struct {
	Accounts []account.Account `yaml:"accounts"`
}

// loadAccounts reads the accounts file and builds the registry.
func loadAccounts(path string) (*account.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var f accountsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("decode accounts: %w", err)}
	}

	registry, err := account.NewRegistry(f.Accounts)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return registry, nil
}
