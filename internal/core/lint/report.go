// Package lint defines the report format produced by the stevedore-lint
// binary and the pure decode step that turns a description file's bytes
// into a description value.
//
// The binary owns all file I/O; this package contains pure functions with
// no side effects, following ADR-002.
package lint

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/artpar/stevedore/internal/core/description"
	"github.com/artpar/stevedore/internal/core/validation"
)

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrEmptyInput means the file had no content to decode.
	ErrEmptyInput = errors.New("description is empty")
)

// =============================================================================
// Input Format
// =============================================================================

// Format identifies the serialization of a description file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DetectFormat picks the format for a description file from its
// extension. Descriptions travel as JSON on the wire, so anything that
// is not named .yaml or .yml is decoded as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DecodeDescription decodes raw file content into a description.
func DecodeDescription(data []byte, format Format) (*description.CreateServerGroup, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrEmptyInput
	}

	var desc description.CreateServerGroup
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &desc); err != nil {
			return nil, fmt.Errorf("decode yaml description: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &desc); err != nil {
			return nil, fmt.Errorf("decode json description: %w", err)
		}
	}
	return &desc, nil
}

// =============================================================================
// Report Envelope
// =============================================================================

// FileReport is the per-file result envelope written to stdout, one JSON
// document per linted file.
type FileReport struct {
	File     string    `json:"file"`
	Valid    bool      `json:"valid"`
	Findings []Finding `json:"findings"`
	Error    string    `json:"error,omitempty"` // set when the file could not be decoded
}

// Finding is one validation finding with its message key. This mirrors
// the findings the validation API returns so report consumers can share
// tooling between the two surfaces.
type Finding struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Key     string `json:"key"`
	Message string `json:"message,omitempty"`
}

// NewReport builds the report for a file that decoded cleanly.
func NewReport(file string, findings []validation.Finding) FileReport {
	r := FileReport{
		File:     file,
		Valid:    len(findings) == 0,
		Findings: make([]Finding, 0, len(findings)),
	}
	for _, f := range findings {
		r.Findings = append(r.Findings, Finding{
			Field:   f.Field,
			Code:    f.Code,
			Key:     f.Key(),
			Message: f.Message,
		})
	}
	return r
}

// NewDecodeFailure builds the report for a file that could not be read
// or decoded. The file counts as invalid but carries no findings.
func NewDecodeFailure(file string, err error) FileReport {
	return FileReport{
		File:     file,
		Valid:    false,
		Findings: []Finding{},
		Error:    err.Error(),
	}
}

// ExitCode is the process exit code for a lint run: zero only when every
// file decoded and passed validation.
func ExitCode(reports []FileReport) int {
	for _, r := range reports {
		if !r.Valid {
			return 1
		}
	}
	return 0
}
