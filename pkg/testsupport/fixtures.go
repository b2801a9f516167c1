// Package testsupport provides fixture loading and string-building helpers
// shared by the normalization test suites.
package testsupport

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// Case describes one normalization fixture: a template (segments plus
// values) and the expected pipeline output.
type Case struct {
	Name     string   `yaml:"name"`
	Segments []string `yaml:"segments"`
	Values   []any    `yaml:"values"`
	Want     string   `yaml:"want"`
}

// LoadCases reads a YAML fixture file of normalization cases. Helpers fail
// the test on error to keep table-driven suites concise.
func LoadCases(t *testing.T, path string) []Case {
	t.Helper()

	cases, err := LoadCasesFromPath(path)
	if err != nil {
		t.Fatalf("load cases: %v", err)
	}
	return cases
}

// LoadCasesFromPath returns fixture cases without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadCasesFromPath(path string) ([]Case, error) {
	if path == "" {
		return nil, fmt.Errorf("testsupport: fixture path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read fixture: %w", err)
	}

	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal fixture: %w", err)
	}
	return cases, nil
}

// JoinLF joins lines with LF separators so expected multi-line output can be
// written one line per argument instead of as escaped literals.
func JoinLF(lines ...string) string {
	return strings.Join(lines, "\n")
}

// CaptureRenderOutput invokes a render function with a buffer writer and
// returns both the returned string and whatever was written, so tests can
// assert the two stay in sync.
func CaptureRenderOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	result, err := render(&buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return result, buf.String()
}
