// Package testsuite runs directories of syntactic SBML conformance cases.
//
// A case directory holds SBML files plus a manifest.yaml describing, per
// file, the (rule, severity) pairs a validator is expected to report:
//
//	cases:
//	  - file: duplicate-id.xml
//	    expected:
//	      - rule: "10301"
//	        severity: Error
//
// The runner is decoupled from the validator: callers pass a ValidateFunc
// so the package can exercise any implementation.
package testsuite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	ErrNoManifest  = errors.New("missing manifest")
	ErrBadManifest = errors.New("malformed manifest")
)

// Expected is one finding a case expects from the validator.
type Expected struct {
	Rule     string `yaml:"rule"`
	Severity string `yaml:"severity"`
}

// Case couples an input file with its expected findings.
type Case struct {
	File     string     `yaml:"file"`
	Expected []Expected `yaml:"expected"`
}

type Manifest struct {
	Cases []Case `yaml:"cases"`
}

// LoadManifest reads and decodes a manifest.yaml.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoManifest, err)
	}
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadManifest, err)
	}
	return m, nil
}

// Outcome is one finding actually produced by the validator.
type Outcome struct {
	Rule     string
	Severity string
}

// ValidateFunc validates a document given as text and reports its
// findings.
type ValidateFunc func(document string) []Outcome

// Failure describes one case whose findings did not match its
// expectations. Diff renders expected versus actual line sets.
type Failure struct {
	File string
	Diff string
}

// Run executes every case under dir against validate and returns the
// failures. When filter is non-nil, only findings for rules present in it
// are compared, so suites can be adopted rule by rule.
func Run(dir string, filter map[string]bool, validate ValidateFunc) ([]Failure, error) {
	manifest, err := LoadManifest(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		return nil, err
	}
	var failures []Failure
	for _, c := range manifest.Cases {
		data, err := os.ReadFile(filepath.Join(dir, c.File))
		if err != nil {
			return nil, fmt.Errorf("case %s: %w", c.File, err)
		}
		want := make([]string, 0, len(c.Expected))
		for _, e := range c.Expected {
			if filter != nil && !filter[e.Rule] {
				continue
			}
			want = append(want, e.Rule+" "+e.Severity)
		}
		outcomes := validate(string(data))
		got := make([]string, 0, len(outcomes))
		for _, o := range outcomes {
			if filter != nil && !filter[o.Rule] {
				continue
			}
			got = append(got, o.Rule+" "+o.Severity)
		}
		sort.Strings(want)
		sort.Strings(got)
		if slicesEqual(want, got) {
			continue
		}
		failures = append(failures, Failure{
			File: c.File,
			Diff: diffLines(want, got),
		})
	}
	return failures, nil
}

func slicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func diffLines(want, got []string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(strings.Join(want, "\n"), strings.Join(got, "\n"), true)
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString("-[" + d.Text + "]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("+[" + d.Text + "]")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
