package sbml_test

import (
	"testing"

	"github.com/biodivine/go-sbml"
	"github.com/biodivine/go-sbml/testsuite"
)

func validateOutcomes(document string) []testsuite.Outcome {
	doc, err := sbml.ReadString(document)
	if err != nil {
		return []testsuite.Outcome{{Rule: "unreadable", Severity: "Error"}}
	}
	issues := doc.Validate()
	outcomes := make([]testsuite.Outcome, len(issues))
	for i, is := range issues {
		outcomes[i] = testsuite.Outcome{Rule: is.Rule, Severity: is.Severity.String()}
	}
	return outcomes
}

func TestConformanceSuite(t *testing.T) {
	failures, err := testsuite.Run("testdata/suite", nil, validateOutcomes)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range failures {
		t.Errorf("%s: %s", f.File, f.Diff)
	}
}

func TestConformanceSuiteFiltered(t *testing.T) {
	// restricting to one rule must still pass for every case
	failures, err := testsuite.Run("testdata/suite", map[string]bool{"10301": true}, validateOutcomes)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range failures {
		t.Errorf("%s: %s", f.File, f.Diff)
	}
}
