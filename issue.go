package sbml

import (
	"fmt"

	"github.com/biodivine/go-sbml/xmldom"
)

// Severity classifies how serious a validation issue is.
type Severity int

const (
	// SeverityError marks issues that make the document impossible to
	// interpret correctly.
	SeverityError Severity = iota
	// SeverityWarning marks issues that suggest an error without making the
	// document invalid.
	SeverityWarning
	// SeverityInfo marks suggestions that would improve the document.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "Error"
	case SeverityWarning:
		return "Warning"
	case SeverityInfo:
		return "Informational"
	default:
		return "<unknown severity>"
	}
}

// Issue is a single validation finding, tied to the element where it
// occurred and to the conformance rule it violates.
type Issue struct {
	Element  *xmldom.Element
	Severity Severity
	Rule     string
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s [%s] %s: %s", i.Severity, i.Rule, i.Element.Path(), i.Message)
}

func errorIssue(rule string, e *xmldom.Element, msg string) Issue {
	return Issue{Element: e, Severity: SeverityError, Rule: rule, Message: msg}
}
