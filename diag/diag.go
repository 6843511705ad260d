// Package diag renders validation issues for terminals.
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/biodivine/go-sbml"
)

// Printer writes issues one per line, with the severity colored when the
// destination is a terminal.
type Printer struct {
	w      io.Writer
	colors *colors
}

type PrinterOption func(*Printer)

// WithColors forces colored output on or off regardless of the
// destination.
func WithColors(v bool) PrinterOption {
	return func(p *Printer) {
		if v {
			p.colors = newColors()
		} else {
			p.colors = nil
		}
	}
}

func NewPrinter(w io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{w: w}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		p.colors = newColors()
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Print writes every issue on its own line:
//
//	Error [10301] /sbml/model/listOfParameters/parameter[1]: the id ...
func (p *Printer) Print(issues []sbml.Issue) error {
	for _, issue := range issues {
		sev := issue.Severity.String()
		if p.colors != nil {
			sev = p.colors.severity(issue.Severity)(sev)
		}
		pos := ""
		if issue.Element != nil && issue.Element.Pos != nil {
			pos = " (" + issue.Element.Pos.String() + ")"
		}
		_, err := fmt.Fprintf(p.w, "%s [%s] %s%s: %s\n",
			sev, issue.Rule, issue.Element.Path(), pos, issue.Message)
		if err != nil {
			return err
		}
	}
	return nil
}

type colors struct {
	err  func(...any) string
	warn func(...any) string
	info func(...any) string
}

func newColors() *colors {
	return &colors{
		err:  color.New(color.FgRed, color.Bold).Sprint,
		warn: color.New(color.FgYellow).Sprint,
		info: color.New(color.FgBlue).Sprint,
	}
}

func (c *colors) severity(s sbml.Severity) func(...any) string {
	switch s {
	case sbml.SeverityError:
		return c.err
	case sbml.SeverityWarning:
		return c.warn
	default:
		return c.info
	}
}
