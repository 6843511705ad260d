// Package sbml reads, navigates, mutates and validates Systems Biology
// Markup Language (SBML) level 3 version 2 documents.
//
// # Overview
//
// A document is loaded into a mutable in-memory tree and exposed through
// typed views: the Sbml container, its optional Model, and the model's
// component lists (parameters, species, compartments, units, reactions).
// Views are cheap handles over the shared tree, so a value written through
// one handle is immediately visible through every other.
//
//	doc, err := sbml.ReadPath("model.sbml")
//	if err != nil {
//	    return err
//	}
//	model, err := doc.Model().Get()
//	if err != nil {
//	    return err // the document has no <model>
//	}
//	if id, ok := model.ID().Get(); ok {
//	    fmt.Println("model id:", id)
//	}
//	model.ID().Set(sbml.MustSId("some_id"))
//
// # Optional children and properties
//
// Children that a document instance may omit are reached through
// OptionalChild handles: absence is represented, and only Get turns it
// into an error. Attributes are reached through RequiredProperty and
// OptionalProperty handles whose values are converted to and from typed
// representations (SId, BaseUnit, numbers, booleans) on access.
//
// # Identifiers
//
// SId enforces the SBML identifier grammar at construction, so every SId
// value in circulation is syntactically valid. MetaId and SboTerm do the
// same for their respective grammars.
//
// # Validation
//
// Validate applies the supported subset of the SBML conformance rules and
// returns the findings as Issues keyed by rule number. Documents with
// structural problems still load, so they can be inspected and repaired.
//
// # Concurrency
//
// Documents and all views over them are not safe for concurrent use.
//
// # Related Packages
//
//   - github.com/biodivine/go-sbml/xmldom - the raw element tree
//   - github.com/biodivine/go-sbml/diag - terminal rendering of issues
//   - github.com/biodivine/go-sbml/testsuite - syntactic test suite runner
package sbml
