package sbml

import (
	"fmt"

	"github.com/biodivine/go-sbml/debug"
	"github.com/biodivine/go-sbml/xmldom"
)

// allowedChildren maps a core-namespace element to the core-namespace
// children it may contain. <notes> and <annotation> are implicitly allowed
// on every element and content outside the core namespace is never checked
// here. An element missing from the table has unconstrained children.
var allowedChildren = map[string][]string{
	"sbml": {"model"},
	"model": {
		"listOfFunctionDefinitions", "listOfUnitDefinitions",
		"listOfCompartments", "listOfSpecies", "listOfParameters",
		"listOfInitialAssignments", "listOfRules", "listOfConstraints",
		"listOfReactions", "listOfEvents",
	},
	"listOfFunctionDefinitions": {"functionDefinition"},
	"listOfUnitDefinitions":     {"unitDefinition"},
	"listOfCompartments":        {"compartment"},
	"listOfSpecies":             {"species"},
	"listOfParameters":          {"parameter"},
	"listOfReactions":           {"reaction"},
	"unitDefinition":            {"listOfUnits"},
	"listOfUnits":               {"unit"},
	"reaction":                  {"listOfReactants", "listOfProducts", "listOfModifiers", "kineticLaw"},
	"listOfReactants":           {"speciesReference"},
	"listOfProducts":            {"speciesReference"},
	"listOfModifiers":           {"modifierSpeciesReference"},
	"kineticLaw":                {"listOfLocalParameters"},
	"listOfLocalParameters":     {"localParameter"},
	"functionDefinition":        {},
	"parameter":                 {},
	"compartment":               {},
	"species":                   {},
	"unit":                      {},
	"speciesReference":          {},
	"modifierSpeciesReference":  {},
	"localParameter":            {},
}

// requiredAttrs lists the attributes an element must carry.
var requiredAttrs = map[string][]string{
	"sbml":                     {"level", "version"},
	"parameter":                {"id", "constant"},
	"compartment":              {"id", "constant"},
	"species":                  {"id", "compartment", "constant", "boundaryCondition", "hasOnlySubstanceUnits"},
	"unit":                     {"kind", "exponent", "scale", "multiplier"},
	"reaction":                 {"id", "reversible"},
	"speciesReference":         {"species", "constant"},
	"modifierSpeciesReference": {"species"},
	"localParameter":           {"id"},
	"functionDefinition":       {"id"},
	"unitDefinition":           {"id"},
}

func checker[T any](c conv[T]) func(string) error {
	return func(s string) error {
		_, err := c.parse(s)
		return err
	}
}

// attrCheckers holds the type checks for typed attributes. Identifier
// attributes (id, metaid, sboTerm) are handled by their dedicated rules
// instead.
var attrCheckers = map[string]map[string]func(string) error{
	"sbml": {
		"level":   checker(intConv),
		"version": checker(intConv),
	},
	"parameter": {
		"constant": checker(boolConv),
		"value":    checker(float64Conv),
		"units":    checker(baseUnitConv),
	},
	"compartment": {
		"constant":          checker(boolConv),
		"size":              checker(float64Conv),
		"spatialDimensions": checker(float64Conv),
	},
	"species": {
		"constant":              checker(boolConv),
		"boundaryCondition":     checker(boolConv),
		"hasOnlySubstanceUnits": checker(boolConv),
		"initialAmount":         checker(float64Conv),
		"initialConcentration":  checker(float64Conv),
	},
	"unit": {
		"kind":       checker(baseUnitConv),
		"exponent":   checker(float64Conv),
		"scale":      checker(signedIntConv),
		"multiplier": checker(float64Conv),
	},
	"reaction": {
		"reversible": checker(boolConv),
	},
	"speciesReference": {
		"constant":      checker(boolConv),
		"stoichiometry": checker(float64Conv),
	},
}

// Validate checks the document against the supported subset of the SBML
// level 3 version 2 conformance rules and returns all findings in document
// order. Validation never mutates the document.
func (s *Sbml) Validate() []Issue {
	v := &validator{
		ids:     map[SId]*xmldom.Element{},
		metaIds: map[MetaId]*xmldom.Element{},
	}
	if len(s.doc.Roots) != 1 {
		v.issues = append(v.issues, errorIssue("10102", s.root,
			"the document contains multiple root nodes, only one <sbml> element is allowed"))
	}
	root := s.root
	if root.Name != "sbml" || root.Space != URLSBMLCore {
		v.issues = append(v.issues, errorIssue("10102", root,
			fmt.Sprintf("invalid root element <%s>", root.Name)))
		return v.issues
	}
	v.element(root)
	if debug.Validate() {
		debug.Logf("validation found %d issue(s)\n", len(v.issues))
	}
	return v.issues
}

type validator struct {
	issues  []Issue
	ids     map[SId]*xmldom.Element
	metaIds map[MetaId]*xmldom.Element
	// localIDs is non-nil inside a kineticLaw; local parameter ids are
	// unique per kinetic law, not per model.
	localIDs map[SId]*xmldom.Element
}

// element validates a core-namespace element and recurses into its
// core-namespace children. Notes, annotations and foreign-namespace
// content are left alone.
func (v *validator) element(e *xmldom.Element) {
	v.sbase(e)
	v.requiredAttrs(e)
	v.typedAttrs(e)

	if e.Name == "kineticLaw" {
		outer := v.localIDs
		v.localIDs = map[SId]*xmldom.Element{}
		defer func() { v.localIDs = outer }()
	}

	allowed, constrained := allowedChildren[e.Name]
	for _, c := range e.Children {
		if c.Space != URLSBMLCore {
			continue
		}
		if c.Name == "notes" || c.Name == "annotation" {
			continue
		}
		if constrained && !contains(allowed, c.Name) {
			v.issues = append(v.issues, errorIssue("10102", c,
				fmt.Sprintf("<%s> is not an allowed child of <%s>", c.Name, e.Name)))
			continue
		}
		v.element(c)
	}
}

// sbase applies the rules shared by every SBML element: syntax of id,
// metaid and sboTerm, and uniqueness of id and metaid.
func (v *validator) sbase(e *xmldom.Element) {
	if raw, ok := e.Attr("id"); ok {
		id, err := NewSId(raw)
		switch {
		case err != nil:
			v.issues = append(v.issues, errorIssue("10310", e,
				fmt.Sprintf("the [id] attribute value ('%s') does not conform to the SId syntax", raw)))
		case e.Name == "localParameter":
			v.uniqueLocal(id, e)
		default:
			v.unique(id, e)
		}
	}
	if raw, ok := e.Attr("metaid"); ok {
		metaID, err := NewMetaId(raw)
		if err != nil {
			v.issues = append(v.issues, errorIssue("10309", e,
				fmt.Sprintf("the [metaid] attribute value ('%s') does not conform to the XML 1.0 ID syntax", raw)))
		} else if _, dup := v.metaIds[metaID]; dup {
			v.issues = append(v.issues, errorIssue("10307", e,
				fmt.Sprintf("the metaid ('%s') of <%s> is already present in the document", raw, e.Name)))
		} else {
			v.metaIds[metaID] = e
		}
	}
	if raw, ok := e.Attr("sboTerm"); ok {
		if _, err := NewSboTerm(raw); err != nil {
			v.issues = append(v.issues, errorIssue("10308", e,
				fmt.Sprintf("the [sboTerm] attribute value ('%s') does not conform to the SBOTerm syntax", raw)))
		}
	}
}

func (v *validator) unique(id SId, e *xmldom.Element) {
	if _, dup := v.ids[id]; dup {
		v.issues = append(v.issues, errorIssue("10301", e,
			fmt.Sprintf("the id ('%s') of <%s> is already present in the <model>", id, e.Name)))
		return
	}
	v.ids[id] = e
}

func (v *validator) uniqueLocal(id SId, e *xmldom.Element) {
	if v.localIDs == nil {
		// localParameter outside a kineticLaw; the placement issue is
		// reported by the allowed-children check, so just use model scope.
		v.unique(id, e)
		return
	}
	if _, dup := v.localIDs[id]; dup {
		v.issues = append(v.issues, errorIssue("10303", e,
			fmt.Sprintf("the id ('%s') of <%s> is already present in the <kineticLaw>", id, e.Name)))
		return
	}
	v.localIDs[id] = e
}

func (v *validator) requiredAttrs(e *xmldom.Element) {
	for _, name := range requiredAttrs[e.Name] {
		if _, ok := e.Attr(name); !ok {
			v.issues = append(v.issues, errorIssue("10102", e,
				fmt.Sprintf("sbml:%s requires the [%s] attribute", e.Name, name)))
		}
	}
}

func (v *validator) typedAttrs(e *xmldom.Element) {
	checkers := attrCheckers[e.Name]
	if len(checkers) == 0 {
		return
	}
	// iterate attributes, not the checker map, to keep issue order stable
	for _, a := range e.Attrs {
		if a.Space != "" {
			continue
		}
		check := checkers[a.Name]
		if check == nil {
			continue
		}
		if err := check(a.Value); err != nil {
			v.issues = append(v.issues, errorIssue("10102", e,
				fmt.Sprintf("the [%s] attribute value ('%s') on sbml:%s has the wrong type", a.Name, a.Value, e.Name)))
		}
	}
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
