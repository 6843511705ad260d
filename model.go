package sbml

import (
	"github.com/biodivine/go-sbml/xmldom"
)

// Model is the root content element of an SBML document. All of its
// component lists are optional in the document instance; GetOrCreate on a
// list handle materializes an empty list.
type Model struct {
	sbase
}

func wrapModel(e *xmldom.Element) *Model {
	return &Model{sbase{elem: e}}
}

// NewModel creates a detached <model> element.
func NewModel() *Model {
	return &Model{newSBase(URLSBMLCore, "model")}
}

func (m *Model) FunctionDefinitions() OptionalChild[*ListOf[*FunctionDefinition]] {
	return optionalListChild(m.elem, "listOfFunctionDefinitions", wrapFunctionDefinition)
}

func (m *Model) UnitDefinitions() OptionalChild[*ListOf[*UnitDefinition]] {
	return optionalListChild(m.elem, "listOfUnitDefinitions", wrapUnitDefinition)
}

func (m *Model) Compartments() OptionalChild[*ListOf[*Compartment]] {
	return optionalListChild(m.elem, "listOfCompartments", wrapCompartment)
}

func (m *Model) Species() OptionalChild[*ListOf[*Species]] {
	return optionalListChild(m.elem, "listOfSpecies", wrapSpecies)
}

func (m *Model) Parameters() OptionalChild[*ListOf[*Parameter]] {
	return optionalListChild(m.elem, "listOfParameters", wrapParameter)
}

func (m *Model) Reactions() OptionalChild[*ListOf[*Reaction]] {
	return optionalListChild(m.elem, "listOfReactions", wrapReaction)
}
