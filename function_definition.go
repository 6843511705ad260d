package sbml

import (
	"github.com/biodivine/go-sbml/xmldom"
)

// FunctionDefinition associates an identifier with a MathML lambda
// expression. The math content itself is exposed raw and not interpreted.
type FunctionDefinition struct {
	sbase
}

func wrapFunctionDefinition(e *xmldom.Element) *FunctionDefinition {
	return &FunctionDefinition{sbase{elem: e}}
}

func NewFunctionDefinition(id SId) *FunctionDefinition {
	f := &FunctionDefinition{newSBase(URLSBMLCore, "functionDefinition")}
	f.ID().Set(id)
	return f
}

func (f *FunctionDefinition) ID() RequiredProperty[SId] {
	return requiredProperty(f.elem, "id", sidConv)
}

func (f *FunctionDefinition) Math() OptionalChild[*RawElement] {
	return OptionalChild[*RawElement]{parent: f.elem, name: "math", space: URLMathML, wrap: wrapRaw}
}
