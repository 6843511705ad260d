package sbml

import (
	"github.com/biodivine/go-sbml/xmldom"
)

// Parameter is a named constant or variable quantity declared in a model.
type Parameter struct {
	sbase
}

func wrapParameter(e *xmldom.Element) *Parameter {
	return &Parameter{sbase{elem: e}}
}

// NewParameter creates a detached <parameter> with its required attributes.
func NewParameter(id SId, constant bool) *Parameter {
	p := &Parameter{newSBase(URLSBMLCore, "parameter")}
	p.ID().Set(id)
	p.Constant().Set(constant)
	return p
}

// ID shadows the optional SBase id: on a parameter the attribute is
// required.
func (p *Parameter) ID() RequiredProperty[SId] {
	return requiredProperty(p.elem, "id", sidConv)
}

func (p *Parameter) Value() OptionalProperty[float64] {
	return optionalProperty(p.elem, "value", float64Conv)
}

func (p *Parameter) Units() OptionalProperty[BaseUnit] {
	return optionalProperty(p.elem, "units", baseUnitConv)
}

func (p *Parameter) Constant() RequiredProperty[bool] {
	return requiredProperty(p.elem, "constant", boolConv)
}
