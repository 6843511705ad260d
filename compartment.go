package sbml

import (
	"github.com/biodivine/go-sbml/xmldom"
)

// Compartment is a bounded space in which species are located.
type Compartment struct {
	sbase
}

func wrapCompartment(e *xmldom.Element) *Compartment {
	return &Compartment{sbase{elem: e}}
}

// NewCompartment creates a detached <compartment> with its required
// attributes.
func NewCompartment(id SId, constant bool) *Compartment {
	c := &Compartment{newSBase(URLSBMLCore, "compartment")}
	c.ID().Set(id)
	c.Constant().Set(constant)
	return c
}

func (c *Compartment) ID() RequiredProperty[SId] {
	return requiredProperty(c.elem, "id", sidConv)
}

func (c *Compartment) SpatialDimensions() OptionalProperty[float64] {
	return optionalProperty(c.elem, "spatialDimensions", float64Conv)
}

func (c *Compartment) Size() OptionalProperty[float64] {
	return optionalProperty(c.elem, "size", float64Conv)
}

func (c *Compartment) Units() OptionalProperty[BaseUnit] {
	return optionalProperty(c.elem, "units", baseUnitConv)
}

func (c *Compartment) Constant() RequiredProperty[bool] {
	return requiredProperty(c.elem, "constant", boolConv)
}
