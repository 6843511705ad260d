package sbml

import (
	"github.com/biodivine/go-sbml/xmldom"
)

// Species is a pool of entities of the same kind located in a compartment.
type Species struct {
	sbase
}

func wrapSpecies(e *xmldom.Element) *Species {
	return &Species{sbase{elem: e}}
}

// NewSpecies creates a detached <species> referencing the given compartment,
// with the required boolean attributes defaulted to false.
func NewSpecies(id, compartment SId) *Species {
	s := &Species{newSBase(URLSBMLCore, "species")}
	s.ID().Set(id)
	s.Compartment().Set(compartment)
	s.Constant().Set(false)
	s.BoundaryCondition().Set(false)
	s.HasOnlySubstanceUnits().Set(false)
	return s
}

func (s *Species) ID() RequiredProperty[SId] {
	return requiredProperty(s.elem, "id", sidConv)
}

// Compartment refers to the id of the compartment containing this species.
func (s *Species) Compartment() RequiredProperty[SId] {
	return requiredProperty(s.elem, "compartment", sidConv)
}

func (s *Species) InitialAmount() OptionalProperty[float64] {
	return optionalProperty(s.elem, "initialAmount", float64Conv)
}

func (s *Species) InitialConcentration() OptionalProperty[float64] {
	return optionalProperty(s.elem, "initialConcentration", float64Conv)
}

func (s *Species) SubstanceUnits() OptionalProperty[BaseUnit] {
	return optionalProperty(s.elem, "substanceUnits", baseUnitConv)
}

func (s *Species) HasOnlySubstanceUnits() RequiredProperty[bool] {
	return requiredProperty(s.elem, "hasOnlySubstanceUnits", boolConv)
}

func (s *Species) BoundaryCondition() RequiredProperty[bool] {
	return requiredProperty(s.elem, "boundaryCondition", boolConv)
}

func (s *Species) Constant() RequiredProperty[bool] {
	return requiredProperty(s.elem, "constant", boolConv)
}
