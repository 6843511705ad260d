package sbml

import (
	"github.com/biodivine/go-sbml/xmldom"
)

// Reaction is a transformation between species, with reactant, product and
// modifier references and an optional kinetic law.
type Reaction struct {
	sbase
}

func wrapReaction(e *xmldom.Element) *Reaction {
	return &Reaction{sbase{elem: e}}
}

func NewReaction(id SId, reversible bool) *Reaction {
	r := &Reaction{newSBase(URLSBMLCore, "reaction")}
	r.ID().Set(id)
	r.Reversible().Set(reversible)
	return r
}

func (r *Reaction) ID() RequiredProperty[SId] {
	return requiredProperty(r.elem, "id", sidConv)
}

func (r *Reaction) Reversible() RequiredProperty[bool] {
	return requiredProperty(r.elem, "reversible", boolConv)
}

func (r *Reaction) Compartment() OptionalProperty[SId] {
	return optionalProperty(r.elem, "compartment", sidConv)
}

func (r *Reaction) Reactants() OptionalChild[*ListOf[*SpeciesReference]] {
	return optionalListChild(r.elem, "listOfReactants", wrapSpeciesReference)
}

func (r *Reaction) Products() OptionalChild[*ListOf[*SpeciesReference]] {
	return optionalListChild(r.elem, "listOfProducts", wrapSpeciesReference)
}

func (r *Reaction) Modifiers() OptionalChild[*ListOf[*ModifierSpeciesReference]] {
	return optionalListChild(r.elem, "listOfModifiers", wrapModifierSpeciesReference)
}

func (r *Reaction) KineticLaw() OptionalChild[*KineticLaw] {
	return optionalChild(r.elem, "kineticLaw", wrapKineticLaw)
}

// SpeciesReference links a reaction to one of its reactant or product
// species.
type SpeciesReference struct {
	sbase
}

func wrapSpeciesReference(e *xmldom.Element) *SpeciesReference {
	return &SpeciesReference{sbase{elem: e}}
}

func NewSpeciesReference(species SId, constant bool) *SpeciesReference {
	r := &SpeciesReference{newSBase(URLSBMLCore, "speciesReference")}
	r.Species().Set(species)
	r.Constant().Set(constant)
	return r
}

func (r *SpeciesReference) Species() RequiredProperty[SId] {
	return requiredProperty(r.elem, "species", sidConv)
}

func (r *SpeciesReference) Stoichiometry() OptionalProperty[float64] {
	return optionalProperty(r.elem, "stoichiometry", float64Conv)
}

func (r *SpeciesReference) Constant() RequiredProperty[bool] {
	return requiredProperty(r.elem, "constant", boolConv)
}

// ModifierSpeciesReference links a reaction to a species that affects it
// without being consumed or produced.
type ModifierSpeciesReference struct {
	sbase
}

func wrapModifierSpeciesReference(e *xmldom.Element) *ModifierSpeciesReference {
	return &ModifierSpeciesReference{sbase{elem: e}}
}

func NewModifierSpeciesReference(species SId) *ModifierSpeciesReference {
	r := &ModifierSpeciesReference{newSBase(URLSBMLCore, "modifierSpeciesReference")}
	r.Species().Set(species)
	return r
}

func (r *ModifierSpeciesReference) Species() RequiredProperty[SId] {
	return requiredProperty(r.elem, "species", sidConv)
}

// KineticLaw holds the rate expression of a reaction together with its
// local parameters. Local parameter ids live in their own namespace,
// scoped to the kinetic law.
type KineticLaw struct {
	sbase
}

func wrapKineticLaw(e *xmldom.Element) *KineticLaw {
	return &KineticLaw{sbase{elem: e}}
}

func NewKineticLaw() *KineticLaw {
	return &KineticLaw{newSBase(URLSBMLCore, "kineticLaw")}
}

// Math returns the raw MathML child; its content is not interpreted.
func (k *KineticLaw) Math() OptionalChild[*RawElement] {
	return OptionalChild[*RawElement]{parent: k.elem, name: "math", space: URLMathML, wrap: wrapRaw}
}

func (k *KineticLaw) LocalParameters() OptionalChild[*ListOf[*LocalParameter]] {
	return optionalListChild(k.elem, "listOfLocalParameters", wrapLocalParameter)
}

// LocalParameter is a parameter visible only inside its kinetic law.
type LocalParameter struct {
	sbase
}

func wrapLocalParameter(e *xmldom.Element) *LocalParameter {
	return &LocalParameter{sbase{elem: e}}
}

func NewLocalParameter(id SId) *LocalParameter {
	p := &LocalParameter{newSBase(URLSBMLCore, "localParameter")}
	p.ID().Set(id)
	return p
}

func (p *LocalParameter) ID() RequiredProperty[SId] {
	return requiredProperty(p.elem, "id", sidConv)
}

func (p *LocalParameter) Value() OptionalProperty[float64] {
	return optionalProperty(p.elem, "value", float64Conv)
}

func (p *LocalParameter) Units() OptionalProperty[SId] {
	return optionalProperty(p.elem, "units", sidConv)
}
