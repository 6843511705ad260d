package sbml

import (
	"fmt"

	"github.com/biodivine/go-sbml/xmldom"
)

// BaseUnit is one of the predefined SBML unit kinds.
type BaseUnit string

const (
	UnitAmpere        BaseUnit = "ampere"
	UnitAvogadro      BaseUnit = "avogadro"
	UnitBecquerel     BaseUnit = "becquerel"
	UnitCandela       BaseUnit = "candela"
	UnitCoulomb       BaseUnit = "coulomb"
	UnitDimensionless BaseUnit = "dimensionless"
	UnitFarad         BaseUnit = "farad"
	UnitGram          BaseUnit = "gram"
	UnitGray          BaseUnit = "gray"
	UnitHenry         BaseUnit = "henry"
	UnitHertz         BaseUnit = "hertz"
	UnitItem          BaseUnit = "item"
	UnitJoule         BaseUnit = "joule"
	UnitKatal         BaseUnit = "katal"
	UnitKelvin        BaseUnit = "kelvin"
	UnitKilogram      BaseUnit = "kilogram"
	UnitLitre         BaseUnit = "litre"
	UnitLumen         BaseUnit = "lumen"
	UnitLux           BaseUnit = "lux"
	UnitMetre         BaseUnit = "metre"
	UnitMole          BaseUnit = "mole"
	UnitNewton        BaseUnit = "newton"
	UnitOhm           BaseUnit = "ohm"
	UnitPascal        BaseUnit = "pascal"
	UnitRadian        BaseUnit = "radian"
	UnitSecond        BaseUnit = "second"
	UnitSiemens       BaseUnit = "siemens"
	UnitSievert       BaseUnit = "sievert"
	UnitSteradian     BaseUnit = "steradian"
	UnitTesla         BaseUnit = "tesla"
	UnitVolt          BaseUnit = "volt"
	UnitWatt          BaseUnit = "watt"
	UnitWeber         BaseUnit = "weber"
)

var baseUnits = map[BaseUnit]bool{
	UnitAmpere: true, UnitAvogadro: true, UnitBecquerel: true,
	UnitCandela: true, UnitCoulomb: true, UnitDimensionless: true,
	UnitFarad: true, UnitGram: true, UnitGray: true, UnitHenry: true,
	UnitHertz: true, UnitItem: true, UnitJoule: true, UnitKatal: true,
	UnitKelvin: true, UnitKilogram: true, UnitLitre: true, UnitLumen: true,
	UnitLux: true, UnitMetre: true, UnitMole: true, UnitNewton: true,
	UnitOhm: true, UnitPascal: true, UnitRadian: true, UnitSecond: true,
	UnitSiemens: true, UnitSievert: true, UnitSteradian: true,
	UnitTesla: true, UnitVolt: true, UnitWatt: true, UnitWeber: true,
}

func NewBaseUnit(value string) (BaseUnit, error) {
	u := BaseUnit(value)
	if !baseUnits[u] {
		return "", fmt.Errorf("%w: %q", ErrInvalidUnitKind, value)
	}
	return u, nil
}

func (u BaseUnit) String() string {
	return string(u)
}

// UnitDefinition names a derived unit built as a product of scaled base
// units.
type UnitDefinition struct {
	sbase
}

func wrapUnitDefinition(e *xmldom.Element) *UnitDefinition {
	return &UnitDefinition{sbase{elem: e}}
}

func NewUnitDefinition(id SId) *UnitDefinition {
	u := &UnitDefinition{newSBase(URLSBMLCore, "unitDefinition")}
	u.ID().Set(id)
	return u
}

func (u *UnitDefinition) Units() OptionalChild[*ListOf[*Unit]] {
	return optionalListChild(u.elem, "listOfUnits", wrapUnit)
}

// Unit is one factor of a unit definition: kind^exponent scaled by
// 10^scale and multiplied by multiplier.
type Unit struct {
	sbase
}

func wrapUnit(e *xmldom.Element) *Unit {
	return &Unit{sbase{elem: e}}
}

func NewUnit(kind BaseUnit) *Unit {
	u := &Unit{newSBase(URLSBMLCore, "unit")}
	u.Kind().Set(kind)
	u.Exponent().Set(1)
	u.Scale().Set(0)
	u.Multiplier().Set(1)
	return u
}

func (u *Unit) Kind() RequiredProperty[BaseUnit] {
	return requiredProperty(u.elem, "kind", baseUnitConv)
}

func (u *Unit) Exponent() RequiredProperty[float64] {
	return requiredProperty(u.elem, "exponent", float64Conv)
}

func (u *Unit) Scale() RequiredProperty[int] {
	return requiredProperty(u.elem, "scale", signedIntConv)
}

func (u *Unit) Multiplier() RequiredProperty[float64] {
	return requiredProperty(u.elem, "multiplier", float64Conv)
}
