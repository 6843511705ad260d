package sbml

import (
	"fmt"
	"strconv"

	"github.com/biodivine/go-sbml/xmldom"
)

// conv converts between attribute text and a typed value.
type conv[T any] struct {
	parse func(string) (T, error)
	write func(T) string
}

var (
	stringConv = conv[string]{
		parse: func(s string) (string, error) { return s, nil },
		write: func(v string) string { return v },
	}
	boolConv = conv[bool]{
		parse: strconv.ParseBool,
		write: strconv.FormatBool,
	}
	intConv = conv[int]{
		parse: func(s string) (int, error) {
			v, err := strconv.ParseUint(s, 10, 31)
			return int(v), err
		},
		write: strconv.Itoa,
	}
	signedIntConv = conv[int]{
		parse: strconv.Atoi,
		write: strconv.Itoa,
	}
	float64Conv = conv[float64]{
		parse: func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
		write: func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
	}
	sidConv = conv[SId]{
		parse: NewSId,
		write: SId.String,
	}
	metaIdConv = conv[MetaId]{
		parse: NewMetaId,
		write: MetaId.String,
	}
	sboTermConv = conv[SboTerm]{
		parse: NewSboTerm,
		write: SboTerm.String,
	}
	baseUnitConv = conv[BaseUnit]{
		parse: NewBaseUnit,
		write: BaseUnit.String,
	}
)

// RequiredProperty is a handle to an attribute the schema requires. Reading
// a missing or malformed attribute is an error; Set writes through to the
// underlying document so the value is immediately visible to every handle
// on the same element.
type RequiredProperty[T any] struct {
	elem *xmldom.Element
	name string
	conv conv[T]
}

func (p RequiredProperty[T]) Name() string {
	return p.name
}

func (p RequiredProperty[T]) Get() (T, error) {
	var zero T
	raw, ok := p.elem.Attr(p.name)
	if !ok {
		return zero, fmt.Errorf("%w: %s on %s", ErrMissingAttribute, p.name, p.elem.Path())
	}
	v, err := p.conv.parse(raw)
	if err != nil {
		return zero, fmt.Errorf("%w: %s=%q on %s: %v", ErrBadAttribute, p.name, raw, p.elem.Path(), err)
	}
	return v, nil
}

func (p RequiredProperty[T]) Set(v T) {
	p.elem.SetAttr(p.name, p.conv.write(v))
}

// OptionalProperty is a handle to an attribute that may be absent. A value
// that is present but malformed reads as absent; Validate reports such
// values with the appropriate rule.
type OptionalProperty[T any] struct {
	elem *xmldom.Element
	name string
	conv conv[T]
}

func (p OptionalProperty[T]) Name() string {
	return p.name
}

func (p OptionalProperty[T]) IsSet() bool {
	_, ok := p.elem.Attr(p.name)
	return ok
}

func (p OptionalProperty[T]) Get() (T, bool) {
	var zero T
	raw, ok := p.elem.Attr(p.name)
	if !ok {
		return zero, false
	}
	v, err := p.conv.parse(raw)
	if err != nil {
		return zero, false
	}
	return v, true
}

// Raw returns the attribute text without conversion.
func (p OptionalProperty[T]) Raw() (string, bool) {
	return p.elem.Attr(p.name)
}

func (p OptionalProperty[T]) Set(v T) {
	p.elem.SetAttr(p.name, p.conv.write(v))
}

func (p OptionalProperty[T]) Clear() {
	p.elem.RemoveAttr(p.name)
}

func requiredProperty[T any](elem *xmldom.Element, name string, c conv[T]) RequiredProperty[T] {
	return RequiredProperty[T]{elem: elem, name: name, conv: c}
}

func optionalProperty[T any](elem *xmldom.Element, name string, c conv[T]) OptionalProperty[T] {
	return OptionalProperty[T]{elem: elem, name: name, conv: c}
}
