package sbml

import (
	"github.com/biodivine/go-sbml/xmldom"
)

// sbase carries the attributes and children shared by every SBML element:
// id, name, metaid, sboTerm, notes and annotation.
type sbase struct {
	elem *xmldom.Element
}

func (s *sbase) XMLElement() *xmldom.Element {
	return s.elem
}

func (s *sbase) ID() OptionalProperty[SId] {
	return optionalProperty(s.elem, "id", sidConv)
}

func (s *sbase) Name() OptionalProperty[string] {
	return optionalProperty(s.elem, "name", stringConv)
}

func (s *sbase) MetaID() OptionalProperty[MetaId] {
	return optionalProperty(s.elem, "metaid", metaIdConv)
}

func (s *sbase) SboTerm() OptionalProperty[SboTerm] {
	return optionalProperty(s.elem, "sboTerm", sboTermConv)
}

func (s *sbase) Notes() OptionalChild[*RawElement] {
	return optionalChild(s.elem, "notes", wrapRaw)
}

func (s *sbase) Annotation() OptionalChild[*RawElement] {
	return optionalChild(s.elem, "annotation", wrapRaw)
}

func newSBase(space, name string) sbase {
	return sbase{elem: xmldom.NewElement(space, name)}
}

// RawElement is an untyped view over an element whose content the SBML
// schema leaves open, such as notes and annotation bodies.
type RawElement struct {
	elem *xmldom.Element
}

func (r *RawElement) XMLElement() *xmldom.Element {
	return r.elem
}

func wrapRaw(e *xmldom.Element) *RawElement {
	return &RawElement{elem: e}
}
