package sbml

import (
	"fmt"
	"io"
	"os"

	"github.com/biodivine/go-sbml/xmldom"
)

// Namespace URLs recognized by this package.
const (
	URLSBMLCore = "http://www.sbml.org/sbml/level3/version2/core"
	URLMathML   = "http://www.w3.org/1998/Math/MathML"
	URLHTML     = "http://www.w3.org/1999/xhtml"
)

// Sbml is the outermost container of an SBML document: the <sbml> element
// with its required level and version attributes and its optional <model>
// child. It owns the whole element tree; views handed out by its accessors
// borrow from that tree and must not be used to outlive it.
type Sbml struct {
	doc  *xmldom.Document
	root *xmldom.Element
}

// ReadPath loads an SBML document from a file. A missing or unreadable
// file, malformed markup or a non-UTF-8 encoding fail with an error
// wrapping ErrLoad.
func ReadPath(path string) (*Sbml, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return read(data)
}

func ReadString(contents string) (*Sbml, error) {
	return read([]byte(contents))
}

func Read(r io.Reader) (*Sbml, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return read(data)
}

func read(data []byte) (*Sbml, error) {
	doc, err := xmldom.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	// A root other than <sbml> still loads; Validate reports it under rule
	// 10102 so that broken documents can be inspected and repaired.
	return &Sbml{doc: doc, root: doc.Root()}, nil
}

// New creates an empty level 3 version 2 document with no model.
func New() *Sbml {
	root := xmldom.NewElement(URLSBMLCore, "sbml")
	root.SetAttr("level", "3")
	root.SetAttr("version", "2")
	return &Sbml{doc: &xmldom.Document{Roots: []*xmldom.Element{root}}, root: root}
}

// Document exposes the raw element tree underneath the typed views.
func (s *Sbml) Document() *xmldom.Document {
	return s.doc
}

// Model returns a handle to the optional <model> child.
func (s *Sbml) Model() OptionalChild[*Model] {
	return optionalChild(s.root, "model", wrapModel)
}

func (s *Sbml) Level() RequiredProperty[int] {
	return requiredProperty(s.root, "level", intConv)
}

func (s *Sbml) Version() RequiredProperty[int] {
	return requiredProperty(s.root, "version", intConv)
}
