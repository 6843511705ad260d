package sbml

import (
	"fmt"

	"github.com/biodivine/go-sbml/xmldom"
)

// Wrapper is implemented by every typed view over an underlying XML element.
type Wrapper interface {
	XMLElement() *xmldom.Element
}

// OptionalChild is a handle to a singleton child element that the document
// instance may omit. Absence is represented, not raised: Get is the point
// at which absence becomes an error.
type OptionalChild[T Wrapper] struct {
	parent *xmldom.Element
	name   string
	space  string
	wrap   func(*xmldom.Element) T
}

func (c OptionalChild[T]) Name() string {
	return c.name
}

func (c OptionalChild[T]) IsPresent() bool {
	return c.parent.Child(c.space, c.name) != nil
}

func (c OptionalChild[T]) Get() (T, error) {
	var zero T
	e := c.parent.Child(c.space, c.name)
	if e == nil {
		return zero, fmt.Errorf("%w: <%s> in %s", ErrAbsentChild, c.name, c.parent.Path())
	}
	return c.wrap(e), nil
}

// GetOrCreate returns the child, creating an empty one when absent.
func (c OptionalChild[T]) GetOrCreate() T {
	e := c.parent.Child(c.space, c.name)
	if e == nil {
		e = xmldom.NewElement(c.space, c.name)
		c.parent.AppendChild(e)
	}
	return c.wrap(e)
}

// Set replaces the child with the given detached element, removing any
// existing one.
func (c OptionalChild[T]) Set(v T) error {
	e := v.XMLElement()
	if e.Parent != nil {
		return fmt.Errorf("%w: <%s>", xmldom.ErrAttached, e.Name)
	}
	c.Clear()
	return c.parent.AppendChild(e)
}

// Clear detaches the child if present and reports whether it was there.
func (c OptionalChild[T]) Clear() bool {
	e := c.parent.Child(c.space, c.name)
	if e == nil {
		return false
	}
	e.Detach()
	return true
}

func optionalChild[T Wrapper](parent *xmldom.Element, name string, wrap func(*xmldom.Element) T) OptionalChild[T] {
	return OptionalChild[T]{parent: parent, name: name, space: URLSBMLCore, wrap: wrap}
}

func optionalListChild[T Wrapper](parent *xmldom.Element, name string, wrap func(*xmldom.Element) T) OptionalChild[*ListOf[T]] {
	return OptionalChild[*ListOf[T]]{
		parent: parent,
		name:   name,
		space:  URLSBMLCore,
		wrap: func(e *xmldom.Element) *ListOf[T] {
			return &ListOf[T]{elem: e, wrap: wrap}
		},
	}
}
