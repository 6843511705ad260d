package xmldom

import (
	"fmt"
	"strconv"
)

// Attr is a single XML attribute. Space holds the resolved namespace URL and
// is empty for unprefixed attributes. Namespace declarations (xmlns, xmlns:*)
// are kept as ordinary attributes so a parsed tree remembers them.
type Attr struct {
	Space string
	Name  string
	Value string
}

// Element is a node in the document tree.
//
// Parent and ParentIndex are maintained by the mutation methods; code outside
// this package should treat them as read-only.
type Element struct {
	Space string
	Name  string
	Attrs []Attr

	Parent      *Element
	ParentIndex int
	Children    []*Element

	// Text is the concatenated character data directly inside this element.
	Text string

	// Pos is the element's position in the parsed source, nil for elements
	// created programmatically.
	Pos *Pos
}

// NewElement creates a detached element in the given namespace.
func NewElement(space, name string) *Element {
	return &Element{Space: space, Name: name}
}

// Attr returns the value of the unprefixed attribute with the given name.
func (e *Element) Attr(name string) (string, bool) {
	return e.AttrNS("", name)
}

// AttrNS returns the value of the attribute with the given namespace URL
// and name.
func (e *Element) AttrNS(space, name string) (string, bool) {
	for i := range e.Attrs {
		a := &e.Attrs[i]
		if a.Space == space && a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the unprefixed attribute with the given name, replacing an
// existing value and otherwise appending in attribute order.
func (e *Element) SetAttr(name, value string) {
	e.SetAttrNS("", name, value)
}

func (e *Element) SetAttrNS(space, name, value string) {
	for i := range e.Attrs {
		a := &e.Attrs[i]
		if a.Space == space && a.Name == name {
			a.Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Space: space, Name: name, Value: value})
}

// RemoveAttr removes the unprefixed attribute with the given name and
// reports whether it was present.
func (e *Element) RemoveAttr(name string) bool {
	for i := range e.Attrs {
		a := &e.Attrs[i]
		if a.Space == "" && a.Name == name {
			e.Attrs = append(e.Attrs[:i], e.Attrs[i+1:]...)
			return true
		}
	}
	return false
}

// Child returns the first child with the given namespace URL and name, or
// nil if there is none.
func (e *Element) Child(space, name string) *Element {
	for _, c := range e.Children {
		if c.Space == space && c.Name == name {
			return c
		}
	}
	return nil
}

// AppendChild attaches a detached element as the last child of e.
func (e *Element) AppendChild(c *Element) error {
	if c.Parent != nil {
		return fmt.Errorf("%w: <%s>", ErrAttached, c.Name)
	}
	c.Parent = e
	c.ParentIndex = len(e.Children)
	e.Children = append(e.Children, c)
	return nil
}

// InsertChildAt attaches a detached element at position i among the
// children of e, shifting later children up.
func (e *Element) InsertChildAt(i int, c *Element) error {
	if c.Parent != nil {
		return fmt.Errorf("%w: <%s>", ErrAttached, c.Name)
	}
	if i < 0 || i > len(e.Children) {
		return fmt.Errorf("%w: index %d with %d children", ErrNoChild, i, len(e.Children))
	}
	e.Children = append(e.Children, nil)
	copy(e.Children[i+1:], e.Children[i:])
	e.Children[i] = c
	c.Parent = e
	e.reindex(i)
	return nil
}

// RemoveChildAt detaches and returns the child at position i.
func (e *Element) RemoveChildAt(i int) (*Element, error) {
	if i < 0 || i >= len(e.Children) {
		return nil, fmt.Errorf("%w: index %d with %d children", ErrNoChild, i, len(e.Children))
	}
	c := e.Children[i]
	e.Children = append(e.Children[:i], e.Children[i+1:]...)
	c.Parent = nil
	c.ParentIndex = 0
	e.reindex(i)
	return c, nil
}

// Detach removes e from its parent. Detaching a root is a no-op.
func (e *Element) Detach() {
	p := e.Parent
	if p == nil {
		return
	}
	p.RemoveChildAt(e.ParentIndex)
}

func (e *Element) reindex(from int) {
	for i := from; i < len(e.Children); i++ {
		e.Children[i].ParentIndex = i
	}
}

// Visit walks the subtree rooted at e. f is called before and after each
// element's children (isPost false, then true); returning false from the
// pre-order call skips the children.
func (e *Element) Visit(f func(e *Element, isPost bool) (bool, error)) error {
	dive, err := f(e, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range e.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(e, true); err != nil {
		return err
	}
	return nil
}

// Path returns the document path of e, e.g.
// "/sbml/model/listOfParameters/parameter[1]". An index segment appears only
// when the parent has more than one child with the same name; indices are
// zero based and count same-named siblings.
func (e *Element) Path() string {
	if e.Parent == nil {
		return "/" + e.Name
	}
	seg := e.Name
	same, nth := 0, 0
	for i, c := range e.Parent.Children {
		if c.Name != e.Name || c.Space != e.Space {
			continue
		}
		if i < e.ParentIndex {
			nth++
		}
		same++
	}
	if same > 1 {
		seg += "[" + strconv.Itoa(nth) + "]"
	}
	return e.Parent.Path() + "/" + seg
}

// Root returns the topmost ancestor of e.
func (e *Element) Root() *Element {
	res := e
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
