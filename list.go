package sbml

import (
	"fmt"

	"github.com/biodivine/go-sbml/xmldom"
)

// ListOf is a typed view over a listOf* container element. Items keep
// document order; indices are valid in [0, Len()).
//
// The container must hold only items of the list's element kind; Validate
// reports anything else.
type ListOf[T Wrapper] struct {
	elem *xmldom.Element
	wrap func(*xmldom.Element) T
}

func (l *ListOf[T]) XMLElement() *xmldom.Element {
	return l.elem
}

func (l *ListOf[T]) Len() int {
	return len(l.elem.Children)
}

func (l *ListOf[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(l.elem.Children) {
		return zero, fmt.Errorf("%w: %d in <%s> of length %d", ErrIndexOutOfRange, i, l.elem.Name, len(l.elem.Children))
	}
	return l.wrap(l.elem.Children[i]), nil
}

// Push appends a detached item at the end of the list.
func (l *ListOf[T]) Push(v T) error {
	return l.elem.AppendChild(v.XMLElement())
}

// InsertAt places a detached item at position i, shifting later items up.
func (l *ListOf[T]) InsertAt(i int, v T) error {
	if i < 0 || i > len(l.elem.Children) {
		return fmt.Errorf("%w: %d in <%s> of length %d", ErrIndexOutOfRange, i, l.elem.Name, len(l.elem.Children))
	}
	return l.elem.InsertChildAt(i, v.XMLElement())
}

// Remove detaches and returns the item at position i.
func (l *ListOf[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(l.elem.Children) {
		return zero, fmt.Errorf("%w: %d in <%s> of length %d", ErrIndexOutOfRange, i, l.elem.Name, len(l.elem.Children))
	}
	e, err := l.elem.RemoveChildAt(i)
	if err != nil {
		return zero, err
	}
	return l.wrap(e), nil
}

// AsSlice returns the current items. The slice is a snapshot; mutating the
// list afterwards does not change it.
func (l *ListOf[T]) AsSlice() []T {
	res := make([]T, len(l.elem.Children))
	for i, c := range l.elem.Children {
		res[i] = l.wrap(c)
	}
	return res
}
