package xmldom

// Document owns a parsed tree. A well-formed document has exactly one root,
// but the parser tolerates several so that structural problems can be
// reported by callers instead of vanishing into a parse failure.
type Document struct {
	Roots []*Element
}

// Root returns the first root element, or nil for an empty document.
func (d *Document) Root() *Element {
	if len(d.Roots) == 0 {
		return nil
	}
	return d.Roots[0]
}
