// Package xmldom provides a mutable in-memory XML document tree.
//
// # Usage
//
//	// Parse an XML document
//	doc, err := xmldom.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// Navigate and mutate
//	root := doc.Root()
//	model := root.Child(ns, "model")
//	model.SetAttr("id", "m1")
//
// The tree preserves element order, attribute order and character data.
// Namespace prefixes are resolved to namespace URLs during parsing; elements
// and attributes carry the resolved URL in their Space field.
//
// Each element records its line and column in the source when position
// tracking is enabled (the default), which is used for diagnostics.
//
// Mutation never reaches back to the parsed source: the tree is an
// independent copy, and the package offers no way to write it out.
package xmldom
