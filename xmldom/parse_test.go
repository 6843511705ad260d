package xmldom

import (
	"errors"
	"testing"
)

const sbmlNS = "http://www.sbml.org/sbml/level3/version2/core"

func TestParseOK(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{
			name: "single empty root",
			in:   `<sbml/>`,
		},
		{
			name: "declaration and nesting",
			in: `<?xml version="1.0" encoding="UTF-8"?>
<sbml><model id="m1"/></sbml>`,
		},
		{
			name: "text content",
			in:   `<notes>hello</notes>`,
		},
		{
			name: "comment skipped",
			in:   `<a><!-- note --><b/></a>`,
		},
		{
			name: "multiple roots tolerated",
			in:   `<a/><b/>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseString(tt.in); err != nil {
				t.Fatalf("parse: %v", err)
			}
		})
	}
}

func TestParseErr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		e    error
	}{
		{
			name: "empty document",
			in:   ``,
			e:    ErrParse,
		},
		{
			name: "unterminated element",
			in:   `<a><b></b>`,
			e:    ErrParse,
		},
		{
			name: "mismatched close",
			in:   `<a></b>`,
			e:    ErrParse,
		},
		{
			name: "bad utf8",
			in:   "<a>\xff\xfe</a>",
			e:    ErrEncoding,
		},
		{
			name: "declared non-utf8 encoding",
			in:   `<?xml version="1.0" encoding="ISO-8859-1"?><a/>`,
			e:    ErrEncoding,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.e) {
				t.Fatalf("got %v, want %v", err, tt.e)
			}
		})
	}
}

func TestParseNamespaces(t *testing.T) {
	in := `<sbml xmlns="` + sbmlNS + `" level="3" version="2">
  <model id="m1"/>
</sbml>`
	doc, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	root := doc.Root()
	if root.Space != sbmlNS {
		t.Errorf("root space %q, want %q", root.Space, sbmlNS)
	}
	if v, ok := root.Attr("level"); !ok || v != "3" {
		t.Errorf("level attr %q/%v", v, ok)
	}
	model := root.Child(sbmlNS, "model")
	if model == nil {
		t.Fatal("no model child")
	}
	if v, ok := model.Attr("id"); !ok || v != "m1" {
		t.Errorf("model id %q/%v", v, ok)
	}
}

func TestParseOrderAndParents(t *testing.T) {
	doc, err := ParseString(`<l><p id="a"/><p id="b"/><p id="c"/></l>`)
	if err != nil {
		t.Fatal(err)
	}
	root := doc.Root()
	if len(root.Children) != 3 {
		t.Fatalf("got %d children", len(root.Children))
	}
	want := []string{"a", "b", "c"}
	for i, c := range root.Children {
		id, _ := c.Attr("id")
		if id != want[i] {
			t.Errorf("child %d id %q, want %q", i, id, want[i])
		}
		if c.Parent != root || c.ParentIndex != i {
			t.Errorf("child %d parent bookkeeping wrong", i)
		}
	}
}

func TestParsePositions(t *testing.T) {
	doc, err := ParseString("<a>\n  <b/>\n</a>")
	if err != nil {
		t.Fatal(err)
	}
	root := doc.Root()
	if root.Pos == nil || root.Pos.Line != 0 {
		t.Errorf("root pos %v", root.Pos)
	}
	b := root.Children[0]
	if b.Pos == nil || b.Pos.Line != 1 {
		t.Errorf("b pos %v", b.Pos)
	}
	doc, err = ParseString("<a/>", WithoutPositions())
	if err != nil {
		t.Fatal(err)
	}
	if doc.Root().Pos != nil {
		t.Error("positions tracked despite WithoutPositions")
	}
}
