package xmldom

import (
	"errors"
	"testing"
)

func TestAttrs(t *testing.T) {
	e := NewElement("", "parameter")
	if _, ok := e.Attr("id"); ok {
		t.Fatal("attr present on fresh element")
	}
	e.SetAttr("id", "k1")
	e.SetAttr("constant", "true")
	if v, ok := e.Attr("id"); !ok || v != "k1" {
		t.Errorf("id %q/%v", v, ok)
	}
	e.SetAttr("id", "k2")
	if v, _ := e.Attr("id"); v != "k2" {
		t.Errorf("id after overwrite %q", v)
	}
	if len(e.Attrs) != 2 {
		t.Errorf("attr count %d after overwrite", len(e.Attrs))
	}
	if !e.RemoveAttr("id") {
		t.Error("remove reported absent")
	}
	if e.RemoveAttr("id") {
		t.Error("second remove reported present")
	}
}

func TestChildMutation(t *testing.T) {
	l := NewElement("", "listOfParameters")
	a := NewElement("", "parameter")
	b := NewElement("", "parameter")
	c := NewElement("", "parameter")
	if err := l.AppendChild(a); err != nil {
		t.Fatal(err)
	}
	if err := l.AppendChild(c); err != nil {
		t.Fatal(err)
	}
	if err := l.InsertChildAt(1, b); err != nil {
		t.Fatal(err)
	}
	for i, want := range []*Element{a, b, c} {
		if l.Children[i] != want {
			t.Fatalf("child %d misplaced", i)
		}
		if want.ParentIndex != i || want.Parent != l {
			t.Fatalf("child %d bookkeeping wrong", i)
		}
	}
	if err := l.AppendChild(a); !errors.Is(err, ErrAttached) {
		t.Errorf("re-append: %v", err)
	}

	got, err := l.RemoveChildAt(1)
	if err != nil {
		t.Fatal(err)
	}
	if got != b || b.Parent != nil {
		t.Error("removed child not detached")
	}
	if c.ParentIndex != 1 {
		t.Errorf("reindex after removal: %d", c.ParentIndex)
	}

	c.Detach()
	if len(l.Children) != 1 || c.Parent != nil {
		t.Error("detach failed")
	}

	if _, err := l.RemoveChildAt(5); !errors.Is(err, ErrNoChild) {
		t.Errorf("out of range removal: %v", err)
	}
}

func TestPath(t *testing.T) {
	doc, err := ParseString(`<sbml><model><listOfParameters><parameter id="a"/><parameter id="b"/></listOfParameters></model></sbml>`)
	if err != nil {
		t.Fatal(err)
	}
	list := doc.Root().Children[0].Children[0]
	tests := []struct {
		name string
		e    *Element
		want string
	}{
		{"root", doc.Root(), "/sbml"},
		{"list", list, "/sbml/model/listOfParameters"},
		{"first of several", list.Children[0], "/sbml/model/listOfParameters/parameter[0]"},
		{"second of several", list.Children[1], "/sbml/model/listOfParameters/parameter[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Path(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVisit(t *testing.T) {
	doc, err := ParseString(`<a><b><c/></b><d/></a>`)
	if err != nil {
		t.Fatal(err)
	}
	var pre, post []string
	err = doc.Root().Visit(func(e *Element, isPost bool) (bool, error) {
		if isPost {
			post = append(post, e.Name)
		} else {
			pre = append(pre, e.Name)
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	wantPre := []string{"a", "b", "c", "d"}
	wantPost := []string{"c", "b", "d", "a"}
	for i := range wantPre {
		if pre[i] != wantPre[i] {
			t.Fatalf("pre order %v", pre)
		}
	}
	for i := range wantPost {
		if post[i] != wantPost[i] {
			t.Fatalf("post order %v", post)
		}
	}

	// skipping children
	var seen []string
	doc.Root().Visit(func(e *Element, isPost bool) (bool, error) {
		if !isPost {
			seen = append(seen, e.Name)
		}
		return e.Name != "b", nil
	})
	for _, n := range seen {
		if n == "c" {
			t.Error("descended into skipped subtree")
		}
	}
}

func TestRoot(t *testing.T) {
	doc, err := ParseString(`<a><b><c/></b></a>`)
	if err != nil {
		t.Fatal(err)
	}
	c := doc.Root().Children[0].Children[0]
	if c.Root() != doc.Root() {
		t.Error("Root did not reach the top")
	}
}
