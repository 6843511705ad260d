package xmldom

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/biodivine/go-sbml/debug"
)

type ParseOption func(*parseOpts)

type parseOpts struct {
	noPositions bool
}

// WithoutPositions disables per-element source position tracking.
func WithoutPositions() ParseOption {
	return func(o *parseOpts) { o.noPositions = true }
}

func ParseString(s string, opts ...ParseOption) (*Document, error) {
	return Parse([]byte(s), opts...)
}

func ParseReader(r io.Reader, opts ...ParseOption) (*Document, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return Parse(d, opts...)
}

// Parse reads a complete XML document into a Document tree. The input must
// be UTF-8; documents that declare another encoding fail with ErrEncoding.
func Parse(d []byte, opts ...ParseOption) (*Document, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if !utf8.Valid(d) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrEncoding)
	}

	var pd *posDoc
	if !pOpts.noPositions {
		pd = newPosDoc(d)
	}
	dec := xml.NewDecoder(bytes.NewReader(d))
	dec.Strict = true

	doc := &Document{}
	var cur *Element
	for {
		off := int(dec.InputOffset())
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			if isEncodingErr(err) {
				return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
			}
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			e := &Element{
				Space: t.Name.Space,
				Name:  t.Name.Local,
				Attrs: fromXMLAttrs(t.Attr),
			}
			if pd != nil {
				e.Pos = pd.pos(off)
			}
			if cur == nil {
				doc.Roots = append(doc.Roots, e)
			} else {
				cur.AppendChild(e)
			}
			cur = e
		case xml.EndElement:
			if cur == nil {
				return nil, fmt.Errorf("%w: unexpected </%s>", ErrParse, t.Name.Local)
			}
			cur = cur.Parent
		case xml.CharData:
			if cur != nil {
				cur.Text += string(t)
			}
		case xml.Comment, xml.ProcInst, xml.Directive:
			// not represented in the tree
		}
	}
	if cur != nil {
		return nil, fmt.Errorf("%w: unterminated <%s>", ErrParse, cur.Name)
	}
	if len(doc.Roots) == 0 {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}
	if debug.Parse() {
		debug.Logf("parsed document with %d root(s), first <%s> ns %q\n",
			len(doc.Roots), doc.Roots[0].Name, doc.Roots[0].Space)
	}
	return doc, nil
}

func fromXMLAttrs(attrs []xml.Attr) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	res := make([]Attr, len(attrs))
	for i, a := range attrs {
		res[i] = Attr{Space: a.Name.Space, Name: a.Name.Local, Value: a.Value}
	}
	return res
}

// isEncodingErr recognizes decoder failures caused by a non-UTF-8 encoding
// declaration. The decoder has no CharsetReader, so such documents are
// rejected rather than transcoded.
func isEncodingErr(err error) bool {
	var syn *xml.SyntaxError
	if errors.As(err, &syn) {
		return strings.Contains(syn.Msg, "encoding")
	}
	return strings.Contains(err.Error(), "CharsetReader")
}
