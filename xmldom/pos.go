package xmldom

import (
	"sort"
	"strconv"
)

// Pos is a position in the source document. Line and Col are zero based.
type Pos struct {
	Line int
	Col  int
}

func (p *Pos) String() string {
	if p == nil {
		return "-"
	}
	return strconv.Itoa(p.Line+1) + ":" + strconv.Itoa(p.Col+1)
}

// posDoc maps byte offsets in a source document to line/column pairs.
type posDoc struct {
	n []int // offsets of newlines, ascending
}

func newPosDoc(d []byte) *posDoc {
	p := &posDoc{}
	for i, b := range d {
		if b == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

func (p *posDoc) pos(off int) *Pos {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return &Pos{Line: 0, Col: off}
	}
	return &Pos{Line: di, Col: off - p.n[di-1] - 1}
}
