package token

import (
	"fmt"
	"sort"
)

// PosDoc maps byte offsets in a source document to line/column pairs.
type PosDoc struct {
	d []byte
	n []int // offsets of '\n' in d, ascending
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

// LineCol returns the zero-based line and column of a byte offset.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{I: i, D: p}
}

func (p *PosDoc) end() *Pos {
	return p.Pos(len(p.d))
}

// Pos is a byte offset into a document, resolvable to line/column.
type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) Line() int {
	ln, _ := p.D.LineCol(p.I)
	return ln
}

func (p *Pos) Col() int {
	_, col := p.D.LineCol(p.I)
	return col
}

func (p *Pos) String() string {
	ln, col := p.D.LineCol(p.I)
	return fmt.Sprintf("%d:%d", ln+1, col+1)
}
