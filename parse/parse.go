// Package parse provides formula parsing support.
//
// The accepted grammar is
//
//	expr = var | "¬" expr | "(" expr op expr ")"
//	op   = "|" | "&" | "->"
//	var  = [a-z][a-z0-9_]*
//
// Parentheses are mandatory around every binary connective and
// negation binds tightly.
package parse

import (
	"fmt"

	"github.com/PedroHenriqueFerreira/TableauxSolver/formula"
	"github.com/PedroHenriqueFerreira/TableauxSolver/token"
)

func Parse(d []byte, opts ...ParseOption) (*formula.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	eof := token.NewPosDoc(d).Pos(len(d))
	if len(toks) == 0 {
		return nil, newSyntaxErr(fmt.Errorf("empty formula"), eof)
	}
	off := 0
	res, err := parseExpr(toks, &off, eof, pOpts)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		return nil, newSyntaxErr(fmt.Errorf("trailing %s", toks[off].Info()), toks[off].Pos)
	}
	return res, nil
}

func trackPos(node *formula.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
}

func parseExpr(toks []token.Token, pi *int, eof *token.Pos, opts *parseOpts) (*formula.Node, error) {
	if *pi >= len(toks) {
		return nil, newSyntaxErr(fmt.Errorf("unexpected end of formula"), eof)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TVar:
		*pi++
		y := formula.Atom(t.String())
		trackPos(y, t.Pos, opts)
		return y, nil
	case token.TNeg:
		pos := t.Pos
		*pi++
		child, err := parseExpr(toks, pi, eof, opts)
		if err != nil {
			return nil, err
		}
		y := formula.Not(child)
		trackPos(y, pos, opts)
		return y, nil
	case token.TLParen:
		pos := t.Pos
		*pi++
		left, err := parseExpr(toks, pi, eof, opts)
		if err != nil {
			return nil, err
		}
		op, err := parseOp(toks, pi, eof)
		if err != nil {
			return nil, err
		}
		right, err := parseExpr(toks, pi, eof, opts)
		if err != nil {
			return nil, err
		}
		if *pi >= len(toks) {
			return nil, newSyntaxErr(fmt.Errorf("unbalanced '('"), eof)
		}
		if toks[*pi].Type != token.TRParen {
			return nil, newSyntaxErr(fmt.Errorf("expected ')', got %s", toks[*pi].Info()), toks[*pi].Pos)
		}
		*pi++
		y := binary(op, left, right)
		trackPos(y, pos, opts)
		return y, nil
	default:
		return nil, newSyntaxErr(fmt.Errorf("unexpected %s", t.Info()), t.Pos)
	}
}

func parseOp(toks []token.Token, pi *int, eof *token.Pos) (token.TokenType, error) {
	if *pi >= len(toks) {
		return 0, newSyntaxErr(fmt.Errorf("expected operator"), eof)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TAnd, token.TOr, token.TImpl:
		*pi++
		return t.Type, nil
	default:
		return 0, newSyntaxErr(fmt.Errorf("expected operator, got %s", t.Info()), t.Pos)
	}
}

func binary(op token.TokenType, l, r *formula.Node) *formula.Node {
	switch op {
	case token.TAnd:
		return formula.And(l, r)
	case token.TOr:
		return formula.Or(l, r)
	case token.TImpl:
		return formula.Impl(l, r)
	default:
		panic(errInternal)
	}
}
