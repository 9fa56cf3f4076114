// Package oracle provides validity checkers independent of the
// tableau engine: a SAT-based check and brute-force truth tables.
package oracle

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/PedroHenriqueFerreira/TableauxSolver/debug"
	"github.com/PedroHenriqueFerreira/TableauxSolver/formula"
	"github.com/PedroHenriqueFerreira/TableauxSolver/sequent"
)

// satBuilder compiles formulas into a gini circuit, one literal per
// distinct atom name.
type satBuilder struct {
	c    *logic.C
	vars map[string]z.Lit
}

func (b *satBuilder) getVar(name string) z.Lit {
	if lit, ok := b.vars[name]; ok {
		return lit
	}
	lit := b.c.Lit()
	b.vars[name] = lit
	return lit
}

func (b *satBuilder) build(y *formula.Node) z.Lit {
	switch y.Op {
	case formula.OpAtom:
		return b.getVar(y.Name)
	case formula.OpNot:
		return b.build(y.Left).Not()
	case formula.OpAnd:
		return b.c.Ands(b.build(y.Left), b.build(y.Right))
	case formula.OpOr:
		return b.c.Ors(b.build(y.Left), b.build(y.Right))
	case formula.OpImpl:
		return b.c.Ors(b.build(y.Left).Not(), b.build(y.Right))
	default:
		panic("op")
	}
}

// Valid reports whether the premises classically entail the conclusion
// by checking that premises ∧ ¬conclusion is unsatisfiable. When it is
// satisfiable the returned model falsifies the sequent.
func Valid(seq *sequent.Sequent) (bool, map[string]bool) {
	b := &satBuilder{c: logic.NewC(), vars: map[string]z.Lit{}}
	lits := make([]z.Lit, 0, len(seq.Premises)+1)
	for _, p := range seq.Premises {
		lits = append(lits, b.build(p))
	}
	lits = append(lits, b.build(seq.Conclusion).Not())
	m := b.c.Ands(lits...)

	g := gini.New()
	b.c.ToCnf(g)
	g.Assume(m)
	result := g.Solve()
	if debug.Oracle() {
		debug.Logf("sat oracle on %s: %d\n", seq, result)
	}
	if result != 1 {
		return true, nil
	}
	model := map[string]bool{}
	for name, lit := range b.vars {
		model[name] = g.Value(lit)
	}
	return false, model
}
