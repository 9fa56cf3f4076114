// Package tableau implements the analytic signed-tableau search
// engine: branch state, α-saturation, β-splitting with an explicit
// backtrack stack, and the closure test.
package tableau

import (
	"fmt"
	"io"
	"strings"

	"github.com/PedroHenriqueFerreira/TableauxSolver/debug"
	"github.com/PedroHenriqueFerreira/TableauxSolver/sequent"
)

// Result is the verdict of a tableau run: every branch closed (Valid)
// or the signed atoms of the first surviving open branch.
type Result struct {
	Valid        bool
	Countermodel []sequent.SignedFormula
}

// frame records an untried β-alternative: when the current branch
// closes, truncate to Size, restore the β-flags to Betas, then append
// Pending.
type frame struct {
	pending sequent.SignedFormula
	size    int
	betas   []bool
}

type atomKey struct {
	sign sequent.Sign
	name string
}

// Prover holds the search state of a single run. The branch and the
// β-flag vector always have equal length; a flag is set iff the entry
// is a β not yet split on the current branch.
type Prover struct {
	branch []sequent.SignedFormula
	betas  []bool
	stack  []frame

	// occurrence counts of signed atoms on the branch, for O(1)
	// closure bookkeeping under truncation
	index map[atomKey]int

	trace io.Writer
}

func New(opts ...Option) *Prover {
	p := &Prover{index: map[atomKey]int{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run seeds the branch with (T, premise) entries and (F, conclusion),
// then searches. A Prover is single-use; Run must be called once.
func (p *Prover) Run(seq *sequent.Sequent) Result {
	for _, prem := range seq.Premises {
		p.append(sequent.SignedFormula{Sign: sequent.T, Formula: prem})
	}
	p.append(sequent.SignedFormula{Sign: sequent.F, Formula: seq.Conclusion})
	p.saturate()
	for {
		p.traceState()
		if p.isClosed() {
			if len(p.stack) == 0 {
				return Result{Valid: true}
			}
			p.backtrack()
			p.saturate()
			continue
		}
		if !p.anyBeta() {
			return Result{Countermodel: p.atoms()}
		}
		p.expandBeta()
		p.saturate()
	}
}

func (p *Prover) append(sf sequent.SignedFormula) {
	p.branch = append(p.branch, sf)
	p.betas = append(p.betas, sf.Kind() == sequent.KindBeta)
	if sf.Kind() == sequent.KindAtom {
		p.index[atomKey{sf.Sign, sf.Formula.Name}]++
	}
}

// remove drops entry i from the branch and the β-flag vector. Only α
// entries are removed (by saturation), so the atom index is untouched.
func (p *Prover) remove(i int) {
	p.branch = append(p.branch[:i], p.branch[i+1:]...)
	p.betas = append(p.betas[:i], p.betas[i+1:]...)
}

func (p *Prover) truncate(n int) {
	for _, sf := range p.branch[n:] {
		if sf.Kind() == sequent.KindAtom {
			p.index[atomKey{sf.Sign, sf.Formula.Name}]--
		}
	}
	p.branch = p.branch[:n]
	p.betas = p.betas[:n]
}

// saturate expands every α on the branch in place. The cursor advances
// past atoms and βs; an α is removed and its expansion appended to the
// tail, so αs produced here are saturated on the same pass.
func (p *Prover) saturate() {
	i := 0
	for i < len(p.branch) {
		sf := p.branch[i]
		if sf.Kind() != sequent.KindAlpha {
			i++
			continue
		}
		for _, out := range sf.Expand() {
			p.append(out)
		}
		p.remove(i)
	}
}

// isClosed reports whether some atom occurs on the branch under both
// signs. Closure is atomic only: compound clashes are unsound before
// full saturation.
func (p *Prover) isClosed() bool {
	for k, n := range p.index {
		if n == 0 || k.sign != sequent.T {
			continue
		}
		if p.index[atomKey{sequent.F, k.name}] > 0 {
			if debug.Closure() {
				debug.Logf("closed on %s\n", k.name)
			}
			return true
		}
	}
	return false
}

func (p *Prover) anyBeta() bool {
	for _, b := range p.betas {
		if b {
			return true
		}
	}
	return false
}

// pickBeta selects the unexpanded β whose formula has the smallest
// canonical string, leftmost on ties (strict < against the current
// best).
func (p *Prover) pickBeta() int {
	best := -1
	for i, b := range p.betas {
		if !b {
			continue
		}
		if best == -1 || p.branch[i].Size() < p.branch[best].Size() {
			best = i
		}
	}
	return best
}

// expandBeta splits on the picked β: the first disjunct extends the
// current branch, the second is pushed with the branch length and a
// snapshot of the β-flags (the picked flag already cleared).
func (p *Prover) expandBeta() {
	i := p.pickBeta()
	sf := p.branch[i]
	p.betas[i] = false
	outs := sf.Expand()
	snap := make([]bool, len(p.betas))
	copy(snap, p.betas)
	p.stack = append(p.stack, frame{pending: outs[1], size: len(p.branch), betas: snap})
	p.append(outs[0])
	if debug.Pick() {
		debug.Logf("split on %s\n", sf)
	}
}

// backtrack pops the top frame, truncates the branch, restores the
// β-flags seen at split time and appends the pending alternative.
func (p *Prover) backtrack() {
	fr := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.truncate(fr.size)
	copy(p.betas, fr.betas[:fr.size])
	p.append(fr.pending)
	if debug.Stack() {
		debug.Logf("backtrack to %d with %s\n", fr.size, fr.pending)
	}
}

// atoms returns the signed atoms on the branch in first-occurrence
// order, duplicates collapsed.
func (p *Prover) atoms() []sequent.SignedFormula {
	seen := map[atomKey]bool{}
	var res []sequent.SignedFormula
	for _, sf := range p.branch {
		if sf.Kind() != sequent.KindAtom {
			continue
		}
		k := atomKey{sf.Sign, sf.Formula.Name}
		if seen[k] {
			continue
		}
		seen[k] = true
		res = append(res, sf)
	}
	return res
}

func (p *Prover) traceState() {
	if p.trace == nil {
		if debug.Branch() {
			debug.Logf("RAMO: %s\n", p.branchString())
		}
		return
	}
	fmt.Fprintf(p.trace, "RAMO: %s\n", p.branchString())
	fmt.Fprintf(p.trace, "BETAS: %s\n", p.betasString())
	fmt.Fprintf(p.trace, "PILHA: %s\n", p.stackString())
	fmt.Fprintf(p.trace, "FECHADO: %v\n", p.isClosed())
	fmt.Fprintln(p.trace, strings.Repeat("-", 50))
}

func (p *Prover) branchString() string {
	parts := make([]string, len(p.branch))
	for i, sf := range p.branch {
		parts[i] = sf.String()
	}
	return strings.Join(parts, " ")
}

func (p *Prover) betasString() string {
	var sb strings.Builder
	for _, b := range p.betas {
		if b {
			sb.WriteString("β")
		} else {
			sb.WriteString("-")
		}
	}
	return sb.String()
}

func (p *Prover) stackString() string {
	parts := make([]string, len(p.stack))
	for i, fr := range p.stack {
		parts[i] = fmt.Sprintf("%s:%d", fr.pending, fr.size)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
