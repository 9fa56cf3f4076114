// Package sequent defines signed formulas and their one-step tableau
// expansion in the Smullyan signed calculus.
package sequent

import (
	"fmt"

	"github.com/PedroHenriqueFerreira/TableauxSolver/formula"
)

// SignedFormula is a formula asserted true (T) or false (F).
type SignedFormula struct {
	Sign    Sign
	Formula *formula.Node
}

func (sf SignedFormula) String() string {
	return sf.Sign.String() + sf.Formula.String()
}

// Size is the length of the formula's canonical string. It is the key
// of the β-selection heuristic.
func (sf SignedFormula) Size() int {
	return sf.Formula.Size()
}

// Conjugate flips the sign keeping the formula identical.
func (sf SignedFormula) Conjugate() SignedFormula {
	return SignedFormula{Sign: sf.Sign.Negate(), Formula: sf.Formula}
}

func (sf SignedFormula) Equal(other SignedFormula) bool {
	return sf.Sign == other.Sign && formula.Equal(sf.Formula, other.Formula)
}

// Kind classifies the signed formula as atom, α or β from its sign and
// root connective:
//
//	sign  root   kind
//	T/F   atom   atom
//	T/F   ¬      α
//	T     &      α        F &    β
//	T     |      β        F |    α
//	T     ->     β        F ->   α
func (sf SignedFormula) Kind() Kind {
	switch sf.Formula.Op {
	case formula.OpAtom:
		return KindAtom
	case formula.OpNot:
		return KindAlpha
	case formula.OpAnd:
		if sf.Sign == T {
			return KindAlpha
		}
		return KindBeta
	case formula.OpOr, formula.OpImpl:
		if sf.Sign == T {
			return KindBeta
		}
		return KindAlpha
	default:
		panic("op")
	}
}

// Expand returns the one-step expansion. For an α both outputs belong
// on the current branch; for a β the first element goes on the current
// branch and the second becomes the pending alternative. Expanding an
// atom is an invariant violation.
func (sf SignedFormula) Expand() []SignedFormula {
	switch sf.Formula.Op {
	case formula.OpNot:
		return []SignedFormula{
			{Sign: sf.Sign.Negate(), Formula: sf.Formula.Left},
		}
	case formula.OpAnd, formula.OpOr:
		return []SignedFormula{
			{Sign: sf.Sign, Formula: sf.Formula.Left},
			{Sign: sf.Sign, Formula: sf.Formula.Right},
		}
	case formula.OpImpl:
		return []SignedFormula{
			{Sign: sf.Sign.Negate(), Formula: sf.Formula.Left},
			{Sign: sf.Sign, Formula: sf.Formula.Right},
		}
	default:
		panic(fmt.Sprintf("expand on %s formula %s", sf.Kind(), sf))
	}
}
