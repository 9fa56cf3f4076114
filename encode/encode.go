// Package encode renders formulas, signed atoms and verdicts.
package encode

import (
	"io"
	"strings"

	"github.com/PedroHenriqueFerreira/TableauxSolver/formula"
	"github.com/PedroHenriqueFerreira/TableauxSolver/sequent"
)

// ValidVerdict is the output literal for a valid sequent.
const ValidVerdict = "Sequente Válido"

type EncState struct {
	Color func(ColorAttr, string) string
}

// Formula writes the canonical form of y.
func Formula(w io.Writer, y *formula.Node, opts ...EncodeOption) error {
	es := newEncState(opts)
	return writeFormula(w, y, es)
}

func writeFormula(w io.Writer, y *formula.Node, es *EncState) error {
	switch y.Op {
	case formula.OpAtom:
		return writeString(w, es.color(AtomColor, y.Name))
	case formula.OpNot:
		if err := writeString(w, es.color(ConnectiveColor, y.Op.Symbol())); err != nil {
			return err
		}
		return writeFormula(w, y.Left, es)
	default:
		if err := writeString(w, es.color(ParenColor, "(")); err != nil {
			return err
		}
		if err := writeFormula(w, y.Left, es); err != nil {
			return err
		}
		if err := writeString(w, es.color(ConnectiveColor, y.Op.Symbol())); err != nil {
			return err
		}
		if err := writeFormula(w, y.Right, es); err != nil {
			return err
		}
		return writeString(w, es.color(ParenColor, ")"))
	}
}

// Signed writes a signed formula as the sign letter followed by the
// canonical form, e.g. T(a->b).
func Signed(w io.Writer, sf sequent.SignedFormula, opts ...EncodeOption) error {
	es := newEncState(opts)
	if err := writeString(w, es.color(SignColor, sf.Sign.String())); err != nil {
		return err
	}
	return writeFormula(w, sf.Formula, es)
}

// Atoms renders signed atoms space-joined, e.g. "Ta Fb".
func Atoms(atoms []sequent.SignedFormula, opts ...EncodeOption) string {
	es := newEncState(opts)
	parts := make([]string, len(atoms))
	for i, sf := range atoms {
		parts[i] = es.color(SignColor, sf.Sign.String()) + es.color(AtomColor, sf.Formula.Name)
	}
	return strings.Join(parts, " ")
}

// Verdict writes the single output line of a run: the validity literal
// or the countermodel's signed atoms.
func Verdict(w io.Writer, valid bool, countermodel []sequent.SignedFormula, opts ...EncodeOption) error {
	es := newEncState(opts)
	body := Atoms(countermodel, opts...)
	if valid {
		body = es.color(VerdictColor, ValidVerdict)
	}
	return writeString(w, "SAÍDA: "+body+"\n")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) color(attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(attr, s)
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es
}
