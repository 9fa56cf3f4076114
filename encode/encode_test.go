package encode

import (
	"bytes"
	"testing"

	"github.com/PedroHenriqueFerreira/TableauxSolver/formula"
	"github.com/PedroHenriqueFerreira/TableauxSolver/sequent"
)

func TestFormula(t *testing.T) {
	y := formula.Impl(formula.And(formula.Atom("a"), formula.Atom("b")), formula.Not(formula.Atom("c")))
	var buf bytes.Buffer
	if err := Formula(&buf, y); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "((a&b)->¬c)" {
		t.Errorf("got %q", got)
	}
}

func TestSigned(t *testing.T) {
	sf := sequent.SignedFormula{Sign: sequent.F, Formula: formula.Or(formula.Atom("a"), formula.Atom("b"))}
	var buf bytes.Buffer
	if err := Signed(&buf, sf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "F(a|b)" {
		t.Errorf("got %q", got)
	}
}

func TestVerdict(t *testing.T) {
	var buf bytes.Buffer
	if err := Verdict(&buf, true, nil); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "SAÍDA: Sequente Válido\n" {
		t.Errorf("got %q", got)
	}

	buf.Reset()
	model := []sequent.SignedFormula{
		{Sign: sequent.T, Formula: formula.Atom("a")},
		{Sign: sequent.F, Formula: formula.Atom("b")},
	}
	if err := Verdict(&buf, false, model); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "SAÍDA: Ta Fb\n" {
		t.Errorf("got %q", got)
	}
}

// Colored rendering carries the same text, only wrapped in escapes.
func TestColors(t *testing.T) {
	c := NewColors()
	if got := c.Color(AtomColor, "a"); !bytes.Contains([]byte(got), []byte("a")) {
		t.Errorf("colored atom %q lost its text", got)
	}
}
