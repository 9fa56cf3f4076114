package parse

import (
	"testing"

	"github.com/PedroHenriqueFerreira/TableauxSolver/formula"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		`a`,
		`¬a`,
		`¬¬¬x_0`,
		`(a|b)`,
		`(a&b)`,
		`(a->b)`,
		`((a&b)->(c|¬d))`,
		`¬(p->(q&¬r))`,
		`((a->b)&((b->c)->(a->c)))`,
		`(`,
		`)`,
		`¬`,
		`(a|`,
		`a b`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Primary target: parse should not panic
		y, err := Parse(data)
		if err != nil {
			return // parse errors are expected for random input
		}
		// Round trip: the canonical form reparses to an equal tree
		z, err := Parse([]byte(y.String()))
		if err != nil {
			t.Fatalf("canonical form %q does not reparse: %v", y, err)
		}
		if !formula.Equal(y, z) {
			t.Fatalf("round trip changed %q into %q", y, z)
		}
	})
}
