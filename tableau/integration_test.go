package tableau

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PedroHenriqueFerreira/TableauxSolver/encode"
	"github.com/PedroHenriqueFerreira/TableauxSolver/tabfile"
)

// End to end: file contents through loading, the engine and the
// verdict line.
func TestFileToVerdict(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string // exact line, or "" when checked as a set below
		atoms   []string
	}{
		{"modus ponens", "2\n(a->b)\na\nb\n", "SAÍDA: Sequente Válido\n", nil},
		{"or to and", "1\n(a|b)\n(a&b)\n", "", []string{"Ta Fb", "Fa Tb"}},
		{"double negation", "1\na\n¬¬a\n", "SAÍDA: Sequente Válido\n", nil},
		{"excluded middle", "0\n(a|¬a)\n", "SAÍDA: Sequente Válido\n", nil},
		{"chain", "2\n(a->b)\n(b->c)\n(a->c)\n", "SAÍDA: Sequente Válido\n", nil},
		{"and to or", "1\n(a&b)\n(a|c)\n", "SAÍDA: Sequente Válido\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "in.tab")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			seq, err := tabfile.Load(path)
			if err != nil {
				t.Fatal(err)
			}
			res := New().Run(seq)
			var buf bytes.Buffer
			if err := encode.Verdict(&buf, res.Valid, res.Countermodel); err != nil {
				t.Fatal(err)
			}
			got := buf.String()
			if tt.want != "" {
				if got != tt.want {
					t.Errorf("got %q, want %q", got, tt.want)
				}
				return
			}
			body := strings.TrimSuffix(strings.TrimPrefix(got, "SAÍDA: "), "\n")
			set := map[string]bool{}
			for _, tok := range strings.Fields(body) {
				set[tok] = true
			}
			for _, want := range tt.atoms {
				wantSet := map[string]bool{}
				for _, tok := range strings.Fields(want) {
					wantSet[tok] = true
				}
				if len(wantSet) == len(set) {
					all := true
					for tok := range wantSet {
						if !set[tok] {
							all = false
							break
						}
					}
					if all {
						return
					}
				}
			}
			t.Errorf("countermodel %q matches none of %v", body, tt.atoms)
		})
	}
}
