package sequent

import (
	"strings"

	"github.com/PedroHenriqueFerreira/TableauxSolver/formula"
)

// Sequent asserts that the premises entail the conclusion.
type Sequent struct {
	Premises   []*formula.Node
	Conclusion *formula.Node
}

func (s *Sequent) String() string {
	parts := make([]string, len(s.Premises))
	for i, p := range s.Premises {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ") + " ⊢ " + s.Conclusion.String()
}

// Vars returns the distinct atom names across premises and conclusion
// in first-occurrence order.
func (s *Sequent) Vars() []string {
	var res []string
	seen := map[string]bool{}
	add := func(names []string) {
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				res = append(res, n)
			}
		}
	}
	for _, p := range s.Premises {
		add(p.Vars())
	}
	add(s.Conclusion.Vars())
	return res
}
