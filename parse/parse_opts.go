package parse

import (
	"github.com/PedroHenriqueFerreira/TableauxSolver/formula"
	"github.com/PedroHenriqueFerreira/TableauxSolver/token"
)

type parseOpts struct {
	positions map[*formula.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParsePositions records, for each parsed node, the position of its
// first token. Consumers such as the language server use this to map
// nodes back to source ranges.
func ParsePositions(m map[*formula.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*formula.Node]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
