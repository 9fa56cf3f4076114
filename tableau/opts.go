package tableau

import "io"

type Option func(*Prover)

// WithTrace writes a step-by-step dump of branch, β-flags, stack and
// closure state at each iteration of the main loop.
func WithTrace(w io.Writer) Option {
	return func(p *Prover) { p.trace = w }
}
