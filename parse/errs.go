package parse

import (
	"errors"
	"fmt"

	"github.com/PedroHenriqueFerreira/TableauxSolver/token"
)

var (
	errInternal = errors.New("internal parse error")
	ErrParse    = errors.New("parse error")
)

// SyntaxErr is a parse error with the position it occurred at.
type SyntaxErr struct {
	Err error
	Pos token.Pos
}

func newSyntaxErr(e error, p *token.Pos) *SyntaxErr {
	return &SyntaxErr{Err: fmt.Errorf("%w: %w", ErrParse, e), Pos: *p}
}

func (e *SyntaxErr) Unwrap() error {
	return e.Err
}

func (e *SyntaxErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
