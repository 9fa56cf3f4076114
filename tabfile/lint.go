package tabfile

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/PedroHenriqueFerreira/TableauxSolver/parse"
	"github.com/PedroHenriqueFerreira/TableauxSolver/token"
)

// Issue is a structural problem in a .tab document, positioned for
// diagnostics. Line and Col are zero-based.
type Issue struct {
	Line int
	Col  int
	Msg  string
}

// Lint collects every structural and parse problem in a .tab document
// instead of stopping at the first, so a language server can report
// them all at once.
func Lint(d []byte) []Issue {
	var issues []Issue
	lines := splitLines(d)
	if len(lines) == 0 {
		return []Issue{{Msg: "empty file: expected a premise count"}}
	}
	n, err := strconv.Atoi(lines[0])
	if err != nil || n < 0 {
		return []Issue{{Msg: fmt.Sprintf("premise count %q is not a non-negative integer", lines[0])}}
	}
	if len(lines) < n+2 {
		issues = append(issues, Issue{
			Msg: fmt.Sprintf("%d premises require at least %d lines, got %d", n, n+2, len(lines)),
		})
		return issues
	}
	check := func(ln int) {
		if _, err := parse.Parse([]byte(lines[ln])); err != nil {
			issues = append(issues, Issue{Line: ln, Col: col(err), Msg: err.Error()})
		}
	}
	for i := 0; i < n; i++ {
		check(i + 1)
	}
	check(len(lines) - 1)
	return issues
}

// col extracts the column of a position-carrying parse or tokenize
// error, zero otherwise.
func col(err error) int {
	var se *parse.SyntaxErr
	if errors.As(err, &se) {
		return se.Pos.Col()
	}
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		return te.Pos.Col()
	}
	return 0
}
