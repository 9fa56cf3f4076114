// Package tabfile loads sequent input files.
//
// A .tab file is UTF-8 text: line 1 holds the premise count n, lines 2
// through n+1 the premises, and the last line the conclusion. Lines in
// between are ignored and trailing whitespace is stripped.
package tabfile

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/PedroHenriqueFerreira/TableauxSolver/formula"
	"github.com/PedroHenriqueFerreira/TableauxSolver/parse"
	"github.com/PedroHenriqueFerreira/TableauxSolver/sequent"
)

var ErrInput = errors.New("invalid input file")

func Load(path string) (*sequent.Sequent, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}
	seq, err := Decode(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}

// Decode parses the contents of a .tab file.
func Decode(d []byte) (*sequent.Sequent, error) {
	lines := splitLines(d)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInput)
	}
	n, err := strconv.Atoi(lines[0])
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: line 1: premise count %q is not a non-negative integer", ErrInput, lines[0])
	}
	if len(lines) < n+2 {
		return nil, fmt.Errorf("%w: %d premises require at least %d lines, got %d", ErrInput, n, n+2, len(lines))
	}
	premises := make([]*formula.Node, n)
	for i := 0; i < n; i++ {
		y, err := parse.Parse([]byte(lines[i+1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		premises[i] = y
	}
	conclusion, err := parse.Parse([]byte(lines[len(lines)-1]))
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", len(lines), err)
	}
	return &sequent.Sequent{Premises: premises, Conclusion: conclusion}, nil
}

// splitLines splits into lines with trailing whitespace stripped and
// trailing empty lines dropped.
func splitLines(d []byte) []string {
	lines := strings.Split(string(d), "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, " \t\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
