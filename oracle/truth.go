package oracle

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/PedroHenriqueFerreira/TableauxSolver/formula"
	"github.com/PedroHenriqueFerreira/TableauxSolver/sequent"
)

// MaxVars bounds truth-table enumeration.
const MaxVars = 16

var ErrTooManyVars = errors.New("too many variables for truth-table enumeration")

// Program is a formula compiled for repeated evaluation under boolean
// assignments.
type Program struct {
	prg *vm.Program
}

func Compile(y *formula.Node) (*Program, error) {
	prg, err := expr.Compile(source(y), expr.Env(map[string]bool{}), expr.AsBool())
	if err != nil {
		return nil, err
	}
	return &Program{prg: prg}, nil
}

func (p *Program) Eval(env map[string]bool) (bool, error) {
	res, err := expr.Run(p.prg, env)
	if err != nil {
		return false, err
	}
	return res.(bool), nil
}

// source renders the formula as a boolean expr program. Every variable
// becomes an identifier resolved against the assignment map.
func source(y *formula.Node) string {
	var sb strings.Builder
	writeSource(&sb, y)
	return sb.String()
}

func writeSource(sb *strings.Builder, y *formula.Node) {
	switch y.Op {
	case formula.OpAtom:
		sb.WriteString(y.Name)
	case formula.OpNot:
		sb.WriteString("!")
		writeGrouped(sb, y.Left)
	case formula.OpAnd:
		writeBinary(sb, y, "&&")
	case formula.OpOr:
		writeBinary(sb, y, "||")
	case formula.OpImpl:
		// a -> b rewritten as !a || b
		sb.WriteString("(!")
		writeGrouped(sb, y.Left)
		sb.WriteString(" || ")
		writeSource(sb, y.Right)
		sb.WriteString(")")
	default:
		panic("op")
	}
}

func writeBinary(sb *strings.Builder, y *formula.Node, op string) {
	sb.WriteString("(")
	writeSource(sb, y.Left)
	sb.WriteString(" " + op + " ")
	writeSource(sb, y.Right)
	sb.WriteString(")")
}

func writeGrouped(sb *strings.Builder, y *formula.Node) {
	if y.Op == formula.OpAtom {
		writeSource(sb, y)
		return
	}
	sb.WriteString("(")
	writeSource(sb, y)
	sb.WriteString(")")
}

// Assignment maps the i-th variable to bit i of mask.
func Assignment(vars []string, mask int) map[string]bool {
	env := make(map[string]bool, len(vars))
	for i, v := range vars {
		env[v] = mask&(1<<i) != 0
	}
	return env
}

// BruteValid decides the sequent by enumerating every assignment over
// its variables. When invalid it returns a falsifying assignment.
func BruteValid(seq *sequent.Sequent) (bool, map[string]bool, error) {
	vars := seq.Vars()
	sort.Strings(vars)
	if len(vars) > MaxVars {
		return false, nil, fmt.Errorf("%w: %d", ErrTooManyVars, len(vars))
	}
	prems := make([]*Program, len(seq.Premises))
	for i, p := range seq.Premises {
		prg, err := Compile(p)
		if err != nil {
			return false, nil, err
		}
		prems[i] = prg
	}
	concl, err := Compile(seq.Conclusion)
	if err != nil {
		return false, nil, err
	}
	for mask := 0; mask < 1<<len(vars); mask++ {
		env := Assignment(vars, mask)
		holds := true
		for _, prg := range prems {
			v, err := prg.Eval(env)
			if err != nil {
				return false, nil, err
			}
			if !v {
				holds = false
				break
			}
		}
		if !holds {
			continue
		}
		v, err := concl.Eval(env)
		if err != nil {
			return false, nil, err
		}
		if !v {
			return false, env, nil
		}
	}
	return true, nil, nil
}
